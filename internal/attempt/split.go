package attempt

import "github.com/nictuku/splitrun/internal/timeval"

// Definition is an immutable split template: short name, display name, and
// an optional nickname.
type Definition struct {
	Short    ShortName
	Display  string
	Nickname string
}

// Split pairs a Definition with the ordered list of times entered against it
// during the current attempt. TotalTime is the sum of Times; a split with no
// entered times is Empty.
type Split struct {
	Def   Definition
	Times []timeval.Time
}

// NewSplit constructs an empty Split from its definition.
func NewSplit(def Definition) *Split {
	return &Split{Def: def}
}

// Empty reports whether the split has no entered times.
func (s *Split) Empty() bool { return len(s.Times) == 0 }

// TotalTime sums the entered times.
func (s *Split) TotalTime() timeval.Time {
	return timeval.Sum(s.Times)
}

// Push appends a newly entered time.
func (s *Split) Push(t timeval.Time) {
	s.Times = append(s.Times, t)
}

// Pop removes and returns the last entered time, reporting ok=false if the
// split was already empty.
func (s *Split) Pop() (t timeval.Time, ok bool) {
	if s.Empty() {
		return timeval.Zero, false
	}
	n := len(s.Times)
	t = s.Times[n-1]
	s.Times = s.Times[:n-1]
	return t, true
}

// Clear truncates all entered times.
func (s *Split) Clear() {
	s.Times = nil
}
