package attempt

import (
	"time"

	"github.com/nictuku/splitrun/internal/timeval"
)

// Info holds the attempt counters: total attempts seen, and how many of
// those were completed.
type Info struct {
	Total     int
	Completed int
}

// Target is the display metadata for the category an attempt is run
// against: game name, category name, and their short identifiers.
type Target struct {
	GameName     string
	GameShort    ShortName
	CategoryName string
	CategoryShort ShortName
}

// Status is the derived completion state of an Attempt.
type Status int

const (
	// NotStarted: no split has any entered times.
	NotStarted Status = iota
	// Incomplete: some but not all splits have entered times.
	Incomplete
	// Complete: every split has at least one entered time.
	Complete
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Incomplete:
		return "Incomplete"
	case Complete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// HasCompleteness reports whether the status represents a run that finished
// all its splits (i.e. Complete). Used to gate Full-timing snapshots.
func (s Status) HasCompleteness() bool { return s == Complete }

// Attempt is the single authoritative in-progress run: a category target, the
// attempt counters, and the ordered split set with entered times.
type Attempt struct {
	Target Target
	Info   Info
	Splits *SplitSet
}

// NewAttempt constructs an attempt over the given target and split
// definitions, with attempt info seeded from the store.
func NewAttempt(target Target, defs []Definition, info Info) *Attempt {
	return &Attempt{
		Target: target,
		Info:   info,
		Splits: NewSplitSet(defs),
	}
}

// DeriveStatus computes the Attempt's status from its splits' fill counts.
func (a *Attempt) DeriveStatus() Status {
	splits := a.Splits.All()
	if len(splits) == 0 {
		return NotStarted
	}
	anyFilled, allFilled := false, true
	for _, s := range splits {
		if s.Empty() {
			allFilled = false
		} else {
			anyFilled = true
		}
	}
	switch {
	case allFilled:
		return Complete
	case anyFilled:
		return Incomplete
	default:
		return NotStarted
	}
}

// ResetDestination selects what happens to the attempt info counters and
// historical snapshot when an attempt is reset.
type ResetDestination int

const (
	// Save increments the attempt info before clearing.
	Save ResetDestination = iota
	// Discard clears without touching the attempt info.
	Discard
)

// Reset clears every split. If dest is Save, the attempt info's Total is
// incremented unconditionally, and Completed is incremented iff the status
// (computed before clearing) was Complete.
func (a *Attempt) Reset(dest ResetDestination) {
	if dest == Save {
		a.Info.Total++
		if a.DeriveStatus() == Complete {
			a.Info.Completed++
		}
	}
	a.Splits.Clear()
}

// Snapshot produces a Full-timing HistoricalRun from the attempt's current
// state, tagged with the given timestamp, but only if the status has
// completeness (spec §4.D); ok is false otherwise.
func (a *Attempt) Snapshot(target Target, at time.Time) (HistoricalRun, bool) {
	if !a.DeriveStatus().HasCompleteness() {
		return HistoricalRun{}, false
	}
	full := make(FullTiming, 0, a.Splits.Len())
	for _, s := range a.Splits.All() {
		full = append(full, SplitTimes{Short: s.Def.Short, Times: append([]timeval.Time(nil), s.Times...)})
	}
	return HistoricalRun{
		Target:    target,
		Completed: true,
		Timestamp: at,
		Timing:    full,
	}, true
}
