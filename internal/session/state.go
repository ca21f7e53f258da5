// Package session implements the authoritative session state (spec §3
// "Session state", §4.E) and the controller that drives it from a stream of
// actions (spec §4.F).
package session

import (
	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Note is the precomputed per-split derivative held in session state: the
// attempt-sourced aggregate set for the split, plus its delta against the
// current comparison.
type Note struct {
	Attempt aggregate.Set
	Delta   comparison.DeltaPair
}

// RunTotal is the session-level derived total: the note with the greatest
// cumulative attempt time, carried as {delta, time} (spec §3 "Session
// state").
type RunTotal struct {
	Delta comparison.Delta
	Time  timeval.Time
}

// State is the single authoritative session record: the in-progress
// attempt, the current comparison, and their derived notes/total. Every
// mutation method recomputes notes and total "as if from scratch" (spec
// §4.E); this implementation does so literally — a single ScanSplitSet pass
// plus a per-split DeltaFor, cheap enough at realistic split counts that an
// incremental variant buys nothing but bug surface.
type State struct {
	Attempt    *attempt.Attempt
	Comparison comparison.Comparison
	Notes      map[attempt.ShortName]Note
	Total      *RunTotal
}

// New builds session state from a freshly constructed attempt and
// comparison, with notes/total computed for the attempt's initial (empty)
// state.
func New(at *attempt.Attempt, cmp comparison.Comparison) *State {
	s := &State{Attempt: at, Comparison: cmp}
	s.refresh()
	return s
}

// refresh recomputes Notes and Total from the current Attempt and
// Comparison. Called after every mutation (spec §4.E).
func (s *State) refresh() {
	aggs := aggregate.ScanSplitSet(s.Attempt.Splits)
	notes := make(map[attempt.ShortName]Note, len(aggs))
	var (
		best     attempt.ShortName
		bestTime timeval.Time
		haveBest bool
	)
	for short, agg := range aggs {
		notes[short] = Note{
			Attempt: agg,
			Delta:   s.Comparison.DeltaFor(short, agg),
		}
		if agg.Empty {
			continue
		}
		if !haveBest || bestTime.Less(agg.Cumulative) {
			best, bestTime, haveBest = short, agg.Cumulative, true
		}
	}
	s.Notes = notes
	if !haveBest {
		s.Total = nil
		return
	}
	s.Total = &RunTotal{Delta: notes[best].Delta.Cumulative, Time: bestTime}
}

// PushTo pushes t onto the split addressed by loc, recomputes notes/total,
// and returns the split's short name. ok is false if loc names nothing
// (spec §4.F: "invalid locators are silently ignored").
func (s *State) PushTo(loc attempt.Locator, t timeval.Time) (short attempt.ShortName, ok bool) {
	_, split, found := s.Attempt.Splits.Resolve(loc)
	if !found {
		return attempt.ShortName{}, false
	}
	split.Push(t)
	s.refresh()
	return split.Def.Short, true
}

// PopFrom pops the last entered time off the split addressed by loc,
// recomputes notes/total, and returns the short name and popped time. ok is
// false if loc names nothing or the split was already empty.
func (s *State) PopFrom(loc attempt.Locator) (short attempt.ShortName, t timeval.Time, ok bool) {
	_, split, found := s.Attempt.Splits.Resolve(loc)
	if !found {
		return attempt.ShortName{}, timeval.Zero, false
	}
	popped, popOk := split.Pop()
	if !popOk {
		return split.Def.Short, timeval.Zero, false
	}
	s.refresh()
	return split.Def.Short, popped, true
}

// ClearAt clears every entered time on the split addressed by loc,
// recomputes notes/total, and returns the short name. ok is false if loc
// names nothing.
func (s *State) ClearAt(loc attempt.Locator) (short attempt.ShortName, ok bool) {
	_, split, found := s.Attempt.Splits.Resolve(loc)
	if !found {
		return attempt.ShortName{}, false
	}
	split.Clear()
	s.refresh()
	return split.Def.Short, true
}

// SetComparison replaces the current comparison and recomputes notes/total
// against it (spec §4.E: "must be followed by a notes/total refresh").
func (s *State) SetComparison(cmp comparison.Comparison) {
	s.Comparison = cmp
	s.refresh()
}
