// Package comparison implements the comparison record, pace/delta
// computations, and split-in-run pace combination described in spec §3/§4.C.
package comparison

import "github.com/nictuku/splitrun/internal/timeval"

// Pace is the qualitative classification of a single time against a
// reference: no reference at all (Inconclusive), strictly slower (Behind),
// equal or faster (Ahead), or strictly faster than the individual PB
// (PersonalBest).
type Pace int

const (
	Inconclusive Pace = iota
	Behind
	Ahead
	PersonalBest
)

func (p Pace) String() string {
	switch p {
	case Inconclusive:
		return "Inconclusive"
	case Behind:
		return "Behind"
	case Ahead:
		return "Ahead"
	case PersonalBest:
		return "PersonalBest"
	default:
		return "Unknown"
	}
}

// Sign is the single wire-form character for the pace, per spec §3: '-'
// ahead, '+' behind, '*' PB, '?' inconclusive.
func (p Pace) Sign() byte {
	switch p {
	case Ahead:
		return '-'
	case Behind:
		return '+'
	case PersonalBest:
		return '*'
	default:
		return '?'
	}
}

// Of classifies a against an optional reference time ref (hasRef=false means
// no comparison data exists for this quantity).
func Of(a timeval.Time, hasRef bool, ref timeval.Time) Pace {
	if !hasRef {
		return Inconclusive
	}
	if a.LessEqual(ref) {
		return Ahead
	}
	return Behind
}

// OfSplit classifies a split's own time against its comparison reference and
// the split's individual best-ever (PB) time: strictly faster than pb wins
// out as PersonalBest before falling back to the plain Ahead/Behind rule
// against ref.
func OfSplit(a timeval.Time, hasRef bool, ref timeval.Time, hasPB bool, pb timeval.Time) Pace {
	if hasPB && a.Less(pb) {
		return PersonalBest
	}
	return Of(a, hasRef, ref)
}

// SplitInRunPaceTag is the 6-valued display tag from spec §3: Inconclusive,
// SplitPersonalBest (overrides), then the four ahead/behind x
// gaining/losing quadrants.
type SplitInRunPaceTag int

const (
	TagInconclusive SplitInRunPaceTag = iota
	TagSplitPersonalBest
	TagAheadGaining
	TagAheadLosing
	TagBehindGaining
	TagBehindLosing
)

func (t SplitInRunPaceTag) String() string {
	switch t {
	case TagInconclusive:
		return "Inconclusive"
	case TagSplitPersonalBest:
		return "SplitPersonalBest"
	case TagAheadGaining:
		return "AheadGaining"
	case TagAheadLosing:
		return "AheadLosing"
	case TagBehindGaining:
		return "BehindGaining"
	case TagBehindLosing:
		return "BehindLosing"
	default:
		return "Unknown"
	}
}

// SplitInRunPace is the combination of a split's own pace and the run's
// cumulative pace at that split, per spec §3/§4.C. Split may be
// PersonalBest, in which case it overrides the quadrant in Tag(); Cumulative
// is always plain Ahead/Behind/Inconclusive (never PersonalBest — there is
// no such thing as a "cumulative PB" at a single split).
type SplitInRunPace struct {
	Split      Pace
	Cumulative Pace
}

// CombineSplitInRunPace computes the split-in-run pace for a split given its
// attempt aggregate set (split+cumulative times) and its comparison record,
// following spec §4.C: if the comparison has no in-run data at all, the
// result is Inconclusive; otherwise cumulative pace compares the attempt's
// cumulative time to the comparison's, and split pace first tests for a
// split PB before falling back to the Ahead/Behind rule against the
// comparison's own split time.
func CombineSplitInRunPace(attemptSplit, attemptCumulative timeval.Time, hasInRun bool, cmpSplit, cmpCumulative timeval.Time, hasSplitPB bool, splitPB timeval.Time) SplitInRunPace {
	if !hasInRun {
		return SplitInRunPace{Split: Inconclusive, Cumulative: Inconclusive}
	}
	cum := Of(attemptCumulative, true, cmpCumulative)
	split := OfSplit(attemptSplit, true, cmpSplit, hasSplitPB, splitPB)
	return SplitInRunPace{Split: split, Cumulative: cum}
}

// Tag projects the SplitInRunPace down to its 6-valued display tag.
func (p SplitInRunPace) Tag() SplitInRunPaceTag {
	switch {
	case p.Cumulative == Inconclusive && p.Split == Inconclusive:
		return TagInconclusive
	case p.Split == PersonalBest:
		return TagSplitPersonalBest
	case p.Cumulative == Ahead && p.Split == Ahead:
		return TagAheadGaining
	case p.Cumulative == Ahead && p.Split == Behind:
		return TagAheadLosing
	case p.Cumulative == Behind && p.Split == Ahead:
		return TagBehindGaining
	case p.Cumulative == Behind && p.Split == Behind:
		return TagBehindLosing
	default:
		return TagInconclusive
	}
}

// Overall discards the split dimension, projecting down to the plain
// cumulative-level Pace (spec §3: "Its overall() projection discards the
// split dimension").
func (p SplitInRunPace) Overall() Pace {
	return p.Cumulative
}
