package attempt

import (
	"time"

	"github.com/nictuku/splitrun/internal/timeval"
)

// Timing is the wire/storage timing payload of a HistoricalRun, one of three
// levels of detail a store may hand back. Only Full is ever produced by the
// attempt itself (Snapshot); Summary and Totals are read paths a store can
// return for runs it only has coarse records of (e.g. imported history),
// per original_source/src/model/history/timing.rs.
type Timing interface {
	isTiming()
}

// SummaryTiming is a run's total time plus an optional leaderboard-style
// rank.
type SummaryTiming struct {
	Total timeval.Time
	Rank  *int
}

func (SummaryTiming) isTiming() {}

// TotalsTiming is a run recorded only as per-split totals (no individual
// segment entries survived, e.g. a single-time entry per split).
type TotalsTiming map[ShortName]timeval.Time

func (TotalsTiming) isTiming() {}

// SplitTimes is one split's full ordered list of entered times, the unit of
// FullTiming.
type SplitTimes struct {
	Short ShortName
	Times []timeval.Time
}

// FullTiming is a run recorded with every individual entered time per split,
// in split order. This is what Attempt.Snapshot produces.
type FullTiming []SplitTimes

func (FullTiming) isTiming() {}

// HistoricalRun is the wire/storage form of a past attempt: the category it
// was run under, whether it finished, when it happened, and its timing at
// whatever level of detail is available.
type HistoricalRun struct {
	Target    Target
	Completed bool
	Timestamp time.Time
	Timing    Timing
}
