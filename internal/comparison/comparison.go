package comparison

import (
	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/timeval"
)

// SplitRecord is one split's comparison data: its best observed individual
// segment time across all stored runs (SplitPB), and the aggregates
// (split+cumulative) that split had within the best full completed run
// (InPbRun). HasInPbRun is false when no completed PB run exists yet, in
// which case InPbRun is meaningless and CombineSplitInRunPace must be told
// so via hasInRun=false.
type SplitRecord struct {
	SplitPB    timeval.Time
	HasSplitPB bool
	InPbRun    aggregate.Set
	HasInPbRun bool
}

// RunTotals is the run-level comparison data: the PB run's total time, and
// the sum of each split's individual best (an unachieved lower bound).
type RunTotals struct {
	TotalInPbRun timeval.Time
	HasTotal     bool
	SumOfBest    timeval.Time
	HasSumOfBest bool
}

// Comparison is the full comparison record for a category: per-split
// records plus run-level totals (spec §3).
type Comparison struct {
	Splits map[attempt.ShortName]SplitRecord
	Run    RunTotals
}

// Empty returns a Comparison with no data at all — the state a session
// starts with before any provider fetch succeeds.
func Empty() Comparison {
	return Comparison{Splits: map[attempt.ShortName]SplitRecord{}}
}

// SplitRecordFor returns the comparison record for short, or the zero record
// (no PB, no in-run data) if none exists.
func (c Comparison) SplitRecordFor(short attempt.ShortName) SplitRecord {
	return c.Splits[short]
}

// PaceFor computes the split-in-run pace for a split given its attempt
// aggregate set, delegating to CombineSplitInRunPace with this comparison's
// record for that split. A split with no entered times is always
// Inconclusive: its zero Split/Cumulative times would otherwise read as a
// PersonalBest against any positive reference.
func (c Comparison) PaceFor(short attempt.ShortName, attemptAgg aggregate.Set) SplitInRunPace {
	if attemptAgg.Empty {
		return SplitInRunPace{Split: Inconclusive, Cumulative: Inconclusive}
	}
	rec := c.SplitRecordFor(short)
	return CombineSplitInRunPace(
		attemptAgg.Split, attemptAgg.Cumulative,
		rec.HasInPbRun, rec.InPbRun.Split, rec.InPbRun.Cumulative,
		rec.HasSplitPB, rec.SplitPB,
	)
}

// DeltaFor computes the split delta-pair for a split given its attempt
// aggregate set. As in PaceFor, an untouched split reports Inconclusive on
// both dimensions rather than a spurious delta against Zero.
func (c Comparison) DeltaFor(short attempt.ShortName, attemptAgg aggregate.Set) DeltaPair {
	if attemptAgg.Empty {
		return DeltaPair{Split: Delta{Pace: Inconclusive}, Cumulative: Delta{Pace: Inconclusive}}
	}
	rec := c.SplitRecordFor(short)
	return DeltaPair{
		Split:      DeltaOfSplit(attemptAgg.Split, rec.HasInPbRun, rec.InPbRun.Split, rec.HasSplitPB, rec.SplitPB),
		Cumulative: DeltaOf(attemptAgg.Cumulative, rec.HasInPbRun, rec.InPbRun.Cumulative),
	}
}
