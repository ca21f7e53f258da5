// Package aggregate computes per-split and cumulative sums over an ordered
// split set, identically whether the source is the live attempt or a
// historical comparison record (spec §3 "Aggregate set", §4.B).
package aggregate

import (
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Source distinguishes which of the attempt or the comparison an aggregate
// bundle derives from.
type Source int

const (
	SourceAttempt Source = iota
	SourceComparison
)

// Set is a split's aggregate pair: its own total (Split) and the prefix sum
// of totals up to and including it (Cumulative). Empty marks a split that
// has no entered times at all, as opposed to one entered with a time of
// zero; pace/delta computations must treat it as Inconclusive rather than
// comparing Split's zero value against a reference.
type Set struct {
	Split      timeval.Time
	Cumulative timeval.Time
	Empty      bool
}

// Named is one (short name, time) pair over which Scan runs; it abstracts
// over "a split's total time" regardless of whether that total comes from
// the live attempt or a stored comparison record. Empty carries through to
// the resulting Set unchanged; comparison-sourced records (which always
// represent a completed, entered time) leave it false.
type Named struct {
	Short attempt.ShortName
	Time  timeval.Time
	Empty bool
}

// Scan performs the single left-to-right pass described in spec §4.B: for
// each element, emit {split: its own time, cumulative: running sum
// including it}. The operation is total, pure, and preserves input order.
func Scan(items []Named) []Set {
	out := make([]Set, len(items))
	var running timeval.Time
	for i, it := range items {
		running = running.Add(it.Time)
		out[i] = Set{Split: it.Time, Cumulative: running, Empty: it.Empty}
	}
	return out
}

// ScanSplitSet aggregates a live attempt's SplitSet by its own split totals.
func ScanSplitSet(ss *attempt.SplitSet) map[attempt.ShortName]Set {
	splits := ss.All()
	items := make([]Named, len(splits))
	for i, s := range splits {
		items[i] = Named{Short: s.Def.Short, Time: s.TotalTime(), Empty: s.Empty()}
	}
	scanned := Scan(items)
	out := make(map[attempt.ShortName]Set, len(scanned))
	for i, s := range scanned {
		out[items[i].Short] = s
	}
	return out
}
