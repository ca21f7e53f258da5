package comparison

import (
	"fmt"

	"github.com/nictuku/splitrun/internal/timeval"
)

// Delta is the signed difference between an attempt time and a reference,
// encoded as a pace plus an always-non-negative magnitude (spec §3: "Encodes
// the signed difference between two times without ever storing a negative
// time").
type Delta struct {
	Pace      Pace
	Magnitude timeval.Time
}

// DeltaOf computes the delta of a against an optional reference ref, using
// the plain Ahead/Behind/Inconclusive rule (no split-PB override).
func DeltaOf(a timeval.Time, hasRef bool, ref timeval.Time) Delta {
	return deltaFor(a, Of(a, hasRef, ref), hasRef, ref)
}

// DeltaOfSplit computes a split's delta against its comparison reference,
// applying the split-PB override exactly as OfSplit does for Pace.
func DeltaOfSplit(a timeval.Time, hasRef bool, ref timeval.Time, hasPB bool, pb timeval.Time) Delta {
	return deltaFor(a, OfSplit(a, hasRef, ref, hasPB, pb), hasRef, ref)
}

func deltaFor(a timeval.Time, pace Pace, hasRef bool, ref timeval.Time) Delta {
	if !hasRef {
		return Delta{Pace: Inconclusive}
	}
	if a.LessEqual(ref) {
		return Delta{Pace: pace, Magnitude: ref.Sub(a)}
	}
	return Delta{Pace: pace, Magnitude: a.Sub(ref)}
}

// Reconstitute recovers the reference time from an attempt time plus a
// delta: adds the magnitude if pace is Ahead/PersonalBest, subtracts if
// Behind, is a no-op (returns a unchanged) if Inconclusive. This is the
// exact inverse of DeltaOf/DeltaOfSplit (spec invariant 8, "delta sign law").
func (d Delta) Reconstitute(a timeval.Time) timeval.Time {
	switch d.Pace {
	case Ahead, PersonalBest:
		return a.Add(d.Magnitude)
	case Behind:
		return a.Sub(d.Magnitude)
	default:
		return a
	}
}

// DeltaPair bundles a split's own delta with its cumulative-run delta, the
// shape the session's per-split notes and the wire dump carry (spec §3
// "Split note" / §6 "Notes map: per-split {aggregate set, delta}" mirrors
// the Split/Cumulative shape of aggregate.Set).
type DeltaPair struct {
	Split      Delta
	Cumulative Delta
}

// String renders a delta-pair the way spec scenario S3 shows it:
// "<split>/<cumulative>", each as a sign character plus a Time, e.g.
// "-1s000/-1s000".
func (d DeltaPair) String() string {
	return fmt.Sprintf("%c%s/%c%s", d.Split.Pace.Sign(), d.Split.Magnitude, d.Cumulative.Pace.Sign(), d.Cumulative.Magnitude)
}
