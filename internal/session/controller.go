package session

import (
	"context"
	"log/slog"
	"time"

	goerrors "github.com/go-errors/errors"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Action is the tagged union of client-originated actions the controller
// consumes (spec §4.F, wire shapes in §6).
type Action interface{ isAction() }

// DumpAction requests a full state dump. The controller answers it
// synchronously via Dump, not through the Event stream (spec §4.G: the
// dump is a distinct message shape from incremental events).
type DumpAction struct{}

func (DumpAction) isAction() {}

// NewRunAction starts a new attempt, disposing of the current one per
// OldDestination.
type NewRunAction struct {
	OldDestination attempt.ResetDestination
}

func (NewRunAction) isAction() {}

// PushAction appends a time to the split at Index.
type PushAction struct {
	Index int
	Time  timeval.Time
}

func (PushAction) isAction() {}

// PopKind selects whether Pop removes one entered time or clears the split
// entirely.
type PopKind int

const (
	PopOne PopKind = iota
	PopAll
)

// PopAction removes time(s) from the split at Index, per Kind.
type PopAction struct {
	Index int
	Kind  PopKind
}

func (PopAction) isAction() {}

// TotalVariant distinguishes the two things a Total event can report (spec
// §4.F): the session's own attempt-cumulative delta, or one of the
// comparison's run-level totals.
type TotalVariant interface{ isTotalVariant() }

// TotalAttempt carries the attempt-cumulative delta for the session's
// current run total.
type TotalAttempt struct{ Delta comparison.Delta }

func (TotalAttempt) isTotalVariant() {}

// TotalKind selects which comparison run-level total a TotalComparison
// event reports.
type TotalKind int

const (
	TotalInPbRun TotalKind = iota
	SumOfBest
)

// TotalComparison reports one of the comparison's run-level totals.
type TotalComparison struct{ Kind TotalKind }

func (TotalComparison) isTotalVariant() {}

// SplitPayload is the tagged union carried by a SplitEvent (spec §4.F).
type SplitPayload interface{ isSplitPayload() }

// TimeEventKind distinguishes a freshly pushed time from the four aggregate
// recomputation kinds that can accompany it.
type TimeEventKind int

const (
	Pushed TimeEventKind = iota
	AggregateAttemptSplit
	AggregateAttemptCumulative
	AggregateComparisonSplit
	AggregateComparisonCumulative
)

// SplitTimeEvent reports a time value for a split, tagged with why it's
// being reported.
type SplitTimeEvent struct {
	Time timeval.Time
	Kind TimeEventKind
}

func (SplitTimeEvent) isSplitPayload() {}

// SplitPaceEvent reports a split's recomputed split-in-run pace.
type SplitPaceEvent struct{ Pace comparison.SplitInRunPace }

func (SplitPaceEvent) isSplitPayload() {}

// SplitPoppedEvent reports that one or all of a split's times were removed.
type SplitPoppedEvent struct{ Kind PopKind }

func (SplitPoppedEvent) isSplitPayload() {}

// Event is the tagged union of server-originated incremental events (spec
// §4.F, wire shapes in §6).
type Event interface{ isEvent() }

// TotalEvent reports a change to either the attempt's running total or one
// of the comparison's run-level totals. Time is nil when the quantity has
// no value yet (e.g. the attempt total before any split is pushed).
type TotalEvent struct {
	Variant TotalVariant
	Time    *timeval.Time
}

func (TotalEvent) isEvent() {}

// ResetEvent reports the attempt info after a reset.
type ResetEvent struct{ Info attempt.Info }

func (ResetEvent) isEvent() {}

// SplitEvent reports a change to one split, identified by its short name.
type SplitEvent struct {
	Short   attempt.ShortName
	Payload SplitPayload
}

func (SplitEvent) isEvent() {}

// Outcome is the result a RunSink reports for a saved historical run.
type Outcome int

const (
	Saved Outcome = iota
	Ignored
)

// RunSink is the external collaborator that persists a completed historical
// run (spec §6 "Persistence (run sink)"). Errors are non-fatal to the
// session.
type RunSink interface {
	Save(ctx context.Context, run attempt.HistoricalRun) (Outcome, error)
}

// ComparisonProvider is the external collaborator that produces the current
// comparison for a category (spec §6 "Persistence (comparison provider)").
// ok is false when the provider has no comparison for this category yet
// (distinct from an error); errors are non-fatal and leave the prior
// comparison in place.
type ComparisonProvider interface {
	Comparison(ctx context.Context, target attempt.Target) (cmp comparison.Comparison, ok bool, err error)
}

// DumpSplit is one split's definition plus its currently entered times, the
// shape the dump reports per split (spec §6 DumpResponse "ordered splits").
type DumpSplit struct {
	Def   attempt.Definition
	Times []timeval.Time
}

// Dump is the full state-dump content requested by DumpAction and on
// client connect (spec §4.G). It is a plain value built from session/
// attempt/comparison types; the wire encoding of a Dump into a
// DumpResponse frame is the protocol package's concern, not this one's.
type Dump struct {
	Target     attempt.Target
	Info       attempt.Info
	Splits     []DumpSplit
	Comparison comparison.Comparison
	Notes      map[attempt.ShortName]Note
	Total      *RunTotal
}

// Controller consumes actions against a single session State, invoking the
// comparison provider and run sink as needed, and produces events via
// Emit. Exactly one Controller exists per session; it is not safe for
// concurrent use (spec §4.H: the session loop is strictly single-threaded).
type Controller struct {
	State    *State
	Provider ComparisonProvider
	Sink     RunSink
	Log      *slog.Logger
	Emit     func(Event)
	Now      func() time.Time
}

// NewController builds a Controller over state, wired to provider/sink for
// external I/O and emit for outgoing events. now defaults to time.Now if
// nil; logger defaults to slog.Default() if nil.
func NewController(state *State, provider ComparisonProvider, sink RunSink, logger *slog.Logger, emit func(Event)) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		State:    state,
		Provider: provider,
		Sink:     sink,
		Log:      logger,
		Emit:     emit,
		Now:      time.Now,
	}
}

// Apply dispatches a single action (spec §4.F). For DumpAction it returns a
// populated Dump and emits nothing; for every other action it emits zero or
// more events via c.Emit and returns a nil Dump. Apply never panics and
// never returns an error: provider/sink failures and unresolved locators
// are logged and swallowed (spec §7), matching "only transport-level
// errors propagate".
func (c *Controller) Apply(ctx context.Context, action Action) *Dump {
	switch a := action.(type) {
	case DumpAction:
		return c.dump()
	case NewRunAction:
		c.newRun(ctx, a.OldDestination)
	case PushAction:
		c.push(a.Index, a.Time)
	case PopAction:
		c.pop(a.Index, a.Kind)
	}
	return nil
}

func (c *Controller) dump() *Dump {
	splits := c.State.Attempt.Splits.All()
	out := make([]DumpSplit, len(splits))
	for i, s := range splits {
		out[i] = DumpSplit{Def: s.Def, Times: append([]timeval.Time(nil), s.Times...)}
	}
	return &Dump{
		Target:     c.State.Attempt.Target,
		Info:       c.State.Attempt.Info,
		Splits:     out,
		Comparison: c.State.Comparison,
		Notes:      c.State.Notes,
		Total:      c.State.Total,
	}
}

func (c *Controller) push(index int, t timeval.Time) {
	before := c.paceSnapshot()
	short, ok := c.State.PushTo(attempt.ByIndex(index), t)
	if !ok {
		return
	}
	c.Emit(SplitEvent{Short: short, Payload: SplitTimeEvent{Time: t, Kind: Pushed}})
	c.emitPaceChanges(before)
	c.emitTotal()
}

func (c *Controller) pop(index int, kind PopKind) {
	before := c.paceSnapshot()
	loc := attempt.ByIndex(index)
	var (
		short attempt.ShortName
		ok    bool
	)
	switch kind {
	case PopOne:
		short, _, ok = c.State.PopFrom(loc)
	case PopAll:
		short, ok = c.State.ClearAt(loc)
	}
	if !ok {
		return
	}
	c.Emit(SplitEvent{Short: short, Payload: SplitPoppedEvent{Kind: kind}})
	c.emitPaceChanges(before)
	c.emitTotal()
}

// paceSnapshot captures every split's current split-in-run pace, so a
// mutation's effects can be diffed against it (spec §4.F: "for every split
// whose pace changed").
func (c *Controller) paceSnapshot() map[attempt.ShortName]comparison.SplitInRunPace {
	out := make(map[attempt.ShortName]comparison.SplitInRunPace, len(c.State.Notes))
	for short, note := range c.State.Notes {
		out[short] = c.State.Comparison.PaceFor(short, note.Attempt)
	}
	return out
}

func (c *Controller) emitPaceChanges(before map[attempt.ShortName]comparison.SplitInRunPace) {
	for short, note := range c.State.Notes {
		pace := c.State.Comparison.PaceFor(short, note.Attempt)
		if before[short] != pace {
			c.Emit(SplitEvent{Short: short, Payload: SplitPaceEvent{Pace: pace}})
		}
	}
}

// emitTotal reports the session's current attempt-cumulative run total, if
// any split has been pushed at all.
func (c *Controller) emitTotal() {
	if c.State.Total == nil {
		c.Emit(TotalEvent{Variant: TotalAttempt{}})
		return
	}
	tm := c.State.Total.Time
	c.Emit(TotalEvent{Variant: TotalAttempt{Delta: c.State.Total.Delta}, Time: &tm})
}

// emitComparisonTotals reports the comparison's run-level totals, used
// after a fresh comparison fetch so clients pick up new PB/sum-of-best
// figures without waiting for a full dump.
func (c *Controller) emitComparisonTotals() {
	run := c.State.Comparison.Run
	c.Emit(TotalEvent{Variant: TotalComparison{Kind: TotalInPbRun}, Time: optionalTime(run.HasTotal, run.TotalInPbRun)})
	c.Emit(TotalEvent{Variant: TotalComparison{Kind: SumOfBest}, Time: optionalTime(run.HasSumOfBest, run.SumOfBest)})
}

func optionalTime(has bool, t timeval.Time) *timeval.Time {
	if !has {
		return nil
	}
	return &t
}

// newRun implements spec §4.F NewRunAction: snapshot-then-sink the outgoing
// attempt (only if dest is Save and it has a complete timing to snapshot),
// reset it, refetch the comparison, then announce the reset and the
// resulting totals.
func (c *Controller) newRun(ctx context.Context, dest attempt.ResetDestination) {
	target := c.State.Attempt.Target
	if run, ok := c.State.Attempt.Snapshot(target, c.Now()); ok && dest == attempt.Save {
		outcome, err := c.Sink.Save(ctx, run)
		if err != nil {
			c.Log.Error("run sink save failed", "error", goerrors.Wrap(err, 0), "target", target.CategoryShort)
		} else if outcome == Ignored {
			c.Log.Info("run sink ignored completed run", "target", target.CategoryShort)
		}
	}

	c.State.Attempt.Reset(dest)

	next := c.State.Comparison
	if cmp, ok, err := c.Provider.Comparison(ctx, target); err != nil {
		c.Log.Error("comparison provider fetch failed, keeping previous comparison", "error", goerrors.Wrap(err, 0), "target", target.CategoryShort)
	} else if ok {
		next = cmp
	} else {
		next = comparison.Empty()
	}
	// SetComparison always refreshes notes/total, which must happen here
	// regardless of provider outcome since Reset just changed the attempt.
	c.State.SetComparison(next)

	c.Emit(ResetEvent{Info: c.State.Attempt.Info})
	c.emitComparisonTotals()
	c.emitTotal()
}
