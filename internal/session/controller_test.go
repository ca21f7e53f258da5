package session

import (
	"context"
	"testing"
	"time"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/timeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	saved []attempt.HistoricalRun
	err   error
}

func (f *fakeSink) Save(_ context.Context, run attempt.HistoricalRun) (Outcome, error) {
	if f.err != nil {
		return Ignored, f.err
	}
	f.saved = append(f.saved, run)
	return Saved, nil
}

type fakeProvider struct {
	cmp comparison.Comparison
	ok  bool
	err error
}

func (f *fakeProvider) Comparison(_ context.Context, _ attempt.Target) (comparison.Comparison, bool, error) {
	return f.cmp, f.ok, f.err
}

func defs(shorts ...string) []attempt.Definition {
	out := make([]attempt.Definition, len(shorts))
	for i, s := range shorts {
		out[i] = attempt.Definition{Short: attempt.Intern(s), Display: s}
	}
	return out
}

func ms(s string) timeval.Time {
	t, err := timeval.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func newController(t *testing.T, info attempt.Info, shorts ...string) (*Controller, *fakeSink, *fakeProvider) {
	t.Helper()
	at := attempt.NewAttempt(attempt.Target{}, defs(shorts...), info)
	st := New(at, comparison.Empty())
	sink := &fakeSink{}
	provider := &fakeProvider{cmp: comparison.Empty(), ok: true}
	c := NewController(st, provider, sink, nil, func(Event) {})
	c.Now = func() time.Time { return time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC) }
	return c, sink, provider
}

func TestResetSaveScenarioS4(t *testing.T) {
	c, sink, _ := newController(t, attempt.Info{Total: 42, Completed: 2}, "s1", "s2")

	var events []Event
	c.Emit = func(e Event) { events = append(events, e) }

	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("10s000")})
	require.Equal(t, attempt.Incomplete, c.State.Attempt.DeriveStatus())

	events = nil
	c.Apply(context.Background(), NewRunAction{OldDestination: attempt.Save})

	require.Equal(t, attempt.Info{Total: 43, Completed: 2}, c.State.Attempt.Info)
	for _, s := range c.State.Attempt.Splits.All() {
		assert.True(t, s.Empty())
	}
	assert.Empty(t, sink.saved, "incomplete attempt must not be snapshotted")

	require.NotEmpty(t, events)
	reset, ok := events[0].(ResetEvent)
	require.True(t, ok, "first event after NewRun must be Reset")
	assert.Equal(t, attempt.Info{Total: 43, Completed: 2}, reset.Info)
}

func TestResetDiscardScenarioS5(t *testing.T) {
	c, sink, _ := newController(t, attempt.Info{Total: 42, Completed: 2}, "s1", "s2")

	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("10s000")})
	c.Apply(context.Background(), PushAction{Index: 1, Time: ms("5s000")})
	require.Equal(t, attempt.Complete, c.State.Attempt.DeriveStatus())

	c.Apply(context.Background(), NewRunAction{OldDestination: attempt.Discard})

	assert.Equal(t, attempt.Info{Total: 42, Completed: 2}, c.State.Attempt.Info)
	assert.Empty(t, sink.saved, "discard must not persist a run")
}

func TestNewRunSavesCompleteAttempt(t *testing.T) {
	c, sink, _ := newController(t, attempt.Info{}, "s1")

	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("10s000")})
	c.Apply(context.Background(), NewRunAction{OldDestination: attempt.Save})

	require.Len(t, sink.saved, 1)
	full, ok := sink.saved[0].Timing.(attempt.FullTiming)
	require.True(t, ok)
	require.Len(t, full, 1)
	assert.Equal(t, ms("10s000"), full[0].Times[0])
}

func TestPushEmitsTimeThenTotal(t *testing.T) {
	c, _, _ := newController(t, attempt.Info{}, "s1")
	var events []Event
	c.Emit = func(e Event) { events = append(events, e) }

	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("10s000")})

	require.NotEmpty(t, events)
	first, ok := events[0].(SplitEvent)
	require.True(t, ok)
	tm, ok := first.Payload.(SplitTimeEvent)
	require.True(t, ok)
	assert.Equal(t, Pushed, tm.Kind)

	last := events[len(events)-1]
	total, ok := last.(TotalEvent)
	require.True(t, ok)
	require.NotNil(t, total.Time)
	assert.Equal(t, ms("10s000"), *total.Time)
}

func TestPushOnUnknownIndexIsSilentlyIgnored(t *testing.T) {
	c, _, _ := newController(t, attempt.Info{}, "s1")
	var events []Event
	c.Emit = func(e Event) { events = append(events, e) }

	c.Apply(context.Background(), PushAction{Index: 5, Time: ms("1s000")})

	assert.Empty(t, events)
}

func TestPopAllClearsAndEmitsPopped(t *testing.T) {
	c, _, _ := newController(t, attempt.Info{}, "s1")
	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("1s000")})
	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("2s000")})

	var events []Event
	c.Emit = func(e Event) { events = append(events, e) }
	c.Apply(context.Background(), PopAction{Index: 0, Kind: PopAll})

	require.NotEmpty(t, events)
	se, ok := events[0].(SplitEvent)
	require.True(t, ok)
	popped, ok := se.Payload.(SplitPoppedEvent)
	require.True(t, ok)
	assert.Equal(t, PopAll, popped.Kind)
	assert.True(t, c.State.Attempt.Splits.All()[0].Empty())
}

func TestDumpReturnsCurrentStateWithoutEmitting(t *testing.T) {
	c, _, _ := newController(t, attempt.Info{Total: 1}, "s1", "s2")
	c.Apply(context.Background(), PushAction{Index: 0, Time: ms("1s000")})

	var events []Event
	c.Emit = func(e Event) { events = append(events, e) }
	dump := c.Apply(context.Background(), DumpAction{})

	require.NotNil(t, dump)
	assert.Empty(t, events, "Dump must not emit broadcast events")
	require.Len(t, dump.Splits, 2)
	assert.Equal(t, ms("1s000"), dump.Splits[0].Times[0])
}

func TestProviderErrorKeepsPreviousComparison(t *testing.T) {
	c, _, provider := newController(t, attempt.Info{}, "s1")
	prior := c.State.Comparison

	provider.err = assert.AnError
	c.Apply(context.Background(), NewRunAction{OldDestination: attempt.Discard})

	assert.Equal(t, prior, c.State.Comparison)
}
