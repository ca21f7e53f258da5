package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

func sampleDump() session.Dump {
	s1, s2 := attempt.Intern("s1"), attempt.Intern("s2")
	return session.Dump{
		Target: attempt.Target{GameName: "Game", CategoryName: "Any%"},
		Info:   attempt.Info{Total: 1},
		Splits: []session.DumpSplit{
			{Def: attempt.Definition{Short: s1, Display: "Split 1"}},
			{Def: attempt.Definition{Short: s2, Display: "Split 2"}},
		},
		Comparison: comparison.Empty(),
		Notes:      map[attempt.ShortName]session.Note{},
	}
}

func TestPresenterStartsInactiveAndActivatesOnDump(t *testing.T) {
	p := New(nil)
	_, ok := p.Mode.(Inactive)
	require.True(t, ok)

	p.OnDump(sampleDump())
	nav, ok := p.Mode.(Nav)
	require.True(t, ok)
	assert.Equal(t, 1, nav.Cursor.Max(), "bound is split count - 1")
	assert.Equal(t, 2, p.Mirror.SplitCount())
}

func TestPresenterDigitKeyEntersEditor(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())

	actions := p.HandleKey("5")
	assert.Empty(t, actions)
	ed, ok := p.Mode.(Editor)
	require.True(t, ok)
	assert.Equal(t, "5", ed.Field.String())
}

func TestPresenterCommitProducesPushAction(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())
	p.HandleKey("s")
	p.HandleKey("3")
	p.HandleKey("0")

	actions := p.HandleKey("enter")
	require.Len(t, actions, 1)
	push, ok := actions[0].(session.PushAction)
	require.True(t, ok)
	assert.Equal(t, 0, push.Index)
	assert.Equal(t, uint32(30), push.Time.Seconds())

	_, ok = p.Mode.(Nav)
	assert.True(t, ok)
}

func TestPresenterUnboundKeyIsIgnored(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())
	actions := p.HandleKey("@")
	assert.Nil(t, actions)
}

func TestPresenterMirrorTracksPushedSplit(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())

	tm := timeval.FromMillis(10_000)
	p.OnServerEvent(session.SplitEvent{
		Short:   attempt.Intern("s1"),
		Payload: session.SplitTimeEvent{Time: tm, Kind: session.Pushed},
	})

	require.Len(t, p.Mirror.Splits[0].Times, 1)
	assert.Equal(t, tm, p.Mirror.Splits[0].Times[0])
	assert.Equal(t, tm, p.Mirror.Notes[attempt.Intern("s1")].Attempt.Cumulative)
}

func TestPresenterMirrorResetClearsSplitsAndTotal(t *testing.T) {
	p := New(nil)
	p.OnDump(sampleDump())
	tm := timeval.FromMillis(5_000)
	p.OnServerEvent(session.SplitEvent{Short: attempt.Intern("s1"), Payload: session.SplitTimeEvent{Time: tm, Kind: session.Pushed}})
	p.OnServerEvent(session.TotalEvent{Variant: session.TotalAttempt{Delta: comparison.Delta{}}, Time: &tm})

	p.OnServerEvent(session.ResetEvent{Info: attempt.Info{Total: 2}})

	assert.Equal(t, attempt.Info{Total: 2}, p.Mirror.Info)
	assert.Nil(t, p.Mirror.Total)
	assert.Empty(t, p.Mirror.Splits[0].Times)
}

func TestPresenterOverrideKeymap(t *testing.T) {
	overrides := NewKeymap([]Binding{{Key: "g", Command: CmdQuit, Description: "quit (custom)"}})
	p := New(overrides)
	p.OnDump(sampleDump())

	p.HandleKey("g")
	_, ok := p.Mode.(Quitting)
	assert.True(t, ok)
	assert.False(t, p.IsRunning())
}
