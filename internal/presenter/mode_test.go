package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

func TestNavDigitTransitionsToEditor(t *testing.T) {
	nav := Nav{Cursor: NewCursor(2)}
	nav.Cursor.MoveDown(1)

	out := nav.HandleEvent(DigitEvent{Digit: 5})
	ed, ok := out.NextMode.(Editor)
	require.True(t, ok)
	assert.Equal(t, 1, ed.Index)
	require.NotNil(t, ed.Field)
	assert.Equal(t, timeval.PositionMilliseconds, ed.Field.Position)
	assert.Equal(t, "5", ed.Field.String())
}

func TestNavUndoEmitsPopOne(t *testing.T) {
	nav := Nav{Cursor: NewCursor(2)}
	out := nav.HandleEvent(UndoEvent{})
	require.Len(t, out.Actions, 1)
	assert.Equal(t, session.PopAction{Index: 0, Kind: session.PopOne}, out.Actions[0])
}

func TestNavDeleteEmitsPopAll(t *testing.T) {
	nav := Nav{Cursor: NewCursor(2)}
	out := nav.HandleEvent(DeleteEvent{})
	require.Len(t, out.Actions, 1)
	assert.Equal(t, session.PopAction{Index: 0, Kind: session.PopAll}, out.Actions[0])
}

func TestEditorCommitPushesAccumulatedTimeAndReturnsToNav(t *testing.T) {
	nav := Nav{Cursor: NewCursor(3)}
	nav.Cursor.MoveDown(2)
	ed := nav.HandleEvent(FieldEvent{Position: timeval.PositionSeconds}).NextMode.(Editor)

	ed.Field.Add(3)
	ed.Field.Add(0)

	out := ed.HandleEvent(CommitEvent{})
	require.Len(t, out.Actions, 1)
	push, ok := out.Actions[0].(session.PushAction)
	require.True(t, ok)
	assert.Equal(t, 2, push.Index)
	assert.Equal(t, uint32(30), push.Time.Seconds())

	navAfter, ok := out.NextMode.(Nav)
	require.True(t, ok)
	assert.Equal(t, 2, navAfter.Cursor.Position())
	assert.Equal(t, 3, navAfter.Cursor.Max(), "cursor bound survives the editor round-trip")
}

func TestEditorDeleteDropsWithoutPushing(t *testing.T) {
	ed := Editor{Index: 0, Cur: NewCursor(1), Time: timeval.Zero, Field: NewField(timeval.PositionSeconds)}
	out := ed.HandleEvent(DeleteEvent{})
	assert.Empty(t, out.Actions, "delete must not push (spec: clears the editor, no commit)")
	_, ok := out.NextMode.(Nav)
	assert.True(t, ok)
}

func TestEditorUndoClearsFieldBeforeTime(t *testing.T) {
	ed := Editor{Index: 0, Cur: NewCursor(1), Time: timeval.Zero, Field: NewField(timeval.PositionSeconds)}
	ed.Field.Add(9)

	out := ed.HandleEvent(UndoEvent{})
	ed2 := out.NextMode.(Editor)
	assert.Nil(t, ed2.Field, "first undo clears the open field")

	tm, err := timeval.New(0, 0, 12, 0)
	require.NoError(t, err)
	ed2.Time = tm
	out = ed2.HandleEvent(UndoEvent{})
	ed3 := out.NextMode.(Editor)
	assert.True(t, ed3.Time.IsZero(), "second undo clears the accumulated time")
}

func TestEditorFieldSwitchCommitsPreviousField(t *testing.T) {
	ed := Editor{Index: 0, Cur: NewCursor(0), Time: timeval.Zero, Field: NewField(timeval.PositionSeconds)}
	ed.Field.Add(5)

	out := ed.HandleEvent(FieldEvent{Position: timeval.PositionMinutes})
	ed2 := out.NextMode.(Editor)
	assert.Equal(t, uint32(5), ed2.Time.Seconds())
	assert.Equal(t, timeval.PositionMinutes, ed2.Field.Position)
	assert.Equal(t, "", ed2.Field.String())
}

func TestInactiveIgnoresEditsAndQuits(t *testing.T) {
	out := Inactive{}.HandleEvent(DigitEvent{Digit: 1})
	assert.Nil(t, out.NextMode)

	out = Inactive{}.HandleEvent(QuitEvent{})
	_, ok := out.NextMode.(Quitting)
	assert.True(t, ok)
}

func TestQuittingIsNotRunning(t *testing.T) {
	assert.False(t, Quitting{}.IsRunning())
	assert.True(t, Nav{}.IsRunning())
}
