package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nictuku/splitrun/internal/timeval"
)

func TestDefaultKeymapCoversEveryDefaultBinding(t *testing.T) {
	km := DefaultKeymap()
	for _, b := range DefaultBindings() {
		assert.Equal(t, b.Command, km[b.Key])
	}
}

func TestDefaultKeymapAliasesShareCommand(t *testing.T) {
	km := DefaultKeymap()
	assert.Equal(t, km["up"], km["k"])
	assert.Equal(t, km["down"], km["j"])
}

func TestNewKeymapLaterBindingWins(t *testing.T) {
	km := NewKeymap([]Binding{
		{Key: "q", Command: CmdQuit},
		{Key: "q", Command: CmdUndo},
	})
	assert.Equal(t, CmdUndo, km["q"])
}

func TestEventForCommandRoundTrip(t *testing.T) {
	cases := map[Command]InputEvent{
		CmdCursorUp:          CursorMotionEvent{Motion: MotionUp},
		CmdCursorDown:        CursorMotionEvent{Motion: MotionDown},
		CmdFieldMinutes:      FieldEvent{Position: timeval.PositionMinutes},
		CmdFieldSeconds:      FieldEvent{Position: timeval.PositionSeconds},
		CmdFieldMilliseconds: FieldEvent{Position: timeval.PositionMilliseconds},
		CmdCommit:            CommitEvent{},
		CmdBackspace:         BackspaceEvent{},
		CmdUndo:              UndoEvent{},
		CmdDelete:            DeleteEvent{},
		CmdQuit:              QuitEvent{},
	}
	for cmd, want := range cases {
		assert.Equal(t, want, eventForCommand(cmd))
	}
}

func TestEventForCommandNoneIsNil(t *testing.T) {
	assert.Nil(t, eventForCommand(CmdNone))
}
