package presenter

import "github.com/nictuku/splitrun/internal/timeval"

// Command names an abstract, renderer-independent presenter action a key
// can be bound to (spec §6 "Keymap (presenter default)"). Digit keys are
// handled outside the table: any single rune '0'-'9' always produces a
// DigitEvent, matching every split timer's expectation that digit entry is
// never rebindable.
type Command int

const (
	CmdNone Command = iota
	CmdCursorUp
	CmdCursorDown
	CmdFieldMinutes
	CmdFieldSeconds
	CmdFieldMilliseconds
	CmdCommit
	CmdBackspace
	CmdUndo
	CmdDelete
	CmdQuit
)

// Binding is one entry of the keymap table, grounded on
// jesseduffield-lazydocker's pkg/gui/keybindings.go Binding struct, minus
// the gocui-specific View/Modifier fields a renderer-agnostic presenter
// has no use for (the gocui renderer keeps those, wrapping this table).
type Binding struct {
	Key         string
	Command     Command
	Description string
}

// DefaultBindings is the presenter's built-in keymap (spec §6: "all
// bindings are table-driven and overridable").
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "up", Command: CmdCursorUp, Description: "move cursor up"},
		{Key: "k", Command: CmdCursorUp, Description: "move cursor up"},
		{Key: "down", Command: CmdCursorDown, Description: "move cursor down"},
		{Key: "j", Command: CmdCursorDown, Description: "move cursor down"},
		{Key: "m", Command: CmdFieldMinutes, Description: "edit minutes"},
		{Key: "s", Command: CmdFieldSeconds, Description: "edit seconds"},
		{Key: "u", Command: CmdFieldMilliseconds, Description: "edit milliseconds"},
		{Key: "enter", Command: CmdCommit, Description: "commit time / push split"},
		{Key: "backspace", Command: CmdBackspace, Description: "remove last digit"},
		{Key: "z", Command: CmdUndo, Description: "undo last split / clear field"},
		{Key: "x", Command: CmdDelete, Description: "delete split / editor"},
		{Key: "q", Command: CmdQuit, Description: "quit"},
	}
}

// Keymap resolves a raw key name to a Command.
type Keymap map[string]Command

// NewKeymap builds a Keymap from bindings, later entries for the same key
// winning (so callers overriding a default pass their replacement last).
func NewKeymap(bindings []Binding) Keymap {
	m := make(Keymap, len(bindings))
	for _, b := range bindings {
		m[b.Key] = b.Command
	}
	return m
}

// DefaultKeymap returns the keymap built from DefaultBindings.
func DefaultKeymap() Keymap { return NewKeymap(DefaultBindings()) }

// eventForCommand translates a resolved Command into the InputEvent that
// drives the current Mode.
func eventForCommand(cmd Command) InputEvent {
	switch cmd {
	case CmdCursorUp:
		return CursorMotionEvent{Motion: MotionUp}
	case CmdCursorDown:
		return CursorMotionEvent{Motion: MotionDown}
	case CmdFieldMinutes:
		return FieldEvent{Position: timeval.PositionMinutes}
	case CmdFieldSeconds:
		return FieldEvent{Position: timeval.PositionSeconds}
	case CmdFieldMilliseconds:
		return FieldEvent{Position: timeval.PositionMilliseconds}
	case CmdCommit:
		return CommitEvent{}
	case CmdBackspace:
		return BackspaceEvent{}
	case CmdUndo:
		return UndoEvent{}
	case CmdDelete:
		return DeleteEvent{}
	case CmdQuit:
		return QuitEvent{}
	default:
		return nil
	}
}
