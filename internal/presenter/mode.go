// Package presenter implements the client-side modal state machine (spec
// §4.I): Inactive, Nav, Editor and Quitting modes driving a local mirror
// of session state, grounded on original_source's ui/presenter/mode/*.rs.
package presenter

import (
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/timeval"
)

// Outcome is what handling one InputEvent produces: zero or more actions
// to send to the server, and optionally a mode to transition into (nil
// means stay in the current mode).
type Outcome struct {
	NextMode Mode
	Actions  []session.Action
}

// Mode is the tagged union of presenter modes (spec §4.I).
type Mode interface {
	isMode()
	// HandleEvent processes ev and reports the resulting Outcome.
	HandleEvent(ev InputEvent) Outcome
	// IsRunning reports whether the UI should keep running in this mode.
	IsRunning() bool
}

// Inactive is the initial mode, before the first dump arrives. It accepts
// no edit actions (spec §4.I).
type Inactive struct{}

func (Inactive) isMode() {}

func (Inactive) HandleEvent(ev InputEvent) Outcome {
	if _, ok := ev.(QuitEvent); ok {
		return Outcome{NextMode: Quitting{}}
	}
	return Outcome{}
}

func (Inactive) IsRunning() bool { return true }

// Quitting is terminal: the UI should stop running.
type Quitting struct{}

func (Quitting) isMode() {}

func (Quitting) HandleEvent(InputEvent) Outcome { return Outcome{} }

func (Quitting) IsRunning() bool { return false }

// Nav is the cursor-navigation mode.
type Nav struct {
	Cursor Cursor
}

func (Nav) isMode() {}

func (n Nav) HandleEvent(ev InputEvent) Outcome {
	switch e := ev.(type) {
	case CursorMotionEvent:
		cur := n.Cursor
		cur.MoveBy(e.Motion)
		return Outcome{NextMode: Nav{Cursor: cur}}
	case DigitEvent:
		field := NewField(timeval.PositionMilliseconds)
		field.Add(e.Digit)
		return Outcome{NextMode: Editor{Index: n.Cursor.Position(), Cur: n.Cursor, Time: timeval.Zero, Field: field}}
	case FieldEvent:
		return Outcome{NextMode: Editor{Index: n.Cursor.Position(), Cur: n.Cursor, Time: timeval.Zero, Field: NewField(e.Position)}}
	case UndoEvent:
		return Outcome{Actions: []session.Action{
			session.PopAction{Index: n.Cursor.Position(), Kind: session.PopOne},
		}}
	case DeleteEvent:
		return Outcome{Actions: []session.Action{
			session.PopAction{Index: n.Cursor.Position(), Kind: session.PopAll},
		}}
	case QuitEvent:
		return Outcome{NextMode: Quitting{}}
	default:
		return Outcome{}
	}
}

func (Nav) IsRunning() bool { return true }

// Editor accumulates a time being built for the split at Index. Field is
// nil when no field is currently open (spec §4.I "Editor(index, Time,
// field?)"). Cur is the Nav cursor this editor was entered from, carried
// along so exiting can restore a correctly-bounded cursor without the
// editor needing to know the split count itself.
type Editor struct {
	Index int
	Cur   Cursor
	Time  timeval.Time
	Field *Field
}

func (Editor) isMode() {}

func (e Editor) HandleEvent(ev InputEvent) Outcome {
	switch ev := ev.(type) {
	case DigitEvent:
		if e.Field != nil {
			e.Field.Add(ev.Digit)
		}
		return Outcome{NextMode: e}
	case BackspaceEvent:
		if e.Field != nil {
			e.Field.Remove()
		}
		return Outcome{NextMode: e}
	case FieldEvent:
		next := e.commitField()
		next.Field = NewField(ev.Position)
		return Outcome{NextMode: next}
	case CommitEvent:
		next := e.commitField()
		return Outcome{
			NextMode: Nav{Cursor: e.Cur.At(e.Index)},
			Actions:  []session.Action{session.PushAction{Index: e.Index, Time: next.Time}},
		}
	case DeleteEvent:
		return Outcome{NextMode: Nav{Cursor: e.Cur.At(e.Index)}}
	case UndoEvent:
		if e.Field != nil {
			e.Field = nil
			return Outcome{NextMode: e}
		}
		e.Time = timeval.Zero
		return Outcome{NextMode: e}
	case CursorMotionEvent:
		cur := e.Cur.At(e.Index)
		cur.MoveBy(ev.Motion)
		return Outcome{NextMode: Nav{Cursor: cur}}
	case QuitEvent:
		return Outcome{NextMode: Quitting{}}
	default:
		return Outcome{NextMode: e}
	}
}

// commitField folds the currently open field's digits into Time and clears
// Field, leaving Index untouched. If Field is nil, Time is unchanged.
func (e Editor) commitField() Editor {
	if e.Field == nil {
		return e
	}
	t, err := e.Field.Commit(e.Time)
	if err == nil {
		e.Time = t
	}
	e.Field = nil
	return e
}

func (Editor) IsRunning() bool { return true }
