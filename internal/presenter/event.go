package presenter

import "github.com/nictuku/splitrun/internal/timeval"

// InputEvent is the tagged union of client-local input events a Mode
// handles (spec §4.I). It is distinct from session.Event: these never
// cross the wire, they drive the modal state machine that decides which
// session.Action (if any) to send.
type InputEvent interface{ isInputEvent() }

// CursorMotionEvent requests moving the cursor (Nav only).
type CursorMotionEvent struct{ Motion Motion }

func (CursorMotionEvent) isInputEvent() {}

// DigitEvent adds a digit to the editor's current field.
type DigitEvent struct{ Digit int }

func (DigitEvent) isInputEvent() {}

// BackspaceEvent removes the last digit from the editor's current field.
type BackspaceEvent struct{}

func (BackspaceEvent) isInputEvent() {}

// FieldEvent opens (or switches to) the named field in the editor,
// committing whatever field was previously open.
type FieldEvent struct{ Position timeval.Position }

func (FieldEvent) isInputEvent() {}

// CommitEvent commits the accumulated editor time and returns to Nav.
type CommitEvent struct{}

func (CommitEvent) isInputEvent() {}

// DeleteEvent clears the current split (Nav) or the editor (Editor),
// without committing anything.
type DeleteEvent struct{}

func (DeleteEvent) isInputEvent() {}

// UndoEvent pops the last entered time (Nav) or clears the editor's
// current field, then its accumulated time (Editor).
type UndoEvent struct{}

func (UndoEvent) isInputEvent() {}

// QuitEvent requests the presenter transition to Quitting from any mode.
type QuitEvent struct{}

func (QuitEvent) isInputEvent() {}
