package ui

import "github.com/nictuku/splitrun/internal/comparison"

// RowPosition classifies a split row relative to the cursor, used only to
// pick a name color (spec §4.J "Name-by-position"); unrelated to
// presenter.SplitPosition to keep this package free of a presenter
// dependency — callers building a tree translate one into the other.
type RowPosition int

const (
	RowComing RowPosition = iota
	RowCursor
	RowDone
)

// ColorRole is the tagged union of semantic color roles a piece of
// rendered text can carry (spec §4.J): "Normal, Editor, FieldEditor,
// Header, Status, Name-by-position, SplitInRunPace, Pace". Grounded on
// original_source's ui/view/gfx/colour/fg.rs Id enum.
type ColorRole interface{ isColorRole() }

type (
	// RoleNormal is the neutral, unhighlighted color.
	RoleNormal struct{}
	// RoleEditor marks text belonging to an open split editor.
	RoleEditor struct{}
	// RoleFieldEditor marks text belonging to the currently open field
	// within a split editor.
	RoleFieldEditor struct{}
	// RoleHeader marks the header widget's text.
	RoleHeader struct{}
	// RoleStatus marks the status bar's text.
	RoleStatus struct{}
)

func (RoleNormal) isColorRole()      {}
func (RoleEditor) isColorRole()      {}
func (RoleFieldEditor) isColorRole() {}
func (RoleHeader) isColorRole()      {}
func (RoleStatus) isColorRole()      {}

// RoleName colors a split's display name by its position relative to the
// cursor.
type RoleName struct{ Position RowPosition }

func (RoleName) isColorRole() {}

// RoleSplitInRunPace colors a split row's time display by its combined
// split-in-run pace.
type RoleSplitInRunPace struct{ Pace comparison.SplitInRunPace }

func (RoleSplitInRunPace) isColorRole() {}

// RolePace colors a footer row's time display by a plain pace.
type RolePace struct{ Pace comparison.Pace }

func (RolePace) isColorRole() {}
