package ui

// Root is the whole tree the presenter emits each frame: a header, a
// vertically stacked list of split rows, a configurable footer, and a
// status bar (spec §4.J), grounded on original_source's
// ui/view/widget/root.rs Root, whose Component enum this package's plain
// []Widget stacking replaces.
type Root struct {
	Header *Header
	Splits *Stack[Widget]
	Footer *Footer
	Status *StatusBar

	stack *Stack[Widget]
}

// NewRoot assembles the root widget from its four already-built children,
// in the teacher's fixed vertical order: header, splits (flexible), footer,
// status.
func NewRoot(header *Header, splits *Stack[Widget], footer *Footer, status *StatusBar) *Root {
	s := NewStack[Widget](AxisVertical)
	s.Push(Widget(header), 0)
	s.Push(Widget(splits), 1)
	s.Push(Widget(footer), 0)
	s.Push(Widget(status), 0)
	return &Root{Header: header, Splits: splits, Footer: footer, Status: status, stack: s}
}

func (r *Root) MinBounds(ctx Context) Size { return r.stack.MinBounds(ctx) }
func (r *Root) Bounds() Rect                { return r.stack.Bounds() }
func (r *Root) Layout(ctx Context)          { r.stack.Layout(ctx) }

// Tree is what the presenter emits each frame and what a Renderer
// consumes (SPEC_FULL §4.K): an alias for Root so external packages can
// spell the boundary type as ui.Tree without this package needing two
// names for one shape.
type Tree = Root
