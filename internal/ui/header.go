package ui

// Header is the root widget's top row: the game/category title and the
// attempt counter, grounded on original_source's
// ui/view/widget/header.rs (spec §4.J).
type Header struct {
	Title   *Label
	Counter *Label

	stack *Stack[Widget]
}

// NewHeader builds a Header from its already-formatted title and counter
// text (e.g. "Game - Any%" and "Attempt 12/40"); formatting those strings
// is the presenter's job, not this package's.
func NewHeader(title, counter string) *Header {
	h := &Header{
		Title:   NewLabel(title, RoleHeader{}),
		Counter: NewLabel(counter, RoleHeader{}),
	}
	s := NewStack[Widget](AxisHorizontal)
	s.Push(Widget(h.Title), 1)
	s.Push(Widget(h.Counter), 0)
	h.stack = s
	return h
}

func (h *Header) MinBounds(ctx Context) Size { return h.stack.MinBounds(ctx) }
func (h *Header) Bounds() Rect                { return h.stack.Bounds() }
func (h *Header) Layout(ctx Context)          { h.stack.Layout(ctx) }
