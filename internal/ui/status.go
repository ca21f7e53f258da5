package ui

// StatusBar is the one-line footer showing the current mode name and
// cursor index/count (spec §4.J), grounded on original_source's
// ui/view/widget/status.rs.
type StatusBar struct {
	label *Label
}

// NewStatusBar builds a status bar from its already-formatted text (e.g.
// "Nav 2/8").
func NewStatusBar(text string) *StatusBar {
	return &StatusBar{label: NewLabel(text, RoleStatus{})}
}

// Label exposes the bar's single cell so a renderer can style it.
func (s *StatusBar) Label() *Label { return s.label }

func (s *StatusBar) MinBounds(ctx Context) Size { return s.label.MinBounds(ctx) }
func (s *StatusBar) Bounds() Rect                { return s.label.Bounds() }
func (s *StatusBar) Layout(ctx Context)          { s.label.Layout(ctx) }
