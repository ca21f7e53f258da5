package ui

// Label is a leaf widget: one line of text carrying a single ColorRole.
// Every other widget in this package is built from one or more Labels
// arranged in a Stack.
type Label struct {
	Text string
	Role ColorRole

	bounds Rect
}

// NewLabel builds a Label with the given text and color role.
func NewLabel(text string, role ColorRole) *Label {
	return &Label{Text: text, Role: role}
}

func (l *Label) MinBounds(ctx Context) Size {
	return Size{W: len([]rune(l.Text)), H: 1}
}

func (l *Label) Bounds() Rect { return l.bounds }

func (l *Label) Layout(ctx Context) { l.bounds = ctx.Bounds }
