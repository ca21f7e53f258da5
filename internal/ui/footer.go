package ui

// FooterRowKind selects which quantity a configured footer row displays
// (spec §4.J "footer of configurable rows, each row is one of Total /
// Comparison / UpToCursor / SumOfBest").
type FooterRowKind int

const (
	FooterTotal FooterRowKind = iota
	FooterComparison
	FooterUpToCursor
	FooterSumOfBest
)

func (k FooterRowKind) String() string {
	switch k {
	case FooterTotal:
		return "Total"
	case FooterComparison:
		return "Comparison"
	case FooterUpToCursor:
		return "Up To Cursor"
	case FooterSumOfBest:
		return "Sum of Best"
	default:
		return "Unknown"
	}
}

// FooterRowConfig names one configured footer row: which quantity it
// shows. This package only carries the kind; no renderer keeps a
// per-kind font table.
type FooterRowConfig struct {
	Kind FooterRowKind
}

// FooterRow renders one configured row: its label and the paced time
// value, grounded on original_source's ui/view/widget/footer/row.rs Row.
type FooterRow struct {
	Config FooterRowConfig

	label *Label
	value *Label
	stack *Stack[Widget]
}

// NewFooterRow builds a footer row from its already-rendered time string
// and the ColorRole that time should carry (typically a RolePace).
func NewFooterRow(cfg FooterRowConfig, displayTime string, valueRole ColorRole) *FooterRow {
	fr := &FooterRow{
		Config: cfg,
		label:  NewLabel(cfg.Kind.String(), RoleNormal{}),
		value:  NewLabel(displayTime, valueRole),
	}
	s := NewStack[Widget](AxisHorizontal)
	s.Push(Widget(fr.label), 1)
	s.Push(Widget(fr.value), 0)
	fr.stack = s
	return fr
}

// Label and Value expose the row's two cells so a renderer can style each
// independently without this package exposing the backing Stack.
func (r *FooterRow) Label() *Label { return r.label }
func (r *FooterRow) Value() *Label { return r.value }

func (r *FooterRow) MinBounds(ctx Context) Size { return r.stack.MinBounds(ctx) }
func (r *FooterRow) Bounds() Rect                { return r.stack.Bounds() }
func (r *FooterRow) Layout(ctx Context)          { r.stack.Layout(ctx) }

// Footer stacks its configured rows vertically, one line each (spec
// §4.J), grounded on original_source's ui/view/widget/footer.rs.
type Footer struct {
	Rows []*FooterRow

	stack *Stack[Widget]
}

// NewFooter builds a Footer from already-constructed rows, in display
// order.
func NewFooter(rows []*FooterRow) *Footer {
	s := NewStack[Widget](AxisVertical)
	for _, r := range rows {
		s.Push(Widget(r), 0)
	}
	return &Footer{Rows: rows, stack: s}
}

func (f *Footer) MinBounds(ctx Context) Size { return f.stack.MinBounds(ctx) }
func (f *Footer) Bounds() Rect                { return f.stack.Bounds() }
func (f *Footer) Layout(ctx Context)          { f.stack.Layout(ctx) }
