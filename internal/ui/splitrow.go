package ui

// SplitRow is one row in the vertically stacked split list: the split's
// display name (colored by position relative to the cursor) and, sharing
// the same slot, either its rendered time or — while the presenter's
// editor is open on this row — the editor's raw digit overlay (spec
// §4.J). Grounded on original_source's ui/view/widget/split/row.rs and
// split/editor.rs, which occupy the same row slot depending on presenter
// mode; here that choice is made by the caller building the tree
// (presenter.Tree), which picks the role and value text to pass in.
type SplitRow struct {
	Name  *Label
	Value *Label

	stack *Stack[Widget]
}

// NewSplitRow builds a split row. value is whatever text should occupy
// the time/editor slot (a rendered Time, or an editor's in-progress digit
// string); valueRole distinguishes RoleEditor/RoleFieldEditor overlay text
// from a plain RoleSplitInRunPace time display.
func NewSplitRow(name string, position RowPosition, value string, valueRole ColorRole) *SplitRow {
	row := &SplitRow{
		Name:  NewLabel(name, RoleName{Position: position}),
		Value: NewLabel(value, valueRole),
	}
	s := NewStack[Widget](AxisHorizontal)
	s.Push(Widget(row.Name), 1)
	s.Push(Widget(row.Value), 0)
	row.stack = s
	return row
}

func (r *SplitRow) MinBounds(ctx Context) Size { return r.stack.MinBounds(ctx) }
func (r *SplitRow) Bounds() Rect                { return r.stack.Bounds() }
func (r *SplitRow) Layout(ctx Context)          { r.stack.Layout(ctx) }
