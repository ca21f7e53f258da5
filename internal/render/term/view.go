package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nictuku/splitrun/internal/ui"
)

// render walks a laid-out ui.Tree and produces the frame Model.View
// returns for bubbletea to print, resolving each Label's ColorRole against
// palette (SPEC_FULL §4.K). It relies on ui.Stack.Widgets to walk the
// split list without internal/ui exposing its private entry type.
func render(tree *ui.Tree, palette ui.Palette) string {
	lines := []string{
		renderRow(tree.Header.Title, tree.Header.Counter, palette),
	}
	for _, row := range tree.Splits.Widgets() {
		sr, ok := row.(*ui.SplitRow)
		if !ok {
			continue
		}
		lines = append(lines, renderRow(sr.Name, sr.Value, palette))
	}
	for _, row := range tree.Footer.Rows {
		lines = append(lines, renderRow(row.Label(), row.Value(), palette))
	}
	lines = append(lines, styleFor(palette, tree.Status.Label().Role).Render(tree.Status.Label().Text))

	bg := backgroundFor(palette, ui.SurfaceWindow)
	return lipgloss.NewStyle().Background(bg).Render(strings.Join(lines, "\n"))
}

// renderRow joins a label/value pair the way every ratio(1)/ratio(0) two-
// widget row in internal/ui (Header, SplitRow, FooterRow) is built: left
// cell stretched, right cell its natural width.
func renderRow(left, right *ui.Label, palette ui.Palette) string {
	leftWidth := right.Bounds().Pos.X - left.Bounds().Pos.X
	leftStyle := styleFor(palette, left.Role).Width(leftWidth)
	rightStyle := styleFor(palette, right.Role)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftStyle.Render(left.Text), rightStyle.Render(right.Text))
}
