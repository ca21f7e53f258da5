package gocui

import "github.com/nictuku/splitrun/internal/ui"

// renderLines turns a laid-out ui.Tree into one colorized line per row, in
// display order: header, each split row, each footer row, the status bar.
// Kept free of any gocui.Gui dependency so it can be exercised directly by
// tests, the same separation internal/render/term draws between view.go
// and its bubbletea Model.
func renderLines(tree *ui.Tree) []string {
	lines := []string{renderRow(tree.Header.Title, tree.Header.Counter)}
	for _, w := range tree.Splits.Widgets() {
		row, ok := w.(*ui.SplitRow)
		if !ok {
			continue
		}
		lines = append(lines, renderRow(row.Name, row.Value))
	}
	for _, row := range tree.Footer.Rows {
		lines = append(lines, renderRow(row.Label(), row.Value()))
	}
	lines = append(lines, colorize(tree.Status.Label().Text, tree.Status.Label().Role))
	return lines
}

func renderRow(left, right *ui.Label) string {
	return colorize(left.Text, left.Role) + " " + colorize(right.Text, right.Role)
}
