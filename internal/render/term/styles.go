// Package term implements the default client renderer: a
// charmbracelet/bubbletea tea.Model wrapping an internal/ui.Tree, styled
// with charmbracelet/lipgloss (SPEC_FULL §4.K), grounded on
// randomizedcoder-go-ffmpeg-hls-swarm's internal/tui (Model/Update/View
// shape in model.go, the color-role-to-lipgloss.Color table in
// styles.go).
package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nictuku/splitrun/internal/ui"
)

// styleFor resolves a ui.ColorRole against palette into a lipgloss.Style,
// the same one-role-to-one-style mapping styles.go's colorPrimary/
// colorSuccess/... table performs for its own fixed set of roles.
func styleFor(palette ui.Palette, role ui.ColorRole) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Resolve(role)))
}

// backgroundFor resolves a ui.Surface into the lipgloss.Color painted
// behind it.
func backgroundFor(palette ui.Palette, surface ui.Surface) lipgloss.Color {
	return lipgloss.Color(palette.Background[surface])
}
