// Package gocui implements an alternate terminal client renderer built on
// jesseduffield/gocui's panel model instead of bubbletea's (SPEC_FULL
// §4.K names render/gocui as a second terminal backend), grounded on
// jesseduffield-lazydocker's pkg/gui.
package gocui

import (
	"github.com/fatih/color"

	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/ui"
)

// attrFor maps a ui.ColorRole to the fatih/color attributes painting it,
// the same role-to-color-constant table lazydocker's
// pkg/gui/presentation/containers.go builds with
// utils.ColoredString(str, color.FgYellow), generalized here from that
// package's fixed container-status roles to this session's ColorRole set.
func attrFor(role ui.ColorRole) []color.Attribute {
	switch r := role.(type) {
	case ui.RoleHeader:
		return []color.Attribute{color.FgHiWhite, color.Bold}
	case ui.RoleStatus:
		return []color.Attribute{color.FgHiBlack}
	case ui.RoleEditor:
		return []color.Attribute{color.FgHiCyan}
	case ui.RoleFieldEditor:
		return []color.Attribute{color.FgHiCyan, color.Bold}
	case ui.RoleName:
		switch r.Position {
		case ui.RowCursor:
			return []color.Attribute{color.FgHiWhite, color.Bold}
		case ui.RowDone:
			return []color.Attribute{color.FgHiBlack}
		default:
			return []color.Attribute{color.FgWhite}
		}
	case ui.RoleSplitInRunPace:
		return paceAttr(r.Pace.Overall())
	case ui.RolePace:
		return paceAttr(r.Pace)
	default:
		return []color.Attribute{color.FgWhite}
	}
}

func paceAttr(p comparison.Pace) []color.Attribute {
	switch p {
	case comparison.PersonalBest:
		return []color.Attribute{color.FgHiYellow, color.Bold}
	case comparison.Ahead:
		return []color.Attribute{color.FgHiGreen}
	case comparison.Behind:
		return []color.Attribute{color.FgHiRed}
	default:
		return []color.Attribute{color.FgWhite}
	}
}

// colorize renders text under role's attributes.
func colorize(text string, role ui.ColorRole) string {
	return color.New(attrFor(role)...).Sprint(text)
}
