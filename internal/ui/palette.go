package ui

import "github.com/nictuku/splitrun/internal/comparison"

// Color is an opaque RGB hex string ("#rrggbb"). Resolving it into a
// concrete terminal/GUI color value (lipgloss.Color, color.RGBA, ...) is a
// renderer concern (spec §4.K); this package only ever hands out strings.
type Color string

// Surface selects which background a widget is painted on: the main
// window, an open split editor, or the currently-focused field within one
// (spec §4.J; grounded on original_source's ui/view/gfx/colour/bg.rs Id,
// which enumerates exactly these three).
type Surface int

const (
	SurfaceWindow Surface = iota
	SurfaceEditor
	SurfaceFieldEditor
)

// Palette maps every ColorRole and Surface to a concrete Color.
// "Foreground/background resolution is deferred to a palette map" (spec
// §4.J); grounded on original_source's ui/view/gfx/colour.rs Palette and
// fg/bg default tables, with hex values in the style of
// go-ffmpeg-hls-swarm's internal/tui/styles.go dark palette.
type Palette struct {
	Background   [3]Color // indexed by Surface
	Normal       Color
	Editor       Color
	FieldEditor  Color
	Header       Color
	Status       Color
	Name         [3]Color // indexed by RowPosition
	Pace         [4]Color // indexed by comparison.Pace
	SplitPB      Color    // override for comparison.TagSplitPersonalBest
}

// DefaultPalette is the built-in dark theme, overridable the way
// original_source's Map.add_user layers user Color overrides onto
// defaults (spec §4.J, SPEC_FULL's config section carries user overrides
// through to here).
func DefaultPalette() Palette {
	return Palette{
		Background: [3]Color{
			SurfaceWindow:      "#1F2937",
			SurfaceEditor:      "#374151",
			SurfaceFieldEditor: "#06B6D4",
		},
		Normal:      "#E5E7EB",
		Editor:      "#F59E0B",
		FieldEditor: "#FBBF24",
		Header:      "#7C3AED",
		Status:      "#9CA3AF",
		Name: [3]Color{
			RowComing: "#9CA3AF",
			RowCursor: "#F59E0B",
			RowDone:   "#6B7280",
		},
		Pace: [4]Color{
			comparison.Inconclusive: "#9CA3AF",
			comparison.Behind:       "#EF4444",
			comparison.Ahead:        "#10B981",
			comparison.PersonalBest: "#06B6D4",
		},
		SplitPB: "#06B6D4",
	}
}

// Resolve returns the foreground color for role. comparison.PersonalBest
// always wins for a SplitInRunPace role, matching Tag()'s
// TagSplitPersonalBest override (spec §3).
func (p Palette) Resolve(role ColorRole) Color {
	switch r := role.(type) {
	case RoleNormal:
		return p.Normal
	case RoleEditor:
		return p.Editor
	case RoleFieldEditor:
		return p.FieldEditor
	case RoleHeader:
		return p.Header
	case RoleStatus:
		return p.Status
	case RoleName:
		return p.Name[r.Position]
	case RoleSplitInRunPace:
		if r.Pace.Split == comparison.PersonalBest {
			return p.SplitPB
		}
		return p.Pace[r.Pace.Overall()]
	case RolePace:
		return p.Pace[r.Pace]
	default:
		return p.Normal
	}
}
