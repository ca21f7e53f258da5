package gpu

import (
	"image/color"

	"github.com/nictuku/splitrun/internal/ui"
)

// toRGBA parses a "#rrggbb" ui.Color into an image/color.RGBA, the gpu
// renderer's analogue of term's lipgloss.Color(string) and gocui's
// attrFor table: this is the one renderer whose toolkit wants a concrete
// pixel color rather than a terminal attribute or string.
func toRGBA(c ui.Color) color.RGBA {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{A: 255}
	}
	r := hexByte(s[1], s[2])
	g := hexByte(s[3], s[4])
	b := hexByte(s[5], s[6])
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexByte(hi, lo byte) byte {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
