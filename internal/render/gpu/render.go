package gpu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/nictuku/splitrun/internal/ui"
)

// cellW and cellH are the pixel size of one ui layout cell under
// basicfont.Face7x13, the same fixed-width-font assumption the teacher's
// Draw made when it hand-placed text at column*7-ish offsets.
const (
	cellW = 7
	cellH = 16
)

// drawLabel renders one leaf Label at its laid-out cell position,
// resolving its role through palette the way term's render() resolves a
// role through lipgloss.Color and gocui's attrFor resolves one through
// fatih/color.
func drawLabel(screen *ebiten.Image, l *ui.Label, palette ui.Palette) {
	b := l.Bounds()
	if b.IsZero() && l.Text == "" {
		return
	}
	x := b.Pos.X * cellW
	y := b.Pos.Y*cellH + basicfont.Face7x13.Ascent
	text.Draw(screen, l.Text, basicfont.Face7x13, x, y, toRGBA(palette.Resolve(l.Role)))
}

// drawTree renders every label in tree onto screen, walking the same
// widget shape term's render() and gocui's renderLines walk: header,
// split rows, footer rows, status bar.
func drawTree(screen *ebiten.Image, tree *ui.Tree, palette ui.Palette) {
	bg := toRGBA(palette.Background[ui.SurfaceWindow])
	screen.Fill(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})

	drawLabel(screen, tree.Header.Title, palette)
	drawLabel(screen, tree.Header.Counter, palette)

	for _, w := range tree.Splits.Widgets() {
		row, ok := w.(*ui.SplitRow)
		if !ok {
			continue
		}
		drawLabel(screen, row.Name, palette)
		drawLabel(screen, row.Value, palette)
	}

	for _, row := range tree.Footer.Rows {
		drawLabel(screen, row.Label(), palette)
		drawLabel(screen, row.Value(), palette)
	}

	drawLabel(screen, tree.Status.Label(), palette)
}

// bigFace returns basicfont.Face7x13 scaled up by factor, adapted from
// the teacher's Draw, which built one scaled mask image for its
// centered timer display; this renderer reuses the same technique for
// the footer's Total row.
func bigFace(factor int) *basicfont.Face {
	orig := basicfont.Face7x13.Mask
	bounds := orig.Bounds()
	scaled := ebiten.NewImage(bounds.Dx()*factor, bounds.Dy()*factor)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := orig.At(x, y).RGBA(); a > 0 {
				for sy := 0; sy < factor; sy++ {
					for sx := 0; sx < factor; sx++ {
						scaled.Set((x-bounds.Min.X)*factor+sx, (y-bounds.Min.Y)*factor+sy, color.White)
					}
				}
			}
		}
	}
	return &basicfont.Face{
		Advance: basicfont.Face7x13.Advance * factor,
		Width:   basicfont.Face7x13.Width * factor,
		Height:  basicfont.Face7x13.Height * factor,
		Ascent:  basicfont.Face7x13.Ascent * factor,
		Descent: basicfont.Face7x13.Descent * factor,
		Left:    basicfont.Face7x13.Left * factor,
		Mask:    scaled,
		Ranges:  basicfont.Face7x13.Ranges,
	}
}

// drawBigTotal draws label centered horizontally at y in face, the gpu
// renderer's version of the teacher's centered scaled timer draw.
func drawBigTotal(screen *ebiten.Image, label string, face font.Face, y, screenWidth int, col color.RGBA) {
	width := font.MeasureString(face, label).Round()
	x := (screenWidth - width) / 2
	if x < 0 {
		x = 0
	}
	text.Draw(screen, label, face, x, y, col)
}
