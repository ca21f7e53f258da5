package gpu

import "github.com/hajimehoshi/ebiten/v2"

// keyNames maps the subset of ebiten keys the presenter's keymap cares
// about to the raw key names presenter.DefaultBindings() uses, the same
// "translate the toolkit's key type to the presenter's string vocabulary"
// step internal/render/gocui's gocuiKey performs for gocui.Key.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:   "up",
	ebiten.KeyArrowDown: "down",
	ebiten.KeyEnter:     "enter",
	ebiten.KeyBackspace: "backspace",
	ebiten.KeyZ:         "z",
	ebiten.KeyX:         "x",
	ebiten.KeyQ:         "q",
	ebiten.KeyK:         "k",
	ebiten.KeyJ:         "j",
	ebiten.KeyM:         "m",
	ebiten.KeyS:         "s",
	ebiten.KeyU:         "u",
	ebiten.KeyDigit0:    "0",
	ebiten.KeyDigit1:    "1",
	ebiten.KeyDigit2:    "2",
	ebiten.KeyDigit3:    "3",
	ebiten.KeyDigit4:    "4",
	ebiten.KeyDigit5:    "5",
	ebiten.KeyDigit6:    "6",
	ebiten.KeyDigit7:    "7",
	ebiten.KeyDigit8:    "8",
	ebiten.KeyDigit9:    "9",
}
