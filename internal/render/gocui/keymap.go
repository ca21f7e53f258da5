package gocui

import "github.com/jesseduffield/gocui"

// gocuiKey resolves a presenter.Binding's renderer-agnostic key name (or a
// single digit rune) to the value gocui.SetKeybinding expects, grounded on
// jesseduffield-lazydocker's pkg/gui/keybindings.go createBinding, which
// performs the same string-to-gocui-key translation (there via its own
// keybindings.GetKey helper; here inline, since this session's keymap
// only ever names a small fixed set of special keys).
func gocuiKey(name string) (interface{}, bool) {
	switch name {
	case "up":
		return gocui.KeyArrowUp, true
	case "down":
		return gocui.KeyArrowDown, true
	case "enter":
		return gocui.KeyEnter, true
	case "backspace":
		return gocui.KeyBackspace2, true
	case "space":
		return gocui.KeySpace, true
	}
	if len(name) == 1 {
		return rune(name[0]), true
	}
	return nil, false
}
