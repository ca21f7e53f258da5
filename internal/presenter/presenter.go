package presenter

import (
	"github.com/nictuku/splitrun/internal/session"
)

// Presenter drives the modal state machine from raw key input, keeping a
// Mirror of session state current from incoming events, and translating
// key presses into session.Actions to send to the server (spec §4.I).
type Presenter struct {
	Mode   Mode
	Mirror *Mirror
	Keymap Keymap
}

// New builds a Presenter in Inactive mode, with the default keymap unless
// overrides is non-nil (spec §6: "table-driven and overridable").
func New(overrides Keymap) *Presenter {
	keymap := overrides
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Presenter{Mode: Inactive{}, Keymap: keymap}
}

// OnDump installs a fresh Mirror from a full state dump. If the presenter
// is still Inactive, it transitions to Nav with a cursor bounded by the
// new split count (spec §4.I "Inactive: initial, before dump").
func (p *Presenter) OnDump(d session.Dump) {
	p.Mirror = NewMirror(d)
	if _, inactive := p.Mode.(Inactive); inactive {
		p.Mode = Nav{Cursor: NewCursor(len(d.Splits) - 1)}
	}
}

// OnServerEvent folds an incoming session.Event into the local mirror.
// Modal logic never reads events directly (spec §4.I).
func (p *Presenter) OnServerEvent(ev session.Event) {
	if p.Mirror == nil {
		return
	}
	p.Mirror.Apply(ev)
}

// HandleKey resolves raw against the keymap (or the digit fast path),
// feeds the resulting InputEvent to the current mode, applies any mode
// transition, and returns the actions to send to the server (may be
// empty).
func (p *Presenter) HandleKey(raw string) []session.Action {
	ev := p.eventFor(raw)
	if ev == nil {
		return nil
	}
	return p.dispatch(ev)
}

func (p *Presenter) eventFor(raw string) InputEvent {
	if d, ok := digit(raw); ok {
		return DigitEvent{Digit: d}
	}
	cmd, ok := p.Keymap[raw]
	if !ok {
		return nil
	}
	return eventForCommand(cmd)
}

func (p *Presenter) dispatch(ev InputEvent) []session.Action {
	outcome := p.Mode.HandleEvent(ev)
	if outcome.NextMode != nil {
		p.Mode = outcome.NextMode
	}
	return outcome.Actions
}

// digit reports whether raw is a single ASCII digit key, and its value.
func digit(raw string) (int, bool) {
	if len(raw) != 1 || raw[0] < '0' || raw[0] > '9' {
		return 0, false
	}
	return int(raw[0] - '0'), true
}

// IsRunning reports whether the UI should keep running.
func (p *Presenter) IsRunning() bool { return p.Mode.IsRunning() }
