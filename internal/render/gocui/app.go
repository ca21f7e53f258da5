package gocui

import (
	"errors"
	"fmt"

	g "github.com/jesseduffield/gocui"

	"github.com/nictuku/splitrun/internal/presenter"
	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/render/term"
	"github.com/nictuku/splitrun/internal/ui"
)

const viewName = "splits"

// App drives the gocui main loop, grounded on
// jesseduffield-lazydocker's pkg/gui.Run for the NewGui/SetManagerFunc/
// MainLoop shape, simplified from lazydocker's many-panel layout down to
// one view since this session's tree renders as a single column. Key
// presses resolve through the same presenter.Presenter and
// internal/render/term.Client transport cmd/splitclient's bubbletea
// renderer uses, so the two terminal renderers only differ in how they
// paint, not in how they talk to the server.
type App struct {
	gui        *g.Gui
	presenter  *presenter.Presenter
	client     *term.Client
	footerRows []ui.FooterRowConfig
}

// NewApp builds an App around an already-dialed client and its initial
// dump.
func NewApp(client *term.Client, resp protocol.DumpResponse, footerRows []ui.FooterRowConfig) (*App, error) {
	gui, err := g.NewGui(g.OutputNormal, false, g.NORMAL, false, map[rune]string{})
	if err != nil {
		return nil, err
	}
	p := presenter.New(nil)
	p.OnDump(resp.Dump)

	a := &App{gui: gui, presenter: p, client: client, footerRows: footerRows}
	gui.SetManagerFunc(a.layout)
	if err := a.bindKeys(); err != nil {
		gui.Close()
		return nil, err
	}
	return a, nil
}

// Run starts listening for server events in the background and enters the
// gocui main loop until the presenter quits or the connection fails.
func (a *App) Run() error {
	defer a.gui.Close()
	go a.pump()

	if err := a.gui.MainLoop(); err != nil && !errors.Is(err, g.ErrQuit) {
		return err
	}
	return nil
}

// pump forwards server events into the presenter's mirror and schedules a
// redraw, until the client reports a terminal error.
func (a *App) pump() {
	for {
		select {
		case ev := <-a.client.Events:
			a.presenter.OnServerEvent(ev)
			a.gui.Update(func(*g.Gui) error { return nil })
		case <-a.client.Errs:
			a.gui.Update(func(*g.Gui) error { return g.ErrQuit })
			return
		}
	}
}

func (a *App) layout(gui *g.Gui) error {
	width, height := gui.Size()
	v, err := gui.SetView(viewName, 0, 0, width-1, height-1, 0)
	if err != nil && !errors.Is(err, g.ErrUnknownView) {
		return err
	}
	if v != nil {
		v.Clear()
		v.Frame = false
		tree := a.presenter.Tree(a.footerRows)
		tree.Layout(ui.Context{Bounds: ui.Rect{Size: ui.Size{W: width, H: height}}})
		for _, line := range renderLines(tree) {
			fmt.Fprintln(v, line)
		}
	}
	return nil
}

// bindKeys wires every presenter.DefaultBindings() entry, plus the digit
// fast path DefaultBindings() deliberately omits (spec §6: digits are
// never rebindable), to a handler that runs the raw key through the
// presenter and sends any resulting actions.
func (a *App) bindKeys() error {
	seen := map[string]bool{}
	for _, b := range presenter.DefaultBindings() {
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		if err := a.bindKey(b.Key); err != nil {
			return err
		}
	}
	for d := '0'; d <= '9'; d++ {
		if err := a.bindKey(string(d)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) bindKey(raw string) error {
	key, ok := gocuiKey(raw)
	if !ok {
		return nil
	}
	return a.gui.SetKeybinding("", key, g.ModNone, a.handler(raw))
}

func (a *App) handler(raw string) func(*g.Gui, *g.View) error {
	return func(*g.Gui, *g.View) error {
		actions := a.presenter.HandleKey(raw)
		for _, act := range actions {
			if err := a.client.Send(act); err != nil {
				return err
			}
		}
		if !a.presenter.IsRunning() {
			return g.ErrQuit
		}
		return nil
	}
}
