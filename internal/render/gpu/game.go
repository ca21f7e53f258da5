// Package gpu is the third renderer (SPEC_FULL §4.K): an ebiten window
// driven by the same presenter.Presenter and internal/render/term.Client
// transport the terminal renderers use, adapted from the teacher's root
// main.go Game/Draw/Update/Layout, plus golang.design/x/hotkey for global
// split/undo/reset hotkeys that work even when the window isn't focused,
// exactly as the teacher's registerHotkeys did.
package gpu

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/hotkey"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/presenter"
	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/render/term"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/ui"
)

const (
	screenWidth  = 720
	screenHeight = 480
)

// inboxCapacity bounds queued hotkey/connection events awaiting the next
// Update tick; hotkeys and the connection pump run on their own
// goroutines but only Update ever touches the presenter, the same
// single-threaded-access discipline render/term's message loop and
// render/gocui's gui.Update enforce for their own presenters.
const inboxCapacity = 16

// Game implements ebiten.Game, wrapping a Presenter over a term.Client
// connection.
type Game struct {
	presenter  *presenter.Presenter
	client     *term.Client
	footerRows []ui.FooterRowConfig
	palette    ui.Palette
	log        *slog.Logger

	inbox chan func()
	quit  bool
}

// NewGame builds a Game from a connected Client and its initial dump, and
// starts the background pump forwarding server events into the
// presenter's mirror.
func NewGame(client *term.Client, resp protocol.DumpResponse, footerRows []ui.FooterRowConfig, palette ui.Palette, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	p := presenter.New(nil)
	p.OnDump(resp.Dump)
	g := &Game{presenter: p, client: client, footerRows: footerRows, palette: palette, log: log, inbox: make(chan func(), inboxCapacity)}
	go g.pump()
	go g.registerHotkeys()
	return g
}

// pump drains the client's event/error channels, queuing each as a
// closure for the next Update tick to apply (mirrors render/gocui's
// App.pump and render/term's waitForEvent, adapted to ebiten's
// poll-driven Update instead of a message-passing runtime).
func (g *Game) pump() {
	for {
		select {
		case ev, ok := <-g.client.Events:
			if !ok {
				return
			}
			g.inbox <- func() { g.presenter.OnServerEvent(ev) }
		case err, ok := <-g.client.Errs:
			if !ok {
				return
			}
			g.inbox <- func() {
				g.log.Error("connection error", "error", err)
				g.quit = true
			}
			return
		}
	}
}

// registerHotkeys mirrors the teacher's registerHotkeys: three global
// hotkeys that work regardless of window focus. Unlike the teacher,
// split/undo go through the presenter's own commit/undo commands so the
// session's modal state machine (not this renderer) decides what "split"
// means in the current mode; reset has no presenter key binding (spec's
// keymap has no CmdReset) so it sends NewRunAction directly.
func (g *Game) registerHotkeys() {
	hkSplit := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x53)) // NumPad1
	hkReset := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x55)) // NumPad3
	hkUndo := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x5B))  // NumPad8

	if err := hkSplit.Register(); err != nil {
		g.log.Warn("registering split hotkey", "error", err)
	}
	if err := hkReset.Register(); err != nil {
		g.log.Warn("registering reset hotkey", "error", err)
	}
	if err := hkUndo.Register(); err != nil {
		g.log.Warn("registering undo hotkey", "error", err)
	}

	for {
		select {
		case <-hkSplit.Keydown():
			g.inbox <- func() { g.sendActions(g.presenter.HandleKey("enter")) }
		case <-hkUndo.Keydown():
			g.inbox <- func() { g.sendActions(g.presenter.HandleKey("z")) }
		case <-hkReset.Keydown():
			g.inbox <- func() {
				if err := g.client.Send(session.NewRunAction{OldDestination: attempt.Save}); err != nil {
					g.log.Error("sending reset", "error", err)
					g.quit = true
				}
			}
		}
	}
}

func (g *Game) sendActions(actions []session.Action) {
	for _, a := range actions {
		if err := g.client.Send(a); err != nil {
			g.log.Error("sending action", "error", err)
			g.quit = true
			return
		}
	}
}

// Update drains queued hotkey/connection events, then polls
// focused-window keyboard input through the presenter's keymap: the gpu
// renderer's counterpart to bubbletea's tea.KeyMsg handling and gocui's
// bindKeys handlers.
func (g *Game) Update() error {
drain:
	for {
		select {
		case fn := <-g.inbox:
			fn()
		default:
			break drain
		}
	}
	if g.quit || !g.presenter.IsRunning() {
		return ebiten.Termination
	}
	var pressed []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	for _, key := range pressed {
		raw, ok := keyNames[key]
		if !ok {
			continue
		}
		g.sendActions(g.presenter.HandleKey(raw))
	}
	return nil
}

// Draw lays the presenter's tree out over the window's cell grid and
// paints it, the gpu renderer's counterpart to term's View() and
// gocui's layout().
func (g *Game) Draw(screen *ebiten.Image) {
	tree := g.presenter.Tree(g.footerRows)
	cols, rows := screenWidth/cellW, screenHeight/cellH
	tree.Layout(ui.Context{Bounds: ui.Rect{Size: ui.Size{W: cols, H: rows}}})
	drawTree(screen, tree, g.palette)

	if total, ok := totalLabel(tree); ok {
		face := bigFace(3)
		drawBigTotal(screen, total, face, screenHeight-60, screenWidth, toRGBA(g.palette.Normal))
	}
}

// totalLabel finds the configured Total footer row's rendered value, so
// Draw can paint one enlarged centered copy below the split list.
func totalLabel(tree *ui.Tree) (string, bool) {
	for _, row := range tree.Footer.Rows {
		if row.Config.Kind == ui.FooterTotal {
			return row.Value().Text, true
		}
	}
	return "", false
}

// Layout returns the fixed window size, matching the teacher's fixed
// windowWidth/windowHeight constants.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
