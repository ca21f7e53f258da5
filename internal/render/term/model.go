package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nictuku/splitrun/internal/presenter"
	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/ui"
)

// eventMsg carries one decoded session.Event off the Client's background
// read loop (mirrors go-ffmpeg-hls-swarm/internal/tui's StatsMsg).
type eventMsg struct{ event session.Event }

// connErrMsg reports the read loop's terminal error, after which the
// model stops trying to read further (mirrors that package's QuitMsg,
// generalized to carry the cause).
type connErrMsg struct{ err error }

// Model is the bubbletea program wrapping a Presenter and a Client: key
// presses are resolved through the presenter into actions sent to the
// server, and incoming events are folded into the presenter's mirror
// (spec §4.I, SPEC_FULL §4.K).
type Model struct {
	presenter  *presenter.Presenter
	client     *Client
	footerRows []ui.FooterRowConfig
	palette    ui.Palette

	width, height int
	err           error
	quitting      bool
}

// New builds a Model from a connected Client and its initial dump.
func New(client *Client, resp protocol.DumpResponse, footerRows []ui.FooterRowConfig, palette ui.Palette) Model {
	p := presenter.New(nil)
	p.OnDump(resp.Dump)
	return Model{
		presenter:  p,
		client:     client,
		footerRows: footerRows,
		palette:    palette,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.client)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		actions := m.presenter.HandleKey(msg.String())
		for _, a := range actions {
			if err := m.client.Send(a); err != nil {
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}
		}
		if !m.presenter.IsRunning() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventMsg:
		m.presenter.OnServerEvent(msg.event)
		return m, waitForEvent(m.client)

	case connErrMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	tree := m.presenter.Tree(m.footerRows)
	tree.Layout(ui.Context{Bounds: ui.Rect{Size: ui.Size{W: m.width, H: m.height}}})
	return render(tree, m.palette)
}

// waitForEvent returns a command blocking on the client's next event or
// error, whichever arrives first.
func waitForEvent(c *Client) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-c.Events:
			return eventMsg{event: ev}
		case err := <-c.Errs:
			return connErrMsg{err: err}
		}
	}
}
