// Command splitclient is the default terminal client: it connects to a
// splitserver and drives one of two terminal renderers — bubbletea
// (internal/render/term, the default) or gocui (internal/render/gocui,
// -backend=gocui) — exiting when the presenter's Quitting mode is
// reached (spec §4.I, SPEC_FULL §4.K).
package main

import (
	"flag"
	"log/slog"
	"net"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nictuku/splitrun/internal/render/gocui"
	"github.com/nictuku/splitrun/internal/render/term"
	"github.com/nictuku/splitrun/internal/ui"
)

func main() {
	addr := flag.String("addr", "localhost:7890", "splitserver address")
	backend := flag.String("backend", "bubbletea", "terminal backend: bubbletea or gocui")
	flag.Parse()

	log := slog.Default()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Error("dial failed", "addr", *addr, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	client, resp, err := term.Dial(conn)
	if err != nil {
		log.Error("handshake failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()
	log.Info("connected", "server", resp.ServerIdent)

	footerRows := []ui.FooterRowConfig{
		{Kind: ui.FooterTotal},
		{Kind: ui.FooterComparison},
		{Kind: ui.FooterSumOfBest},
	}

	switch *backend {
	case "gocui":
		app, err := gocui.NewApp(client, resp, footerRows)
		if err != nil {
			log.Error("gocui init failed", "error", err)
			os.Exit(1)
		}
		if err := app.Run(); err != nil {
			log.Error("program exited with error", "error", err)
			os.Exit(1)
		}
	default:
		model := term.New(client, resp, footerRows, ui.DefaultPalette())
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Error("program exited with error", "error", err)
			os.Exit(1)
		}
	}
}
