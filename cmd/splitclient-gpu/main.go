// Command splitclient-gpu is the ebiten-backed terminal-free client: a
// resizable window presenting the same modal split timer the terminal
// clients do, adapted from the teacher's root main.go.
package main

import (
	"flag"
	"log/slog"
	"net"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nictuku/splitrun/internal/render/gpu"
	"github.com/nictuku/splitrun/internal/render/term"
	"github.com/nictuku/splitrun/internal/ui"
)

func main() {
	addr := flag.String("addr", "localhost:7890", "splitserver address")
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

	game := gpu.NewGame(client, resp, footerRows, ui.DefaultPalette(), log)

	ebiten.SetWindowSize(720, 480)
	ebiten.SetWindowTitle("splitrun")
	if err := ebiten.RunGame(game); err != nil {
		log.Error("program exited with error", "error", err)
		os.Exit(1)
	}
}
