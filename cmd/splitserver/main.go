// Command splitserver hosts one session.Controller over TCP, persisting
// completed runs to sqlite and exporting Prometheus metrics, per spec
// §4.H/§5 and SPEC_FULL §5's errgroup-collected session/listener task
// pairing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/nictuku/splitrun/internal/config"
	"github.com/nictuku/splitrun/internal/protocol"
	"github.com/nictuku/splitrun/internal/server"
	"github.com/nictuku/splitrun/internal/session"
	"github.com/nictuku/splitrun/internal/store/sqlite"
)

func main() {
	cfg, err := config.ParseFlags(flag.NewFlagSet("splitserver", flag.ExitOnError), os.Args[1:])
	if err != nil {
		slog.Error("parsing flags", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogFormat, cfg.Verbose)

	store, err := sqlite.Open(cfg.StoreDSN)
	if err != nil {
		log.Error("opening store", "dsn", cfg.StoreDSN, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	cmp, ok, err := store.Comparison(context.Background(), cfg.Target)
	if err != nil {
		log.Error("loading comparison", "error", err)
		os.Exit(1)
	}
	if !ok {
		cmp = comparison.Empty()
	}

	at := attempt.NewAttempt(cfg.Target, cfg.Splits, attempt.Info{})
	state := session.New(at, cmp)

	metrics := server.NewMetrics()
	broadcast := server.NewBroadcast(metrics)

	controller := session.NewController(state, store, store, log, nil)
	srv := server.New(controller, broadcast, metrics, log, "splitrun", protocol.Version{Major: 1})

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Error("listening", "addr", cfg.ListenAddr, "error", err)
		os.Exit(1)
	}
	defer ln.Close()
	log.Info("listening", "addr", cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsSrv := metrics.HTTPServer(cfg.MetricsAddr)
	go func() {
		if err := server.Serve(ctx, metricsSrv); err != nil {
			log.Warn("metrics server stopped", "error", err)
		}
	}()

	if err := srv.Run(ctx, ln); err != nil && ctx.Err() == nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
