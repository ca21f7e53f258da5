package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/nictuku/splitrun/internal/attempt"
)

// colorOverrides is a custom flag type for repeatable -color role=hex
// flags, grounded on go-ffmpeg-hls-swarm/internal/config/flags.go's
// headerList pattern for repeatable string flags.
type colorOverrides map[string]string

func (c colorOverrides) String() string {
	parts := make([]string, 0, len(c))
	for k, v := range c {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ", ")
}

func (c colorOverrides) Set(value string) error {
	role, hex, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("config: -color must be role=hex, got %q", value)
	}
	c[strings.TrimSpace(role)] = strings.TrimSpace(hex)
	return nil
}

// ParseFlags parses command-line flags into a Config seeded from
// DefaultConfig, mirroring go-ffmpeg-hls-swarm's ParseFlags: every flag
// binds directly to a Config field via its current default.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := DefaultConfig()
	colors := colorOverrides{}
	var splits string

	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "address splitserver listens on")
	fs.StringVar(&cfg.ServerAddr, "server", cfg.ServerAddr, "splitserver address a client dials")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "address the /metrics and /healthz endpoints listen on")
	fs.StringVar(&cfg.StoreDSN, "store", cfg.StoreDSN, "sqlite database path")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `log format: "json" or "text"`)
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	fs.StringVar(&cfg.Target.GameName, "game", cfg.Target.GameName, "game display name")
	gameShort := fs.String("game-short", cfg.Target.GameShort.String(), "game short identifier")
	fs.StringVar(&cfg.Target.CategoryName, "category", cfg.Target.CategoryName, "category display name")
	categoryShort := fs.String("category-short", cfg.Target.CategoryShort.String(), "category short identifier")

	fs.StringVar(&splits, "splits", "", "comma-separated short:Display Name split list")
	fs.Var(colors, "color", "override a palette role, role=hex (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Target.GameShort = attempt.Intern(*gameShort)
	cfg.Target.CategoryShort = attempt.Intern(*categoryShort)

	if splits != "" {
		defs, err := ParseSplitDefs(splits)
		if err != nil {
			return nil, err
		}
		cfg.Splits = defs
	}

	if len(colors) > 0 {
		if err := cfg.ApplyColorOverrides(colors); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
