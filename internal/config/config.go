// Package config loads the flat set of options every splitrun binary needs
// to construct its session.Controller, store, and renderer, grounded on
// go-ffmpeg-hls-swarm's internal/config/config.go: one struct with sensible
// zero-friction defaults, reused across every binary that needs it.
//
// Per SPEC_FULL.md §2, this package sits below cmd/ and is never imported
// by the core session/protocol/presenter/ui packages (A-J): those take a
// Target, a []attempt.Definition, and a ui.Palette as plain constructor
// arguments, and never know this package exists.
package config

import (
	"fmt"
	"strings"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/ui"
)

// Config holds everything a splitserver or splitclient binary needs to
// start: where to listen or dial, where to persist runs, which category
// and splits this instance is timing, which footer rows to show, and the
// color palette to render with.
type Config struct {
	ListenAddr  string `json:"listen_addr"`
	ServerAddr  string `json:"server_addr"`
	MetricsAddr string `json:"metrics_addr"`
	StoreDSN    string `json:"store_dsn"`
	LogFormat  string `json:"log_format"` // json, text
	Verbose    bool   `json:"verbose"`

	Target  attempt.Target       `json:"target"`
	Splits  []attempt.Definition `json:"splits"`
	Footer  []ui.FooterRowConfig `json:"footer"`
	Palette ui.Palette           `json:"palette"`
}

// DefaultConfig returns a Config with the built-in palette, no splits, and
// loopback addresses, mirroring go-ffmpeg-hls-swarm's DefaultConfig: every
// field pre-populated so a caller only has to override what it cares
// about.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:  "localhost:7890",
		ServerAddr:  "localhost:7890",
		MetricsAddr: "localhost:7891",
		StoreDSN:    "splitrun.db",
		LogFormat:  "text",
		Target: attempt.Target{
			GameName:      "Untitled Game",
			GameShort:     attempt.Intern("game"),
			CategoryName:  "Any%",
			CategoryShort: attempt.Intern("any"),
		},
		Footer: []ui.FooterRowConfig{
			{Kind: ui.FooterTotal},
			{Kind: ui.FooterComparison},
			{Kind: ui.FooterSumOfBest},
		},
		Palette: ui.DefaultPalette(),
	}
}

// ApplyColorOverrides layers user color overrides onto the config's
// palette by role name, the same way original_source's Map.add_user
// layers a user's color table onto the built-in defaults rather than
// replacing it wholesale. Unknown names are reported, not silently
// ignored.
func (c *Config) ApplyColorOverrides(overrides map[string]string) error {
	for name, hex := range overrides {
		color := ui.Color(hex)
		switch strings.ToLower(name) {
		case "normal":
			c.Palette.Normal = color
		case "editor":
			c.Palette.Editor = color
		case "fieldeditor":
			c.Palette.FieldEditor = color
		case "header":
			c.Palette.Header = color
		case "status":
			c.Palette.Status = color
		case "splitpb":
			c.Palette.SplitPB = color
		default:
			return fmt.Errorf("config: unknown palette role %q", name)
		}
	}
	return nil
}

// ParseSplitDefs parses a comma-separated "short:Display Name" list into
// split definitions, in the order given, the wire format flags.go binds
// the -splits flag to.
func ParseSplitDefs(raw string) ([]attempt.Definition, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	defs := make([]attempt.Definition, 0, len(parts))
	for _, part := range parts {
		short, display, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("config: split %q must be short:display", part)
		}
		short = strings.TrimSpace(short)
		display = strings.TrimSpace(display)
		if short == "" || display == "" {
			return nil, fmt.Errorf("config: split %q must be short:display", part)
		}
		defs = append(defs, attempt.Definition{Short: attempt.Intern(short), Display: display})
	}
	return defs, nil
}
