package timeval

import (
	"fmt"
	"strings"
)

// String renders the time as "[Nh][Nm][Ns]mmm": each of the hour/minute/
// second fields is rendered with its delimiter iff nonzero; milliseconds
// always render, at the default width of 3 digits.
func (t Time) String() string {
	return t.Format(3)
}

// Format renders the time with milliseconds at the given digit width.
// Widths under 3 truncate the rightmost digits (123ms at width 2 -> "12");
// widths over 3 left-pad with zeros.
func (t Time) Format(msecWidth int) string {
	var b strings.Builder
	if h := t.Hours(); h != 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m := t.Minutes(); m != 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s := t.Seconds(); s != 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	b.WriteString(formatMillis(t.Milliseconds(), msecWidth))
	return b.String()
}

func formatMillis(ms uint32, width int) string {
	if width <= 0 {
		return ""
	}
	full := fmt.Sprintf("%03d", ms)
	switch {
	case width == 3:
		return full
	case width < 3:
		return full[:width]
	default:
		return strings.Repeat("0", width-3) + full
	}
}

// Position names one of the four fields of a Time, used by DisplayConfig and
// by the presenter's per-field editor (spec §4.I).
type Position int

const (
	PositionHours Position = iota
	PositionMinutes
	PositionSeconds
	PositionMilliseconds
)

// MaxDigits returns the digit cap for the position: 2 for minutes and
// seconds, 3 for milliseconds, 4 for hours. Hours are not directly editable
// in the presenter.
func (p Position) MaxDigits() int {
	switch p {
	case PositionHours:
		return 4
	case PositionMinutes, PositionSeconds:
		return 2
	case PositionMilliseconds:
		return 3
	default:
		return 0
	}
}

func (p Position) letter() byte {
	switch p {
	case PositionHours:
		return 'h'
	case PositionMinutes:
		return 'm'
	case PositionSeconds:
		return 's'
	case PositionMilliseconds:
		return 'u'
	default:
		return '?'
	}
}

// FieldWidth is one (position, digit-count) pair of a DisplayConfig.
type FieldWidth struct {
	Position Position
	Width    int
}

// DisplayConfig is an ordered sequence of FieldWidths describing how to
// render a Time for a particular UI column, e.g. a footer row that only has
// room for "mmssuuu" (minutes, seconds, three millisecond digits, no hours).
type DisplayConfig []FieldWidth

// ParseDisplayConfig parses a compact width string like "mmssuuu" into a
// DisplayConfig: each maximal run of one repeated letter becomes one
// FieldWidth, width = run length. Recognised letters are h, m, s, u (hours,
// minutes, seconds, milliseconds).
func ParseDisplayConfig(s string) (DisplayConfig, error) {
	var cfg DisplayConfig
	i := 0
	for i < len(s) {
		c := s[i]
		pos, err := positionForLetter(c)
		if err != nil {
			return nil, err
		}
		j := i
		for j < len(s) && s[j] == c {
			j++
		}
		cfg = append(cfg, FieldWidth{Position: pos, Width: j - i})
		i = j
	}
	return cfg, nil
}

func positionForLetter(c byte) (Position, error) {
	switch c {
	case 'h':
		return PositionHours, nil
	case 'm':
		return PositionMinutes, nil
	case 's':
		return PositionSeconds, nil
	case 'u':
		return PositionMilliseconds, nil
	default:
		return 0, fmt.Errorf("%w: unknown display position %q", ErrFieldParse, string(c))
	}
}

// Render formats t according to cfg, one field at a time in config order,
// zero-padded to each field's configured width (no delimiters, no
// zero-suppression — this is for fixed-width column display, unlike String).
func (cfg DisplayConfig) Render(t Time) string {
	var b strings.Builder
	for _, fw := range cfg {
		var v uint32
		switch fw.Position {
		case PositionHours:
			v = t.Hours()
		case PositionMinutes:
			v = t.Minutes()
		case PositionSeconds:
			v = t.Seconds()
		case PositionMilliseconds:
			fmt.Fprintf(&b, "%s", formatMillis(t.Milliseconds(), fw.Width))
			continue
		}
		fmt.Fprintf(&b, "%0*d", fw.Width, v)
	}
	return b.String()
}
