package timeval

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a human time string of the form "[Nh][Nm][Ns][mmm]": any
// prefix-subset of hour/minute/second sections delimited by their letter,
// followed by an optional run of millisecond digits with no delimiter. An
// empty string parses as Zero. A bare run of digits with no h/m/s section is
// taken as milliseconds. Millisecond digits are right-padded to three digits
// when short ("02" => 20ms per spec); more than three digits is a field
// overflow.
func Parse(s string) (Time, error) {
	if s == "" {
		return Zero, nil
	}

	rest := s
	var hours, mins, secs uint32

	if idx := strings.IndexByte(rest, 'h'); idx >= 0 {
		v, err := parseDigits(rest[:idx])
		if err != nil {
			return Zero, err
		}
		hours = v
		rest = rest[idx+1:]
	}
	if idx := strings.IndexByte(rest, 'm'); idx >= 0 {
		v, err := parseDigits(rest[:idx])
		if err != nil {
			return Zero, err
		}
		mins = v
		rest = rest[idx+1:]
	}
	if idx := strings.IndexByte(rest, 's'); idx >= 0 {
		v, err := parseDigits(rest[:idx])
		if err != nil {
			return Zero, err
		}
		secs = v
		rest = rest[idx+1:]
	}

	millis, err := parseMillis(rest)
	if err != nil {
		return Zero, err
	}

	return New(hours, mins, secs, millis)
}

func parseDigits(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldParse, s)
	}
	return uint32(v), nil
}

func parseMillis(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) > 3 {
		return 0, fmt.Errorf("%w: milliseconds %q", ErrFieldTooBig, s)
	}
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldParse, s)
	}
	padded := s + strings.Repeat("0", 3-len(s))
	v, _ := strconv.ParseUint(padded, 10, 32)
	return uint32(v), nil
}
