// Package timeval implements the fixed-precision hours/minutes/seconds/
// milliseconds time value used throughout splitrun: split times, comparison
// times, deltas, and run totals are all a timeval.Time under the hood.
package timeval

import (
	"errors"
	"fmt"
)

// Time is a non-negative fixed-precision timestamp. It is isomorphic to a
// 32-bit millisecond count; arithmetic happens in that representation.
type Time struct {
	ms uint32
}

// Field caps, per spec: hours 0-65534, minutes/seconds 0-59, millis 0-999.
const (
	maxHours = 65534
	maxMins  = 59
	maxSecs  = 59
	maxMilli = 999

	msPerSec  = 1000
	msPerMin  = 60 * msPerSec
	msPerHour = 60 * msPerMin
)

// Zero is the zero-valued Time.
var Zero = Time{}

var (
	// ErrFieldParse is returned when a field of a human time string is not
	// numeric.
	ErrFieldParse = errors.New("timeval: field is not numeric")
	// ErrFieldTooBig is returned when constructing a Time from fields whose
	// value exceeds that field's cap.
	ErrFieldTooBig = errors.New("timeval: field value out of range")
	// ErrMsecOverflow is returned when a Time's millisecond count would not
	// fit in a uint32.
	ErrMsecOverflow = errors.New("timeval: millisecond count overflows")
)

// New constructs a Time from its four fields, failing with ErrFieldTooBig if
// any field exceeds its cap, or ErrMsecOverflow if the fields sum to more
// milliseconds than fit in a uint32 even though each is individually valid
// (spec §4.A).
func New(hours, mins, secs, millis uint32) (Time, error) {
	switch {
	case hours > maxHours:
		return Zero, fmt.Errorf("%w: hours=%d", ErrFieldTooBig, hours)
	case mins > maxMins:
		return Zero, fmt.Errorf("%w: minutes=%d", ErrFieldTooBig, mins)
	case secs > maxSecs:
		return Zero, fmt.Errorf("%w: seconds=%d", ErrFieldTooBig, secs)
	case millis > maxMilli:
		return Zero, fmt.Errorf("%w: milliseconds=%d", ErrFieldTooBig, millis)
	}
	total := uint64(hours)*msPerHour + uint64(mins)*msPerMin + uint64(secs)*msPerSec + uint64(millis)
	if total > uint64(^uint32(0)) {
		return Zero, fmt.Errorf("%w: %d", ErrMsecOverflow, total)
	}
	return Time{ms: uint32(total)}, nil
}

// FromMillis constructs a Time from a millisecond count. It is infallible for
// any non-negative input, per spec §4.A; the 32-bit overflow case is only
// reported by New, when building a Time from fields.
func FromMillis(ms uint32) Time {
	return Time{ms: ms}
}

// Millis returns the Time as a 32-bit millisecond count. Conversion in this
// direction never fails.
func (t Time) Millis() uint32 {
	return t.ms
}

// Hours returns the hours field.
func (t Time) Hours() uint32 { return t.ms / msPerHour }

// Minutes returns the minutes field (0-59).
func (t Time) Minutes() uint32 { return (t.ms % msPerHour) / msPerMin }

// Seconds returns the seconds field (0-59).
func (t Time) Seconds() uint32 { return (t.ms % msPerMin) / msPerSec }

// Milliseconds returns the milliseconds field (0-999).
func (t Time) Milliseconds() uint32 { return t.ms % msPerSec }

// IsZero reports whether the time is exactly zero.
func (t Time) IsZero() bool { return t.ms == 0 }

// Compare returns -1, 0 or 1 as t is less than, equal to, or greater than o.
func (t Time) Compare(o Time) int {
	switch {
	case t.ms < o.ms:
		return -1
	case t.ms > o.ms:
		return 1
	default:
		return 0
	}
}

// Less reports whether t is strictly less than o.
func (t Time) Less(o Time) bool { return t.ms < o.ms }

// LessEqual reports whether t is less than or equal to o.
func (t Time) LessEqual(o Time) bool { return t.ms <= o.ms }

// Add returns t+o. Per spec, addition saturates on overflow: if the sum of
// the millisecond representations would not fit in a uint32, the result
// saturates at the maximum representable value rather than wrapping.
func (t Time) Add(o Time) Time {
	sum := uint64(t.ms) + uint64(o.ms)
	if sum > uint64(^uint32(0)) {
		return Time{ms: ^uint32(0)}
	}
	return Time{ms: uint32(sum)}
}

// Sub returns t-o, saturating to Zero if o > t (spec §4.A: "subtraction
// clamps to zero").
func (t Time) Sub(o Time) Time {
	if o.ms >= t.ms {
		return Zero
	}
	return Time{ms: t.ms - o.ms}
}

// WithField returns a copy of t with the field at p replaced by value,
// validated against that field's cap (spec §4.I: the presenter's per-field
// editor commits a single field at a time into an accumulated Time).
func (t Time) WithField(p Position, value uint32) (Time, error) {
	h, m, s, ms := t.Hours(), t.Minutes(), t.Seconds(), t.Milliseconds()
	switch p {
	case PositionHours:
		h = value
	case PositionMinutes:
		m = value
	case PositionSeconds:
		s = value
	case PositionMilliseconds:
		ms = value
	}
	return New(h, m, s, ms)
}

// Sum adds up an iterable (here, a slice) of times.
func Sum(ts []Time) Time {
	var total Time
	for _, t := range ts {
		total = total.Add(t)
	}
	return total
}
