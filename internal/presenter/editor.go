package presenter

import (
	"strconv"

	"github.com/nictuku/splitrun/internal/timeval"
)

// Field accumulates digits for one position of a Time being edited,
// grounded on original_source's ui/presenter/mode/editor.rs Field.
type Field struct {
	Position timeval.Position
	digits   string
}

// NewField opens an empty editor for position p.
func NewField(p timeval.Position) *Field {
	return &Field{Position: p}
}

// Add appends digit if the field is under its cap (spec §4.I "a digit adds
// one character if under cap").
func (f *Field) Add(digit int) {
	if len(f.digits) < f.Position.MaxDigits() {
		f.digits += strconv.Itoa(digit % 10)
	}
}

// Remove deletes the last entered digit, if any (spec §4.I "backspace
// removes last character").
func (f *Field) Remove() {
	if f.digits == "" {
		return
	}
	f.digits = f.digits[:len(f.digits)-1]
}

// String renders the field's current digits.
func (f *Field) String() string { return f.digits }

// Commit parses the accumulated digits (0 if empty) and writes them into
// the named field of t, returning the updated Time.
func (f *Field) Commit(t timeval.Time) (timeval.Time, error) {
	var value uint64
	if f.digits != "" {
		var err error
		value, err = strconv.ParseUint(f.digits, 10, 32)
		if err != nil {
			return t, err
		}
	}
	return t.WithField(f.Position, uint32(value))
}
