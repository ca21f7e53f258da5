package protocol

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/timeval"
)

// encoder accumulates a message body. All multi-byte integers are
// big-endian, matching the frame header (frame.go).
type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) byte(b byte) { e.buf.WriteByte(b) }

func (e *encoder) bool(b bool) {
	if b {
		e.byte(1)
	} else {
		e.byte(0)
	}
}

func (e *encoder) u32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

func (e *encoder) u64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *encoder) time(t timeval.Time) { e.u32(t.Millis()) }

func (e *encoder) str(s string) {
	if len(s) > math.MaxUint16 {
		s = s[:math.MaxUint16]
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(len(s)))
	e.buf.Write(b[:])
	e.buf.WriteString(s)
}

func (e *encoder) short(s attempt.ShortName) { e.str(s.String()) }

func (e *encoder) bytes() []byte { return e.buf.Bytes() }

// decoder consumes a message body produced by encoder, returning
// *MissingFieldError when the body runs out early and *UnknownEnumError
// when an enumerant byte is out of its expected range.
type decoder struct {
	b   []byte
	pos int
}

func newDecoder(b []byte) *decoder { return &decoder{b: b} }

func (d *decoder) need(field string, n int) ([]byte, error) {
	if d.pos+n > len(d.b) {
		return nil, &MissingFieldError{Field: field}
	}
	out := d.b[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

func (d *decoder) byteField(field string) (byte, error) {
	b, err := d.need(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) boolField(field string) (bool, error) {
	b, err := d.byteField(field)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (d *decoder) u32Field(field string) (uint32, error) {
	b, err := d.need(field, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *decoder) u64Field(field string) (uint64, error) {
	b, err := d.need(field, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *decoder) timeField(field string) (timeval.Time, error) {
	ms, err := d.u32Field(field)
	if err != nil {
		return timeval.Zero, err
	}
	return timeval.FromMillis(ms), nil
}

func (d *decoder) strField(field string) (string, error) {
	n, err := d.need(field+".len", 2)
	if err != nil {
		return "", err
	}
	size := int(binary.BigEndian.Uint16(n))
	body, err := d.need(field, size)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (d *decoder) shortField(field string) (attempt.ShortName, error) {
	s, err := d.strField(field)
	if err != nil {
		return attempt.ShortName{}, err
	}
	return attempt.Intern(s), nil
}

// done reports whether every byte of the body has been consumed, for
// callers that want to assert there's no trailing garbage.
func (d *decoder) done() bool { return d.pos == len(d.b) }
