package protocol

import "fmt"

// Status is the transport-level status a decode error maps to (spec §4.G:
// "mapped to a well-defined transport-level status"). These mirror the
// handful of gRPC status codes original_source's decode layer used
// (tonic::Status::data_loss / out_of_range), kept here as a small enum
// rather than pulling in a gRPC status package this transport doesn't use.
type Status int

const (
	StatusOK Status = iota
	StatusDataLoss
	StatusOutOfRange
	StatusInvalidArgument
)

func (s Status) String() string {
	switch s {
	case StatusDataLoss:
		return "data_loss"
	case StatusOutOfRange:
		return "out_of_range"
	case StatusInvalidArgument:
		return "invalid_argument"
	default:
		return "ok"
	}
}

// MissingFieldError is returned when decoding a message whose required
// payload is absent (spec §4.G "Missing(field)").
type MissingFieldError struct{ Field string }

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("protocol: missing required field %q", e.Field)
}

// UnknownEnumError is returned when decoding a message with an
// out-of-range enumerant (spec §4.G "Unknown(field)").
type UnknownEnumError struct {
	Field string
	Value int
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("protocol: unknown enumerant %d for field %q", e.Value, e.Field)
}

// StatusOf maps a decode error to its transport-level status (spec §7):
// Missing -> data-loss, Unknown -> out-of-range. Any other error
// (truncated frame, etc.) maps to invalid-argument.
func StatusOf(err error) Status {
	switch err.(type) {
	case *MissingFieldError:
		return StatusDataLoss
	case *UnknownEnumError:
		return StatusOutOfRange
	default:
		return StatusInvalidArgument
	}
}
