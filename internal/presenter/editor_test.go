package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/splitrun/internal/timeval"
)

func TestFieldAddRespectsDigitCap(t *testing.T) {
	f := NewField(timeval.PositionSeconds)
	f.Add(1)
	f.Add(2)
	f.Add(3)
	assert.Equal(t, "12", f.String(), "seconds caps at 2 digits")
}

func TestFieldRemoveOnEmptyIsNoop(t *testing.T) {
	f := NewField(timeval.PositionMinutes)
	f.Remove()
	assert.Equal(t, "", f.String())
}

func TestFieldCommitWritesNamedFieldOnly(t *testing.T) {
	base, err := timeval.New(0, 1, 30, 250)
	require.NoError(t, err)

	f := NewField(timeval.PositionSeconds)
	f.Add(4)
	f.Add(5)
	got, err := f.Commit(base)
	require.NoError(t, err)

	assert.Equal(t, uint32(45), got.Seconds())
	assert.Equal(t, uint32(1), got.Minutes(), "unrelated fields are untouched")
	assert.Equal(t, uint32(250), got.Milliseconds())
}

func TestFieldCommitEmptyDigitsIsZero(t *testing.T) {
	f := NewField(timeval.PositionMilliseconds)
	got, err := f.Commit(timeval.Zero)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got.Milliseconds())
}
