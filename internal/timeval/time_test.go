package timeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundtrip(t *testing.T) {
	for _, ms := range []uint32{0, 1, 999, 1000, 61234, 4294967295} {
		got := FromMillis(ms).Millis()
		assert.Equal(t, ms, got, "to_ms(from_ms(%d))", ms)
	}
}

func TestNewFieldCaps(t *testing.T) {
	_, err := New(0, 60, 0, 0)
	require.ErrorIs(t, err, ErrFieldTooBig)

	_, err = New(0, 0, 60, 0)
	require.ErrorIs(t, err, ErrFieldTooBig)

	_, err = New(0, 0, 0, 1000)
	require.ErrorIs(t, err, ErrFieldTooBig)

	tm, err := New(1, 23, 45, 678)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), tm.Hours())
	assert.Equal(t, uint32(23), tm.Minutes())
	assert.Equal(t, uint32(45), tm.Seconds())
	assert.Equal(t, uint32(678), tm.Milliseconds())
}

func TestNewMsecOverflow(t *testing.T) {
	_, err := New(maxHours, maxMins, maxSecs, maxMilli)
	require.ErrorIs(t, err, ErrMsecOverflow)

	// 1200 hours is well under the per-field cap but overflows uint32 ms.
	_, err = New(1200, 0, 0, 0)
	require.ErrorIs(t, err, ErrMsecOverflow)
}

func TestAddSubIdentity(t *testing.T) {
	a, _ := New(0, 1, 2, 3)
	b, _ := New(0, 0, 5, 100)

	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, Zero, b.Sub(a.Add(b))) // b <= a+b
}

func TestSubSaturatesToZero(t *testing.T) {
	small, _ := New(0, 6, 4, 100)
	big, _ := New(1, 5, 10, 0)
	assert.Equal(t, Zero, small.Sub(big))
}

func TestAddSaturates(t *testing.T) {
	max := Time{ms: ^uint32(0)}
	one := FromMillis(1)
	assert.Equal(t, max, max.Add(one))
}

func TestSum(t *testing.T) {
	a := FromMillis(100)
	b := FromMillis(200)
	c := FromMillis(300)
	assert.Equal(t, FromMillis(600), Sum([]Time{a, b, c}))
}

func TestParseDisplayRoundtrip(t *testing.T) {
	got, err := Parse("1h2m3s456")
	require.NoError(t, err)
	want, _ := New(1, 2, 3, 456)
	assert.Equal(t, want, got)
	assert.Equal(t, "1h2m3s456", got.String())
}

func TestParseEmptyIsZero(t *testing.T) {
	got, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Zero, got)
}

func TestParseBareDigitsAreMillis(t *testing.T) {
	got, err := Parse("456")
	require.NoError(t, err)
	want, _ := New(0, 0, 0, 456)
	assert.Equal(t, want, got)
}

func TestParseMillisRightPadded(t *testing.T) {
	got, err := Parse("2m02")
	require.NoError(t, err)
	want, _ := New(0, 2, 0, 20)
	assert.Equal(t, want, got)
}

func TestParsePrefixSubset(t *testing.T) {
	got, err := Parse("5m30s")
	require.NoError(t, err)
	want, _ := New(0, 5, 30, 0)
	assert.Equal(t, want, got)
}

func TestParseFieldError(t *testing.T) {
	_, err := Parse("xm")
	require.ErrorIs(t, err, ErrFieldParse)
}

func TestSubtractionScenarioS2(t *testing.T) {
	a, err := Parse("6m4s100")
	require.NoError(t, err)
	b, err := Parse("1h5m10s")
	require.NoError(t, err)
	assert.Equal(t, Zero, a.Sub(b))
}

func TestFormatMillisWidth(t *testing.T) {
	tm, _ := New(0, 0, 0, 123)
	assert.Equal(t, "123", tm.Format(3))
	assert.Equal(t, "12", tm.Format(2))
	assert.Equal(t, "0123", tm.Format(4))
}

func TestZeroFieldsOmitted(t *testing.T) {
	tm, _ := New(0, 0, 5, 0)
	assert.Equal(t, "5s000", tm.String())
}

func TestDisplayConfigCompactString(t *testing.T) {
	cfg, err := ParseDisplayConfig("mmssuuu")
	require.NoError(t, err)
	require.Len(t, cfg, 3)
	assert.Equal(t, PositionMinutes, cfg[0].Position)
	assert.Equal(t, 2, cfg[0].Width)
	assert.Equal(t, PositionSeconds, cfg[1].Position)
	assert.Equal(t, 2, cfg[1].Width)
	assert.Equal(t, PositionMilliseconds, cfg[2].Position)
	assert.Equal(t, 3, cfg[2].Width)

	tm, _ := New(0, 2, 3, 456)
	assert.Equal(t, "0203456", cfg.Render(tm))
}
