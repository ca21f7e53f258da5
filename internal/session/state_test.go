package session

import (
	"testing"

	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/comparison"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUntouchedSplitNoteIsInconclusive guards against a fresh attempt's
// unreached splits reading as a PersonalBest delta: an untouched split's
// aggregate is Zero, and Zero is less than any positive SplitPB.
func TestUntouchedSplitNoteIsInconclusive(t *testing.T) {
	a, b := attempt.Intern("a"), attempt.Intern("b")
	at := attempt.NewAttempt(attempt.Target{}, defs("a", "b"), attempt.Info{})
	cmp := comparison.Comparison{Splits: map[attempt.ShortName]comparison.SplitRecord{
		a: {SplitPB: ms("10s000"), HasSplitPB: true,
			InPbRun: aggregate.Set{Split: ms("10s000"), Cumulative: ms("10s000")}, HasInPbRun: true},
		b: {SplitPB: ms("5s000"), HasSplitPB: true,
			InPbRun: aggregate.Set{Split: ms("5s000"), Cumulative: ms("15s000")}, HasInPbRun: true},
	}}
	st := New(at, cmp)

	require.Contains(t, st.Notes, a)
	require.Contains(t, st.Notes, b)
	assert.Equal(t, comparison.Inconclusive, st.Notes[a].Delta.Split.Pace)
	assert.Equal(t, comparison.Inconclusive, st.Notes[a].Delta.Cumulative.Pace)
	assert.Equal(t, comparison.Inconclusive, st.Notes[b].Delta.Split.Pace)
	assert.Equal(t, comparison.Inconclusive, st.Notes[b].Delta.Cumulative.Pace)

	_, ok := st.PushTo(attempt.ByIndex(0), ms("9s000"))
	require.True(t, ok)
	assert.Equal(t, comparison.PersonalBest, st.Notes[a].Delta.Split.Pace)
	assert.Equal(t, comparison.Inconclusive, st.Notes[b].Delta.Split.Pace)
}
