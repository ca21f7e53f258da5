package comparison

import (
	"testing"

	"github.com/nictuku/splitrun/internal/aggregate"
	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/timeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(s string) timeval.Time {
	t, err := timeval.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TestShortRunPaceScenarioS3 walks through spec scenario S3 exactly.
func TestShortRunPaceScenarioS3(t *testing.T) {
	pp1, pp2, pp3 := attempt.Intern("pp1"), attempt.Intern("pp2"), attempt.Intern("pp3")

	cmpSplits := map[attempt.ShortName]timeval.Time{
		pp1: ms("25s060"),
		pp2: ms("25s300"),
		pp3: ms("24s260"),
	}
	var cumulative timeval.Time
	records := map[attempt.ShortName]SplitRecord{}
	for _, short := range []attempt.ShortName{pp1, pp2, pp3} {
		cumulative = cumulative.Add(cmpSplits[short])
		records[short] = SplitRecord{
			SplitPB: cmpSplits[short], HasSplitPB: true,
			InPbRun:    aggregate.Set{Split: cmpSplits[short], Cumulative: cumulative},
			HasInPbRun: true,
		}
	}
	cmp := Comparison{Splits: records}

	var attemptCum timeval.Time

	push := func(short attempt.ShortName, t timeval.Time) DeltaPair {
		attemptCum = attemptCum.Add(t)
		agg := aggregate.Set{Split: t, Cumulative: attemptCum}
		return cmp.DeltaFor(short, agg)
	}

	d1 := push(pp1, ms("24s060"))
	assert.Equal(t, "-1s000/-1s000", d1.String())

	d2 := push(pp2, ms("27s300"))
	assert.Equal(t, "+2s000/+1s000", d2.String())

	d3 := push(pp3, ms("24s260"))
	assert.Equal(t, "-000/+1s000", d3.String())

	// Overwrite pp1 by adding 1.000s (24.060 -> 25.060): pop all three splits,
	// then re-push pp1 with its adjusted value and pp2/pp3 unchanged.
	attemptCum = timeval.Zero
	d1b := push(pp1, ms("25s060"))
	assert.Equal(t, "-000/-000", d1b.String())
	d2b := push(pp2, ms("27s300"))
	assert.Equal(t, "+2s000/+2s000", d2b.String())
	d3b := push(pp3, ms("24s260"))
	assert.Equal(t, "-000/+2s000", d3b.String())
}

// TestUntouchedSplitIsInconclusive guards against an empty split (one with
// no entered times, agg.Split == Zero) misreading as a PersonalBest against
// a positive SplitPB.
func TestUntouchedSplitIsInconclusive(t *testing.T) {
	short := attempt.Intern("pp1")
	cmp := Comparison{Splits: map[attempt.ShortName]SplitRecord{
		short: {SplitPB: ms("25s000"), HasSplitPB: true,
			InPbRun: aggregate.Set{Split: ms("25s000"), Cumulative: ms("25s000")}, HasInPbRun: true},
	}}
	agg := aggregate.Set{Empty: true}

	pace := cmp.PaceFor(short, agg)
	assert.Equal(t, Inconclusive, pace.Split)
	assert.Equal(t, Inconclusive, pace.Cumulative)

	delta := cmp.DeltaFor(short, agg)
	assert.Equal(t, Inconclusive, delta.Split.Pace)
	assert.Equal(t, Inconclusive, delta.Cumulative.Pace)
}

func TestDeltaSignLawRoundtrip(t *testing.T) {
	cases := []struct{ a, b timeval.Time }{
		{ms("1s000"), ms("2s000")},
		{ms("2s000"), ms("1s000")},
		{ms("5s000"), ms("5s000")},
	}
	for _, c := range cases {
		d := DeltaOf(c.a, true, c.b)
		got := d.Reconstitute(c.a)
		assert.Equal(t, c.b, got)
	}
}

func TestDeltaInconclusiveWithoutReference(t *testing.T) {
	d := DeltaOf(ms("1s000"), false, timeval.Zero)
	assert.Equal(t, Inconclusive, d.Pace)
	assert.Equal(t, ms("1s000"), d.Reconstitute(ms("1s000")))
}

func TestSplitPersonalBestOverridesQuadrant(t *testing.T) {
	pace := CombineSplitInRunPace(
		ms("1s000"), ms("10s000"), true,
		ms("2s000"), ms("9s000"),
		true, ms("1s500"),
	)
	require.Equal(t, PersonalBest, pace.Split)
	assert.Equal(t, TagSplitPersonalBest, pace.Tag())
}

func TestOverallDiscardsSplitDimension(t *testing.T) {
	pace := SplitInRunPace{Split: Behind, Cumulative: Ahead}
	assert.Equal(t, Ahead, pace.Overall())
}

func TestCombineNoInRunDataIsInconclusive(t *testing.T) {
	pace := CombineSplitInRunPace(ms("1s000"), ms("1s000"), false, timeval.Zero, timeval.Zero, false, timeval.Zero)
	assert.Equal(t, TagInconclusive, pace.Tag())
}
