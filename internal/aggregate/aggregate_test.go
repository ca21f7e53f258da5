package aggregate

import (
	"testing"

	"github.com/nictuku/splitrun/internal/attempt"
	"github.com/nictuku/splitrun/internal/timeval"
	"github.com/stretchr/testify/assert"
)

func TestScanProducesPrefixSums(t *testing.T) {
	items := []Named{
		{Short: attempt.Intern("a"), Time: timeval.FromMillis(100)},
		{Short: attempt.Intern("b"), Time: timeval.FromMillis(200)},
		{Short: attempt.Intern("c"), Time: timeval.FromMillis(50)},
	}
	got := Scan(items)

	assert.Equal(t, timeval.FromMillis(100), got[0].Split)
	assert.Equal(t, timeval.FromMillis(100), got[0].Cumulative)

	assert.Equal(t, timeval.FromMillis(200), got[1].Split)
	assert.Equal(t, timeval.FromMillis(300), got[1].Cumulative)

	assert.Equal(t, timeval.FromMillis(50), got[2].Split)
	assert.Equal(t, timeval.FromMillis(350), got[2].Cumulative)
}

func TestScanEmpty(t *testing.T) {
	assert.Empty(t, Scan(nil))
}

func TestScanSplitSetMatchesAttempt(t *testing.T) {
	ss := attempt.NewSplitSet([]attempt.Definition{
		{Short: attempt.Intern("s1")},
		{Short: attempt.Intern("s2")},
	})
	_, s1, _ := ss.Resolve(attempt.ByIndex(0))
	s1.Push(timeval.FromMillis(1000))
	_, s2, _ := ss.Resolve(attempt.ByIndex(1))
	s2.Push(timeval.FromMillis(500))

	got := ScanSplitSet(ss)
	assert.Equal(t, timeval.FromMillis(1000), got[attempt.Intern("s1")].Cumulative)
	assert.Equal(t, timeval.FromMillis(1500), got[attempt.Intern("s2")].Cumulative)
}
