package droptable

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseforge/caseforge/internal/domain"
)

func entries(weights ...domain.Weight) []domain.CaseEntry {
	out := make([]domain.CaseEntry, len(weights))
	for i, w := range weights {
		out[i] = domain.CaseEntry{ItemID: int64(i + 1), Weight: w}
	}
	return out
}

func TestNewRejectsEmptyTable(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCase)
}

func TestNewRejectsNonPositiveWeight(t *testing.T) {
	_, err := New(entries(100, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = New(entries(-5))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewCopiesEntries(t *testing.T) {
	in := entries(100, 200)
	table, err := New(in)
	require.NoError(t, err)

	in[0].Weight = 999999
	assert.Equal(t, int64(300), table.TotalWeight())
}

func TestPickDeterministicWalk(t *testing.T) {
	// Weights 1% and 99% as basis points; a sample of 5000 (i.e. 50 of
	// 100 in display terms) must land on the second entry: the first
	// claims [0,100), the second [100,10000).
	table, err := New(entries(100, 9900))
	require.NoError(t, err)

	winner := table.Pick(5000)
	assert.Equal(t, int64(2), winner.ItemID)
}

func TestPickBoundaries(t *testing.T) {
	table, err := New(entries(100, 9900))
	require.NoError(t, err)

	assert.Equal(t, int64(1), table.Pick(0).ItemID)
	assert.Equal(t, int64(1), table.Pick(99).ItemID)
	assert.Equal(t, int64(2), table.Pick(100).ItemID)
	assert.Equal(t, int64(2), table.Pick(9999).ItemID)
}

func TestPickIsTotal(t *testing.T) {
	table, err := New(entries(7))
	require.NoError(t, err)

	// Single entry wins for every sample value
	assert.Equal(t, int64(1), table.Pick(0).ItemID)
	assert.Equal(t, int64(1), table.Pick(6).ItemID)

	// Out-of-range samples still resolve deterministically
	multi, err := New(entries(100, 200, 300))
	require.NoError(t, err)
	assert.Equal(t, int64(3), multi.Pick(600).ItemID, "sample at total falls back to last entry")
	assert.Equal(t, int64(3), multi.Pick(1<<40).ItemID)
	assert.Equal(t, int64(1), multi.Pick(-1).ItemID)
}

func TestRollUsesSource(t *testing.T) {
	table, err := New(entries(100, 9900))
	require.NoError(t, err)

	var sawTotal int64
	winner := table.Roll(func(n int64) int64 {
		sawTotal = n
		return 42
	})
	assert.Equal(t, int64(10000), sawTotal)
	assert.Equal(t, int64(1), winner.ItemID)
}

func TestDistributionConvergence(t *testing.T) {
	// Weights [1, 99]: over many seeded draws the first entry's observed
	// frequency must sit close to 1%.
	table, err := New(entries(100, 9900))
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	src := func(n int64) int64 { return rng.Int64N(n) }

	const draws = 100000
	firstWins := 0
	for i := 0; i < draws; i++ {
		if table.Roll(src).ItemID == 1 {
			firstWins++
		}
	}

	freq := float64(firstWins) / draws
	// 1% +/- 0.3% is ~10 standard deviations at N=100k
	assert.InDelta(t, 0.01, freq, 0.003)
}

func BenchmarkRoll(b *testing.B) {
	weights := make([]domain.Weight, 40)
	for i := range weights {
		weights[i] = domain.Weight(100 + i)
	}
	table, err := New(entries(weights...))
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	src := func(n int64) int64 { return rng.Int64N(n) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = table.Roll(src)
	}
}
