package bptree

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomInsertUtilizationAndModelCoverage exercises the random-fill
// scenario: 2000 uniformly random keys, seeded, checking that the
// resulting tree lands in the documented utilization and predictor-
// coverage bands and that every inserted key is retrievable.
func TestRandomInsertUtilizationAndModelCoverage(t *testing.T) {
	tree, err := New[int64, int64](Config{Order: 64, InitialLeafCapacity: 64})
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(7, 42))
	const n = 2000
	keys := make([]int64, n)
	values := make(map[int64]int64, n)
	for i := 0; i < n; i++ {
		k := rng.Int64N(1_000_000_000)
		keys[i] = k
		values[k] = k * 31
		tree.Insert(k, k*31)
	}

	for _, k := range keys {
		v, ok := tree.Search(k)
		require.True(t, ok, "key %d must be retrievable after insert", k)
		assert.Equal(t, values[k], v)
	}

	stats := tree.Stats()
	assert.Greater(t, stats.AvgUtilization, 0.5,
		"avg_utilization should exceed 0.5 for random fill, got %v", stats.AvgUtilization)
	assert.Less(t, stats.AvgUtilization, 0.85,
		"avg_utilization should stay below 0.85 for random fill, got %v", stats.AvgUtilization)

	require.Greater(t, stats.Leaves, 0)
	modelRatio := float64(stats.LeavesWithModels) / float64(stats.Leaves)
	assert.GreaterOrEqual(t, modelRatio, 0.9,
		"at least 90%% of leaves should have a trained predictor, got %v", modelRatio)

	assert.Equal(t, len(values), stats.Size)
}
