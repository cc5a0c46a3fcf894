package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/delve/internal/game/dice"
)

func TestWeightedIndex_SingleEntry(t *testing.T) {
	src := dice.NewSeededSource(1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, 0, dice.WeightedIndex(src, []int{5}))
	}
}

func TestWeightedIndex_SkipsZeroWeights(t *testing.T) {
	src := dice.NewSeededSource(2)
	for i := 0; i < 200; i++ {
		assert.Equal(t, 1, dice.WeightedIndex(src, []int{0, 7, 0}),
			"zero-weight entries must never be selected")
	}
}

func TestWeightedIndex_PanicsOnZeroTotal(t *testing.T) {
	src := dice.NewSeededSource(3)
	assert.Panics(t, func() { dice.WeightedIndex(src, []int{0, 0}) })
	assert.Panics(t, func() { dice.WeightedIndex(src, nil) })
}

func TestWeightedIndex_PanicsOnNegativeWeight(t *testing.T) {
	src := dice.NewSeededSource(4)
	assert.Panics(t, func() { dice.WeightedIndex(src, []int{10, -1}) })
}

// TestWeightedIndex_DistributionTendsToWeights checks ordering and rough
// ratios over many draws. Bounds are generous: the point is proportional
// selection, not exact frequencies.
func TestWeightedIndex_DistributionTendsToWeights(t *testing.T) {
	src := dice.NewSeededSource(5)
	weights := []int{100, 50, 10}
	counts := make([]int, len(weights))
	total := 20000
	for i := 0; i < total; i++ {
		counts[dice.WeightedIndex(src, weights)]++
	}

	require.Greater(t, counts[0], counts[1], "heavier entries must win more often")
	require.Greater(t, counts[1], counts[2], "heavier entries must win more often")

	ratio := float64(counts[0]) / float64(counts[1])
	assert.InDelta(t, 2.0, ratio, 0.5, "100:50 should land near 2:1 (got %.2f)", ratio)
}

func TestProperty_WeightedIndex_AlwaysSelectsPositiveWeight(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "entries")
		weights := make([]int, n)
		for i := range weights {
			weights[i] = rapid.IntRange(0, 50).Draw(rt, "weight")
		}
		total := 0
		for _, w := range weights {
			total += w
		}
		if total == 0 {
			weights[0] = 1
		}

		src := dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))
		idx := dice.WeightedIndex(src, weights)
		if idx < 0 || idx >= len(weights) {
			rt.Fatalf("index %d out of range for %d entries", idx, len(weights))
		}
		if weights[idx] == 0 {
			rt.Fatalf("selected zero-weight entry %d from %v", idx, weights)
		}
	})
}

func TestBetween_Inclusive(t *testing.T) {
	src := dice.NewSeededSource(6)
	sawMin, sawMax := false, false
	for i := 0; i < 1000; i++ {
		v := dice.Between(src, 3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
		if v == 3 {
			sawMin = true
		}
		if v == 5 {
			sawMax = true
		}
	}
	assert.True(t, sawMin, "min bound should be reachable")
	assert.True(t, sawMax, "max bound should be reachable")
}

func TestBetween_CollapsedRange(t *testing.T) {
	src := dice.NewSeededSource(7)
	assert.Equal(t, 4, dice.Between(src, 4, 4))
	assert.Equal(t, 9, dice.Between(src, 9, 2), "inverted range collapses to min")
}

func TestProperty_Between_InBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		min := rapid.IntRange(-100, 100).Draw(rt, "min")
		max := rapid.IntRange(min, min+200).Draw(rt, "max")
		src := dice.NewSeededSource(rapid.Int64().Draw(rt, "seed"))
		v := dice.Between(src, min, max)
		if v < min || v > max {
			rt.Fatalf("Between(%d, %d) = %d out of bounds", min, max, v)
		}
	})
}
