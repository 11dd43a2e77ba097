// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/stretchr/testify/assert"
)

// TestWeightFnConstructors verifies that WeightFn constructors and options
// panic on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() { builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tc.fn)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(9), builder.ConstantWeightFn(9)(nil))

	u := builder.UniformWeightFn(3, 6)
	assert.Equal(t, int64(3), u(nil), "nil RNG falls back to min")

	r := rand.New(rand.NewSource(1))
	seen := make(map[int64]bool)
	for i := 0; i < 500; i++ {
		w := u(r)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(6))
		seen[w] = true
	}
	assert.Len(t, seen, 4, "every value of [3,6] should appear")

	assert.Equal(t, int64(5), builder.UniformWeightFn(5, 5)(r))
}
