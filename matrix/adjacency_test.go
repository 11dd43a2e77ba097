package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdjacency_Validation(t *testing.T) {
	_, err := matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrMalformedInput)

	_, err = matrix.NewAdjacency([][]int64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrMalformedInput)

	_, err = matrix.NewAdjacency([][]int64{{0, -2}, {-2, 0}})
	assert.ErrorIs(t, err, matrix.ErrMalformedInput)
}

func TestAdjacency_At(t *testing.T) {
	a, err := matrix.NewAdjacency([][]int64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, 2}, {2, 2}} {
		_, err = a.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
	}
}

// TestAdjacency_Asymmetric: Graph reads the lower triangle only, so the upper
// value of an asymmetric pair is ignored.
func TestAdjacency_Asymmetric(t *testing.T) {
	a, err := matrix.NewAdjacency([][]int64{
		{5, 9, 0},
		{2, 5, 0},
		{0, 3, 5},
	})
	require.NoError(t, err)

	assert.False(t, a.IsSymmetric())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, a.Asymmetries())

	g, err := a.Graph()
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	}, g.Edges(), "diagonal ignored, lower triangle wins")
}
