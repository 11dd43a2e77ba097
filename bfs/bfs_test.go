package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = bfs.BFS(g, 2)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Components(g, bfs.WithMaxDepth(1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_CycleDepths covers a simple cycle and checks depths and order.
func TestBFS_CycleDepths(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 5, 2, 4, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1}, res.Depth)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestBFS_MaxDepthAndHook(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Reached(3))
	_, err = res.PathTo(4)
	assert.Error(t, err)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestComponents(t *testing.T) {
	g, err := builder.BuildGraph(7, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(4, 5, 2))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4, 5}, {6}}, comps)

	ok, err := bfs.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestWithoutEdge_Bridges: hiding a ring edge keeps a cycle connected, hiding
// a star spoke does not.
func TestWithoutEdge_Bridges(t *testing.T) {
	ring, err := builder.BuildGraph(4, nil, builder.Cycle(4))
	require.NoError(t, err)
	ok, err := bfs.IsConnected(ring, bfs.WithoutEdge(core.Edge{From: 2, To: 1, Weight: 1}))
	require.NoError(t, err)
	assert.True(t, ok)

	star, err := builder.BuildGraph(4, nil, builder.Star(4))
	require.NoError(t, err)
	comps, err := bfs.Components(star, bfs.WithoutEdge(core.Edge{From: 0, To: 3, Weight: 1}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, comps)

	// A different weight does not match the edge.
	ok, err = bfs.IsConnected(star, bfs.WithoutEdge(core.Edge{From: 0, To: 3, Weight: 9}))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestWithoutEdge_ParallelCopies: with two equal-weight copies of 0—1, hiding
// one leaves the other in place, matching a graph rebuilt by core.WithoutEdge.
func TestWithoutEdge_ParallelCopies(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 0, 4))
	require.NoError(t, g.AddEdge(1, 2, 7))
	e := core.Edge{From: 1, To: 0, Weight: 4}

	ok, err := bfs.IsConnected(g, bfs.WithoutEdge(e))
	require.NoError(t, err)
	assert.True(t, ok)

	reduced, err := g.WithoutEdge(e)
	require.NoError(t, err)
	want, err := bfs.IsConnected(reduced)
	require.NoError(t, err)
	assert.Equal(t, want, ok)

	// Hiding both copies splits off vertex 0.
	comps, err := bfs.Components(g, bfs.WithoutEdge(e), bfs.WithoutEdge(e))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2}}, comps)

	// The option is stateless, so reuse across searches gives the same answer.
	opt := bfs.WithoutEdge(e)
	for range 3 {
		ok, err = bfs.IsConnected(g, opt)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
