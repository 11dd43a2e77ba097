package bfs

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Components returns the connected components of g. Each component lists its
// vertices in BFS order from its smallest vertex; components are ordered by
// smallest vertex. Options (e.g. WithoutEdge) apply to every traversal;
// a depth limit would break the partition and is rejected.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: Components does not take MaxDepth", ErrOptionViolation)
	}

	n := g.VertexCount()
	seen := make([]bool, n)
	var comps [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, opts...)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// IsConnected reports whether every vertex of g is reachable from vertex 0.
func IsConnected(g *core.Graph, opts ...Option) (bool, error) {
	res, err := BFS(g, 0, opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == g.VertexCount(), nil
}
