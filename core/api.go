// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Bulk construction from a weight oracle such as an adjacency matrix.

package core

import "fmt"

// Build creates a graph over v vertices and queries weight(i, j) for every
// i > j (the lower triangle), adding an edge whenever the result is non-zero.
// Querying only i > j keeps symmetric sources from adding each edge twice and
// ignores the diagonal.
//
// Errors: ErrTooFewVertices, ErrNegativeWeight, ErrWeightTooLarge (wrapped with the offending pair).
// Complexity: O(V²) oracle calls.
func Build(v int, weight WeightFunc) (*Graph, error) {
	g, err := NewGraph(v)
	if err != nil {
		return nil, err
	}

	for i := 0; i < v; i++ {
		for j := 0; j < i; j++ {
			w := weight(i, j)
			if w == 0 {
				continue
			}
			if err = g.AddEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("Build: (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
