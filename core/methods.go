// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries over the adjacency slices.
// Determinism:
//   - Neighbors preserves insertion order per vertex.
//   - Edges is ordered by From ascending, then by insertion order within From.

package core

import "fmt"

// AddEdge inserts the undirected edge u—v with weight w.
// Both adjacency slices receive a mirrored entry. Parallel edges are kept.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrNegativeWeight, ErrWeightTooLarge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: %d—%d", ErrLoopNotAllowed, u, v)
	}
	if w < 0 {
		return fmt.Errorf("%w: %d—%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	if w > MaxWeight {
		return fmt.Errorf("%w: %d—%d weight=%d", ErrWeightTooLarge, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: w})
	g.edges++

	return nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges (parallel edges counted individually).
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the adjacency slice of u.
// The slice is shared with the graph and MUST be treated as read-only.
//
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// Weight returns the weight of the cheapest u—v edge.
// ok is false when the vertices are not adjacent or out of range.
//
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v int) (w int64, ok bool) {
	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return 0, false
	}
	for _, nb := range g.adj[u] {
		if nb.To != v {
			continue
		}
		if !ok || nb.Weight < w {
			w, ok = nb.Weight, true
		}
	}

	return w, ok
}

// HasEdge reports whether at least one u—v edge exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)
	return ok
}

// Edges returns every undirected edge once, normalized so that From < To.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbs := range g.adj {
		for _, nb := range nbs {
			if nb.To > u {
				out = append(out, Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	return out
}

// checkVertex validates that u is inside [0, V).
func (g *Graph) checkVertex(u int) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, u, len(g.adj))
	}

	return nil
}
