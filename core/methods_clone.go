// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copy-on-exclude. Graphs are never mutated once built; excluding an
// edge always produces a fresh Graph with its own adjacency slices.

package core

import "fmt"

// Clone returns a deep copy of g. The copy shares no slices with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make([][]Neighbor, len(g.adj)), edges: g.edges}
	for u, nbs := range g.adj {
		c.adj[u] = append([]Neighbor(nil), nbs...)
	}

	return c
}

// WithoutEdge returns a copy of g lacking exactly one e.From—e.To edge of
// weight e.Weight. Orientation of e is irrelevant. When parallel edges of the
// same weight exist only the first one found is dropped.
//
// Errors: ErrVertexOutOfRange, ErrEdgeNotFound.
// Complexity: O(V + E).
func (g *Graph) WithoutEdge(e Edge) (*Graph, error) {
	if err := g.checkVertex(e.From); err != nil {
		return nil, err
	}
	if err := g.checkVertex(e.To); err != nil {
		return nil, err
	}

	iu := indexOf(g.adj[e.From], e.To, e.Weight)
	iv := indexOf(g.adj[e.To], e.From, e.Weight)
	if iu < 0 || iv < 0 {
		return nil, fmt.Errorf("%w: %d—%d weight=%d", ErrEdgeNotFound, e.From, e.To, e.Weight)
	}

	c := &Graph{adj: make([][]Neighbor, len(g.adj)), edges: g.edges - 1}
	for u, nbs := range g.adj {
		skip := -1
		switch u {
		case e.From:
			skip = iu
		case e.To:
			skip = iv
		}
		if skip < 0 {
			c.adj[u] = append([]Neighbor(nil), nbs...)
			continue
		}
		row := make([]Neighbor, 0, len(nbs)-1)
		row = append(row, nbs[:skip]...)
		c.adj[u] = append(row, nbs[skip+1:]...)
	}

	return c, nil
}

// indexOf finds the first entry pointing at to with weight w, or -1.
func indexOf(nbs []Neighbor, to int, w int64) int {
	for i, nb := range nbs {
		if nb.To == to && nb.Weight == w {
			return i
		}
	}

	return -1
}
