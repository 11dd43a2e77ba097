// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It is the independent cross-check for Prim: same graph, different strategy, same total weight.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph     : if graph is nil.
//   - ErrDisconnected : if |V| > 1 and the graph is not fully connected.
//   - ErrWeightOverflow : if the tree weight does not fit in int64.
//
// Steps:
//  1. Validate graph != nil. If |V| == 1 → trivial MST (empty, weight=0).
//  2. Collect all edges via graph.Edges() (normalized From < To, no self-loops by construction).
//  3. Sort edges by ascending Weight (sort.SliceStable keeps graph.Edges() order for ties).
//  4. Initialize DSU slices parent[] and rank[].
//  5. Loop over sorted edges: if find(u) != find(v), union(u,v) and include the edge.
//  6. Once MST has |V|-1 edges, break. After loop, if MST edge count < |V|-1 → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (SpanningTree, error) {
	// 1. Validate input.
	if graph == nil {
		return SpanningTree{}, ErrNilGraph
	}
	numVerts := graph.VertexCount()
	if numVerts == 1 {
		return SpanningTree{Root: -1, Edges: []core.Edge{}}, nil
	}

	// 2-3. Collect and stably sort edges by weight.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint-set forest: parent[v] = v, rank[v] = 0.
	parent := make([]int, numVerts)
	rank := make([]int, numVerts)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v; reports false if already joined.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 5. Build MST by iterating over sorted edges.
	tree := SpanningTree{Root: -1, Edges: make([]core.Edge, 0, numVerts-1)}
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		total, err := addWeight(tree.Weight, e.Weight)
		if err != nil {
			return SpanningTree{}, err
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight = total
		if len(tree.Edges) == numVerts-1 {
			break
		}
	}

	// 6. Fewer than |V|-1 edges means at least two components.
	if len(tree.Edges) < numVerts-1 {
		return SpanningTree{}, ErrDisconnected
	}

	return tree, nil
}
