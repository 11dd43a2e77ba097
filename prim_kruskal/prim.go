// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a root vertex using an indexed min-heap with decrease-key.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/minheap"
)

// noParent marks a vertex that has not been attached to the tree.
const noParent = -1

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a root vertex (DefaultRoot unless WithRoot is given).
//
// Error Conditions:
//   - ErrNilGraph       : graph is nil.
//   - ErrRootOutOfRange : root is not in [0, V).
//   - ErrDisconnected   : some vertex is unreachable from root (wrapped with that vertex).
//   - ErrWeightOverflow : the tree weight does not fit in int64.
//
// Steps:
//  1. key[v] = +inf, parent[v] = none for every v; key[root] = 0.
//  2. Load every vertex into a minheap.IndexedMinHeap with its key.
//  3. While the heap is non-empty: extract u; for each neighbor v of u still
//     queued with w(u,v) < key[v], set key[v] = w, parent[v] = u and DecreaseKey(v, w).
//  4. Emit (v, parent[v]) for every v ≠ root in increasing v. The total weight
//     is summed from graph.Weight(parent[v], v), the authoritative edge weights,
//     never from heap keys.
//
// A heap error inside the loop means the loop broke its own invariants; Prim
// panics on it instead of returning a wrong tree.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(graph *core.Graph, opts ...Option) (SpanningTree, error) {
	// 1. Resolve options and validate input.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if graph == nil {
		return SpanningTree{}, ErrNilGraph
	}
	n := graph.VertexCount()
	root := cfg.Root
	if root < 0 || root >= n {
		return SpanningTree{}, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}

	// 2. Per-run working state; nothing here outlives this call.
	key := make([]int64, n)
	parent := make([]int, n)
	entries := make([]minheap.Entry, n)
	for v := 0; v < n; v++ {
		key[v] = math.MaxInt64
		parent[v] = noParent
		entries[v] = minheap.Entry{Vertex: v, Key: math.MaxInt64}
	}
	key[root] = 0
	entries[root].Key = 0

	pq := minheap.New(n)
	if err := pq.Init(entries); err != nil {
		panic(fmt.Sprintf("prim_kruskal: heap init: %v", err))
	}

	// 3. Main loop: every vertex is finalized exactly once.
	for !pq.IsEmpty() {
		top, err := pq.ExtractMin()
		if err != nil {
			panic(fmt.Sprintf("prim_kruskal: extract: %v", err))
		}
		u := top.Vertex
		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return SpanningTree{}, err
		}
		for _, nb := range neighbors {
			v := nb.To
			if !pq.Contains(v) || nb.Weight >= key[v] {
				continue
			}
			key[v] = nb.Weight
			parent[v] = u
			if err = pq.DecreaseKey(v, nb.Weight); err != nil {
				panic(fmt.Sprintf("prim_kruskal: decrease key: %v", err))
			}
		}
	}

	// 4. Assemble the result; an unattached non-root vertex means no spanning tree.
	tree := SpanningTree{Root: root, Edges: make([]core.Edge, 0, n-1)}
	for v := 0; v < n; v++ {
		if v == root {
			continue
		}
		if parent[v] == noParent {
			return SpanningTree{}, fmt.Errorf("%w: vertex %d unreachable from root %d", ErrDisconnected, v, root)
		}
		w, ok := graph.Weight(parent[v], v)
		if !ok {
			panic(fmt.Sprintf("prim_kruskal: tree edge %d—%d missing from graph", v, parent[v]))
		}
		total, err := addWeight(tree.Weight, w)
		if err != nil {
			return SpanningTree{}, err
		}
		tree.Edges = append(tree.Edges, core.Edge{From: v, To: parent[v], Weight: w})
		tree.Weight = total
	}

	return tree, nil
}
