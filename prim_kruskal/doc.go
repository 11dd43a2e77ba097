// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Cut property: for any partition of V, the cheapest edge crossing it belongs to some MST.
//     Both algorithms are greedy applications of that property.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (SpanningTree, error)
//
//   - Strategy: every vertex starts in an indexed min-heap (minheap.IndexedMinHeap) with
//     key +inf, the root with key 0. Repeatedly extract the cheapest vertex u and, for each
//     neighbor v still queued with w(u,v) < key[v], record parent[v] = u and DecreaseKey(v).
//     The heap holds exactly V entries at all times, no duplicates.
//
//   - Complexity: O(E log V) time, O(V) extra space.
//
//   - Output: (child, parent) for every non-root vertex in increasing child order; the total
//     weight is taken from the graph's own edge weights, not from heap keys.
//
//   - Kruskal(g *core.Graph) (SpanningTree, error)
//
//   - Strategy: sort all edges by weight (stable), then union-find merge.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Role: independent cross-check for Prim in tests; selectable via Compute.
//
// Error Conditions
//
//	- ErrNilGraph       - graph is nil.
//	- ErrRootOutOfRange - Prim root not in [0, V).
//	- ErrDisconnected   - some vertex cannot be reached. This is an ordinary outcome, not a
//	                      crash: callers exploring edge-excluded graphs treat it as "no tree".
//	- ErrWeightOverflow - the total tree weight does not fit in int64.
//	- ErrUnknownMethod  - Compute got an unrecognized MSTOptions.Method.
//
// Heap misuse inside Prim (extracting from an empty heap, raising a key) can only happen if
// the algorithm itself is broken; Prim panics on it rather than returning a bogus tree.
//
// Every call owns its key/parent arrays and its heap; nothing is shared between calls, so
// results from repeated runs never alias each other.
package prim_kruskal
