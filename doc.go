// Package spantree computes minimum spanning trees with Prim's algorithm on an
// indexed min-heap, then ranks further spanning trees by distinct total weight.
//
// 🚀 What is inside?
//
//	• core/         - undirected weighted Graph over vertices 0..V-1, copy-on-exclude
//	• minheap/      - indexed binary min-heap with O(1) membership and decrease-key
//	• prim_kruskal/ - Prim (heap-driven) and Kruskal (union-find) MST
//	• nextbest/     - k-round edge-exclusion ranking of spanning trees
//	• matrix/       - reader for the "N then N×N" adjacency text format
//	• builder/      - deterministic graph constructors for tests and benchmarks
//	• cmd/spantree  - CLI: `spantree mst`, `spantree rank`
//
// ✨ Guarantees
//
//   - Graphs are never mutated once an algorithm holds them; excluding an edge
//     always builds a copy.
//   - Every Prim run owns its heap and working arrays and returns a fresh result.
//   - Disconnection and an exhausted ranking are ordinary errors
//     (prim_kruskal.ErrDisconnected, nextbest.ErrNoEligibleCandidate);
//     broken heap invariants panic.
//
// Quick example: the 5-cycle with weight-1 ring edges
//
//	  0───1
//	 /     \
//	4       2
//	 \     /
//	  `─3─'
//
// has MST weight 4. Removing any one ring edge still leaves a weight-4 path, so
// the ranking stops after round 1 with ErrNoEligibleCandidate: ranks are
// distinct by weight, not by edge set.
//
//	go install github.com/katalvlaran/spantree/cmd/spantree@latest
package spantree
