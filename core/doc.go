// SPDX-License-Identifier: MIT

// Package core provides the compact, index-addressed Graph used by the
// spanning-tree algorithms of this module.
//
// The Graph G = (V,E) is weighted and undirected over vertices 0..V-1:
//
//   - Vertices are dense integers; V is fixed at construction (NewGraph / Build).
//   - Each vertex owns one contiguous adjacency slice of (neighbor, weight) entries.
//   - An undirected edge u—v is stored twice, once in each endpoint's slice.
//   - Parallel edges are kept as-is (no deduplication); self-loops are rejected.
//   - Weights are non-negative int64 values.
//
// Why an index-addressed graph?
//
//   - Prim's algorithm with an indexed heap needs O(1) vertex → slot lookups;
//     dense integer IDs make the position map a plain slice.
//   - Adjacency slices are cache-friendly and need no manual node lifetime.
//   - Excluding an edge never mutates a graph: WithoutEdge returns a fresh copy,
//     so a graph handed to an algorithm is effectively immutable.
//
// Core Methods:
//
//	NewGraph(v int) (*Graph, error)              // O(V)
//	Build(v int, weight WeightFunc) (*Graph, error) // O(V²) weight queries, lower triangle only
//	AddEdge(u, v int, w int64) error             // O(1) amortized
//	Neighbors(u int) ([]Neighbor, error)         // O(1), read-only view
//	Weight(u, v int) (int64, bool)               // O(deg(u))
//	HasEdge(u, v int) bool                       // O(deg(u))
//	Edges() []Edge                               // O(V+E)
//	WithoutEdge(e Edge) (*Graph, error)          // O(V+E), copy minus one edge
//	Clone() *Graph                               // O(V+E)
//
// Errors:
//
//	ErrTooFewVertices   - V < 1.
//	ErrVertexOutOfRange - vertex index outside [0, V).
//	ErrNegativeWeight   - weight < 0.
//	ErrLoopNotAllowed   - u == v.
//	ErrEdgeNotFound     - WithoutEdge target absent.
//
// Concurrency:
//
//	Graph carries no locks. Build it on one goroutine, then share it read-only.
package core
