// SPDX-License-Identifier: MIT

// Package core defines the Graph, Edge and Neighbor types together with the
// sentinel errors returned by graph construction.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewVertices indicates a graph was requested with fewer than one vertex.
	ErrTooFewVertices = errors.New("core: graph needs at least one vertex")

	// ErrVertexOutOfRange indicates a vertex index outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")

	// ErrLoopNotAllowed indicates a self-loop u—u was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// MaxWeight is the largest accepted edge weight. math.MaxInt64 itself is
// reserved as the "no key yet" value of Prim's heap.
const MaxWeight int64 = math.MaxInt64 - 1

// Edge is an undirected weighted connection between From and To.
//
// For edges reported by Graph.Edges, From < To. Spanning-tree results use
// From as the child and To as its parent.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Neighbor is one adjacency entry: the opposite endpoint and the edge weight.
type Neighbor struct {
	To     int
	Weight int64
}

// WeightFunc reports the weight between i and j; zero means "no edge".
// Build queries it only for i > j.
type WeightFunc func(i, j int) int64

// Graph is a weighted undirected graph over vertices 0..V-1.
//
// adj[u] lists every (v, w) with an edge u—v of weight w; each undirected
// edge appears in both adj[u] and adj[v]. edges counts undirected edges.
type Graph struct {
	adj   [][]Neighbor
	edges int
}

// NewGraph creates a graph with v isolated vertices.
// Complexity: O(V).
func NewGraph(v int) (*Graph, error) {
	if v < 1 {
		return nil, ErrTooFewVertices
	}

	return &Graph{adj: make([][]Neighbor, v)}, nil
}
