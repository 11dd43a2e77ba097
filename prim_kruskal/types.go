// Package prim_kruskal defines the SpanningTree result, configuration options
// and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an MST algorithm.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrRootOutOfRange indicates that the Prim root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It is a recoverable, data-dependent
// outcome: callers ranking alternative trees simply skip such candidates.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrWeightOverflow indicates that the total spanning-tree weight does not fit in int64.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the vertex Prim grows from unless WithRoot says otherwise.
const DefaultRoot = 0

// SpanningTree is the result of one MST run. It is a fresh value per call and
// is never shared between runs.
//
// For Prim, Edges holds (child, parent, weight) for every vertex other than
// Root in increasing child order. For Kruskal, Edges holds the accepted edges
// normalized to From < To in acceptance order, and Root is -1.
type SpanningTree struct {
	Root   int
	Weight int64
	Edges  []core.Edge
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and is ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Prim from DefaultRoot.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   DefaultRoot,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	- If opts.Method == MethodPrim:    calls Prim(graph, WithRoot(opts.Root)).
//	- If opts.Method == MethodKruskal: calls Kruskal(graph).
//	- Otherwise:                        returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (SpanningTree, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(graph, WithRoot(opts.Root))
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return SpanningTree{}, ErrUnknownMethod
	}
}

// addWeight returns total+w, or ErrWeightOverflow when the sum leaves int64.
// Both operands are non-negative, as core rejects negative weights.
func addWeight(total, w int64) (int64, error) {
	if w > math.MaxInt64-total {
		return 0, fmt.Errorf("%w: %d + %d", ErrWeightOverflow, total, w)
	}

	return total + w, nil
}
