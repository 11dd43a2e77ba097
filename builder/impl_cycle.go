// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • 3 ≤ n ≤ V (else ErrTooFewVertices / ErrGraphTooSmall).
//   • Emits edges in stable order i—(i+1)%n for i=0..n-1.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/spantree/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n over vertices 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodCycle, g, n, minCycleNodes); err != nil {
			return err
		}
		// for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
