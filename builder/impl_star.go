// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • 2 ≤ n ≤ V; vertex 0 is the hub, 1..n-1 are leaves.
//   • Emits 0—i for i=1..n-1. Every edge is a bridge.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/spantree/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubVertex    = 0
)

// Star returns a Constructor that connects hub 0 to every leaf 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodStar, g, n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, hubVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
