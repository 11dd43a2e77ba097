// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • 1 ≤ n ≤ V.
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/spantree/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodComplete, g, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
