// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • 2 ≤ n ≤ V.
//   • Emits edges i—(i+1) for i=0..n-2 in ascending i.
//   • A path over all V vertices is a spanning tree; composing it with other
//     constructors guarantees connectivity.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/spantree/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n over vertices 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodPath, g, n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
