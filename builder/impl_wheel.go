// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • 4 ≤ n ≤ V; vertex 0 is the hub, 1..n-1 form the rim cycle.
//   • Emits rim edges i—(i%(n-1))+1 for i=1..n-1 first, then spokes 0—i.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/spantree/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a rim cycle over 1..n-1 plus spokes to hub 0.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkSize(methodWheel, g, n, minWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		for i := 1; i <= rim; i++ {
			if err := addEdge(methodWheel, g, cfg, i, i%rim+1); err != nil {
				return err
			}
		}
		for i := 1; i <= rim; i++ {
			if err := addEdge(methodWheel, g, cfg, hubVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
