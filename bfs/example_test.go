package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/core"
)

// ExampleComponents shows why a graph has no spanning tree.
func ExampleComponents() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(3, 4, 1)

	comps, _ := bfs.Components(g)
	fmt.Println(len(comps), comps)
	// Output:
	// 2 [[0 1 2] [3 4]]
}
