package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

// ExamplePrim_pentagon demonstrates Prim's algorithm on a simple 5-vertex pentagon graph.
// Edges: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
// The MST is {0–1, 1–2, 2–3, 3–4} with total weight = 11.
func ExamplePrim_pentagon() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 4, 12)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(3, 4, 5)

	mst, err := prim_kruskal.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", mst.Weight)
	for _, e := range mst.Edges {
		fmt.Printf(" %d-%d", e.To, e.From) // parent-child
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleKruskal_mediumGraph demonstrates Kruskal's algorithm on a 4-vertex "letter envelope".
// Edges: 0—1 (4), 1—2 (2), 2—3 (5), 3—0 (4), 0—2 (1), 1—3 (3).
// The MST has 3 edges: {0–2, 1–2, 1–3} with total weight = 6.
func ExampleKruskal_mediumGraph() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)
	_ = g.AddEdge(3, 0, 4)

	mst, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", mst.Weight)
	for _, e := range mst.Edges {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 6, Edges: 0-2 1-2 1-3
}

// ExamplePrim_errDisconnected shows the explicit failure for an isolated vertex.
func ExamplePrim_errDisconnected() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)

	_, err := prim_kruskal.Prim(g)
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected: vertex 2 unreachable from root 0
}
