// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//     Edge weights are ignored.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance from start, Unreached for vertices never seen
//   - Parent: predecessor in the BFS tree, NoParent for start and unreached vertices
//   - Supports an OnVisit hook (may abort with an error), a neighbor filter
//     and a depth limit.
//   - Components partitions all vertices into connected components.
//
// Why
//
//   - A spanning tree exists exactly when the graph has one component, so
//     Components answers "why is there no tree" with the actual pieces.
//   - WithoutEdge hides a single edge, which previews whether dropping
//     that edge disconnects the graph. It hides one copy of a parallel
//     edge, as core.Graph.WithoutEdge does.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit
//	sequence is fully reproducible for a given graph.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or a hook error
//	}
//	path, err := res.PathTo(7)
//
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
