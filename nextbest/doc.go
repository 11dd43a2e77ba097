// Package nextbest ranks spanning trees of an undirected, weighted *core.Graph
// by distinct total weight using an edge-exclusion heuristic.
//
// What & Why
//
//   - Round 1 is the MST computed by prim_kruskal.Prim from a fixed root.
//
//   - Every later round starts from the previous round's winner. For each edge of
//     that tree, a copy of the ORIGINAL graph lacking exactly that edge is built
//     (core.Graph.WithoutEdge) and Prim runs on it. Copies that fall apart
//     (the excluded edge was a bridge) yield prim_kruskal.ErrDisconnected and are
//     dropped from the pool.
//
//   - Among the remaining candidates whose weight has not yet won a round, the
//     cheapest wins; ties go to the candidate whose excluded edge comes first in
//     the current tree's edge order. The winner's weight is recorded and the
//     winner becomes the current tree.
//
// Caveats
//
// This is a heuristic, not a k-best spanning tree enumeration:
//
//   - Ranks are distinct by TOTAL WEIGHT, not by edge set. Two different trees of
//     equal weight count as the same rank.
//
//   - Only single-edge exclusions of the previous winner are explored, so later
//     rounds may skip trees a full enumeration would find, and a graph with many
//     equal weights can run dry after one round. That outcome is reported as
//     ErrNoEligibleCandidate and leaves the search state unchanged.
//
// Usage
//
//	s, err := nextbest.New(g, nextbest.WithRounds(3))
//	if err != nil { ... }
//	ranking, err := s.Run()
//	if err != nil { ... }
//	fmt.Println(ranking.Weights(), ranking.Exhausted)
//
// First and Next expose the rounds one at a time for callers that want to stop
// early or inspect Candidates between rounds.
//
// Complexity
//
// Each round runs Prim V-1 times on O(V+E) copies: O(V·E log V) per round.
//
// A Search is not safe for concurrent use.
package nextbest
