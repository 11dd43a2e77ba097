// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options graph
// constructors used as fixtures by tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     - BuildGraph(n, bopts, cons...): allocate a core.Graph over n vertices,
//     resolve options, apply constructors in order.
//   - Topologies (Constructor implementations):
//     - Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), RandomSparse(n, p).
//   - Edge-weight distributions (WeightFn implementations):
//     - DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     - ConstantWeightFn:  fixed user-provided value.
//     - UniformWeightFn:   uniform integer in [min,max].
//   - Configuration primitives:
//     - BuilderOption: WithSeed, WithRand, WithWeightFn.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//   - Composition: constructors only add edges, so Path(n) + RandomSparse(n,p)
//     yields a connected random graph (possibly with parallel edges).
package builder
