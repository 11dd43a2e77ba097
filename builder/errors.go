// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum the
// requested topology needs (e.g. Cycle needs 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphTooSmall indicates a constructor addressed more vertices than the
// graph allocated by BuildGraph holds.
var ErrGraphTooSmall = errors.New("builder: graph has fewer vertices than requested")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction step failed (nil constructor,
// rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")
