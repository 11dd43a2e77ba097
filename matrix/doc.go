// SPDX-License-Identifier: MIT

// Package matrix reads square integer adjacency matrices from text and turns
// them into *core.Graph values.
//
// Input format:
//
//	N
//	a00 a01 ... a0(N-1)
//	...
//	a(N-1)0 ...     a(N-1)(N-1)
//
// The first token is the vertex count N ≥ 1, followed by exactly N lines of
// exactly N whitespace-separated non-negative integers. Blank lines are
// skipped anywhere. A cell value of 0 means "no edge"; the diagonal is ignored.
//
// The matrix is expected to be symmetric. Graph builds edges from the lower
// triangle only (i > j), so an asymmetric matrix is not rejected: callers that
// care check IsSymmetric first and decide.
//
// Storage is a row-major []int64 with index i*N + j; At returns ErrOutOfRange
// rather than panicking on bad indices.
//
// Every parse failure is ErrMalformedInput wrapped with the offending line
// number, so errors.Is works and the message points at the input.
package matrix
