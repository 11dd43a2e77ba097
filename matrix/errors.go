// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrMalformedInput indicates the adjacency text has a missing or
	// non-positive N, a non-numeric or negative cell, a row of the wrong
	// width or the wrong number of rows.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
