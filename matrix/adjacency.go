// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go - dense N×N weight table and its conversion to core.Graph.
//
// Contract:
//   - Immutable once returned by Read/ReadFile or NewAdjacency.
//   - Accessors return ErrOutOfRange instead of panicking.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

const ctxAt = "At"

// Adjacency is a square weight matrix stored row-major.
type Adjacency struct {
	n    int
	data []int64
}

// NewAdjacency copies rows into a new Adjacency. Every row must have len(rows)
// entries and no entry may be negative.
//
// Errors: ErrMalformedInput.
func NewAdjacency(rows [][]int64) (*Adjacency, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewAdjacency: empty matrix: %w", ErrMalformedInput)
	}
	a := &Adjacency{n: n, data: make([]int64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewAdjacency: row %d has %d values, want %d: %w", i, len(row), n, ErrMalformedInput)
		}
		for j, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("NewAdjacency: (%d,%d)=%d negative: %w", i, j, w, ErrMalformedInput)
			}
			a.data[i*n+j] = w
		}
	}

	return a, nil
}

// Order returns N, the number of vertices.
func (a *Adjacency) Order() int {
	return a.n
}

// At returns the weight in row i, column j.
func (a *Adjacency) At(i, j int) (int64, error) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return a.data[i*a.n+j], nil
}

// IsSymmetric reports whether a[i][j] == a[j][i] for all i ≠ j.
// Complexity: O(N²) over the upper triangle.
func (a *Adjacency) IsSymmetric() bool {
	return len(a.Asymmetries()) == 0
}

// Asymmetries lists the (i, j) pairs with i < j where a[i][j] != a[j][i].
func (a *Adjacency) Asymmetries() [][2]int {
	var out [][2]int
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != a.data[j*a.n+i] {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Graph builds a core.Graph from the lower triangle via core.Build.
// Zero cells produce no edge.
func (a *Adjacency) Graph() (*core.Graph, error) {
	return core.Build(a.n, func(i, j int) int64 {
		return a.data[i*a.n+j]
	})
}
