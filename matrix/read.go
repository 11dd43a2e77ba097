// SPDX-License-Identifier: MIT
// Package: matrix
//
// read.go - text ingestion for the "N then N×N" adjacency format.
//
// Contract:
//   - Line-oriented: the header is the first non-blank line and must hold
//     exactly one integer; each following non-blank line is one row.
//   - Errors wrap ErrMalformedInput and name the 1-based line number.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/core"
)

// maxLineBytes bounds a single row; 16 MiB fits several hundred thousand cells.
const maxLineBytes = 16 << 20

// Read parses an adjacency matrix from r.
//
// Rows are kept only once their width matches N, so memory follows the
// input actually read rather than the header.
//
// Errors: ErrMalformedInput, or the reader's own error.
// Complexity: O(N²) time and memory.
func Read(r io.Reader) (*Adjacency, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		line int
		n    int
		rows [][]int64
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if n == 0 {
			var err error
			if n, err = parseHeader(line, fields); err != nil {
				return nil, err
			}
			continue
		}

		if len(rows) == n {
			return nil, fmt.Errorf("line %d: more than %d rows: %w", line, n, ErrMalformedInput)
		}
		if len(fields) != n {
			return nil, fmt.Errorf("line %d: row %d has %d values, want %d: %w", line, len(rows), len(fields), n, ErrMalformedInput)
		}
		row := make([]int64, n)
		for j, f := range fields {
			w, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %d: %q is not an integer: %w", line, j, f, ErrMalformedInput)
			}
			if w < 0 {
				return nil, fmt.Errorf("line %d: column %d: negative weight %d: %w", line, j, w, ErrMalformedInput)
			}
			if w > core.MaxWeight {
				return nil, fmt.Errorf("line %d: column %d: weight %d too large: %w", line, j, w, ErrMalformedInput)
			}
			row[j] = w
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}

	if n == 0 {
		return nil, fmt.Errorf("line %d: missing vertex count: %w", line, ErrMalformedInput)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("line %d: got %d rows, want %d: %w", line, len(rows), n, ErrMalformedInput)
	}

	a := &Adjacency{n: n, data: make([]int64, 0, n*n)}
	for _, row := range rows {
		a.data = append(a.data, row...)
	}

	return a, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

func parseHeader(line int, fields []string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("line %d: header must be a single vertex count, got %d values: %w", line, len(fields), ErrMalformedInput)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("line %d: vertex count %q is not an integer: %w", line, fields[0], ErrMalformedInput)
	}
	if n < 1 {
		return 0, fmt.Errorf("line %d: vertex count %d must be positive: %w", line, n, ErrMalformedInput)
	}
	if n > math.MaxInt/n {
		return 0, fmt.Errorf("line %d: vertex count %d too large, N×N overflows: %w", line, n, ErrMalformedInput)
	}

	return n, nil
}
