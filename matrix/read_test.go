package matrix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleInput = `3
0 1 4
1 0 2
4 2 0
`

func TestRead_Valid(t *testing.T) {
	a, err := matrix.Read(strings.NewReader(triangleInput))
	require.NoError(t, err)
	assert.Equal(t, 3, a.Order())
	assert.True(t, a.IsSymmetric())

	w, err := a.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)

	g, err := a.Graph()
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 2},
	}, g.Edges())
}

func TestRead_BlankLinesAndSpacing(t *testing.T) {
	in := "\n  2  \n\n0\t7\n\n7   0\n\n"
	a, err := matrix.Read(strings.NewReader(in))
	require.NoError(t, err)
	w, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"Empty", "", "missing vertex count"},
		{"OnlyBlank", "\n\n", "missing vertex count"},
		{"HeaderNotNumber", "x\n", `"x" is not an integer`},
		{"HeaderZero", "0\n", "must be positive"},
		{"HeaderNegative", "-3\n", "must be positive"},
		{"HeaderTwoValues", "2 2\n0 1\n1 0\n", "single vertex count"},
		{"ShortRow", "2\n0 1\n1\n", "line 3: row 1 has 1 values, want 2"},
		{"LongRow", "2\n0 1 5\n1 0\n", "line 2: row 0 has 3 values"},
		{"NonNumericCell", "2\n0 a\n1 0\n", `line 2: column 1: "a"`},
		{"NegativeCell", "2\n0 -1\n-1 0\n", "negative weight -1"},
		{"CellAtInt64Max", "2\n0 9223372036854775807\n9223372036854775807 0\n", "weight 9223372036854775807 too large"},
		{"MissingRow", "3\n0 1 1\n1 0 1\n", "got 2 rows, want 3"},
		{"ExtraRow", "2\n0 1\n1 0\n1 1\n", "line 4: more than 2 rows"},
		{"HeaderSquareOverflows", "3037000500\n0\n", "too large"},
		{"HeaderFarTooLarge", "4000000000\n", "too large"},
		{"HugeHeaderShortRow", "200000\n0 1\n", "line 2: row 0 has 2 values, want 200000"},
		{"HugeHeaderNoRows", "200000\n", "got 0 rows, want 200000"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var err error
			require.NotPanics(t, func() {
				_, err = matrix.Read(strings.NewReader(tc.in))
			})
			require.ErrorIs(t, err, matrix.ErrMalformedInput)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(triangleInput), 0o600))

	a, err := matrix.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Order())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2\n0 1\n"), 0o600))
	_, err = matrix.ReadFile(bad)
	assert.ErrorIs(t, err, matrix.ErrMalformedInput)
	assert.ErrorContains(t, err, "bad.txt")

	_, err = matrix.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
