// SPDX-License-Identifier: MIT
// Package matrix_test contains shared helpers for the matrix test suites.
//
// Purpose:
//   - Keep construction and cell access noise out of the test bodies.
//   - Provide the hide wrapper that strips the concrete type from a
//     matrix, forcing the interface fallback paths.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/crsmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide strips the concrete type from a Matrix so that operations must go
// through the interface instead of the Dense fast paths.
type hide struct {
	matrix.Matrix
}

// MustZero builds an all-zero Dense or fails the test.
func MustZero(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewZero(rows, cols)
	require.NoError(t, err, "NewZero(%d,%d)", rows, cols)
	return m
}

// MustNew builds a Dense from row-major elements or fails the test.
func MustNew(t *testing.T, rows, cols int, elements []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rows, cols, elements)
	require.NoError(t, err, "New(%d,%d)", rows, cols)
	return m
}

// MustIdentity builds an identity Dense or fails the test.
func MustIdentity(t *testing.T, size int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(size)
	require.NoError(t, err, "NewIdentity(%d)", size)
	return m
}

// MustAt reads one cell or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, row, col int) float64 {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err, "At(%d,%d)", row, col)
	return v
}

// MustSet writes one cell or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, row, col int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(row, col, v), "Set(%d,%d,%g)", row, col, v)
}

// requireCells asserts every cell of m equals want exactly, NaN matching
// NaN. want is indexed [row][col].
func requireCells(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "column count in row %d", i)
		for j = 0; j < len(want[i]); j++ {
			got := MustAt(t, m, i, j)
			if math.IsNaN(want[i][j]) {
				require.True(t, math.IsNaN(got), "cell (%d,%d): want NaN, got %g", i, j, got)
				continue
			}
			require.Equal(t, want[i][j], got, "cell (%d,%d)", i, j)
		}
	}
}

// requireCellsWithin asserts every cell of m is within tol of want.
func requireCellsWithin(t *testing.T, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			got := MustAt(t, m, i, j)
			require.InDelta(t, want[i][j], got, tol, "cell (%d,%d)", i, j)
		}
	}
}
