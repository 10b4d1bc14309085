// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense facade operations:
// products, conversions, transposition, normalization and row/column
// removal.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/crsmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 2, []float64{1, 2, 3, 4})
	p, err := a.Mul(MustIdentity(t, 2))
	require.NoError(t, err)
	requireCells(t, [][]float64{{1, 2}, {3, 4}}, p)
	require.True(t, matrix.EqualMode(a, p, matrix.ByContract))
}

func TestMul_Known2x2(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 2, []float64{1, 2, 3, 4})
	b := MustNew(t, 2, 2, []float64{5, 6, 7, 8})
	p, err := a.Mul(b)
	require.NoError(t, err)
	requireCells(t, [][]float64{{19, 22}, {43, 50}}, p)
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := MustNew(t, 3, 1, []float64{1, 1, 1})
	p, err := a.Mul(b)
	require.NoError(t, err)
	requireCells(t, [][]float64{{6}, {15}}, p)
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	a := MustZero(t, 2, 3)
	_, err := a.Mul(MustZero(t, 2, 3))
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch), "want ErrDimensionMismatch, got %v", err)

	_, err = a.Mul(nil)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix), "want ErrNilMatrix, got %v", err)

	var nilDense *matrix.Dense
	_, err = nilDense.Mul(a)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix), "want ErrNilMatrix, got %v", err)
}

// TestMul_ZeroAnnihilatesNaN checks the structural-zero law: an exact zero
// annihilates whatever it meets, NaN included, so untouched axes cannot be
// polluted by an unknown term elsewhere.
func TestMul_ZeroAnnihilatesNaN(t *testing.T) {
	t.Parallel()

	a := MustZero(t, 2, 2)
	MustSet(t, a, 0, 0, math.NaN())
	MustSet(t, a, 0, 1, 1)
	MustSet(t, a, 1, 1, 1)
	b := MustNew(t, 2, 2, []float64{0, 0, 0, 5})

	p, err := a.Mul(b)
	require.NoError(t, err)
	// NaN×0 contributes an exact zero, so no NaN survives
	requireCells(t, [][]float64{{0, 5}, {0, 5}}, p)

	// The same law holds when the operand hides its concrete type
	p, err = a.Mul(hide{b})
	require.NoError(t, err)
	requireCells(t, [][]float64{{0, 5}, {0, 5}}, p)
}

// TestMul_DecimalResidue checks that decimal ingestion makes 0.1 × 10
// collapse back to an exact 1 in the float64 view.
func TestMul_DecimalResidue(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 1, 1, []float64{0.1})
	b := MustNew(t, 1, 1, []float64{10})
	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 1.0, MustAt(t, p, 0, 0), "0.1×10 must collapse to exactly 1")
}

func TestMulVec(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	got, err := m.MulVec([]float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, got)

	_, err = m.MulVec([]float64{1, 2})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch), "want ErrDimensionMismatch, got %v", err)
	_, err = m.MulVec(nil)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix), "want ErrNilMatrix, got %v", err)
}

func TestMulVec_ZeroAnnihilatesNaN(t *testing.T) {
	t.Parallel()

	m := MustZero(t, 2, 2)
	MustSet(t, m, 0, 0, math.NaN())
	MustSet(t, m, 1, 1, 2)

	// The zero vector component annihilates the NaN cell
	got, err := m.MulVec([]float64{0, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 6}, got)

	// A non-zero component meets the NaN and propagates it
	got, err = m.MulVec([]float64{1, 3})
	require.NoError(t, err)
	require.True(t, math.IsNaN(got[0]))
	require.Equal(t, 6.0, got[1])
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 3, 3, []float64{
		2, 0, 3,
		0, 3, 4,
		0, 0, 1,
	})
	require.NoError(t, m.Translate([]float64{1, 1, 1}))
	requireCells(t, [][]float64{
		{2, 0, 5},
		{0, 3, 7},
		{0, 0, 1},
	}, m)

	err := m.Translate([]float64{1, 2})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch), "want ErrDimensionMismatch, got %v", err)
}

// TestConvertBefore_MatchesFactoredProduct cross-checks the in-place
// conversion against the explicit product with the conversion matrix.
func TestConvertBefore_MatchesFactoredProduct(t *testing.T) {
	t.Parallel()

	scale, offset := 2.5, -1.0
	m := MustNew(t, 3, 3, []float64{
		2, 0, 3,
		0, 3, 4,
		0, 0, 1,
	})
	conversion := MustNew(t, 3, 3, []float64{
		scale, 0, offset,
		0, 1, 0,
		0, 0, 1,
	})
	want, err := m.Mul(conversion)
	require.NoError(t, err)

	require.NoError(t, m.ConvertBefore(0, &scale, &offset))
	require.True(t, matrix.EqualMode(want, m, matrix.ByContract),
		"ConvertBefore must equal multiplication by the conversion matrix")
	requireCells(t, [][]float64{
		{5, 0, 1},
		{0, 3, 4},
		{0, 0, 1},
	}, m)
}

func TestConvertBefore_PartsAndBounds(t *testing.T) {
	t.Parallel()

	scale := 3.0
	m := MustNew(t, 2, 2, []float64{2, 1, 0, 1})
	// Scale only
	require.NoError(t, m.ConvertBefore(0, &scale, nil))
	requireCells(t, [][]float64{{6, 1}, {0, 1}}, m)
	// Neither part: a no-op
	require.NoError(t, m.ConvertBefore(0, nil, nil))
	requireCells(t, [][]float64{{6, 1}, {0, 1}}, m)

	// The homogeneous column is not convertible
	err := m.ConvertBefore(1, &scale, nil)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange), "want ErrOutOfRange, got %v", err)
}

// TestConvertAfter_MatchesFactoredProduct cross-checks the in-place
// conversion against the explicit product conversion × m.
func TestConvertAfter_MatchesFactoredProduct(t *testing.T) {
	t.Parallel()

	scale, offset := 3.0, 2.0
	m := MustNew(t, 3, 3, []float64{
		2, 0, 3,
		0, 3, 4,
		0, 0, 1,
	})
	conversion := MustNew(t, 3, 3, []float64{
		scale, 0, offset,
		0, 1, 0,
		0, 0, 1,
	})
	want, err := conversion.Mul(m)
	require.NoError(t, err)

	require.NoError(t, m.ConvertAfter(0, &scale, &offset))
	require.True(t, matrix.EqualMode(want, m, matrix.ByContract),
		"ConvertAfter must equal multiplication by the conversion matrix")
	requireCells(t, [][]float64{
		{6, 0, 11},
		{0, 3, 4},
		{0, 0, 1},
	}, m)

	err = m.ConvertAfter(2, &scale, nil)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange), "want ErrOutOfRange, got %v", err)
}

func TestTranspose_Square(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, m.Transpose())
	requireCells(t, [][]float64{{1, 3}, {2, 4}}, m)

	// Transposing twice restores the original
	require.NoError(t, m.Transpose())
	requireCells(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestTranspose_Rectangular(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, m.Transpose())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	requireCells(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m)
}

func TestNormalizeColumns_Magnitudes(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 2, []float64{
		3, 0,
		4, 0,
	})
	magnitudes, err := m.NormalizeColumns()
	require.NoError(t, err)

	// sqrt(3²+4²) is exactly 5; the zero column reports zero
	require.Equal(t, 1, magnitudes.Rows())
	require.Equal(t, 2, magnitudes.Cols())
	require.Equal(t, 5.0, MustAt(t, magnitudes, 0, 0))
	require.Equal(t, 0.0, MustAt(t, magnitudes, 0, 1))

	requireCellsWithin(t, [][]float64{
		{0.6, 0},
		{0.8, 0},
	}, m, 1e-15)
}

// TestNormalizeColumns_SnapsUnitVectors checks that a column dominated by
// one entry collapses to an exact signed unit vector.
func TestNormalizeColumns_SnapsUnitVectors(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 2, []float64{
		5, 0,
		0, -7,
	})
	magnitudes, err := m.NormalizeColumns()
	require.NoError(t, err)
	require.Equal(t, 5.0, MustAt(t, magnitudes, 0, 0))
	require.Equal(t, 7.0, MustAt(t, magnitudes, 0, 1))

	// Exactness matters: the snapped columns must keep the matrix affine-grade
	requireCells(t, [][]float64{
		{1, 0},
		{0, -1},
	}, m)
	cell, err := m.TermAt(0, 0)
	require.NoError(t, err)
	require.True(t, cell.IsOne(), "snapped cell must be an exact one")
}

func TestRemoveRows(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 4, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
	})
	reduced, err := m.RemoveRows(1, 3)
	require.NoError(t, err)
	requireCells(t, [][]float64{{1, 2}, {7, 8}}, reduced)
	// The original stays intact
	require.Equal(t, 4, m.Rows())

	// An empty range yields a plain copy
	all, err := m.RemoveRows(2, 2)
	require.NoError(t, err)
	require.True(t, matrix.EqualMode(m, all, matrix.ByContract))

	_, err = m.RemoveRows(0, 5)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange), "want ErrOutOfRange, got %v", err)
	_, err = m.RemoveRows(0, 4)
	require.True(t, errors.Is(err, matrix.ErrBadSize), "removing every row: want ErrBadSize, got %v", err)
}

func TestRemoveColumns(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	reduced, err := m.RemoveColumns(1, 3)
	require.NoError(t, err)
	requireCells(t, [][]float64{{1, 4}, {5, 8}}, reduced)

	_, err = m.RemoveColumns(3, 1)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange), "want ErrOutOfRange, got %v", err)
	_, err = m.RemoveColumns(0, 4)
	require.True(t, errors.Is(err, matrix.ErrBadSize), "removing every column: want ErrBadSize, got %v", err)
}

func TestRemoveRows_KeepsResidues(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 1, []float64{0.1, 2})
	reduced, err := m.RemoveRows(1, 2)
	require.NoError(t, err)

	want, err := m.TermAt(0, 0)
	require.NoError(t, err)
	got, err := reduced.TermAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, want.DD().Lo(), got.DD().Lo(), "removal must not re-ingest surviving cells")
}
