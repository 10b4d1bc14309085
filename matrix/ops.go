// SPDX-License-Identifier: MIT

// ops.go implements the arithmetic and structural operations of Dense:
// multiplication, vector application, translation folding, axis-unit
// conversions, transposition, column normalization and row/column removal.
// All arithmetic runs on xprec.Term cells, so exact zeros annihilate and
// extended-precision residues ride along through every product chain.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crsmat/xprec"
)

// Operation tags used when wrapping sentinel errors.
const (
	opMul              = "Mul"
	opMulVec           = "MulVec"
	opTranslate        = "Translate"
	opConvertBefore    = "ConvertBefore"
	opConvertAfter     = "ConvertAfter"
	opTranspose        = "Transpose"
	opNormalizeColumns = "NormalizeColumns"
	opRemoveRows       = "RemoveRows"
	opRemoveColumns    = "RemoveColumns"
	opInverse          = "Inverse"
	opSolve            = "Solve"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mul - Computes the matrix product receiver × other.
//
// Implementation:
//   - Every scalar product and running sum is carried as an xprec.Term,
//     so each result cell holds a compensated dot product.
//   - Absent cells annihilate: 0 × anything is an exact zero, NaN and
//     infinities included. A concatenation that never touches an axis
//     therefore cannot pollute it.
//
// Inputs:
//   - other: right operand; other.Rows() must equal the receiver's Cols().
//
// Returns:
//   - *Dense: a freshly allocated Rows()×other.Cols() product.
//   - error: ErrNilMatrix or ErrDimensionMismatch, wrapped with the op tag.
//
// Determinism: identical operands yield bit-identical products.
// Complexity: O(n³) for square n×n operands.
//
// AI-Hints:
//   - Chain conversions by multiplying their matrices; the residues keep
//     degree-based scale factors exact across long chains.
func (d *Dense) Mul(other Matrix) (*Dense, error) {
	// Stage 1: operands must exist and agree on the inner dimension
	if d == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(d, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: allocate the target shape
	numRow, numCol := d.rows, other.Cols()
	result, err := NewZero(numRow, numCol)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: compensated dot products, absent cells skipping naturally
	var i, j, k int
	for i = 0; i < numRow; i++ {
		for j = 0; j < numCol; j++ {
			sum := xprec.TermZero
			for k = 0; k < d.cols; k++ {
				sum = sum.Add(d.terms[i*d.cols+k].Mul(termAt(other, k, j)))
			}
			result.terms[i*numCol+j] = sum
		}
	}

	return result, nil
}

// MulVec applies the matrix to a coordinate vector and returns the image.
// The vector is ingested with decimal-literal completion and the dot
// products run in extended precision before rounding each component once.
// Stage 1 (Validate): nil receiver; len(v) must equal Cols().
// Stage 2 (Execute): one compensated dot product per row.
// Complexity: O(rows*cols).
func (d *Dense) MulVec(v []float64) ([]float64, error) {
	if d == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(v, d.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	out := make([]float64, d.rows)
	var i, j int
	for j = 0; j < d.rows; j++ {
		sum := xprec.TermZero
		for i = 0; i < d.cols; i++ {
			sum = sum.Add(d.terms[j*d.cols+i].Mul(xprec.TermOfDecimal(v[i])))
		}
		out[j] = sum.Float64() // one rounding per component
	}

	return out, nil
}

// Translate folds a translation vector into the matrix in place.
// The vector lives in the source space of the transform, in homogeneous
// form: len(v) == Cols(), with the last component usually 1 so the
// existing translation column is folded into the new one. After the call
// the last column holds the extended-precision product M×v.
// Stage 1 (Validate): nil receiver; vector length.
// Stage 2 (Execute): compensated dot product per row, written to the
// translation column.
// Complexity: O(rows*cols).
func (d *Dense) Translate(v []float64) error {
	if d == nil {
		return matrixErrorf(opTranslate, ErrNilMatrix)
	}
	if err := ValidateVecLen(v, d.cols); err != nil {
		return matrixErrorf(opTranslate, err)
	}

	last := d.cols - 1
	var i, j int
	for j = 0; j < d.rows; j++ {
		sum := xprec.TermZero
		for i = 0; i < d.cols; i++ {
			sum = sum.Add(d.terms[j*d.cols+i].Mul(xprec.TermOfDecimal(v[i])))
		}
		d.terms[j*d.cols+last] = sum
	}

	return nil
}

// ConvertBefore concatenates a one-dimensional unit conversion before this
// transform: source ordinate srcDim is scaled then offset on its way in.
// Equivalent to receiver × T where T is an identity carrying scale at
// (srcDim, srcDim) and offset at (srcDim, last), but computed cheaply in
// place. Passing nil leaves the corresponding part unchanged.
//
// The offset contribution uses the scale column as it was before the
// scale factor is applied, so "offset, then scale" composes correctly.
//
// Returns ErrOutOfRange when srcDim addresses the homogeneous column.
// Complexity: O(rows).
func (d *Dense) ConvertBefore(srcDim int, scale, offset *float64) error {
	if d == nil {
		return matrixErrorf(opConvertBefore, ErrNilMatrix)
	}
	// The homogeneous column is not a convertible ordinate
	if err := ValidateIndex(srcDim, d.cols-1); err != nil {
		return matrixErrorf(opConvertBefore, err)
	}

	last := d.cols - 1
	var j int
	for j = d.rows - 1; j >= 0; j-- {
		// Offset first: it reads the unscaled source column
		if offset != nil {
			o := xprec.TermOfDecimal(*offset)
			t := d.terms[j*d.cols+last]
			d.terms[j*d.cols+last] = t.Add(d.terms[j*d.cols+srcDim].Mul(o))
		}
		if scale != nil {
			s := xprec.TermOfDecimal(*scale)
			d.terms[j*d.cols+srcDim] = d.terms[j*d.cols+srcDim].Mul(s)
		}
	}

	return nil
}

// ConvertAfter concatenates a one-dimensional unit conversion after this
// transform: target ordinate tgtDim is scaled then offset on its way out.
// Equivalent to T × receiver with T an identity carrying scale and offset
// on row tgtDim. Passing nil leaves the corresponding part unchanged.
//
// Returns ErrOutOfRange when tgtDim addresses the homogeneous row.
// Complexity: O(cols).
func (d *Dense) ConvertAfter(tgtDim int, scale, offset *float64) error {
	if d == nil {
		return matrixErrorf(opConvertAfter, ErrNilMatrix)
	}
	// The homogeneous row is not a convertible ordinate
	if err := ValidateIndex(tgtDim, d.rows-1); err != nil {
		return matrixErrorf(opConvertAfter, err)
	}

	last := d.cols - 1
	var i int
	if scale != nil {
		s := xprec.TermOfDecimal(*scale)
		for i = last; i >= 0; i-- {
			d.terms[tgtDim*d.cols+i] = d.terms[tgtDim*d.cols+i].Mul(s)
		}
	}
	if offset != nil {
		o := xprec.TermOfDecimal(*offset)
		d.terms[tgtDim*d.cols+last] = d.terms[tgtDim*d.cols+last].Add(o)
	}

	return nil
}

// Transpose flips the matrix about its main diagonal in place.
// Square matrices swap cells pairwise; rectangular matrices rebuild the
// backing slice and exchange their dimensions.
// Complexity: O(rows*cols).
func (d *Dense) Transpose() error {
	if d == nil {
		return matrixErrorf(opTranspose, ErrNilMatrix)
	}

	var i, j int
	if d.rows == d.cols {
		// Pairwise swap above the diagonal
		for i = 0; i < d.rows; i++ {
			for j = i + 1; j < d.cols; j++ {
				a, b := i*d.cols+j, j*d.cols+i
				d.terms[a], d.terms[b] = d.terms[b], d.terms[a]
			}
		}

		return nil
	}

	// Rectangular: rebuild with swapped dimensions
	swapped := make([]xprec.Term, len(d.terms))
	for i = 0; i < d.rows; i++ {
		for j = 0; j < d.cols; j++ {
			swapped[j*d.rows+i] = d.terms[i*d.cols+j]
		}
	}
	d.rows, d.cols = d.cols, d.rows
	d.terms = swapped

	return nil
}

// NormalizeColumns - Rescales every column to unit Euclidean norm in place.
//
// Implementation:
//   - Each column magnitude is accumulated as a compensated sum of Term
//     squares, then rooted with one extended-precision Newton step.
//   - All-zero columns are left untouched and report a zero magnitude;
//     there is nothing meaningful to divide by.
//   - When the division drives some entry to magnitude ≥ 1, the column is
//     snapped to a signed unit vector: that entry becomes an exact ±1 and
//     the rest exact zeros. Rounding can otherwise leave a rotation column
//     infinitesimally longer than one, which breaks downstream exactness
//     checks such as IsAffine. The snapped zeros are the unsigned absence
//     state, so the sign a negative zero would carry is not preserved.
//
// Returns:
//   - *Dense: a 1×Cols() row of the original column magnitudes.
//   - error: ErrNilMatrix when the receiver is nil.
//
// Determinism: identical input yields a bit-identical result.
// Complexity: O(rows*cols).
//
// AI-Hints:
//   - Useful before extracting scale factors from a concatenated
//     transform: magnitudes carry the scales, the normalized matrix the
//     rotation part.
func (d *Dense) NormalizeColumns() (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opNormalizeColumns, ErrNilMatrix)
	}
	magnitudes, err := NewZero(1, d.cols)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}

	var i, j, k int
	for i = 0; i < d.cols; i++ {
		// Stage 1: compensated column magnitude
		sum := xprec.TermZero
		for j = 0; j < d.rows; j++ {
			sum = sum.Add(d.terms[j*d.cols+i].Square())
		}
		sum = sum.Sqrt()
		if sum.IsZero() {
			continue // nothing to normalize, magnitude stays zero
		}

		// Stage 2: divide the column through, remembering a dominant entry
		rowOfOne := -1
		for j = 0; j < d.rows; j++ {
			k = j*d.cols + i
			dot := d.terms[k].Div(sum)
			if math.Abs(dot.Float64()) >= 1 {
				rowOfOne = j
			}
			d.terms[k] = dot
		}

		// Stage 3: snap to an exact signed unit vector
		if rowOfOne >= 0 {
			for j = 0; j < d.rows; j++ {
				k = j*d.cols + i
				if j != rowOfOne {
					d.terms[k] = xprec.TermZero
					continue
				}
				one := xprec.TermOne
				if math.Signbit(d.terms[k].Float64()) {
					one = one.Neg()
				}
				d.terms[k] = one
			}
		}
		magnitudes.terms[i] = sum
	}

	return magnitudes, nil
}

// RemoveRows returns a copy of the matrix with rows [lower, upper)
// removed. The receiver is left untouched; an empty range yields a plain
// copy. Removing every row is rejected, a matrix needs at least one.
// Stage 1 (Validate): nil receiver, range bounds, surviving row count.
// Stage 2 (Execute): copy surviving rows in order.
// Complexity: O(rows*cols).
func (d *Dense) RemoveRows(lower, upper int) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opRemoveRows, ErrNilMatrix)
	}
	if err := ValidateRange(lower, upper, d.rows); err != nil {
		return nil, matrixErrorf(opRemoveRows, err)
	}
	remaining := d.rows - (upper - lower)
	if remaining < 1 {
		return nil, matrixErrorf(opRemoveRows, ErrBadSize)
	}

	reduced, err := NewZero(remaining, d.cols)
	if err != nil {
		return nil, matrixErrorf(opRemoveRows, err)
	}
	var j, dest int
	for j = 0; j < d.rows; j++ {
		// Jump over the removed band
		if j == lower {
			j = upper
			if j == d.rows {
				break
			}
		}
		copy(reduced.terms[dest*d.cols:(dest+1)*d.cols], d.terms[j*d.cols:(j+1)*d.cols])
		dest++
	}

	return reduced, nil
}

// RemoveColumns returns a copy of the matrix with columns [lower, upper)
// removed. The receiver is left untouched; an empty range yields a plain
// copy. Removing every column is rejected.
// Complexity: O(rows*cols).
func (d *Dense) RemoveColumns(lower, upper int) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opRemoveColumns, ErrNilMatrix)
	}
	if err := ValidateRange(lower, upper, d.cols); err != nil {
		return nil, matrixErrorf(opRemoveColumns, err)
	}
	remaining := d.cols - (upper - lower)
	if remaining < 1 {
		return nil, matrixErrorf(opRemoveColumns, ErrBadSize)
	}

	reduced, err := NewZero(d.rows, remaining)
	if err != nil {
		return nil, matrixErrorf(opRemoveColumns, err)
	}
	var i, j, dest int
	for i = 0; i < d.cols; i++ {
		// Jump over the removed band
		if i == lower {
			i = upper
			if i == d.cols {
				break
			}
		}
		for j = 0; j < d.rows; j++ {
			reduced.terms[j*remaining+dest] = d.terms[j*d.cols+i]
		}
		dest++
	}

	return reduced, nil
}
