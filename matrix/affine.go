// SPDX-License-Identifier: MIT

// affine.go groups the helpers that treat matrices as affine transforms in
// homogeneous form: assembling one from a derivative and a translation,
// resizing to a different dimension count, normalizing degenerate scale
// rows, and the affinity predicates shared by the rest of the package.

package matrix

import (
	"math"

	"github.com/katalvlaran/crsmat/xprec"
)

// Operation tags for the affine helpers.
const (
	opNewAffine          = "NewAffine"
	opResizeAffine       = "ResizeAffine"
	opForceUniformScale  = "ForceUniformScale"
	opForceNonZeroScales = "ForceNonZeroScales"
)

// NewAffine assembles an affine transform from a derivative (the scale
// and shear block) and a translation vector. Either part may be nil: a
// nil derivative means identity scales sized from the translation, a nil
// translation means a zero translation column. At least one part must be
// given.
// Stage 1 (Validate): presence and length agreement.
// Stage 2 (Execute): splice the parts into homogeneous form.
// Complexity: O(rows*cols).
func NewAffine(derivative Matrix, translation []float64) (*Dense, error) {
	var result *Dense
	var err error
	var numRow, numCol int

	if derivative != nil {
		numRow, numCol = derivative.Rows(), derivative.Cols()
		if translation != nil && len(translation) != numRow {
			return nil, matrixErrorf(opNewAffine, ErrDimensionMismatch)
		}
		result, err = NewZero(numRow+1, numCol+1)
		if err != nil {
			return nil, matrixErrorf(opNewAffine, err)
		}
		result.terms[numRow*(numCol+1)+numCol] = xprec.TermOne
		result.copyBlock(derivative, 0, 0, 0, 0, numRow, numCol)
	} else {
		// Identity scales sized by the translation
		if translation == nil {
			return nil, matrixErrorf(opNewAffine, ErrNilMatrix)
		}
		numRow = len(translation)
		numCol = numRow
		result, err = NewIdentity(numRow + 1)
		if err != nil {
			return nil, matrixErrorf(opNewAffine, err)
		}
	}

	if translation != nil {
		var j int
		for j = 0; j < len(translation); j++ {
			result.terms[j*(numCol+1)+numCol] = xprec.TermOfDecimal(translation[j])
		}
	}

	return result, nil
}

// ResizeAffine returns an affine transform resized to numRow×numCol.
// The scale block, translation column and last row keep their values;
// dimensions the source did not cover get unit scales. When the requested
// shape equals the current one the same instance is returned.
// Stage 1 (Validate): non-nil input, shape in [1, MaxSize].
// Stage 2 (Execute): splice the four corner blocks around fresh cells.
// Complexity: O(numRow*numCol).
func ResizeAffine(m Matrix, numRow, numCol int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResizeAffine, err)
	}
	if err := ValidateSize(numRow, numCol); err != nil {
		return nil, matrixErrorf(opResizeAffine, err)
	}
	srcRow, srcCol := m.Rows(), m.Cols()
	if numRow == srcRow && numCol == srcCol {
		return m, nil // nothing to resize
	}

	resized, err := NewZero(numRow, numCol)
	if err != nil {
		return nil, matrixErrorf(opResizeAffine, err)
	}
	copyRow := numRow - 1
	if srcRow-1 < copyRow {
		copyRow = srcRow - 1
	}
	copyCol := numCol - 1
	if srcCol-1 < copyCol {
		copyCol = srcCol - 1
	}

	// Unit scales for the dimensions the source did not cover
	var j int
	for j = copyRow; j < numRow-1 && j < numCol-1; j++ {
		resized.terms[j*numCol+j] = xprec.TermOne
	}

	// Scale block, translation column, last row, homogeneous corner
	resized.copyBlock(m, 0, 0, 0, 0, copyRow, copyCol)
	resized.copyBlock(m, 0, srcCol-1, 0, numCol-1, copyRow, 1)
	resized.copyBlock(m, srcRow-1, 0, numRow-1, 0, 1, copyCol)
	resized.copyBlock(m, srcRow-1, srcCol-1, numRow-1, numCol-1, 1, 1)

	return resized, nil
}

// ForceUniformScale - Rescales the rows of an affine transform so that
// every target dimension uses the same scale factor.
//
// Implementation:
//   - Each row's magnitude over the scale block is measured, then every
//     row is rescaled toward a common value chosen between the smallest
//     and largest magnitude: selector 0 picks the minimum, 1 the maximum,
//     0.5 their midpoint.
//   - With an anchor, translation terms are adjusted so the anchor point
//     maps to the same target location before and after: the fused
//     operation p + rescale·(t − p) keeps one rounding per term.
//   - Arithmetic is plain float64; this helper tunes display and
//     gridding transforms where residue tracking has no benefit.
//
// Inputs:
//   - m:        the affine transform to adjust, modified in place.
//   - selector: blend between smallest (0) and largest (1) row magnitude.
//   - anchor:   optional fixed point, one ordinate per target dimension.
//
// Returns:
//   - bool:  whether any cell changed.
//   - error: ErrNilMatrix, ErrOutOfRange for a selector outside [0, 1],
//     ErrDimensionMismatch for a misfit anchor, ErrUnmodifiable when m
//     rejects writes.
//
// Complexity: O(rows*cols).
//
// AI-Hints:
//   - Use after projecting a geographic grid when pixels must stay
//     square; anchor on the grid center to keep it fixed.
func ForceUniformScale(m Matrix, selector float64, anchor []float64) (bool, error) {
	// Stage 1: validate inputs
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opForceUniformScale, err)
	}
	if !(selector >= 0 && selector <= 1) { // rejects NaN too
		return false, matrixErrorf(opForceUniformScale, ErrOutOfRange)
	}
	srcDim := m.Cols() - 1
	tgtDim := m.Rows() - 1
	if anchor != nil && len(anchor) != tgtDim {
		return false, matrixErrorf(opForceUniformScale, ErrDimensionMismatch)
	}

	// Stage 2: measure per-row magnitudes over the scale block
	mgn := make([]float64, tgtDim)
	minScale := math.Inf(1)
	maxScale := 0.0
	var i, j int
	var v float64
	for j = 0; j < tgtDim; j++ {
		sum := 0.0
		for i = 0; i < srcDim; i++ {
			v, _ = m.At(j, i)
			sum += v * v
		}
		g := math.Sqrt(sum)
		if g < minScale {
			minScale = g
		}
		if g > maxScale {
			maxScale = g
		}
		mgn[j] = g
	}

	// Stage 3: rescale rows toward the blended magnitude
	changed := false
	if minScale < maxScale {
		scale := (1-selector)*minScale + selector*maxScale
		for j = 0; j < tgtDim; j++ {
			rescale := scale / mgn[j]
			for i = 0; i < srcDim; i++ {
				v, _ = m.At(j, i)
				n := v * rescale
				if err := m.Set(j, i, n); err != nil {
					return changed, matrixErrorf(opForceUniformScale, err)
				}
				changed = changed || (v != n)
			}
			if anchor != nil {
				p := anchor[j]
				v, _ = m.At(j, srcDim)
				n := math.FMA(rescale, v-p, p)
				if err := m.Set(j, srcDim, n); err != nil {
					return changed, matrixErrorf(opForceUniformScale, err)
				}
				changed = changed || (v != n)
			}
		}
	}

	return changed, nil
}

// ForceNonZeroScales gives every all-zero row of the scale block a scale
// factor, claiming for each such row the first column that no other row
// uses. Typical input is a transform built from incomplete axis data
// where some target dimension ended up disconnected.
//
// Returns true when every zero row could be completed; false when the
// free columns ran out, in which case rows completed before the shortage
// keep their new scale.
// Complexity: O(rows²·cols) in the worst case.
func ForceNonZeroScales(m Matrix, defaultValue float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opForceNonZeroScales, err)
	}
	numCol := m.Cols() - 1
	numRow := m.Rows() - 1
	freeColumn := 0

	var i, j int
rows:
	for j = 0; j < numRow; j++ {
		for i = 0; i < numCol; i++ {
			if v, _ := m.At(j, i); v != 0 {
				continue rows
			}
		}
		// Row j has no scale: claim the first column no row uses
	search:
		for freeColumn < numCol {
			for i = 0; i < numRow; i++ {
				if v, _ := m.At(i, freeColumn); v != 0 {
					freeColumn++
					continue search
				}
			}
			if err := m.Set(j, freeColumn, defaultValue); err != nil {
				return false, matrixErrorf(opForceNonZeroScales, err)
			}
			freeColumn++
			continue rows
		}

		return false, nil // free columns exhausted, earlier fills remain
	}

	return true, nil
}

// IsAffine reports whether m is square with a last row of [0, …, 0, 1].
// Dense and Unmodifiable instances are checked exactly, residues
// included; other implementations through their float64 view.
func IsAffine(m Matrix) bool {
	if m == nil {
		return false
	}
	switch t := m.(type) {
	case *Dense:
		return t.IsAffine()
	case *Unmodifiable:
		return IsAffine(t.base)
	}

	numRow, numCol := m.Rows(), m.Cols()
	if numRow != numCol {
		return false
	}
	// Walk the last row backward; the corner wants a one, the rest zeros
	e := 1.0
	var i int
	for i = numCol - 1; i >= 0; i-- {
		v, _ := m.At(numRow-1, i)
		if v != e {
			return false
		}
		e = 0
	}

	return true
}

// IsTranslation reports whether m is affine with an identity scale block,
// meaning the transform only moves coordinates. The translation column
// itself may hold anything.
func IsTranslation(m Matrix) bool {
	if !IsAffine(m) {
		return false
	}
	numRow, numCol := m.Rows()-1, m.Cols()-1
	var i, j int
	var e float64
	for j = 0; j < numRow; j++ {
		for i = 0; i < numCol; i++ {
			e = 0
			if i == j {
				e = 1
			}
			if v, _ := m.At(j, i); v != e {
				return false
			}
		}
	}

	return true
}

// IsIdentityWithin reports whether m differs from the identity by at most
// tolerance in every cell. NaN cells never pass. A zero tolerance demands
// exact doubles.
func IsIdentityWithin(m Matrix, tolerance float64) bool {
	if m == nil {
		return false
	}
	numRow, numCol := m.Rows(), m.Cols()
	if numRow != numCol || numRow < 1 {
		return false
	}

	var i, j int
	var e float64
	for j = 0; j < numRow; j++ {
		for i = 0; i < numCol; i++ {
			e, _ = m.At(j, i)
			if i == j {
				e--
			}
			if !(math.Abs(e) <= tolerance) { // the negation catches NaN
				return false
			}
		}
	}

	return true
}
