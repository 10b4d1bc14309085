// SPDX-License-Identifier: MIT

// transform.go builds the change-of-coordinate matrices: axis swaps and
// flips, envelope-to-envelope mappings, dimension selection and
// pass-through expansion. All factories return affine matrices in
// homogeneous form, one row and one column larger than the dimensions
// they map, with scale factors and translations carried as
// extended-precision cells.

package matrix

import "github.com/katalvlaran/crsmat/xprec"

// Operation tags for the transform factories.
const (
	opNewTransform          = "NewTransform"
	opNewTransformAxes      = "NewTransformAxes"
	opNewTransformEnvelopes = "NewTransformEnvelopes"
	opNewDimensionSelect    = "NewDimensionSelect"
	opNewPassThrough        = "NewPassThrough"
)

// newTransformCore derives the affine matrix mapping srcAxes onto dstAxes.
// Each target axis searches the source list for the axis on the same line
// (same absolute direction); opposite orientations flip the sign. When
// useEnvelopes is set, unit factors are replaced by span ratios and the
// translation column maps the source corner onto the target lower corner.
// Errors are returned unwrapped; factories add their operation tag.
func newTransformCore(useEnvelopes bool, srcEnv *Envelope, srcAxes []Direction, dstEnv *Envelope, dstAxes []Direction) (*Dense, error) {
	srcLen, dstLen := len(srcAxes), len(dstAxes)
	result, err := NewZero(dstLen+1, srcLen+1)
	if err != nil {
		return nil, err
	}
	numCol := srcLen + 1

	var dstIndex, srcIndex int
	for dstIndex = 0; dstIndex < dstLen; dstIndex++ {
		dstDir := dstAxes[dstIndex]
		search := dstDir.Abs()
		hasFound := false
		for srcIndex = 0; srcIndex < srcLen; srcIndex++ {
			srcDir := srcAxes[srcIndex]
			if srcDir.Abs() != search {
				continue
			}
			// A second source on the same line leaves the mapping ambiguous
			if hasFound {
				return nil, ErrColinearAxes
			}
			hasFound = true
			same := srcDir == dstDir
			if useEnvelopes {
				// scale = dstSpan / srcSpan, negated on an axis flip
				scale := xprec.TermOfDecimal(dstEnv.Span(dstIndex)).Div(xprec.TermOfDecimal(srcEnv.Span(srcIndex)))
				if !same {
					scale = scale.Neg()
				}
				// The translation pins the source corner onto the target
				// lower corner; a flipped axis anchors on the upper corner
				corner := srcEnv.Upper(srcIndex)
				if same {
					corner = srcEnv.Lower(srcIndex)
				}
				translate := xprec.TermOfDecimal(dstEnv.Lower(dstIndex)).Sub(scale.Mul(xprec.TermOfDecimal(corner)))
				result.terms[dstIndex*numCol+srcIndex] = scale
				result.terms[dstIndex*numCol+srcLen] = translate
			} else {
				unit := xprec.TermOne
				if !same {
					unit = unit.Neg()
				}
				result.terms[dstIndex*numCol+srcIndex] = unit
			}
		}
		if !hasFound {
			return nil, ErrAxisNotMappable
		}
	}
	// Homogeneous corner
	result.terms[dstLen*numCol+srcLen] = xprec.TermOne

	return result, nil
}

// NewTransform - Builds the affine transform mapping one gridded space
// onto another, reordering and flipping axes as needed.
//
// Implementation:
//   - Axis matching follows newTransformCore: each target axis claims the
//     single source axis on the same line, flipped orientations negate
//     the scale.
//   - Scale factors are span ratios and translations corner differences,
//     both computed in extended precision from decimally-completed
//     envelope ordinates, so a mapping like metres→feet keeps its exact
//     decimal factor.
//
// Inputs:
//   - srcEnv:  source region; its dimension must equal len(srcAxes).
//   - srcAxes: direction of each source axis.
//   - dstEnv:  target region; its dimension must equal len(dstAxes).
//   - dstAxes: direction of each target axis.
//
// Returns:
//   - *Dense: the (len(dstAxes)+1)×(len(srcAxes)+1) affine transform.
//   - error: ErrNilMatrix for nil envelopes, ErrDimensionMismatch when an
//     envelope disagrees with its axis list, ErrAxisNotMappable when a
//     target axis has no source counterpart, ErrColinearAxes when two
//     source axes live on the same line.
//
// Determinism: identical input yields a bit-identical transform.
// Complexity: O(len(srcAxes)·len(dstAxes)).
//
// AI-Hints:
//   - Unlike NewTransformAxes, identical axis lists are not special-cased
//     here: the envelopes still contribute scales and offsets.
func NewTransform(srcEnv *Envelope, srcAxes []Direction, dstEnv *Envelope, dstAxes []Direction) (*Dense, error) {
	// Stage 1: envelopes must exist and agree with their axis lists
	if srcEnv == nil || dstEnv == nil {
		return nil, matrixErrorf(opNewTransform, ErrNilMatrix)
	}
	if srcEnv.Dimension() != len(srcAxes) || dstEnv.Dimension() != len(dstAxes) {
		return nil, matrixErrorf(opNewTransform, ErrDimensionMismatch)
	}

	// Stage 2: delegate to the matching core
	m, err := newTransformCore(true, srcEnv, srcAxes, dstEnv, dstAxes)
	if err != nil {
		return nil, matrixErrorf(opNewTransform, err)
	}

	return m, nil
}

// NewTransformAxes builds the transform that reorders and flips axes
// without scaling: cells are exact ±1 and the translation column stays
// zero. Identical axis lists short-circuit to the identity, which also
// makes duplicated directions legal in that one case.
//
// Returns ErrAxisNotMappable or ErrColinearAxes as NewTransform does.
// Complexity: O(len(srcAxes)·len(dstAxes)).
func NewTransformAxes(srcAxes, dstAxes []Direction) (*Dense, error) {
	// Identical lists need no search and tolerate duplicates
	if sameDirections(srcAxes, dstAxes) {
		m, err := NewIdentity(len(srcAxes) + 1)
		if err != nil {
			return nil, matrixErrorf(opNewTransformAxes, err)
		}

		return m, nil
	}

	m, err := newTransformCore(false, nil, srcAxes, nil, dstAxes)
	if err != nil {
		return nil, matrixErrorf(opNewTransformAxes, err)
	}

	return m, nil
}

// NewTransformEnvelopes builds the transform mapping one region onto
// another with axes kept in place and in orientation: dimension i maps to
// dimension i. When the regions differ in dimension, the extra target
// dimensions keep zero rows and the extra source dimensions are dropped.
//
// Scales and translations are computed in plain float64 and ingested with
// decimal-literal completion.
// Complexity: O(srcDim·dstDim) dominated by allocation.
func NewTransformEnvelopes(srcEnv, dstEnv *Envelope) (*Dense, error) {
	if srcEnv == nil || dstEnv == nil {
		return nil, matrixErrorf(opNewTransformEnvelopes, ErrNilMatrix)
	}
	srcDim, dstDim := srcEnv.Dimension(), dstEnv.Dimension()
	result, err := NewZero(dstDim+1, srcDim+1)
	if err != nil {
		return nil, matrixErrorf(opNewTransformEnvelopes, err)
	}

	numCol := srcDim + 1
	n := srcDim
	if dstDim < n {
		n = dstDim
	}
	var i int
	for i = n - 1; i >= 0; i-- {
		scale := dstEnv.Span(i) / srcEnv.Span(i)
		translate := dstEnv.Lower(i) - srcEnv.Lower(i)*scale
		result.terms[i*numCol+i] = xprec.TermOfDecimal(scale)
		result.terms[i*numCol+srcDim] = xprec.TermOfDecimal(translate)
	}
	result.terms[dstDim*numCol+srcDim] = xprec.TermOne

	return result, nil
}

// NewDimensionSelect builds the transform selecting or reordering source
// dimensions: target dimension j reads source dimension selected[j].
// Dimensions may repeat, which duplicates an ordinate.
//
// Returns ErrBadSize for a non-positive source dimension count and
// ErrOutOfRange when a selected index escapes [0, srcDim).
// Complexity: O(len(selected)·srcDim) dominated by allocation.
func NewDimensionSelect(srcDim int, selected []int) (*Dense, error) {
	if srcDim < 1 || srcDim > MaxSize {
		return nil, matrixErrorf(opNewDimensionSelect, ErrBadSize)
	}
	result, err := NewZero(len(selected)+1, srcDim+1)
	if err != nil {
		return nil, matrixErrorf(opNewDimensionSelect, err)
	}

	numCol := srcDim + 1
	var j int
	for j = 0; j < len(selected); j++ {
		i := selected[j]
		if err = ValidateIndex(i, srcDim); err != nil {
			return nil, matrixErrorf(opNewDimensionSelect, err)
		}
		result.terms[j*numCol+i] = xprec.TermOne
	}
	result.terms[len(selected)*numCol+srcDim] = xprec.TermOne

	return result, nil
}

// NewPassThrough - Expands a transform with pass-through dimensions
// before and after the dimensions it affects.
//
// Implementation:
//   - The result is an identity of the expanded shape with sub's scale
//     block, translation column and last row spliced in at the offsets
//     dictated by firstAffected; trailing dimensions land after sub's
//     block, shifted when sub changes the dimension count.
//   - Extended-precision cells of a Dense sub survive the splice.
//
// Inputs:
//   - firstAffected: count of leading dimensions passed through untouched.
//   - sub:           the transform to embed, in homogeneous form.
//   - numTrailing:   count of trailing dimensions passed through untouched.
//
// Returns:
//   - *Dense: the expanded transform, of shape
//     (sub.Rows()+firstAffected+numTrailing)×(sub.Cols()+firstAffected+numTrailing).
//   - error: ErrNilMatrix for a nil sub, ErrOutOfRange for negative
//     counts, ErrBadSize for a degenerate sub shape.
//
// Determinism: identical input yields a bit-identical transform.
// Complexity: O(result rows × result cols).
func NewPassThrough(firstAffected int, sub Matrix, numTrailing int) (*Dense, error) {
	// Stage 1: validate the embedding parameters
	if err := ValidateNotNil(sub); err != nil {
		return nil, matrixErrorf(opNewPassThrough, err)
	}
	if firstAffected < 0 || numTrailing < 0 {
		return nil, matrixErrorf(opNewPassThrough, ErrOutOfRange)
	}

	// Stage 2: allocate the expanded shape
	expansion := firstAffected + numTrailing
	srcDim := sub.Cols() - 1
	tgtDim := sub.Rows() - 1
	result, err := NewZero(tgtDim+expansion+1, srcDim+expansion+1)
	if err != nil {
		return nil, matrixErrorf(opNewPassThrough, err)
	}
	numCol := result.cols

	// Stage 3: leading pass-through dimensions
	var i, j int
	for j = 0; j < firstAffected; j++ {
		result.terms[j*numCol+j] = xprec.TermOne
	}

	// Stage 4: splice sub's scale block and translation column
	lastColumn := srcDim + expansion
	result.copyBlock(sub, 0, 0, firstAffected, firstAffected, tgtDim, srcDim)
	result.copyBlock(sub, 0, srcDim, firstAffected, lastColumn, tgtDim, 1)

	// Stage 5: trailing pass-through dimensions, shifted when sub
	// changes the dimension count
	diff := tgtDim - srcDim
	for i = lastColumn - numTrailing; i < lastColumn; i++ {
		result.terms[(diff+i)*numCol+i] = xprec.TermOne
	}

	// Stage 6: sub's last row, copied rather than assumed affine
	lastRow := tgtDim + expansion
	result.copyBlock(sub, tgtDim, 0, lastRow, firstAffected, 1, srcDim)
	result.copyBlock(sub, tgtDim, srcDim, lastRow, lastColumn, 1, 1)

	return result, nil
}

// sameDirections reports whether two axis lists are identical.
func sameDirections(a, b []Direction) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
