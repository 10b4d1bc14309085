// SPDX-License-Identifier: MIT

// validators.go centralizes every precondition check used by the matrix
// package. Facade methods and factory functions call these helpers before
// touching element storage, so each kernel may assume its inputs are sound.
//
// All validators return either nil or a sentinel from errors.go wrapped with
// the validator tag, so callers can test failures with errors.Is while still
// seeing which check rejected the input.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil - Ensures the given Matrix reference is usable.
//
// Inputs:
//   - m: the matrix to inspect; may be nil.
//
// Returns:
//   - error: ErrNilMatrix when m is nil, otherwise nil.
//
// Complexity: O(1).
//
// AI-Hints:
//   - First gate of every facade operation; call before touching m.
//   - A typed nil *Dense still answers its methods with ErrNilMatrix,
//     so interface-level nil is the only case handled here.
func ValidateNotNil(m Matrix) error {
	// Reject absent matrices
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSize - Ensures requested dimensions describe a constructible matrix.
//
// Inputs:
//   - numRow: requested row count.
//   - numCol: requested column count.
//
// Returns:
//   - error: ErrBadSize when either dimension is outside [1, MaxSize],
//     otherwise nil.
//
// Complexity: O(1).
//
// AI-Hints:
//   - The MaxSize ceiling keeps numRow*numCol well inside int range on
//     32-bit builds; every constructor funnels through this check.
func ValidateSize(numRow, numCol int) error {
	// Reject non-positive or oversized row counts
	if numRow < 1 || numRow > MaxSize {
		return validatorErrorf("ValidateSize: Rows", ErrBadSize)
	}
	// Reject non-positive or oversized column counts
	if numCol < 1 || numCol > MaxSize {
		return validatorErrorf("ValidateSize: Columns", ErrBadSize)
	}

	return nil
}

// ValidateIndex - Ensures a single index falls inside [0, bound).
//
// Inputs:
//   - i:     the index to inspect.
//   - bound: exclusive upper limit, typically a dimension count.
//
// Returns:
//   - error: ErrOutOfRange when i is negative or ≥ bound, otherwise nil.
//
// Complexity: O(1).
func ValidateIndex(i, bound int) error {
	// Reject indices outside the half-open interval
	if i < 0 || i >= bound {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateRange - Ensures [lower, upper) is a well-formed sub-interval of
// [0, bound). Empty ranges (lower == upper) are allowed.
//
// Inputs:
//   - lower: inclusive start of the range.
//   - upper: exclusive end of the range.
//   - bound: exclusive upper limit for the whole range.
//
// Returns:
//   - error: ErrOutOfRange when the interval is inverted or escapes
//     [0, bound], otherwise nil.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Used by RemoveRows/RemoveColumns; the caller still decides whether
//     removing the whole span leaves a legal matrix behind.
func ValidateRange(lower, upper, bound int) error {
	// Reject inverted or escaping intervals
	if lower < 0 || upper < lower || upper > bound {
		return validatorErrorf("ValidateRange", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape - Ensures two matrices share identical dimensions.
//
// Inputs:
//   - a, b: matrices to compare; both must be non-nil.
//
// Returns:
//   - error: ErrNilMatrix when either operand is nil,
//     ErrDimensionMismatch when row or column counts differ,
//     otherwise nil.
//
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Both operands must exist
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Row counts must agree
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	// Column counts must agree
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare - Ensures the matrix has as many rows as columns.
//
// Inputs:
//   - m: the matrix to inspect; must be non-nil.
//
// Returns:
//   - error: ErrNilMatrix when m is nil, ErrNonInvertible when the shape
//     is rectangular, otherwise nil.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Inversion is only defined for square shapes, hence the sentinel:
//     a rectangular matrix is reported as non-invertible, not as a
//     dimension mismatch.
func ValidateSquare(m Matrix) error {
	// Operand must exist
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	// Shape must be square
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonInvertible)
	}

	return nil
}

// ValidateMulCompatible - Ensures a×b is defined (inner dimensions agree).
//
// Inputs:
//   - a: left operand; must be non-nil.
//   - b: right operand; must be non-nil.
//
// Returns:
//   - error: ErrNilMatrix when either operand is nil,
//     ErrDimensionMismatch when a.Cols() != b.Rows(), otherwise nil.
//
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	// Both operands must exist
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Inner dimensions must agree
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen - Ensures a coordinate vector has exactly n entries.
//
// Inputs:
//   - v: the vector to inspect.
//   - n: required length.
//
// Returns:
//   - error: ErrNilMatrix when v is nil (the operand is absent),
//     ErrDimensionMismatch when len(v) != n, otherwise nil.
//
// Complexity: O(1).
func ValidateVecLen(v []float64, n int) error {
	// Reject absent vectors; a missing operand mirrors a missing matrix
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	// Length must match the expected dimension
	if len(v) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
