// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> size/shape -> index bounds -> dimension mismatch
// -> numeric failure (ErrNonInvertible) -> mapping failures -> view violations.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadSize is returned when a requested dimension is < 1 or exceeds
	// MaxSize. Constructors must validate before allocation.
	ErrBadSize = errors.New("matrix: invalid size")

	// ErrOutOfRange indicates that an index (row, column or selector) is
	// outside valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector shorter than a row.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonInvertible is returned when inversion or solving fails: the matrix
	// is singular (zero pivot after partial pivoting), not square, or holds
	// NaN placeholders that cannot be carried through to the result.
	ErrNonInvertible = errors.New("matrix: matrix is not invertible")

	// ErrAxisNotMappable signals that a requested axis direction has no
	// counterpart (same or opposite sense) among the source directions.
	ErrAxisNotMappable = errors.New("matrix: axis direction not mappable")

	// ErrColinearAxes signals that two distinct target axes matched the same
	// source axis, so the change-of-axes matrix would be rank deficient.
	ErrColinearAxes = errors.New("matrix: colinear axis directions")

	// ErrUnmodifiable is returned by mutators invoked on a read-only view.
	ErrUnmodifiable = errors.New("matrix: unmodifiable matrix")
)
