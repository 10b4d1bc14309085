// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, solver and factories.
// This file intentionally contains ONLY domain-facing types (the public
// Matrix contract, comparison modes, axis directions, envelopes) plus the
// package-wide size bound. Errors live in errors.go, validation helpers in
// validators.go per the package conventions.
package matrix

import "strconv"

// MaxSize is the largest accepted value for either dimension of a matrix.
// It keeps numRow*numCol comfortably inside the int range and bounds the
// O(n³) solver; transform matrices are tiny (≤ ~10×10) in practice.
const MaxSize = 32767

// ComparisonThreshold is the relative tolerance used by the Approximate
// comparison mode: two cells match when they differ by less than this
// fraction of the larger magnitude.
const ComparisonThreshold = 1e-14

// Matrix represents a two-dimensional grid of float64 values.
// It is the contract consumed by collaborators: a rectangular grid of
// real numbers with row/column accessors and bulk element access.
//
// Complexity notes: all methods are expected O(1) except Elements
// (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j), 0 for a structurally
	// absent cell. Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j). An exact 0 clears the
	// cell; any other value is completed with its decimal-literal error.
	// Returns ErrOutOfRange on invalid indices, ErrUnmodifiable on a
	// read-only view.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Elements returns a copy of all values in row-major order.
	// Complexity: O(rows*cols).
	Elements() []float64
}

// ComparisonMode selects the strictness of EqualMode.
type ComparisonMode int

// Comparison modes, from the most to the least strict.
const (
	// Strict requires the same concrete type and bitwise-identical cells.
	Strict ComparisonMode = iota

	// ByContract requires equal shapes and bitwise-identical values as
	// seen through the Matrix contract, regardless of concrete type.
	ByContract

	// Approximate tolerates relative differences up to
	// ComparisonThreshold and treats NaN cells as equal.
	Approximate
)

// String returns the mode name for error messages and test output.
func (m ComparisonMode) String() string {
	switch m {
	case Strict:
		return "Strict"
	case ByContract:
		return "ByContract"
	case Approximate:
		return "Approximate"
	default:
		return "ComparisonMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Direction identifies the orientation of a coordinate-system axis.
// Opposite senses of one axis share the same magnitude with opposite
// signs, so matching "same or reversed axis" is a comparison of absolute
// values. The zero value is not a valid direction.
type Direction int

// Axis directions in opposite-sense pairs.
const (
	// North is the direction of increasing northing; South is its opposite.
	North Direction = 1
	South Direction = -1

	// East is the direction of increasing easting; West is its opposite.
	East Direction = 2
	West Direction = -2

	// Up is the direction of increasing height; Down is its opposite.
	Up   Direction = 3
	Down Direction = -3

	// Future is the direction of increasing time; Past is its opposite.
	Future Direction = 4
	Past   Direction = -4
)

// Abs returns the direction stripped of its sense, so that an axis and
// its reverse map to the same value.
func (d Direction) Abs() Direction {
	if d < 0 {
		return -d
	}
	return d
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction { return -d }

// String returns the direction name for error messages and test output.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Future:
		return "Future"
	case Past:
		return "Past"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Envelope is a box in coordinate space: one lower and one upper corner
// with the same number of ordinates. It carries exactly the information
// the transform factories need (corner values and spans); it performs no
// validation of lower ≤ upper because reversed spans are meaningful
// (axis flips produce negative scale factors).
type Envelope struct {
	lower []float64 // lower corner ordinates, one per dimension
	upper []float64 // upper corner ordinates, one per dimension
}

// NewEnvelope builds an envelope from its two corners. The slices are
// copied. Returns ErrBadSize when the corners are empty and
// ErrDimensionMismatch when their lengths differ.
func NewEnvelope(lower, upper []float64) (*Envelope, error) {
	if len(lower) == 0 {
		return nil, validatorErrorf("NewEnvelope", ErrBadSize)
	}
	if len(lower) != len(upper) {
		return nil, validatorErrorf("NewEnvelope", ErrDimensionMismatch)
	}
	e := &Envelope{
		lower: make([]float64, len(lower)),
		upper: make([]float64, len(upper)),
	}
	copy(e.lower, lower)
	copy(e.upper, upper)

	return e, nil
}

// Dimension returns the number of ordinates per corner.
func (e *Envelope) Dimension() int { return len(e.lower) }

// Lower returns the lower-corner ordinate of dimension i.
// The index must be in [0, Dimension).
func (e *Envelope) Lower(i int) float64 { return e.lower[i] }

// Upper returns the upper-corner ordinate of dimension i.
// The index must be in [0, Dimension).
func (e *Envelope) Upper(i int) float64 { return e.upper[i] }

// Span returns upper − lower for dimension i. A negative span means the
// axis runs in the decreasing direction.
func (e *Envelope) Span(i int) float64 { return e.upper[i] - e.lower[i] }
