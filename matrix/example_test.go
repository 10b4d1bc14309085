package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/crsmat/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFormat
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render a feet-to-metres conversion. Exact zeros and ones print as bare
//	integers aligned with the integer digits, so the affine structure of
//	the transform is visible at a glance; the scale factor keeps its
//	decimal digits.
//
// Complexity: O(rows*cols) time, O(rows*cols) memory
func ExampleFormat() {
	feet, _ := matrix.New(2, 2, []float64{
		0.3048, 0,
		0, 1,
	})

	fmt.Print(matrix.Format(feet))
	// Output:
	// ┌           ┐
	// │ 0.3048  0 │
	// │ 0       1 │
	// └           ┘
}

// ExampleNewTransformAxes maps a (northing, westing) coordinate system
// onto (easting, northing): the easting reads the westing negated and the
// northing passes through unchanged.
func ExampleNewTransformAxes() {
	m, _ := matrix.NewTransformAxes(
		[]matrix.Direction{matrix.North, matrix.West},
		[]matrix.Direction{matrix.East, matrix.North},
	)

	fmt.Print(m)
	// Output:
	// ┌          ┐
	// │ 0  -1  0 │
	// │ 1   0  0 │
	// │ 0   0  1 │
	// └          ┘
}

// ExampleDense_Inverse inverts a scale-and-translate transform: with
// extended-precision cells the inverse scales and translations come out
// exact, with no rotation residue in the zero cells.
func ExampleDense_Inverse() {
	m, _ := matrix.New(3, 3, []float64{
		2, 0, 10,
		0, 4, 20,
		0, 0, 1,
	})
	inv, _ := m.Inverse()

	fmt.Print(inv)
	// Output:
	// ┌                 ┐
	// │ 0.5  0     -5.0 │
	// │ 0    0.25  -5.0 │
	// │ 0    0      1   │
	// └                 ┘
}
