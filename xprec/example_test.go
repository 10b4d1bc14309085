package xprec_test

import (
	"fmt"

	"github.com/katalvlaran/crsmat/xprec"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDoubleDouble_Add
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Add the decimal constants 0.1 and 0.2. In plain float64 arithmetic the
//	binary rounding of each literal leaks into the sum; with decimal-aware
//	ingestion the error terms carry the residues and the collapsed result
//	lands back on the nearest float64 to 0.3.
//
// Complexity: O(1) time, O(1) memory
func ExampleDoubleDouble_Add() {
	// Runtime addition of float64 variables; the constant expression
	// 0.1 + 0.2 would be folded exactly by the compiler and print 0.3.
	a, b := 0.1, 0.2
	plain := a + b
	sum := xprec.FromDecimal(0.1).Add(xprec.FromDecimal(0.2))

	fmt.Println("float64:", plain)
	fmt.Println("xprec:  ", sum.Float64())
	// Output:
	// float64: 0.30000000000000004
	// xprec:   0.3
}

// ExampleFromSum shows the exact error capture of a single addition: the
// float64 sum of 1e16 + 3 lands on the even neighbor 1e16 + 4, and the −1
// it overshoots by is recovered in the low part.
func ExampleFromSum() {
	s := xprec.FromSum(1e16, 3)
	fmt.Println(s.Hi(), s.Lo())
	// Output:
	// 1.0000000000000004e+16 -1
}

// ExampleTerm_Mul demonstrates the structural-zero rule for sparse cells:
// an absent cell absorbs every factor, NaN included, while an exact one
// passes the other operand through untouched.
func ExampleTerm_Mul() {
	nan := xprec.TermOf(xprec.NaN)

	fmt.Println("0 × NaN is zero:", xprec.TermZero.Mul(nan).IsZero())
	fmt.Println("1 × NaN is NaN: ", xprec.TermOne.Mul(nan).IsNaN())
	// Output:
	// 0 × NaN is zero: true
	// 1 × NaN is NaN:  true
}
