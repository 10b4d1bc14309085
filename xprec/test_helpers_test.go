// SPDX-License-Identifier: MIT
// Package xprec_test contains shared helpers for the double-double and
// Term test suites.
//
// Purpose:
//   - Verify error-free transformations against exact big.Float arithmetic
//     instead of hand-computed constants wherever possible.
//   - Keep tolerances explicit: double-double carries ~107 significand bits,
//     so results are checked to ~1e-30 relative error, far beyond float64.
package xprec_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/crsmat/xprec"
	"github.com/stretchr/testify/require"
)

// bigPrec is the working precision for exact reference arithmetic,
// comfortably above the ~107 bits a double-double can carry.
const bigPrec = 240

// exact converts a float64 to a big.Float without rounding.
func exact(x float64) *big.Float {
	return new(big.Float).SetPrec(bigPrec).SetFloat64(x)
}

// exactDD returns hi + lo of a DoubleDouble as exact big.Float.
func exactDD(d xprec.DoubleDouble) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Add(exact(d.Hi()), exact(d.Lo()))
}

// exactDecimal parses a decimal literal at full test precision.
func exactDecimal(t *testing.T, literal string) *big.Float {
	t.Helper()
	f, _, err := big.ParseFloat(literal, 10, bigPrec, big.ToNearestEven)
	require.NoError(t, err, "reference literal must parse")
	return f
}

// requireCloseBig asserts |got − want| ≤ tol·|want| in exact arithmetic.
func requireCloseBig(t *testing.T, want, got *big.Float, tol float64) {
	t.Helper()
	diff := new(big.Float).SetPrec(bigPrec).Sub(got, want)
	diff.Abs(diff)
	bound := new(big.Float).SetPrec(bigPrec).Abs(want)
	bound.Mul(bound, big.NewFloat(tol))
	if want.Sign() == 0 {
		bound = big.NewFloat(tol) // absolute bound around zero
	}
	require.True(t, diff.Cmp(bound) <= 0,
		"want %s, got %s, |diff| %s exceeds %s", want, got, diff, bound)
}
