// SPDX-License-Identifier: MIT
package xprec_test

import (
	"math"
	"math/big"
	"sort"
	"testing"

	"github.com/katalvlaran/crsmat/xprec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWellKnownTableInvariants checks the structural assumptions the
// binary search relies on: ascending order, matching lengths, and every
// error smaller than one ulp of its value.
func TestWellKnownTableInvariants(t *testing.T) {
	require.Equal(t, len(xprec.WellKnownValues), len(xprec.WellKnownErrors))
	require.True(t, sort.Float64sAreSorted(xprec.WellKnownValues), "table must stay sorted for binary search")
	for i, v := range xprec.WellKnownValues {
		require.Less(t, math.Abs(xprec.WellKnownErrors[i]), xprec.Ulp(v),
			"error of %v must stay below one ulp", v)
		require.NotZero(t, xprec.WellKnownErrors[i])
	}
}

// TestWellKnownHits checks that every table entry is found and completed
// with exactly the published error term.
func TestWellKnownHits(t *testing.T) {
	for i, v := range xprec.WellKnownValues {
		d := xprec.FromDecimal(v)
		require.Equal(t, v, d.Hi())
		require.Equal(t, xprec.WellKnownErrors[i], d.Lo(), "error term for %v", v)
	}
}

// TestWellKnownSign checks that negating the value negates the error.
func TestWellKnownSign(t *testing.T) {
	degToRad := 0.017453292519943295
	require.Equal(t, 2.9486522708701687e-19, xprec.ErrorForWellKnownValue(degToRad))
	require.Equal(t, -2.9486522708701687e-19, xprec.ErrorForWellKnownValue(-degToRad))
}

// TestDeltaForDecimalKnown pins the fallback on literals whose residue is
// easy to derive by hand from the binary expansion.
func TestDeltaForDecimalKnown(t *testing.T) {
	// double(0.1) = 0.1000000000000000055511151231257827…, so the decimal
	// literal sits 5.551115123125783e-18 below the float64.
	require.Equal(t, -5.551115123125783e-18, xprec.DeltaForDecimal(0.1))

	// Exactly representable values have no residue.
	require.Zero(t, xprec.DeltaForDecimal(0.5))
	require.Zero(t, xprec.DeltaForDecimal(-0.25))
	require.Zero(t, xprec.DeltaForDecimal(3))
}

// TestDeltaForDecimalProperties verifies the fallback on arbitrary
// literals through its defining property: adding the delta must move the
// value toward its shortest decimal representation, within half an ulp.
func TestDeltaForDecimalProperties(t *testing.T) {
	literals := map[float64]string{
		0.3048:   "0.3048",  // international foot, metres
		2.54:     "2.54",    // inch, centimetres
		0.9996:   "0.9996",  // UTM scale factor
		6.875e-3: "0.006875",
		-41.8:    "-41.8",
	}
	for v, lit := range literals {
		delta := xprec.DeltaForDecimal(v)
		require.Less(t, math.Abs(delta), xprec.Ulp(v)/2+math.SmallestNonzeroFloat64,
			"delta for %v must stay within half an ulp", v)
		d := xprec.FromDecimal(v)
		require.Equal(t, delta, d.Lo())
		requireCloseBig(t, exactDecimal(t, lit), exactDD(d), 1e-30)
	}
}

// TestDeltaForDecimalEdgeValues covers values with no decimal intent.
func TestDeltaForDecimalEdgeValues(t *testing.T) {
	assert.Zero(t, xprec.DeltaForDecimal(0))
	assert.Zero(t, xprec.DeltaForDecimal(math.NaN()))
	assert.Zero(t, xprec.DeltaForDecimal(math.Inf(1)))
	assert.Zero(t, xprec.DeltaForDecimal(math.Inf(-1)))
	assert.Zero(t, xprec.DeltaForDecimal(1e300), "integral magnitudes are taken as base-2 exact")
	assert.Zero(t, xprec.DeltaForDecimal(float64(1<<53)))
}

// TestFromDecimalNonFinite ensures NaN and infinities pass through with a
// zero error term.
func TestFromDecimalNonFinite(t *testing.T) {
	require.True(t, xprec.FromDecimal(math.NaN()).IsNaN())
	require.Zero(t, xprec.FromDecimal(math.NaN()).Lo())

	inf := xprec.FromDecimal(math.Inf(-1))
	require.True(t, math.IsInf(inf.Hi(), -1))
	require.Zero(t, inf.Lo())
}

// TestQuickTwoSumExact checks the |a| ≥ |b| primitive in isolation: the
// pair must carry the exact sum, with the error below one ulp of the value.
func TestQuickTwoSumExact(t *testing.T) {
	d := xprec.QuickTwoSum(1e16, 123.25)
	want := new(big.Float).SetPrec(bigPrec).Add(exact(1e16), exact(123.25))
	require.Equal(t, 0, want.Cmp(exactDD(d)))
	require.Less(t, math.Abs(d.Lo()), xprec.Ulp(d.Hi()))
}
