// SPDX-License-Identifier: MIT
package xprec

import (
	"math"
	"math/big"
	"sort"
	"strconv"
)

// wellKnownValues lists unit-conversion constants whose decimal expansion
// is known in advance, sorted ascending for binary search. Some entries
// carry more fraction digits than a float64 holds; the extra digits
// document the decimal value the error term completes.
var wellKnownValues = []float64{
	0.000004848136811095359935899141023579480, // arc-second to radians
	0.0002777777777777777777777777777777778,   // second to degrees
	0.002777777777777777777777777777777778,    // 1/360°
	0.01666666666666666666666666666666667,     // minute to degrees
	0.01745329251994329576923690768488613,     // degree to radians
	0.785398163397448309615660845819876,       // π/4
	1.111111111111111111111111111111111,       // grad to degrees
	1.414213562373095048801688724209698,       // √2
	1.570796326794896619231321691639751,       // π/2
	2.356194490192344928846982537459627,       // π × 3/4
	3.14159265358979323846264338327950,        // π
	6.28318530717958647692528676655901,        // 2π
	57.2957795130823208767981548141052,        // radians to degrees
}

// wellKnownErrors holds, for each entry of wellKnownValues, the difference
// between the exact decimal value and its float64 representation.
var wellKnownErrors = []float64{
	/*  0.000004… */ 9.320078015422868e-23,
	/*  0.000277… */ 2.4093381610788987e-22,
	/*  0.002777… */ -1.0601087908747154e-19,
	/*  0.016666… */ 2.312964634635743e-19,
	/*  0.017453… */ 2.9486522708701687e-19,
	/*  0.785398… */ 3.061616997868383e-17,
	/*  1.111111… */ -4.9343245538895844e-17,
	/*  1.414213… */ -9.667293313452913e-17,
	/*  1.570796… */ 6.123233995736766e-17,
	/*  2.356194… */ 9.184850993605148e-17,
	/*  3.141592… */ 1.2246467991473532e-16,
	/*  6.283185… */ 2.4492935982947064e-16,
	/* 57.295779… */ -1.9878495670576283e-15,
}

// errorForWellKnownValue suggests a low-order error term for a value
// assumed to be defined in base 10. Exact matches against the hard-coded
// constant table win (with the sign of the value carried onto the error);
// anything else falls back to the shortest-decimal delta. The result is
// always smaller in magnitude than one ulp of the value, and is 0 when no
// meaningful decimal intent can be inferred (NaN, ±Inf, integral values).
func errorForWellKnownValue(value float64) float64 {
	abs := math.Abs(value)
	i := sort.SearchFloat64s(wellKnownValues, abs)
	if i < len(wellKnownValues) && wellKnownValues[i] == abs {
		err := wellKnownErrors[i]
		if math.Signbit(value) {
			err = -err
		}
		return err
	}
	return deltaForDecimal(value)
}

// deltaForDecimal returns the difference between the shortest decimal
// representation of value and value itself, that is the amount to add to
// the float64 for landing closer to the base-10 literal it came from.
//
// Stage 1: values of integral magnitude (|value| ≥ 2⁵²), infinities, NaN
// and zero have no decimal residue; return 0.
// Stage 2: format the shortest round-trip decimal, re-read it at 200-bit
// precision, and subtract the exact float64.
//
// |result| ≤ ½ ulp(value) because the shortest representation always
// parses back to value.
//
// Complexity: O(digits).
func deltaForDecimal(value float64) float64 {
	if value == 0 {
		return 0
	}
	if math.Ilogb(value)-(doublePrecision-1) >= 0 {
		// Integral magnitude, or Ilogb's MaxInt32 for NaN and ±Inf.
		return 0
	}
	decimal, _, err := big.ParseFloat(strconv.FormatFloat(value, 'g', -1, 64), 10, 200, big.ToNearestEven)
	if err != nil {
		return 0
	}
	decimal.Sub(decimal, new(big.Float).SetPrec(200).SetFloat64(value))
	delta, _ := decimal.Float64()
	return delta
}
