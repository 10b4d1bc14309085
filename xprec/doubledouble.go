// SPDX-License-Identifier: MIT
package xprec

import (
	"math"
	"strconv"
)

// Significand geometry of float64 and the cancellation cutoff.
const (
	// doublePrecision is the number of significand bits of a float64,
	// counting the implicit leading bit.
	doublePrecision = 53

	// zeroThreshold is the number of low-order significand bits ignored
	// when deciding whether a cancelled sum collapsed to an exact zero.
	// With a value of 2, a residual error not exceeding
	// ulp(operand) × 2^(zeroThreshold−52) is treated as noise.
	zeroThreshold = 2
)

// DoubleDouble is a float64 value extended with a second float64 carrying
// the rounding error of the first: the represented number is hi + lo with
// |lo| < ulp(hi). The zero value is an exact 0.
//
// DoubleDouble is immutable; arithmetic methods return new values.
type DoubleDouble struct {
	hi float64 // main value
	lo float64 // error to add to hi for the best available value
}

// Frequently used constants. The lo parts of the conversion factors are
// the exact base-10 residues of their decimal literals, matching the
// well-known value table in decimal.go.
var (
	// Zero is the exact 0 value.
	Zero = DoubleDouble{}

	// One is the exact 1 value.
	One = DoubleDouble{hi: 1}

	// Pi is π carried to double-double precision.
	Pi = DoubleDouble{hi: 3.14159265358979323846264338327950, lo: 1.2246467991473532e-16}

	// DegreesToRadians is the π/180 conversion factor.
	DegreesToRadians = DoubleDouble{hi: 0.01745329251994329576923690768488613, lo: 2.9486522708701687e-19}

	// RadiansToDegrees is the 180/π conversion factor.
	RadiansToDegrees = DoubleDouble{hi: 57.2957795130823208767981548141052, lo: -1.9878495670576283e-15}

	// SecondsToRadians is the arc-second to radians conversion factor.
	SecondsToRadians = DoubleDouble{hi: 0.000004848136811095359935899141023579480, lo: 9.320078015422868e-23}

	// NaN is the not-a-number value.
	NaN = DoubleDouble{hi: math.NaN(), lo: math.NaN()}
)

// FromValue wraps a float64 assumed exact in base 2: the error term is 0.
// Use it for values produced by transcendental functions or already
// rounded measurements. For decimal literals, prefer FromDecimal.
func FromValue(value float64) DoubleDouble {
	return DoubleDouble{hi: value}
}

// FromDecimal wraps a float64 that was intended to be exact in base 10,
// completing it with the error of its decimal literal: a hard-coded table
// of well-known conversion constants first, then the shortest round-trip
// decimal representation. NaN, ±Inf and integral values get a 0 error.
//
// Complexity: O(log n) table lookup, O(digits) on the fallback path.
func FromDecimal(value float64) DoubleDouble {
	return DoubleDouble{hi: value, lo: errorForWellKnownValue(value)}
}

// FromPair normalizes an arbitrary (hi, lo) pair into a DoubleDouble.
// The pair is renormalized with a quick-two-sum, so the caller does not
// need |lo| < ulp(hi) to hold beforehand, only |hi| ≥ |lo|.
func FromPair(hi, lo float64) DoubleDouble {
	return quickTwoSum(hi, lo)
}

// FromSum returns a + b with its exact rounding error (TwoSum).
//
// Source: [Hida & al.] page 4 algorithm 4, from [Shewchuk] page 314.
func FromSum(a, b float64) DoubleDouble {
	value := a + b
	v := value - a
	return DoubleDouble{hi: value, lo: (a - (value - v)) + (b - v)}
}

// FromProduct returns a × b with its exact rounding error, recovered
// through a fused multiply-add.
//
// Source: [Hida & al.] page 5 algorithm 7, from [Shewchuk] page 326.
func FromProduct(a, b float64) DoubleDouble {
	value := a * b
	return DoubleDouble{hi: value, lo: math.FMA(a, b, -value)}
}

// quickTwoSum returns a + b exactly, assuming |a| ≥ |b|.
//
// Source: [Hida & al.] page 4 algorithm 3, from [Shewchuk] page 312.
func quickTwoSum(a, b float64) DoubleDouble {
	value := a + b
	return DoubleDouble{hi: value, lo: b - (value - a)}
}

// Hi returns the main component.
func (d DoubleDouble) Hi() float64 { return d.hi }

// Lo returns the error component to add to Hi for the most accurate
// available value.
func (d DoubleDouble) Lo() float64 { return d.lo }

// Float64 collapses the value back to a single float64 (hi + lo). For a
// normalized pair the result equals Hi; the sum is kept as a safety.
func (d DoubleDouble) Float64() float64 { return d.hi + d.lo }

// IsZero reports whether the value is exactly 0 in both components.
func (d DoubleDouble) IsZero() bool { return d.hi == 0 && d.lo == 0 }

// IsOne reports whether the value is exactly 1 with no error term.
func (d DoubleDouble) IsOne() bool { return d.hi == 1 && d.lo == 0 }

// IsNaN reports whether either component is NaN.
func (d DoubleDouble) IsNaN() bool { return math.IsNaN(d.hi) || math.IsNaN(d.lo) }

// Neg returns −d.
func (d DoubleDouble) Neg() DoubleDouble {
	return DoubleDouble{hi: -d.hi, lo: -d.lo}
}

// Add returns d + other.
//
// The two main values are added with a TwoSum, the error terms are folded
// into the residual, and the pair is renormalized. A sum whose main value
// cancels to ±0 while only error-term noise remains (residual within
// ulp(other)×2^(zeroThreshold−52)) collapses to an exact zero, so that
// subtracting a value from itself yields 0 rather than a spurious
// leftover in the low word.
//
// Complexity: O(1).
func (d DoubleDouble) Add(other DoubleDouble) DoubleDouble {
	return d.add(other.hi, other.lo)
}

func (d DoubleDouble) add(otherValue, otherError float64) DoubleDouble {
	s := d.hi + otherValue
	v := s - d.hi
	e := (d.hi - (s - v)) + (otherValue - v) + (d.lo + otherError)
	if s == 0 && e != 0 {
		// The two values almost cancelled; only their error terms differ.
		if math.Abs(e) <= math.Ldexp(Ulp(otherValue), zeroThreshold-(doublePrecision-1)) {
			return DoubleDouble{hi: s}
		}
	}
	return quickTwoSum(s, e)
}

// Sub returns d − other.
func (d DoubleDouble) Sub(other DoubleDouble) DoubleDouble {
	return d.add(-other.hi, -other.lo)
}

// Mul returns d × other.
//
// The main product is corrected by an FMA, then the two cross terms
// (error × value) are folded in; the error × error term is neglected.
//
// Complexity: O(1).
func (d DoubleDouble) Mul(other DoubleDouble) DoubleDouble {
	v := d.hi * other.hi
	e := math.FMA(d.hi, other.hi, -v)
	e = math.FMA(other.lo, d.hi, e)
	e = math.FMA(other.hi, d.lo, e)
	return quickTwoSum(v, e)
}

// Div returns d ÷ other.
//
// Stage 1: compute the float64 quotient q = hi/other.hi.
// Stage 2: reconstruct q × other with FMAs and measure the remainder
// of d left over by that product.
// Stage 3: fold remainder/other.hi back into the quotient.
//
// Complexity: O(1).
func (d DoubleDouble) Div(other DoubleDouble) DoubleDouble {
	quotient := d.hi / other.hi
	// The q × other product, as a (pv + pe) pair equal to d ± some error.
	pe := math.FMA(quotient, other.hi, -d.hi)
	pe = math.FMA(quotient, other.lo, pe)
	pv := d.hi + pe
	s := d.hi - pv
	pe += s
	// Remainder d − (pv + pe), inlined TwoSum without the final
	// renormalization.
	v := s - d.hi
	e := (d.hi - (s - v)) - (pv + v) + (d.lo - pe)
	// remainder/other.hi approximates remainder/other well enough here
	// because the term is small against the quotient.
	return quickTwoSum(quotient, (s+e)/other.hi)
}

// Square returns d × d.
func (d DoubleDouble) Square() DoubleDouble {
	return d.Mul(d)
}

// Sqrt returns the square root of d.
//
// It searches (r + ε)² = hi + lo with r = sqrt(hi) and, neglecting ε²,
// ε ≈ (hi + lo − r²) / (2r). A zero value returns Zero; negative values
// propagate NaN through math.Sqrt.
//
// Complexity: O(1).
func (d DoubleDouble) Sqrt() DoubleDouble {
	if d.hi == 0 {
		return Zero
	}
	r := math.Sqrt(d.hi)
	t := FromProduct(r, r)
	t = t.Sub(d)
	t = t.div2r(-2 * r) // the ×2 loses no precision
	return quickTwoSum(r, t.hi)
}

// div2r divides by a plain float64 with a zero error term.
func (d DoubleDouble) div2r(other float64) DoubleDouble {
	return d.Div(DoubleDouble{hi: other})
}

// String renders the collapsed value in the shortest decimal form that
// round-trips, mainly for debugging and test failure messages.
func (d DoubleDouble) String() string {
	return strconv.FormatFloat(d.Float64(), 'g', -1, 64)
}

// Ulp returns the distance between x and the next larger float64 in
// magnitude, following the usual conventions: Ulp(NaN) is NaN,
// Ulp(±Inf) is +Inf, Ulp(0) is the smallest denormal.
func Ulp(x float64) float64 {
	x = math.Abs(x)
	if math.IsInf(x, 1) {
		return x
	}
	return math.Nextafter(x, math.Inf(1)) - x
}
