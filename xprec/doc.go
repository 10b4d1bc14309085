// Package xprec implements the extended-precision arithmetic that backs
// every matrix cell in crsmat: double-double values and zero-as-absence
// terms.
//
// # DoubleDouble
//
// A DoubleDouble carries a value as an unevaluated sum of two float64
// components (hi + lo) where |lo| is smaller than one ulp of hi. This
// roughly doubles the effective significand (~107 bits), which is what
// keeps long dot products and LU elimination from drowning small
// translation terms in rounding noise. The primitives are the classic
// error-free transformations:
//
//   - QuickTwoSum (|a| ≥ |b|) and TwoSum for additions,
//     [Shewchuk] p.312/314, [Hida & al.] algorithms 3 and 4;
//   - an FMA-based product, [Hida & al.] algorithm 7, [Shewchuk] p.326;
//   - compensated long division and a Newton-refined square root.
//
// # Decimal-aware ingestion
//
// Coordinate work is full of constants that are exact in base 10 but not
// in base 2: 0.3048 (feet to metres), 2.54, π/180, arc-second factors.
// FromDecimal completes such a value with the error of its decimal
// literal: first a hard-coded table of well-known conversion constants
// (various factors of π, degree/radian and grad factors, √2), then a
// fallback that measures the distance between the float64 and its
// shortest round-trip decimal representation. The result is that a
// degrees→radians scale carried through a transform and its inverse
// comes back without drift.
//
// # Term
//
// A Term is one matrix cell: either the exact-zero absence state or a
// nonzero DoubleDouble payload. The zero value of the type is the zero
// cell. Term arithmetic treats absence as an exact structural zero, so
//
//	Zero × anything == Zero,    including NaN and ±Inf operands.
//
// That law is what lets an affine matrix hold NaN "unknown" placeholders
// without contaminating the structurally-zero cells around them during
// multiplication or elimination. Any arithmetic result that lands on
// exactly zero normalizes back to the absence state, so a Term never
// stores a literal zero.
//
// All types in this package are immutable values; methods return new
// values and never mutate the receiver. The package has no error
// conditions: IEEE semantics (NaN, ±Inf) flow through arithmetic the
// same way they do for plain float64.
package xprec
