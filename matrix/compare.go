// SPDX-License-Identifier: MIT

// compare.go implements the equality predicates. Three views exist:
// tolerance-based comparison of the float64 cell values (absolute or
// relative epsilon), contract comparison (exact values, any
// implementation), and strict comparison (same concrete type, identical
// stored data down to the extended-precision residues).
//
// In every mode NaN equals NaN and infinities of the same sign are equal:
// comparison answers "is this the same datum", not "are these numbers
// ordered together".

package matrix

import (
	"math"

	"github.com/katalvlaran/crsmat/xprec"
)

// sameBits reports whether two doubles are the same datum: identical bit
// patterns, with all NaN payloads identified. Distinguishes +0 from -0
// and opposite-sign infinities.
func sameBits(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return math.Float64bits(a) == math.Float64bits(b)
}

// termEqual reports whether two cells hold the same datum, presence flag
// and extended-precision residue included.
func termEqual(s, t xprec.Term) bool {
	if s.IsZero() || t.IsZero() {
		return s.IsZero() && t.IsZero()
	}

	return sameBits(s.DD().Hi(), t.DD().Hi()) && sameBits(s.DD().Lo(), t.DD().Lo())
}

// unwrap returns the Dense behind m, reporting whether an Unmodifiable
// wrapper was peeled. Foreign implementations yield nil.
func unwrap(m Matrix) (*Dense, bool) {
	switch t := m.(type) {
	case *Dense:
		return t, false
	case *Unmodifiable:
		d, _ := t.base.(*Dense)
		return d, true
	default:
		return nil, false
	}
}

// equalTolerance is the shared cell-by-cell comparison. Values within
// tolerance are equal; data the tolerance cannot order (NaN, infinities)
// falls back to bit-pattern identity. With relative set, the tolerance is
// scaled by the larger magnitude of each cell pair, finite values only.
func equalTolerance(a, b Matrix, epsilon float64, relative bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	numRow, numCol := a.Rows(), a.Cols()
	if numRow != b.Rows() || numCol != b.Cols() {
		return false
	}

	var i, j int
	var v1, v2 float64
	for j = 0; j < numRow; j++ {
		for i = 0; i < numCol; i++ {
			v1, _ = a.At(j, i)
			v2, _ = b.At(j, i)
			tolerance := epsilon
			if relative {
				f := math.Abs(v1)
				if g := math.Abs(v2); g > f {
					f = g
				}
				if f <= math.MaxFloat64 {
					tolerance *= f
				}
			}
			if !(math.Abs(v1-v2) <= tolerance) && !sameBits(v1, v2) {
				return false
			}
		}
	}

	return true
}

// Equal reports whether two matrices have the same shape and cell values
// within an absolute epsilon. An epsilon of zero demands exact doubles;
// NaN cells match NaN cells regardless of epsilon.
func Equal(a, b Matrix, epsilon float64) bool {
	return equalTolerance(a, b, epsilon, false)
}

// EqualRelative behaves like Equal with the epsilon scaled per cell by
// the larger of the two magnitudes, so big scale factors and small
// translation terms are judged by the same number of significant digits.
func EqualRelative(a, b Matrix, epsilon float64) bool {
	return equalTolerance(a, b, epsilon, true)
}

// EqualMode compares two matrices under a ComparisonMode:
//
//   - Strict: same concrete type and identical stored cells, presence
//     flags and extended-precision residues included. Two foreign
//     implementations never compare strictly.
//   - ByContract: same shape and exactly equal float64 cell values,
//     whatever the implementations.
//   - Approximate: ByContract with a relative tolerance of
//     ComparisonThreshold.
//
// Unknown modes fall back to ByContract, the interface-level contract.
func EqualMode(a, b Matrix, mode ComparisonMode) bool {
	switch mode {
	case Strict:
		return equalStrict(a, b)
	case Approximate:
		return equalTolerance(a, b, ComparisonThreshold, true)
	default:
		return equalTolerance(a, b, 0, false)
	}
}

// equalStrict compares backing storage cell by cell, walking backward the
// way the data was laid out last.
func equalStrict(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	da, wrappedA := unwrap(a)
	db, wrappedB := unwrap(b)
	// Same concrete type required; unknown implementations never match
	if da == nil || db == nil || wrappedA != wrappedB {
		return false
	}
	if da.rows != db.rows || da.cols != db.cols {
		return false
	}

	var k int
	for k = len(da.terms) - 1; k >= 0; k-- {
		if !termEqual(da.terms[k], db.terms[k]) {
			return false
		}
	}

	return true
}
