// SPDX-License-Identifier: MIT
package xprec

// Term is one matrix cell: either the exact-zero absence state or a
// nonzero extended-precision payload. The zero value of the type is the
// zero cell, and every constructor and arithmetic method normalizes a
// result that lands on exact zero back to that state, so a Term never
// holds a literal zero payload.
//
// Absence is an exact structural zero, not a rounded one. Arithmetic on
// Terms therefore short-circuits before IEEE rules can interfere:
// multiplying the zero Term by a NaN or infinite Term yields the zero
// Term, which is what keeps NaN "unknown value" placeholders in a matrix
// from leaking into structurally-zero cells.
type Term struct {
	dd      DoubleDouble
	nonzero bool
}

// Canonical cells.
var (
	// TermZero is the absent cell, an exact 0.
	TermZero = Term{}

	// TermOne is the exact 1 cell.
	TermOne = Term{dd: One, nonzero: true}
)

// TermOf wraps a DoubleDouble as a cell, normalizing exact zero to the
// absence state.
func TermOf(d DoubleDouble) Term {
	if d.IsZero() {
		return Term{}
	}
	return Term{dd: d, nonzero: true}
}

// TermOfDecimal wraps a float64 that was intended to be exact in base 10,
// completing it with the error of its decimal literal (see FromDecimal).
// A ±0 becomes the absence state; the sign of a negative zero is not
// preserved.
func TermOfDecimal(value float64) Term {
	if value == 0 {
		return Term{}
	}
	return Term{dd: FromDecimal(value), nonzero: true}
}

// IsZero reports whether the cell is the exact-zero absence state.
func (t Term) IsZero() bool { return !t.nonzero }

// IsOne reports whether the cell holds exactly 1 with no error term.
func (t Term) IsOne() bool { return t.nonzero && t.dd.IsOne() }

// IsNaN reports whether the cell holds a NaN payload.
func (t Term) IsNaN() bool { return t.nonzero && t.dd.IsNaN() }

// DD returns the extended-precision payload, or Zero for the absent cell.
func (t Term) DD() DoubleDouble {
	if !t.nonzero {
		return Zero
	}
	return t.dd
}

// Float64 collapses the cell to a plain float64 (0 when absent).
func (t Term) Float64() float64 {
	if !t.nonzero {
		return 0
	}
	return t.dd.Float64()
}

// Neg returns −t. Negating the absent cell yields the absent cell.
func (t Term) Neg() Term {
	if !t.nonzero {
		return Term{}
	}
	return Term{dd: t.dd.Neg(), nonzero: true}
}

// Add returns t + other, treating absence as exact zero on either side.
func (t Term) Add(other Term) Term {
	if !t.nonzero {
		return other
	}
	if !other.nonzero {
		return t
	}
	return TermOf(t.dd.Add(other.dd))
}

// Sub returns t − other, treating absence as exact zero on either side.
func (t Term) Sub(other Term) Term {
	if !other.nonzero {
		return t
	}
	if !t.nonzero {
		return other.Neg()
	}
	return TermOf(t.dd.Sub(other.dd))
}

// Mul returns t × other. An absent operand forces the absent result, no
// matter what the other operand holds (0 × NaN = 0); an exact 1 returns
// the other operand unchanged, error term included.
func (t Term) Mul(other Term) Term {
	if !t.nonzero || !other.nonzero {
		return Term{}
	}
	if t.dd.IsOne() {
		return other
	}
	if other.dd.IsOne() {
		return t
	}
	return TermOf(t.dd.Mul(other.dd))
}

// Div returns t ÷ other. A zero divisor falls back to IEEE division of
// the collapsed numerator by +0 (±Inf, or NaN for 0/0); a zero numerator
// over a nonzero divisor stays exactly zero; an exact 1 divisor returns
// t unchanged.
func (t Term) Div(other Term) Term {
	if !other.nonzero {
		zero := 0.0 // the compiler rejects a constant zero divisor
		return TermOf(FromValue(t.Float64() / zero))
	}
	if !t.nonzero {
		return Term{}
	}
	if other.dd.IsOne() {
		return t
	}
	return TermOf(t.dd.Div(other.dd))
}

// Square returns t × t.
func (t Term) Square() Term {
	if !t.nonzero {
		return Term{}
	}
	return TermOf(t.dd.Square())
}

// Sqrt returns the square root of t. The absent cell stays absent;
// negative payloads propagate NaN.
func (t Term) Sqrt() Term {
	if !t.nonzero {
		return Term{}
	}
	return TermOf(t.dd.Sqrt())
}
