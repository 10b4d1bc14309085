// SPDX-License-Identifier: MIT

// format.go renders matrices in a bordered box layout tuned for reading
// coordinate transforms at a glance. Exact zeros and unit scales print as
// bare digits so the structure of an affine matrix stands out; everything
// else is aligned on the decimal point and zero-padded no further than the
// digits the value actually carries.

package matrix

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/crsmat/xprec"
)

// Cell classes used by the two formatting passes.
const (
	cellDecimal = iota // ordinary value, aligned on its decimal point
	cellSpecial        // exact 0, 1 or -1, printed as a bare integer
	cellSymbol         // NaN or infinity, right-aligned as a symbol
)

// fmtCell is the classification of one cell, computed once in the
// measuring pass and replayed in the rendering pass.
type fmtCell struct {
	kind   int
	token  string
	width  int // rune count of token
	before int // decimal only: characters up to and including the point
	frac   int // decimal only: characters after the point
	padCap int // decimal only: zero-padding budget
}

// classify derives the printed form of one value.
func classify(v float64) fmtCell {
	// Exact structural values print as bare integers
	if v == 0 {
		return fmtCell{kind: cellSpecial, token: "0", width: 1}
	}
	if v == 1 {
		return fmtCell{kind: cellSpecial, token: "1", width: 1}
	}
	if v == -1 {
		return fmtCell{kind: cellSpecial, token: "-1", width: 2}
	}
	if math.IsNaN(v) {
		return fmtCell{kind: cellSymbol, token: "NaN", width: 3}
	}
	if math.IsInf(v, 1) {
		return fmtCell{kind: cellSymbol, token: "∞", width: 1}
	}
	if math.IsInf(v, -1) {
		return fmtCell{kind: cellSymbol, token: "-∞", width: 2}
	}

	tok := strconv.FormatFloat(v, 'g', -1, 64)
	padCap := 0
	if e := strings.IndexAny(tok, "eE"); e >= 0 {
		// Scientific notation: give the mantissa a decimal point so it
		// aligns like the others, and never zero-pad the exponent
		if !strings.Contains(tok[:e], ".") {
			tok = tok[:e] + ".0" + tok[e:]
		}
	} else {
		if !strings.Contains(tok, ".") {
			tok += ".0"
		}
		// Padding must not print more digits than the value resolves
		accuracy := -int(math.Floor(math.Log10(xprec.Ulp(v))))
		frac := len(tok) - (strings.IndexByte(tok, '.') + 1)
		if accuracy > frac {
			padCap = accuracy - frac
		}
	}
	before := strings.IndexByte(tok, '.') + 1

	return fmtCell{
		kind:   cellDecimal,
		token:  tok,
		width:  len(tok), // decimal tokens are pure ASCII
		before: before,
		frac:   len(tok) - before,
		padCap: padCap,
	}
}

// pad writes n copies of ch; non-positive counts write nothing.
func pad(sb *strings.Builder, ch byte, n int) {
	var k int
	for k = 0; k < n; k++ {
		sb.WriteByte(ch)
	}
}

// Format renders any matrix in the box layout of this library:
//
//	┌                                                       ┐
//	│ 0                     0.017453292519943295  0       0 │
//	│ 0.017453292519943295  0                     0       0 │
//	│ 0                     0                     0.3048  0 │
//	│ 0                     0                     0       1 │
//	└                                                       ┘
//
// Layout rules, applied per column:
//   - exact 0, 1 and -1 print as bare integers aligned with the digits
//     before the decimal point, so the affine structure stays visible;
//   - other values align on the decimal point and are zero-padded up to
//     the column's widest fraction, but never beyond the precision a
//     float64 gives them, scientific notation never padded;
//   - NaN and infinities print right-aligned as symbols.
//
// A nil or degenerate matrix renders as an empty string. The result
// always ends with a newline.
// Complexity: O(rows*cols) with two passes over the cells.
func Format(m Matrix) string {
	if m == nil {
		return ""
	}
	numRow, numCol := m.Rows(), m.Cols()
	if numRow < 1 || numCol < 1 {
		return ""
	}

	// Measuring pass: classify cells and size the columns
	cells := make([]fmtCell, numRow*numCol)
	wbf := make([]int, numCol) // width before the fraction, spacing included
	mfd := make([]int, numCol) // widest fraction
	hasDec := make([]bool, numCol)
	var i, j int
	for i = 0; i < numCol; i++ {
		spacing := 2
		if i == 0 {
			spacing = 1
		}
		for j = 0; j < numRow; j++ {
			v, _ := m.At(j, i)
			c := classify(v)
			if c.kind == cellDecimal {
				if spacing+c.before > wbf[i] {
					wbf[i] = spacing + c.before
				}
				if c.frac > mfd[i] {
					mfd[i] = c.frac
				}
				hasDec[i] = true
			} else if spacing+c.width > wbf[i] {
				wbf[i] = spacing + c.width
			}
			cells[j*numCol+i] = c
		}
	}
	colW := make([]int, numCol)
	totalWidth := 1
	for i = 0; i < numCol; i++ {
		colW[i] = wbf[i] + mfd[i]
		totalWidth += colW[i]
	}

	// Rendering pass
	var sb strings.Builder
	sb.WriteRune('┌')
	pad(&sb, ' ', totalWidth)
	sb.WriteString("┐\n")
	for j = 0; j < numRow; j++ {
		sb.WriteRune('│')
		for i = 0; i < numCol; i++ {
			c := cells[j*numCol+i]
			switch c.kind {
			case cellDecimal:
				pad(&sb, ' ', wbf[i]-c.before)
				sb.WriteString(c.token)
				gap := mfd[i] - c.frac
				zeros := gap
				if c.padCap < zeros {
					zeros = c.padCap
				}
				pad(&sb, '0', zeros)
				pad(&sb, ' ', gap-zeros)
			case cellSpecial:
				lead := wbf[i] - c.width
				if hasDec[i] {
					lead-- // align with the digits before the point
				}
				pad(&sb, ' ', lead)
				sb.WriteString(c.token)
				pad(&sb, ' ', colW[i]-lead-c.width)
			default: // cellSymbol
				pad(&sb, ' ', colW[i]-c.width)
				sb.WriteString(c.token)
			}
		}
		sb.WriteString(" │\n")
	}
	sb.WriteRune('└')
	pad(&sb, ' ', totalWidth)
	sb.WriteString("┘\n")

	return sb.String()
}
