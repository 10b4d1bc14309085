// SPDX-License-Identifier: MIT

// solver.go implements matrix inversion and linear-system solving on top of
// an LU decomposition with partial pivoting, carried out entirely in
// extended precision. The inversion path additionally knows how to "repair"
// affine matrices containing NaN placeholders: when an unknown scale or
// translation term is isolated enough, it is substituted with a neutral
// value for the decomposition and the unknowns are re-injected into the
// inverse afterwards, so one missing datum does not poison every axis.

package matrix

import (
	"math"

	"github.com/katalvlaran/crsmat/xprec"
)

// nanCell records one repairable NaN found in an affine matrix.
// row and col locate the NaN itself; scaleCol is the column carrying the
// scale factor tied to that unknown, which is where the corresponding
// cells of the inverse must be poisoned after solving.
type nanCell struct {
	row, col, scaleCol int
}

// nanRepairs scans an affine receiver for repairable NaN cells.
//
// A NaN is repairable only when it is isolated enough that substituting a
// neutral value cannot leak wrong numbers into other axes:
//
//   - A NaN scale at (j, i) requires every other scale cell of row j and
//     every other cell of column i to be an exact zero. The translation
//     cell of row j may hold anything.
//   - A NaN translation at (j, last) requires row j to hold at most one
//     non-zero scale cell; that cell's column must in turn be zero in
//     every other row. A row with no scale cells at all falls back to the
//     translation column itself and is left for the decomposition to
//     reject as singular.
//
// The scan is all-or-nothing: the first unrepairable NaN aborts the whole
// repair and the decomposition proceeds untouched, letting NaN propagate
// as ordinary arithmetic would.
//
// The receiver must be affine, so the last row holds no NaN by definition.
// Complexity: O(n²) in the count of cells, O(n) extra per NaN found.
func (d *Dense) nanRepairs() []nanCell {
	n := d.rows
	last := n - 1
	var repairs []nanCell

	var i, j, k int
	for j = 0; j < last; j++ {
		for i = 0; i < n; i++ {
			if !d.terms[j*n+i].IsNaN() {
				continue
			}
			scaleCol := i
			if i == last {
				// Unknown translation: find the single scale cell of row j
				scaleCol = -1
				for k = 0; k < last; k++ {
					if d.terms[j*n+k].IsZero() {
						continue
					}
					if scaleCol >= 0 {
						return nil // two scale candidates, not repairable
					}
					scaleCol = k
				}
				if scaleCol >= 0 {
					// That scale column must belong to row j alone
					for k = 0; k < last; k++ {
						if k != j && !d.terms[k*n+scaleCol].IsZero() {
							return nil
						}
					}
				} else {
					// No scale at all: leave the singularity to the solver
					scaleCol = i
				}
			} else {
				// Unknown scale: row j and column i must be otherwise empty
				for k = 0; k < last; k++ {
					if k != j && !d.terms[k*n+i].IsZero() {
						return nil
					}
					if k != i && !d.terms[j*n+k].IsZero() {
						return nil
					}
				}
			}
			repairs = append(repairs, nanCell{row: j, col: i, scaleCol: scaleCol})
		}
	}

	return repairs
}

// solveDense computes x⁻¹ (y == nil) or x⁻¹×y using LU decomposition with
// partial pivoting over extended-precision cells.
//
// Stage 1 (Repair): on the inversion path, repairable NaN cells of an
// affine x are substituted with neutral values (scale → 1, translation → 0)
// before decomposing; the recorded triplets drive Stage 5.
// Stage 2 (Decompose): Crout-style elimination; the pivot of each column
// is the candidate with the largest finite value magnitude, so NaN rows are
// never promoted. A zero pivot on the diagonal reports ErrNonInvertible.
// Stage 3 (Permute): the right-hand side is assembled already row-permuted;
// a nil y stands for the identity.
// Stage 4 (Substitute): forward then backward substitution, skipping exact
// zero multipliers so absent cells cost nothing.
// Stage 5 (Restore): for each repaired NaN the affected cells of the result
// are poisoned back to NaN, except translation cells that are exact zeros
// regardless of the unknown.
//
// innerSize is the column count of the right-hand side (n when y is nil).
// Errors are returned unwrapped; facades add their operation tag.
func solveDense(x *Dense, y Matrix, innerSize int, repair bool) (*Dense, error) {
	n := x.rows

	// Working copy of the coefficient cells
	lu := make([]xprec.Term, len(x.terms))
	copy(lu, x.terms)

	// Stage 1: substitute repairable NaN cells with neutral values
	var repairs []nanCell
	if repair && x.IsAffine() {
		repairs = x.nanRepairs()
		for _, r := range repairs {
			if r.col == n-1 {
				lu[r.row*n+r.col] = xprec.TermZero
			} else {
				lu[r.row*n+r.col] = xprec.TermOne
			}
		}
	}

	// Row permutation bookkeeping
	piv := make([]int, n)
	var i, j, k, c, p int
	for i = 0; i < n; i++ {
		piv[i] = i
	}

	// Stage 2: column-by-column elimination
	col := make([]xprec.Term, n)
	for i = 0; i < n; i++ {
		// Snapshot column i
		for j = 0; j < n; j++ {
			col[j] = lu[j*n+i]
		}
		// Apply the transformations accumulated so far
		for j = 0; j < n; j++ {
			kmax := j
			if i < kmax {
				kmax = i
			}
			sum := xprec.TermZero
			for k = 0; k < kmax; k++ {
				sum = sum.Add(lu[j*n+k].Mul(col[k]))
			}
			col[j] = col[j].Sub(sum)
			lu[j*n+i] = col[j]
		}
		// Select the pivot; NaN magnitudes never win a strict comparison
		p = i
		for j = i + 1; j < n; j++ {
			if math.Abs(col[j].Float64()) > math.Abs(col[p].Float64()) {
				p = j
			}
		}
		if p != i {
			for k = 0; k < n; k++ {
				lu[p*n+k], lu[i*n+k] = lu[i*n+k], lu[p*n+k]
			}
			piv[p], piv[i] = piv[i], piv[p]
		}
		// Compute the multipliers below the pivot
		if !lu[i*n+i].IsZero() {
			for j = i + 1; j < n; j++ {
				lu[j*n+i] = lu[j*n+i].Div(lu[i*n+i])
			}
		}
	}
	// A zero anywhere on the diagonal means no unique solution exists
	for j = 0; j < n; j++ {
		if lu[j*n+j].IsZero() {
			return nil, ErrNonInvertible
		}
	}

	// Stage 3: assemble the right-hand side already permuted
	b := make([]xprec.Term, n*innerSize)
	if y == nil {
		for j = 0; j < n; j++ {
			b[j*innerSize+piv[j]] = xprec.TermOne
		}
	} else {
		for j = 0; j < n; j++ {
			for c = 0; c < innerSize; c++ {
				b[j*innerSize+c] = termAt(y, piv[j], c)
			}
		}
	}

	// Stage 4: forward substitution over the unit-lower factor
	for k = 0; k < n; k++ {
		for j = k + 1; j < n; j++ {
			mult := lu[j*n+k]
			if mult.IsZero() {
				continue
			}
			for c = 0; c < innerSize; c++ {
				b[j*innerSize+c] = b[j*innerSize+c].Sub(b[k*innerSize+c].Mul(mult))
			}
		}
	}
	// Backward substitution over the upper factor
	for k = n - 1; k >= 0; k-- {
		div := lu[k*n+k]
		for c = 0; c < innerSize; c++ {
			b[k*innerSize+c] = b[k*innerSize+c].Div(div)
		}
		for j = 0; j < k; j++ {
			mult := lu[j*n+k]
			if mult.IsZero() {
				continue
			}
			for c = 0; c < innerSize; c++ {
				b[j*innerSize+c] = b[j*innerSize+c].Sub(b[k*innerSize+c].Mul(mult))
			}
		}
	}
	result := &Dense{rows: n, cols: innerSize, terms: b}

	// Stage 5: re-inject the unknowns into the inverse
	if len(repairs) > 0 {
		last := n - 1
		nan := xprec.TermOf(xprec.NaN)
		for _, r := range repairs {
			if r.col == last {
				// Unknown translation: the inverse translation of that
				// axis is unknown too
				result.terms[r.scaleCol*innerSize+last] = nan
				continue
			}
			// Unknown scale: the inverse scale sits transposed
			result.terms[r.col*innerSize+r.row] = nan
			// The inverse translation of that axis is -t/s; only an
			// exact zero survives an unknown scale
			if !result.terms[r.col*innerSize+last].IsZero() {
				result.terms[r.col*innerSize+last] = nan
			}
		}
	}

	return result, nil
}

// Inverse - Computes the multiplicative inverse of a square matrix.
//
// Implementation:
//   - LU decomposition with partial pivoting over extended-precision
//     cells; see solveDense for the staged algorithm.
//   - Affine matrices get the NaN-repair treatment: an isolated unknown
//     scale or translation term is carried through the decomposition as a
//     neutral value and restored as NaN only in the cells of the inverse
//     it actually affects. Non-affine matrices and crowded NaNs fall back
//     to plain propagation.
//
// Behavior highlights:
//   - Exact zeros stay exact: the inverse of a scale-and-translate matrix
//     has no rotation residue.
//   - A matrix without full rank reports ErrNonInvertible rather than
//     returning infinities.
//
// Returns:
//   - *Dense: a freshly allocated inverse of the same shape.
//   - error: ErrNilMatrix on a nil receiver, ErrNonInvertible for
//     rectangular or singular input, wrapped with the op tag.
//
// Determinism: identical input yields a bit-identical inverse.
// Complexity: O(n³).
//
// AI-Hints:
//   - Inverting twice round-trips exactly for permutation-with-scale
//     matrices; for general input expect ComparisonThreshold-level noise.
//   - Use Solve when a product x⁻¹×y is needed; it avoids forming the
//     intermediate inverse.
func (d *Dense) Inverse() (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	// Rectangular shapes have no two-sided inverse
	if d.rows != d.cols {
		return nil, matrixErrorf(opInverse, ErrNonInvertible)
	}

	inv, err := solveDense(d, nil, d.rows, true)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Solve - Computes x such that receiver × x = y, without forming the
// inverse explicitly.
//
// Implementation:
//   - Same LU engine as Inverse, with y as the right-hand side. The
//     NaN-repair path is not taken: solving against concrete data leaves
//     NaN propagation to ordinary arithmetic.
//
// Inputs:
//   - y: right-hand side; y.Rows() must equal the receiver's Rows().
//
// Returns:
//   - *Dense: the Cols()×y.Cols() solution.
//   - error: ErrNilMatrix, ErrNonInvertible (rectangular or singular
//     receiver), ErrBadSize (degenerate y width) or ErrDimensionMismatch,
//     wrapped with the op tag.
//
// Determinism: identical operands yield a bit-identical solution.
// Complexity: O(n³ + n²·y.Cols()).
func (d *Dense) Solve(y Matrix) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if err := ValidateNotNil(y); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if d.rows != d.cols {
		return nil, matrixErrorf(opSolve, ErrNonInvertible)
	}
	if y.Cols() < 1 {
		return nil, matrixErrorf(opSolve, ErrBadSize)
	}
	if y.Rows() != d.rows {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	sol, err := solveDense(d, y, y.Cols(), false)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return sol, nil
}
