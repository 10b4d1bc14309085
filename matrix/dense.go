// SPDX-License-Identifier: MIT

// dense.go implements Dense, the concrete row-major matrix used by every
// operation in this package. Cells are xprec.Term values rather than raw
// float64, so each element carries an extended-precision residue and an
// explicit presence flag: an absent cell is an exact zero that annihilates
// whatever it multiplies, NaN included.
//
// The float64 world meets the Term world at exactly two gates: Set and the
// other ingestion paths complete decimal literals via xprec.TermOfDecimal,
// and At returns the value component of the stored cell. Everything between
// those gates runs in extended precision.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/crsmat/xprec"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of extended-precision cells.
// rows and cols are the dimensions; terms holds rows*cols cells in
// row-major order, absent cells standing for exact zeros.
type Dense struct {
	rows, cols int          // number of rows and columns
	terms      []xprec.Term // flat backing storage, length == rows*cols
}

// NewZero creates a numRow×numCol Dense with every cell an exact zero.
// Stage 1 (Validate): dimensions must lie in [1, MaxSize].
// Stage 2 (Prepare): allocate flat backing slice; zero Terms are the
// zero value, so no per-cell initialization is needed.
// Stage 3 (Finalize): return the new Dense or ErrBadSize.
// Complexity: O(numRow*numCol) time and memory.
func NewZero(numRow, numCol int) (*Dense, error) {
	// Validate dimensions
	if err := ValidateSize(numRow, numCol); err != nil {
		return nil, err
	}

	// Allocate flat slice; absent cells are ready-made exact zeros
	return &Dense{rows: numRow, cols: numCol, terms: make([]xprec.Term, numRow*numCol)}, nil
}

// NewIdentity creates a size×size identity matrix.
// Complexity: O(size²) time and memory.
func NewIdentity(size int) (*Dense, error) {
	return NewDiagonal(size, size)
}

// NewDiagonal creates a numRow×numCol matrix with exact ones on the main
// diagonal and exact zeros elsewhere. Rectangular shapes are allowed; the
// diagonal runs for min(numRow, numCol) cells.
// Complexity: O(numRow*numCol) time and memory.
func NewDiagonal(numRow, numCol int) (*Dense, error) {
	// Allocate the all-zero carrier
	d, err := NewZero(numRow, numCol)
	if err != nil {
		return nil, err
	}

	// Walk the main diagonal
	n := numRow
	if numCol < n {
		n = numCol
	}
	var i int
	for i = 0; i < n; i++ {
		d.terms[i*numCol+i] = xprec.TermOne
	}

	return d, nil
}

// New creates a numRow×numCol Dense from a row-major float64 slice.
// Every element is ingested with decimal-literal completion, so values
// such as 0.1 carry the residue of their shortest decimal reading.
// Stage 1 (Validate): dimensions valid and len(elements) == numRow*numCol.
// Stage 2 (Execute): ingest each element as a Term.
// Stage 3 (Finalize): return the new Dense or a wrapped sentinel.
// Complexity: O(numRow*numCol).
func New(numRow, numCol int, elements []float64) (*Dense, error) {
	d, err := NewZero(numRow, numCol)
	if err != nil {
		return nil, err
	}
	// Element count must match the declared shape
	if err = ValidateVecLen(elements, numRow*numCol); err != nil {
		return nil, err
	}

	// Ingest every element through the decimal gate
	var i int
	for i = 0; i < len(elements); i++ {
		d.terms[i] = xprec.TermOfDecimal(elements[i])
	}

	return d, nil
}

// Copy duplicates any Matrix implementation into a Dense.
// A nil input yields a nil output. Dense and Unmodifiable sources keep
// their extended-precision cells; foreign implementations are ingested
// through their float64 view with decimal-literal completion.
// Complexity: O(rows*cols).
func Copy(m Matrix) *Dense {
	// Mirror absence
	if m == nil {
		return nil
	}
	numRow, numCol := m.Rows(), m.Cols()
	// Degenerate foreign shapes have no Dense counterpart
	if numRow < 1 || numCol < 1 {
		return nil
	}

	d := &Dense{rows: numRow, cols: numCol, terms: make([]xprec.Term, numRow*numCol)}
	var i, j int
	for i = 0; i < numRow; i++ {
		for j = 0; j < numCol; j++ {
			d.terms[i*numCol+j] = termAt(m, i, j)
		}
	}

	return d
}

// termAt extracts the extended-precision cell (i, j) from any Matrix.
// Dense and Unmodifiable instances surface their exact Term storage;
// foreign implementations are ingested through their float64 view.
// Bounds are pre-validated by every caller.
func termAt(m Matrix, i, j int) xprec.Term {
	switch t := m.(type) {
	case *Dense:
		return t.terms[i*t.cols+j]
	case *Unmodifiable:
		return termAt(t.base, i, j)
	default:
		v, _ := m.At(i, j)
		return xprec.TermOfDecimal(v)
	}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (d *Dense) Rows() int {
	return d.rows // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (d *Dense) Cols() int {
	return d.cols // return stored column count
}

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute and return the linear index.
// Complexity: O(1).
func (d *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= d.rows {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= d.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*d.cols + col, nil
}

// At retrieves the element at (row, col) as a float64.
// The value component of the stored cell is returned; the residue stays
// behind, so a value ingested through Set reads back unchanged.
// Stage 1 (Validate): nil receiver and bounds checks.
// Stage 2 (Finalize): return the value or a wrapped error.
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if d == nil {
		return 0, denseErrorf("At", row, col, ErrNilMatrix)
	}
	// Compute flat index or error
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return the value component only
	return d.terms[idx].DD().Hi(), nil
}

// Set assigns value v at (row, col) with decimal-literal completion.
// Writing zero stores an absent cell, the exact zero of this package.
// Stage 1 (Validate): nil receiver and bounds checks.
// Stage 2 (Execute): ingest v and write the cell.
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	if d == nil {
		return denseErrorf("Set", row, col, ErrNilMatrix)
	}
	// Compute flat index or error
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Ingest through the decimal gate
	d.terms[idx] = xprec.TermOfDecimal(v)

	return nil
}

// TermAt retrieves the extended-precision cell at (row, col).
// Complexity: O(1).
func (d *Dense) TermAt(row, col int) (xprec.Term, error) {
	if d == nil {
		return xprec.TermZero, denseErrorf("TermAt", row, col, ErrNilMatrix)
	}
	idx, err := d.indexOf("TermAt", row, col)
	if err != nil {
		return xprec.TermZero, err
	}

	return d.terms[idx], nil
}

// SetTerm stores an extended-precision cell at (row, col) unchanged.
// Complexity: O(1).
func (d *Dense) SetTerm(row, col int, t xprec.Term) error {
	if d == nil {
		return denseErrorf("SetTerm", row, col, ErrNilMatrix)
	}
	idx, err := d.indexOf("SetTerm", row, col)
	if err != nil {
		return err
	}
	d.terms[idx] = t

	return nil
}

// Elements returns a row-major snapshot of the value components.
// The slice is freshly allocated; mutating it does not affect the matrix.
// Complexity: O(rows*cols).
func (d *Dense) Elements() []float64 {
	if d == nil {
		return nil
	}
	out := make([]float64, len(d.terms))
	var i int
	for i = 0; i < len(d.terms); i++ {
		out[i] = d.terms[i].DD().Hi()
	}

	return out
}

// SetElements replaces the whole matrix content from a row-major slice,
// ingesting every value with decimal-literal completion.
// Stage 1 (Validate): nil receiver; len(values) must equal rows*cols.
// Stage 2 (Execute): ingest all cells.
// Complexity: O(rows*cols).
func (d *Dense) SetElements(values []float64) error {
	if d == nil {
		return validatorErrorf("Dense.SetElements", ErrNilMatrix)
	}
	if err := ValidateVecLen(values, d.rows*d.cols); err != nil {
		return err
	}

	var i int
	for i = 0; i < len(values); i++ {
		d.terms[i] = xprec.TermOfDecimal(values[i])
	}

	return nil
}

// SetMatrix copies the content of src into the receiver.
// Shapes must match exactly; extended-precision cells survive the copy
// when src is a Dense or an Unmodifiable view of one.
// Stage 1 (Validate): nil receiver, nil source, identical shape.
// Stage 2 (Execute): copy all cells.
// Complexity: O(rows*cols).
func (d *Dense) SetMatrix(src Matrix) error {
	if d == nil {
		return validatorErrorf("Dense.SetMatrix", ErrNilMatrix)
	}
	if err := ValidateSameShape(d, src); err != nil {
		return err
	}

	var i, j int
	for i = 0; i < d.rows; i++ {
		for j = 0; j < d.cols; j++ {
			d.terms[i*d.cols+j] = termAt(src, i, j)
		}
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix, residues included.
// Complexity: O(rows*cols) time and memory.
func (d *Dense) Clone() *Dense {
	if d == nil {
		return nil
	}
	// Allocate new slice for cell copy
	cells := make([]xprec.Term, len(d.terms))
	copy(cells, d.terms)

	return &Dense{rows: d.rows, cols: d.cols, terms: cells}
}

// copyBlock copies an nRows×nCols block of cells from src starting at
// (srcRow, srcCol) into the receiver starting at (dstRow, dstCol).
// Bounds are the caller's responsibility; factories position blocks that
// are valid by construction.
func (d *Dense) copyBlock(src Matrix, srcRow, srcCol, dstRow, dstCol, nRows, nCols int) {
	var i, j int
	for i = 0; i < nRows; i++ {
		for j = 0; j < nCols; j++ {
			d.terms[(dstRow+i)*d.cols+dstCol+j] = termAt(src, srcRow+i, srcCol+j)
		}
	}
}

// IsAffine reports whether the matrix is square with a last row of
// exactly [0, 0, …, 0, 1]. The check is exact at the cell level: the
// corner must be an exact one and the rest of the row exact zeros,
// extended-precision residues included.
// Complexity: O(cols).
func (d *Dense) IsAffine() bool {
	if d == nil || d.rows != d.cols {
		return false
	}

	// Walk the last row backward; the corner wants a one, the rest zeros
	last := (d.rows - 1) * d.cols
	var i int
	for i = d.cols - 1; i >= 0; i-- {
		cell := d.terms[last+i]
		if i == d.cols-1 {
			if !cell.IsOne() {
				return false
			}
		} else if !cell.IsZero() {
			return false
		}
	}

	return true
}

// IsIdentity reports whether the matrix is square with exact ones on the
// diagonal and exact zeros elsewhere, residues included.
// Complexity: O(rows*cols).
func (d *Dense) IsIdentity() bool {
	if d == nil || d.rows != d.cols {
		return false
	}

	var i, j int
	for i = 0; i < d.rows; i++ {
		for j = 0; j < d.cols; j++ {
			cell := d.terms[i*d.cols+j]
			if i == j {
				if !cell.IsOne() {
					return false
				}
			} else if !cell.IsZero() {
				return false
			}
		}
	}

	return true
}

// isValid verifies the internal invariants of the storage: declared
// dimensions in range, backing slice of the exact declared length, and no
// cell holding a literal zero payload where the absence state is required.
// It is a debug-time check for tests and assertions, not a production
// guard; the constructors and Term normalization keep it true.
// Complexity: O(rows*cols).
func (d *Dense) isValid() bool {
	if d == nil {
		return false
	}
	if ValidateSize(d.rows, d.cols) != nil {
		return false
	}
	if len(d.terms) != d.rows*d.cols {
		return false
	}
	// A present cell must never collapse to a zero payload
	var i int
	for i = 0; i < len(d.terms); i++ {
		if !d.terms[i].IsZero() && d.terms[i].DD().IsZero() {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer using the shared box formatter.
// Complexity: O(rows*cols) for string construction.
func (d *Dense) String() string {
	return Format(d)
}
