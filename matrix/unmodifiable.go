// SPDX-License-Identifier: MIT

// unmodifiable.go provides the read-only wrapper used to publish a matrix
// without surrendering write access: reads delegate, writes fail with
// ErrUnmodifiable. The wrapper does not copy, so changes made through the
// original stay visible. Freeze-then-share is the intended concurrency
// pattern: build a matrix single-threaded, wrap it, hand out the wrapper.

package matrix

import "fmt"

// Unmodifiable is a read-only view of another matrix.
type Unmodifiable struct {
	base Matrix
}

// NewUnmodifiable wraps m in a read-only view. A nil input yields nil and
// an already unmodifiable matrix is returned as is, so double wrapping
// never stacks.
func NewUnmodifiable(m Matrix) *Unmodifiable {
	if m == nil {
		return nil
	}
	if u, ok := m.(*Unmodifiable); ok {
		return u
	}

	return &Unmodifiable{base: m}
}

// Rows returns the number of rows in the wrapped matrix.
func (u *Unmodifiable) Rows() int {
	if u == nil {
		return 0
	}

	return u.base.Rows()
}

// Cols returns the number of columns in the wrapped matrix.
func (u *Unmodifiable) Cols() int {
	if u == nil {
		return 0
	}

	return u.base.Cols()
}

// At retrieves the element at (row, col) from the wrapped matrix.
func (u *Unmodifiable) At(row, col int) (float64, error) {
	if u == nil {
		return 0, fmt.Errorf("Unmodifiable.At(%d,%d): %w", row, col, ErrNilMatrix)
	}

	return u.base.At(row, col)
}

// Set always fails with ErrUnmodifiable.
func (u *Unmodifiable) Set(row, col int, v float64) error {
	return fmt.Errorf("Unmodifiable.Set(%d,%d): %w", row, col, ErrUnmodifiable)
}

// Elements returns a row-major snapshot of the wrapped matrix.
func (u *Unmodifiable) Elements() []float64 {
	if u == nil {
		return nil
	}

	return u.base.Elements()
}

// String implements fmt.Stringer using the shared box formatter.
func (u *Unmodifiable) String() string {
	return Format(u)
}
