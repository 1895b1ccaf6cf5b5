// SPDX-License-Identifier: MIT

// Package matrix - in-place mutation.
//
// Every mutator validates all indices before touching the buffer, so a failed
// call leaves the matrix bit-for-bit unchanged. ErrOutOfRange is recoverable:
// callers may report it and carry on with the same matrix.
package matrix

// SwapRows exchanges the full contents of rows r1 and r2.
// Swapping a row with itself is a valid no-op.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when either index is outside [0, n); nothing is modified.
//
// Complexity: O(n).
func (m *Square[T]) SwapRows(r1, r2 int) error {
	if err := validateNotNil(m); err != nil {
		return squareErrorf(ctxSwapRows, r1, r2, err)
	}
	if err := validatePair(m, r1, r2); err != nil {
		return squareErrorf(ctxSwapRows, r1, r2, err)
	}
	if r1 == r2 {
		return nil
	}

	n := m.n
	a, b := m.data[r1*n:(r1+1)*n], m.data[r2*n:(r2+1)*n]
	for j := 0; j < n; j++ {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// SwapColumns exchanges, in every row, the cells at columns c1 and c2.
// Swapping a column with itself is a valid no-op.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when either index is outside [0, n); nothing is modified.
//
// Complexity: O(n).
func (m *Square[T]) SwapColumns(c1, c2 int) error {
	if err := validateNotNil(m); err != nil {
		return squareErrorf(ctxSwapColumns, c1, c2, err)
	}
	if err := validatePair(m, c1, c2); err != nil {
		return squareErrorf(ctxSwapColumns, c1, c2, err)
	}
	if c1 == c2 {
		return nil
	}

	n := m.n
	for base := 0; base < n*n; base += n {
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}

	return nil
}

// SetElement overwrites the cell at (row, col) with v.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when row or col is outside [0, n); nothing is modified.
//
// Complexity: O(1).
func (m *Square[T]) SetElement(row, col int, v T) error {
	if err := validateNotNil(m); err != nil {
		return squareErrorf(ctxSetElement, row, col, err)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSetElement, row, col, err)
	}
	m.data[idx] = v

	return nil
}
