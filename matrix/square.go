// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/SetElement return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/SetElement: O(1); Clone/Equal: O(n²).

package matrix

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"          // method tag used in error wrappers
	ctxSetElement  = "SetElement"  // method tag used in error wrappers
	ctxSwapRows    = "SwapRows"    // method tag used in error wrappers
	ctxSwapColumns = "SwapColumns" // method tag used in error wrappers
	ctxAdd         = "Add"         // method tag used in error wrappers
	ctxMultiply    = "Multiply"    // method tag used in error wrappers
	ctxLoadFrom    = "LoadFrom"    // method tag used in error wrappers
	ctxNew         = "New"         // ctor tag
)

// squareErrorf wraps an error with a uniform Square context and callsite arguments.
//   - Stage 1: format "Square.<method>(a,b): %w".
//   - Stage 2: return wrapped error.
//
// The sentinel is preserved via %w. Complexity: O(1).
func squareErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, a, b, err)
}

// Square is a concrete row-major n×n matrix.
//   - n holds the dimension (>= 0), fixed at construction.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// Square exclusively owns its buffer; Add, Multiply and Clone never share it.
type Square[T Element] struct {
	n    int // dimension (rows == cols)
	data []T // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Square[int64])(nil)
	_ fmt.Stringer = (*Square[float64])(nil)
)

// New creates an n×n zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate n >= 0 and that n*n cells of T fit in an int byte count;
//     else ErrInvalidDimension.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - n == 0 is a valid empty matrix: every reduction returns zero and every
//     index is out of range.
//
// Errors:
//   - ErrInvalidDimension (negative size, or a size whose n*n buffer cannot be addressed).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T Element](n int) (*Square[T], error) {
	// Validate shape.
	if n < 0 || !addressable[T](n) {
		return nil, squareErrorf(ctxNew, n, n, ErrInvalidDimension)
	}
	// make() zero-fills the buffer deterministically.
	return &Square[T]{n: n, data: make([]T, n*n)}, nil
}

// addressable reports whether n*n cells of T fit in math.MaxInt bytes, so that
// neither the cell count nor the buffer size wraps.
func addressable[T Element](n int) bool {
	if n == 0 {
		return true
	}
	size := int(reflect.TypeFor[T]().Size())

	return n <= math.MaxInt/n/size
}

// newUnchecked allocates an n×n matrix for internal results whose size has
// already been validated by the caller.
func newUnchecked[T Element](n int) *Square[T] {
	return &Square[T]{n: n, data: make([]T, n*n)}
}

// Size returns the dimension n. No side effects.
// Complexity: O(1).
func (m *Square[T]) Size() int { return m.n }

// inRange reports whether i is a valid row or column index.
func (m *Square[T]) inRange(i int) bool { return i >= 0 && i < m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//   - Stage 1: validate 0 ≤ row < n and 0 ≤ col < n.
//   - Stage 2: compute row*n + col.
//
// Returns the bare sentinel; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Square[T]) indexOf(row, col int) (int, error) {
	if !m.inRange(row) || !m.inRange(col) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Square[T]) At(row, col int) (T, error) {
	if m == nil {
		var zero T
		return zero, squareErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Clone returns a deep copy with its own backing buffer, or nil for a nil receiver.
// Complexity: O(n²).
func (m *Square[T]) Clone() *Square[T] {
	if m == nil {
		return nil
	}
	out := newUnchecked[T](m.n)
	copy(out.data, m.data)

	return out
}

// Equal reports whether m and other have the same size and identical cells.
// Floating-point cells compare with ==, so NaN never equals NaN.
// Complexity: O(n²).
func (m *Square[T]) Equal(other *Square[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders every row with the default options, one row per line.
// Complexity: O(n²).
func (m *Square[T]) String() string {
	var sb strings.Builder
	for row := range m.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
