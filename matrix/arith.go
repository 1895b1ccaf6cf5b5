// SPDX-License-Identifier: MIT

// Package matrix - value-returning arithmetic on Square.
//
// Add and Multiply never mutate their operands; each returns a freshly
// allocated result. Both have a float64 fast path over the flat buffers built
// on algo-vecmath block kernels and a generic loop for every other Element.
// The two paths produce bit-identical results: block kernels operate
// element-wise, and Multiply broadcasts rows so that every cell accumulates its
// products in increasing k order, exactly as the generic i→j→k loop does.
package matrix

import (
	"github.com/cwbudde/algo-vecmath"
)

// Add returns a new matrix holding the element-wise sum m + other.
// Implementation:
//   - Stage 1: validate operands (nil, size).
//   - Stage 2: allocate the result.
//   - Stage 3: float64 fast path via vecmath.AddBlock, else flat generic loop.
//
// Behavior highlights:
//   - Native arithmetic of T: integer sums wrap, float sums round.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no result is produced).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square[T]) Add(other *Square[T]) (*Square[T], error) {
	if err := validateSameSize(m, other); err != nil {
		return nil, squareErrorf(ctxAdd, sizeOf(m), sizeOf(other), err)
	}

	out := newUnchecked[T](m.n)
	if addFloat64(out.data, m.data, other.data) {
		return out, nil
	}
	for idx := range out.data {
		out.data[idx] = m.data[idx] + other.data[idx]
	}

	return out, nil
}

// Multiply returns a new matrix holding the product m × other, where
// result[i][j] = Σ_{k=0}^{n-1} m[i][k] * other[k][j], accumulated from zero in
// increasing k order.
// Implementation:
//   - Stage 1: validate operands (nil, size).
//   - Stage 2: allocate the result.
//   - Stage 3: float64 fast path (row broadcast), else the i→j→k triple loop.
//
// Behavior highlights:
//   - Accumulation order is fixed, so floating-point results are reproducible.
//   - No zero-skipping: NaN and Inf operands propagate as IEEE-754 dictates.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no result is produced).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Square[T]) Multiply(other *Square[T]) (*Square[T], error) {
	if err := validateSameSize(m, other); err != nil {
		return nil, squareErrorf(ctxMultiply, sizeOf(m), sizeOf(other), err)
	}

	n := m.n
	out := newUnchecked[T](n)
	if mulFloat64(out.data, m.data, other.data, n) {
		return out, nil
	}

	var (
		i, j, k int // loop iterators
		acc     T
	)
	for i = 0; i < n; i++ {
		rowA := i * n
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				// The explicit conversion rounds the product before the add and
				// keeps the compiler from fusing it into an FMA.
				acc += T(m.data[rowA+k] * other.data[k*n+j])
			}
			out.data[rowA+j] = acc
		}
	}

	return out, nil
}

// addFloat64 runs dst = a + b through vecmath when the buffers are []float64.
// Reports false, touching nothing, for any other element type.
func addFloat64[T Element](dst, a, b []T) bool {
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	vecmath.AddBlock(d, any(a).([]float64), any(b).([]float64))

	return true
}

// mulFloat64 computes dst = a × b for n×n []float64 buffers by broadcasting:
// row i of dst accumulates a[i][k] * b[k][:] for k = 0..n-1. Each cell
// therefore receives its k-th product after its (k-1)-th, matching the
// generic loop. Reports false for any other element type.
func mulFloat64[T Element](dst, a, b []T, n int) bool {
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	af, bf := any(a).([]float64), any(b).([]float64)

	// scratch holds one scaled row of b; reused across the whole product.
	scratch := make([]float64, n)
	for i := 0; i < n; i++ {
		rowD := d[i*n : (i+1)*n]
		for k := 0; k < n; k++ {
			vecmath.ScaleBlock(scratch, bf[k*n:(k+1)*n], af[i*n+k])
			vecmath.AddBlockInPlace(rowD, scratch)
		}
	}

	return true
}

// sizeOf returns m's dimension, or -1 for a nil matrix (error context only).
func sizeOf[T Element](m *Square[T]) int {
	if m == nil {
		return -1
	}

	return m.n
}
