// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Square tests.
//   • Keep fixture construction on the public surface (New + SetElement).

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/require"
)

// genericFloat is a named float64; it forces the generic (non-vecmath) path.
type genericFloat float64

// MustSquare ALLOCATES an n×n Square filled row-major from vals or fails the test.
func MustSquare[T matrix.Element](t *testing.T, n int, vals ...T) *matrix.Square[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	require.NoError(t, err)
	require.Len(t, vals, n*n, "fixture must supply n² values")
	for idx, v := range vals {
		require.NoError(t, m.SetElement(idx/n, idx%n, v))
	}

	return m
}

// Cells reads the grid back through At in row-major order.
func Cells[T matrix.Element](t *testing.T, m *matrix.Square[T]) []T {
	t.Helper()
	n := m.Size()
	out := make([]T, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out = append(out, v)
		}
	}

	return out
}

// Grid3 is the canonical 3×3 fixture [[1,2,3],[4,5,6],[7,8,9]].
func Grid3[T matrix.Element](t *testing.T) *matrix.Square[T] {
	t.Helper()
	return MustSquare[T](t, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}
