// Package matrix provides a dense, generic square matrix with value-level
// arithmetic and in-place mutation.
//
// The matrix package provides:
//
//   - Square[T]: an n×n row-major grid over signed integer or floating-point
//     elements, zero-initialized on construction.
//   - Bulk loading from a whitespace-separated token stream (TokenSource), so
//     several matrices can be read back to back from one input.
//   - Add and Multiply returning new, independently owned matrices.
//   - DiagonalSum over the main and anti-diagonal, counting the center cell once.
//   - SwapRows, SwapColumns and SetElement with recoverable ErrOutOfRange errors.
//   - Rows, a lazy and restartable fixed-width rendering of the grid.
//
// A Square is a plain value container. It is not safe for concurrent mutation
// from multiple goroutines without external synchronization.
//
// See example_test.go for usage patterns.
package matrix
