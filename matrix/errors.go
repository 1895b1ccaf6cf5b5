// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with call-site context and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Methods wrap with squareErrorf so the message
// carries the method name and arguments; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimension -> index -> data.

var (
	// ErrInvalidDimension is returned by New when the requested size is negative.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrInsufficientData is returned by LoadFrom when the token source is
	// exhausted, or yields a token that does not parse as the element type,
	// before all n² cells are filled.
	ErrInsufficientData = errors.New("matrix: not enough or invalid data")

	// ErrDimensionMismatch indicates that the operands of Add or Multiply have
	// different sizes. No result matrix is produced.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// SwapRows, SwapColumns, SetElement and At return it and leave the matrix
	// unchanged.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
