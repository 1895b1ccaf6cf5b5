// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand and index checks.
//  - Keep operations minimal by delegating nil/size/bounds checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → SameSize).

package matrix

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil[T Element](m *Square[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameSize ensures both operands are non-nil and share a dimension.
// Order: receiver nil → argument nil → size.
// Complexity: O(1).
func validateSameSize[T Element](a, b *Square[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return ErrDimensionMismatch
	}

	return nil
}

// validatePair ensures i and j are both valid row/column indices of m.
// Assumes m is not nil. Complexity: O(1).
func validatePair[T Element](m *Square[T], i, j int) error {
	if !m.inRange(i) || !m.inRange(j) {
		return ErrOutOfRange
	}

	return nil
}
