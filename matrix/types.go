// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the square matrix and its loaders.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Element is the set of numeric kinds a Square can hold: any signed integer or
// floating-point type. Arithmetic uses the native operators of T, so integer
// overflow wraps and floating-point results follow IEEE-754 rounding.
type Element interface {
	constraints.Signed | constraints.Float
}

// TokenSource yields whitespace-separated input tokens in order.
// Next returns io.EOF once the source is exhausted; any other error is
// reported by LoadFrom as ErrInsufficientData with the cause attached.
type TokenSource interface {
	Next() (string, error)
}
