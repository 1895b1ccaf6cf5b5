// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the minimum field width of a rendered cell; values are
	// right-aligned and wider values are never truncated.
	DefaultCellWidth = 8

	// DefaultPrecision is the number of significant digits used for
	// floating-point cells (%g style: trailing zeros dropped, exponent form for
	// very large or small magnitudes).
	DefaultPrecision = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be >= 1"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective rendering configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	cellWidth int // >= 1; DefaultCellWidth
	precision int // >= 1; DefaultPrecision
}

// WithCellWidth sets the minimum width of every rendered cell.
// Panics with a stable message when width < 1.
func WithCellWidth(width int) Option {
	if width < 1 {
		panic(panicCellWidthInvalid)
	}

	return func(o *Options) { o.cellWidth = width }
}

// WithPrecision sets the significant digits for floating-point cells.
// Integer cells are unaffected. Panics with a stable message when p < 1.
func WithPrecision(p int) Option {
	if p < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		cellWidth: DefaultCellWidth,
		precision: DefaultPrecision,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
