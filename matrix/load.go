// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// TokenReader is a TokenSource over an io.Reader that splits on Unicode
// whitespace. It buffers the underlying reader, so every load that shares an
// input must share the same TokenReader.
type TokenReader struct {
	sc *bufio.Scanner
}

var _ TokenSource = (*TokenReader)(nil)

// NewTokenReader wraps r in a whitespace tokenizer.
func NewTokenReader(r io.Reader) *TokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &TokenReader{sc: sc}
}

// Next returns the next token, the reader's error, or io.EOF.
func (tr *TokenReader) Next() (string, error) {
	if tr.sc.Scan() {
		return tr.sc.Text(), nil
	}
	if err := tr.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// LoadFrom overwrites every cell from src in row-major order
// (row 0 left to right, then row 1, ...).
// Implementation:
//   - Stage 1: validate receiver and source.
//   - Stage 2: for each cell, pull one token and parse it as T.
//   - Stage 3: stop at the first missing or unparsable token.
//
// Behavior highlights:
//   - On failure the cells already read keep their new values and the rest keep
//     their prior values. Callers must not rely on a partially loaded matrix.
//   - Exactly n² tokens are consumed on success, so the next load from the same
//     source continues right after this matrix.
//
// Errors:
//   - ErrNilMatrix for a nil receiver or source.
//   - ErrInsufficientData (wrapping the cause: io.EOF, a read error or a
//     strconv error) with the coordinates of the cell that could not be filled.
//
// Complexity:
//   - Time O(n²) plus the cost of the source.
func (m *Square[T]) LoadFrom(src TokenSource) error {
	if m == nil || src == nil {
		return squareErrorf(ctxLoadFrom, 0, 0, ErrNilMatrix)
	}

	var (
		tok string
		v   T
		err error
	)
	for i := 0; i < m.n; i++ {
		base := i * m.n // row base offset
		for j := 0; j < m.n; j++ {
			if tok, err = src.Next(); err != nil {
				return fmt.Errorf("Square.%s(%d,%d): %w: %w", ctxLoadFrom, i, j, ErrInsufficientData, err)
			}
			if v, err = ParseValue[T](tok); err != nil {
				return fmt.Errorf("Square.%s(%d,%d): %w: %w", ctxLoadFrom, i, j, ErrInsufficientData, err)
			}
			m.data[base+j] = v
		}
	}

	return nil
}

// ParseValue parses tok at the bit size of T: base-10 integers for signed
// kinds, decimal or scientific notation for floating-point kinds. Tokens that
// overflow T are rejected, as are the inf, NaN and hexadecimal spellings
// strconv would otherwise accept. LoadFrom uses it for every cell.
func ParseValue[T Element](tok string) (T, error) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		if !isDecimalFloat(tok) {
			return 0, &strconv.NumError{Func: "ParseFloat", Num: tok, Err: strconv.ErrSyntax}
		}
		f, err := strconv.ParseFloat(tok, t.Bits())
		if err != nil {
			return 0, err
		}
		return T(f), nil
	default:
		n, err := strconv.ParseInt(tok, 10, t.Bits())
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
}

// isDecimalFloat reports whether tok uses only the characters of a signed
// decimal or scientific literal ("-1.5", "+2e-3", ".5").
func isDecimalFloat(tok string) bool {
	for i := 0; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= '0' && c <= '9':
		case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}

	return tok != ""
}
