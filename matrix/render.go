// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"iter"
	"reflect"
	"strconv"
	"strings"
)

// Rows returns a lazy sequence of formatted rows, top to bottom. Each row is
// the concatenation of its cells in column order, every cell right-aligned to
// the configured width (DefaultCellWidth unless WithCellWidth is given).
//
// The sequence is finite and restartable: every range over it re-reads the
// current cells, so mutations between iterations are visible. Rendering never
// modifies the matrix. A nil or empty matrix yields no rows.
//
// Complexity: O(n) per row, O(n²) per full iteration.
func (m *Square[T]) Rows(opts ...Option) iter.Seq[string] {
	o := gatherOptions(opts...)

	return func(yield func(string) bool) {
		if m == nil {
			return
		}
		var sb strings.Builder
		for i := 0; i < m.n; i++ {
			sb.Reset()
			for _, v := range m.data[i*m.n : (i+1)*m.n] {
				fmt.Fprintf(&sb, "%*s", o.cellWidth, FormatValue(v, o.precision))
			}
			if !yield(sb.String()) {
				return
			}
		}
	}
}

// Display writes every row followed by a newline, then one blank line, the
// layout used by the console driver.
func (m *Square[T]) Display(w io.Writer, opts ...Option) error {
	for row := range m.Rows(opts...) {
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// FormatValue formats v the way Rows formats a cell, without padding:
// base-10 for integer kinds, %g at prec significant digits for floating-point
// kinds.
// Callers printing scalars next to rendered matrices (such as DiagonalSum) use
// it to keep the two consistent.
func FormatValue[T Element](v T, prec int) string {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(float64(v), 'g', prec, t.Bits())
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}
