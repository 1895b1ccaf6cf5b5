package demo_test

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/squarematrix/internal/demo"
	"github.com/katalvlaran/squarematrix/matrix"
	"github.com/stretchr/testify/require"
)

// block renders a titled matrix the way the driver prints it: each cell padded
// to 8 columns, one blank line after the last row.
func block(title string, rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString(title + ":\n")
	for _, r := range rows {
		for _, c := range r {
			fmt.Fprintf(&sb, "%8s", c)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func r(cells ...string) []string { return cells }

func writeInput(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix-data.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func run(t *testing.T, contents string, cfg demo.Config) (string, string, error) {
	t.Helper()
	cfg.InputPath = writeInput(t, contents)
	if cfg.CellWidth == 0 {
		cfg.CellWidth = matrix.DefaultCellWidth
	}
	var out, errOut bytes.Buffer
	err := demo.Run(context.Background(), cfg, &out, &errOut)
	return out.String(), errOut.String(), err
}

const integerInput = `3 0
1 2 3
4 5 6
7 8 9
9 8 7
6 5 4
3 2 1
`

func TestRunIntegerSequence(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, integerInput, demo.Config{})
	require.NoError(t, err)
	require.Empty(t, errOut)

	want := block("matrix 1", r("1", "2", "3"), r("4", "5", "6"), r("7", "8", "9")) +
		block("matrix 2", r("9", "8", "7"), r("6", "5", "4"), r("3", "2", "1")) +
		block("sum of matrix 1 and matrix 2", r("10", "10", "10"), r("10", "10", "10"), r("10", "10", "10")) +
		block("product of matrix 1 and matrix 2", r("30", "24", "18"), r("84", "69", "54"), r("138", "114", "90")) +
		"diagonal sum of matrix 1: 25\n" +
		block("matrix 1 after swapping row 0 with row 2", r("7", "8", "9"), r("4", "5", "6"), r("1", "2", "3")) +
		block("matrix 1 after swapping column 0 with column 2", r("9", "8", "7"), r("6", "5", "4"), r("3", "2", "1")) +
		block("matrix 1 after updating element (1, 1) to 99", r("9", "8", "7"), r("6", "99", "4"), r("3", "2", "1"))
	require.Equal(t, want, out)
}

const floatInput = `3 1
0.5 1 1.5
2 2.5 3
3.5 4 4.5
1 0 0
0 1 0
0 0 1
`

func TestRunFloatSequence(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, floatInput, demo.Config{})
	require.NoError(t, err)
	require.Empty(t, errOut)

	want := block("matrix 1", r("0.5", "1", "1.5"), r("2", "2.5", "3"), r("3.5", "4", "4.5")) +
		block("matrix 2", r("1", "0", "0"), r("0", "1", "0"), r("0", "0", "1")) +
		block("sum of matrix 1 and matrix 2", r("1.5", "1", "1.5"), r("2", "3.5", "3"), r("3.5", "4", "5.5")) +
		block("product of matrix 1 and matrix 2", r("0.5", "1", "1.5"), r("2", "2.5", "3"), r("3.5", "4", "4.5")) +
		"diagonal sum of matrix 1: 12.5\n" +
		block("matrix 1 after swapping row 0 with row 2", r("3.5", "4", "4.5"), r("2", "2.5", "3"), r("0.5", "1", "1.5")) +
		block("matrix 1 after swapping column 0 with column 2", r("4.5", "4", "3.5"), r("3", "2.5", "2"), r("1.5", "1", "0.5")) +
		block("matrix 1 after updating element (1, 1) to 99.99", r("4.5", "4", "3.5"), r("3", "99.99", "2"), r("1.5", "1", "0.5"))
	require.Equal(t, want, out)
}

func TestRunTwoByTwoLogsSwapErrorsAndContinues(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, "2 0  1 2 3 4  5 6 7 8", demo.Config{UpdateValue: "-3"})
	require.NoError(t, err)

	require.Contains(t, errOut, "error: invalid row indices for swapping")
	require.Contains(t, errOut, "error: invalid column indices for swapping")
	require.NotContains(t, errOut, "invalid indices for update")

	require.Contains(t, out, "diagonal sum of matrix 1: 10\n")
	require.Contains(t, out, block("matrix 1 after swapping row 0 with row 2", r("1", "2"), r("3", "4")))
	require.Contains(t, out, block("matrix 1 after updating element (1, 1) to -3", r("1", "2"), r("3", "-3")))
}

func TestRunOneByOneLogsUpdateError(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, "1 1 2.5 4", demo.Config{})
	require.NoError(t, err)
	require.Contains(t, errOut, "error: invalid indices for update")
	require.Contains(t, out, "product of matrix 1 and matrix 2:\n      10\n\n")
}

func TestRunCustomCellWidth(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "1 0 7 8", demo.Config{CellWidth: 3})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "matrix 1:\n  7\n\n"), "got %q", out)
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		cfg     demo.Config
		wantErr error
	}{
		{name: "unknown type flag", input: "2 7 1 2 3 4", wantErr: demo.ErrUnknownTypeFlag},
		{name: "empty file", input: "", wantErr: demo.ErrBadHeader},
		{name: "non numeric size", input: "x 0", wantErr: demo.ErrBadHeader},
		{name: "missing flag", input: "2", wantErr: demo.ErrBadHeader},
		{name: "negative size", input: "-1 0", wantErr: matrix.ErrInvalidDimension},
		{name: "size too large", input: strconv.Itoa(int(math.Sqrt(float64(math.MaxInt)))+1) + " 0 1 2 3", wantErr: matrix.ErrInvalidDimension},
		{name: "short first matrix", input: "2 0 1 2 3", wantErr: matrix.ErrInsufficientData},
		{name: "short second matrix", input: "2 0 1 2 3 4 5", wantErr: matrix.ErrInsufficientData},
		{name: "float token in integer matrix", input: "1 0 1.5 2", wantErr: matrix.ErrInsufficientData},
		{name: "bad update value", input: "1 0 1 2", cfg: demo.Config{UpdateValue: "1.5"}, wantErr: demo.ErrBadConfig},
		{name: "bad cell width", input: "1 0 1 2", cfg: demo.Config{CellWidth: -1}, wantErr: demo.ErrBadConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := run(t, tc.input, tc.cfg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	err := demo.Run(context.Background(), demo.Config{
		InputPath: filepath.Join(t.TempDir(), "nope.txt"),
		CellWidth: matrix.DefaultCellWidth,
	}, nil, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := demo.Execute(ctx, matrix.NewTokenReader(strings.NewReader(integerInput)),
		demo.Config{CellWidth: matrix.DefaultCellWidth}, &out, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}
