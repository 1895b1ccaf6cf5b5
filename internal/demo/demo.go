// Package demo runs the fixed square-matrix demonstration over an input file:
// load two matrices, display them, their sum and product, the diagonal sum of
// the first, then swap and update the first in place.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/squarematrix/internal/input"
	"github.com/katalvlaran/squarematrix/matrix"
)

const tracerName = "github.com/katalvlaran/squarematrix/internal/demo"

// Type flags accepted in the input header.
const (
	typeInteger = 0
	typeFloat   = 1
)

var (
	// ErrBadHeader is returned when the "n typeFlag" header is missing or not integral.
	ErrBadHeader = errors.New("demo: invalid input header")

	// ErrUnknownTypeFlag is returned when the type flag is neither 0 nor 1.
	ErrUnknownTypeFlag = errors.New("demo: unknown matrix type flag (must be 0 or 1)")

	// ErrBadConfig is returned for configuration values Run cannot use.
	ErrBadConfig = errors.New("demo: invalid configuration")
)

// Run executes the demonstration described by cfg, writing rendered matrices to
// out and recoverable operation errors to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if cfg.CellWidth < 1 {
		return fmt.Errorf("%w: cell width %d", ErrBadConfig, cfg.CellWidth)
	}

	f, err := input.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", cfg.InputPath, err)
	}
	defer f.Close()

	return Execute(ctx, matrix.NewTokenReader(f), cfg, out, errOut)
}

// Execute runs the demonstration over an already opened token source
// positioned at the "n typeFlag" header.
func Execute(ctx context.Context, src matrix.TokenSource, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.CellWidth < 1 {
		return fmt.Errorf("%w: cell width %d", ErrBadConfig, cfg.CellWidth)
	}

	n, flag, err := readHeader(src)
	if err != nil {
		return err
	}

	d := runner{
		out:    out,
		logger: log.New(errOut, "", 0),
		tracer: otel.Tracer(tracerName),
		opts:   []matrix.Option{matrix.WithCellWidth(cfg.CellWidth)},
	}

	switch flag {
	case typeInteger:
		return runTyped[int64](ctx, d, src, n, cfg.UpdateValue, 99)
	case typeFloat:
		return runTyped[float64](ctx, d, src, n, cfg.UpdateValue, 99.99)
	default:
		return fmt.Errorf("%w: got %d", ErrUnknownTypeFlag, flag)
	}
}

// readHeader consumes the size and type flag tokens.
func readHeader(src matrix.TokenSource) (n, flag int, err error) {
	var vals [2]int
	for i, name := range [2]string{"size", "type flag"} {
		tok, err := src.Next()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: read %s: %w", ErrBadHeader, name, err)
		}
		if vals[i], err = strconv.Atoi(tok); err != nil {
			return 0, 0, fmt.Errorf("%w: parse %s %q: %w", ErrBadHeader, name, tok, err)
		}
	}
	return vals[0], vals[1], nil
}

// runner carries the sinks shared by every demonstration step.
type runner struct {
	out    io.Writer
	logger *log.Logger
	tracer trace.Tracer
	opts   []matrix.Option
}

// step runs fn inside a span named after the step, stopping early when ctx is done.
func (d runner) step(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, span := d.tracer.Start(ctx, "matrix."+name)
	defer span.End()

	if err := fn(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// showMatrix writes a title line followed by the rendered matrix.
func showMatrix[T matrix.Element](d runner, title string, m *matrix.Square[T]) error {
	if _, err := fmt.Fprintf(d.out, "%s:\n", title); err != nil {
		return err
	}
	return m.Display(d.out, d.opts...)
}

// recoverable logs an index error and lets the sequence continue; anything
// else aborts it.
func (d runner) recoverable(msg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, matrix.ErrOutOfRange) {
		d.logger.Printf("error: %s: %v", msg, err)
		return nil
	}
	return err
}

func runTyped[T matrix.Element](ctx context.Context, d runner, src matrix.TokenSource, n int, rawUpdate string, defaultUpdate T) error {
	update := defaultUpdate
	if rawUpdate != "" {
		v, err := matrix.ParseValue[T](rawUpdate)
		if err != nil {
			return fmt.Errorf("%w: update value %q: %w", ErrBadConfig, rawUpdate, err)
		}
		update = v
	}

	ctx, span := d.tracer.Start(ctx, "matrix.demo", trace.WithAttributes(
		attribute.Int("matrix.size", n),
	))
	defer span.End()

	var m1, m2, sum, product *matrix.Square[T]
	steps := []struct {
		name string
		fn   func() error
	}{
		{"load", func() (err error) {
			if m1, err = matrix.New[T](n); err != nil {
				return fmt.Errorf("create matrix 1: %w", err)
			}
			if m2, err = matrix.New[T](n); err != nil {
				return fmt.Errorf("create matrix 2: %w", err)
			}
			if err = m1.LoadFrom(src); err != nil {
				return fmt.Errorf("load matrix 1: %w", err)
			}
			if err = showMatrix(d, "matrix 1", m1); err != nil {
				return err
			}
			if err = m2.LoadFrom(src); err != nil {
				return fmt.Errorf("load matrix 2: %w", err)
			}
			return showMatrix(d, "matrix 2", m2)
		}},
		{"add", func() (err error) {
			if sum, err = m1.Add(m2); err != nil {
				return err
			}
			return showMatrix(d, "sum of matrix 1 and matrix 2", sum)
		}},
		{"multiply", func() (err error) {
			if product, err = m1.Multiply(m2); err != nil {
				return err
			}
			return showMatrix(d, "product of matrix 1 and matrix 2", product)
		}},
		{"diagonal_sum", func() error {
			_, err := fmt.Fprintf(d.out, "diagonal sum of matrix 1: %s\n",
				matrix.FormatValue(m1.DiagonalSum(), matrix.DefaultPrecision))
			return err
		}},
		{"swap_rows", func() error {
			if err := d.recoverable("invalid row indices for swapping", m1.SwapRows(0, 2)); err != nil {
				return err
			}
			return showMatrix(d, "matrix 1 after swapping row 0 with row 2", m1)
		}},
		{"swap_columns", func() error {
			if err := d.recoverable("invalid column indices for swapping", m1.SwapColumns(0, 2)); err != nil {
				return err
			}
			return showMatrix(d, "matrix 1 after swapping column 0 with column 2", m1)
		}},
		{"set_element", func() error {
			if err := d.recoverable("invalid indices for update", m1.SetElement(1, 1, update)); err != nil {
				return err
			}
			title := fmt.Sprintf("matrix 1 after updating element (1, 1) to %s",
				matrix.FormatValue(update, matrix.DefaultPrecision))
			return showMatrix(d, title, m1)
		}},
	}

	for _, s := range steps {
		if err := d.step(ctx, s.name, s.fn); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	return nil
}
