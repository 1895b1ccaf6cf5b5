// Command matrixdemo loads two square matrices from a data file and prints
// their sum, product, diagonal sum and a sequence of in-place edits.
//
// Usage:
//
//	matrixdemo [-input matrix-data.txt] [-cell-width 8] [-update-value 99] [-timeout 30s]
//
// The file holds whitespace-separated tokens: the size n, a type flag
// (0 = integers, 1 = floating point), then n² values for each matrix.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/squarematrix/internal/demo"
	"github.com/katalvlaran/squarematrix/internal/platform/config"
	platformotel "github.com/katalvlaran/squarematrix/internal/platform/otel"
)

func main() {
	cfg, err := demo.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := run(cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(cfg demo.Config) error {
	otelCfg, err := platformotel.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := platformotel.Setup(ctx, "matrixdemo", otelCfg)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	return demo.Run(ctx, cfg, os.Stdout, os.Stderr)
}
