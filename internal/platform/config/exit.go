// Fatal exit for the matrixdemo entry point: every startup or run failure ends
// here with a single stderr line and status 1.

package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// cmd/matrixdemo routes config, open, header and load failures through it.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
