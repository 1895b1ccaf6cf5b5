package demo

import (
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/squarematrix/internal/platform/config"
)

// Config holds the demonstration command configuration.
type Config struct {
	InputPath   string
	CellWidth   int
	UpdateValue string
	Timeout     time.Duration
}

type envConfig struct {
	InputPath string        `env:"SQUAREMATRIX_INPUT" envDefault:"matrix-data.txt"`
	CellWidth int           `env:"SQUAREMATRIX_CELL_WIDTH" envDefault:"8"`
	Timeout   time.Duration `env:"SQUAREMATRIX_TIMEOUT" envDefault:"30s"`
}

// ParseConfig parses environment defaults, then flags, into a Config.
// A cell width below 1 from either source fails with ErrBadConfig.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		InputPath: envCfg.InputPath,
		CellWidth: envCfg.CellWidth,
		Timeout:   envCfg.Timeout,
	}

	fs.StringVar(&cfg.InputPath, "input", cfg.InputPath, "path to the matrix data file (default: SQUAREMATRIX_INPUT or matrix-data.txt)")
	fs.IntVar(&cfg.CellWidth, "cell-width", cfg.CellWidth, "minimum width of a rendered cell")
	fs.StringVar(&cfg.UpdateValue, "update-value", "", "value written to element (1, 1) (default: 99 for integers, 99.99 for floats)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.CellWidth < 1 {
		return Config{}, fmt.Errorf("%w: cell width %d", ErrBadConfig, cfg.CellWidth)
	}
	return cfg, nil
}
