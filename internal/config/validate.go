package config

import (
	"fmt"

	"github.com/dshills/aoc/internal/report"
	"go.uber.org/zap/zapcore"
)

// MaxWorkers bounds how many days may run at once.
const MaxWorkers = 64

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for usable values.
func Validate(c *Config) []ValidationError {
	var errs []ValidationError

	if c.DataDir == "" {
		errs = append(errs, ValidationError{"data_dir", "required"})
	}
	if !report.Format(c.Format).Valid() {
		errs = append(errs, ValidationError{"format", fmt.Sprintf("invalid format: %q", c.Format)})
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, ValidationError{"log_level", fmt.Sprintf("invalid level: %q", c.LogLevel)})
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		errs = append(errs, ValidationError{"workers", fmt.Sprintf("must be between 1 and %d, got %d", MaxWorkers, c.Workers)})
	}

	return errs
}
