package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dshills/aoc/internal/config"
	"github.com/dshills/aoc/internal/input"
	"github.com/dshills/aoc/internal/logging"
	"github.com/dshills/aoc/internal/render"
	"github.com/dshills/aoc/internal/report"
	"github.com/dshills/aoc/internal/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type solveFlags struct {
	part       int
	examples   bool
	inputPath  string
	dataDir    string
	format     string
	out        string
	configPath string
	verbose    bool

	// injected by tests
	logger *zap.Logger
	stdout io.Writer
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve the given days, or every registered day",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.stdout = cmd.OutOrStdout()
			return runSolve(cmd.Context(), args, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.part, "part", 0, "Part to solve: 1, 2, or 0 for both")
	flags.BoolVar(&f.examples, "examples", false, "Read example inputs instead of puzzle inputs")
	flags.StringVar(&f.inputPath, "input", "", "Explicit input file (single day only)")
	flags.StringVar(&f.dataDir, "data-dir", "", "Directory holding inputs/ and examples/ (default from config)")
	flags.StringVar(&f.format, "format", "", "Output format: text, md, json, or yaml (default from config)")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.configPath, "config", "", "Config file (default: ./"+config.FileName+" if present)")
	flags.BoolVar(&f.verbose, "verbose", false, "Log each step to stderr")

	return cmd
}

func runSolve(ctx context.Context, args []string, f *solveFlags) error {
	started := time.Now()

	// 1. Load config, flags win
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return exitError(3, "failed to load config: %v", err)
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.format != "" {
		cfg.Format = f.format
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Config errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(3, "invalid configuration")
	}

	// 2. Logger
	logger := f.logger
	if logger == nil {
		logger, err = logging.New(cfg.LogLevel, f.verbose)
		if err != nil {
			return exitError(3, "failed to initialize logger: %v", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	// 3. Resolve days and parts
	parts, err := solver.Parts(f.part)
	if err != nil {
		return exitError(4, "%v", err)
	}
	days, err := parseDays(args)
	if errors.Is(err, solver.ErrUnknownDay) {
		return exitError(4, "%v", err)
	}
	if err != nil {
		return exitError(3, "%v", err)
	}
	if f.inputPath != "" && len(days) != 1 {
		return exitError(3, "--input needs exactly one day, got %d", len(days))
	}

	role := input.RoleInputs
	if f.examples {
		role = input.RoleExamples
	}

	// 4. Load inputs
	var jobs []solver.Job
	for _, day := range days {
		s, err := solver.Lookup(day)
		if err != nil {
			return exitError(4, "%v", err)
		}

		var file *input.File
		if f.inputPath != "" {
			file, err = input.Load(f.inputPath)
		} else {
			file, err = input.LoadDay(cfg.DataDir, role, day)
		}
		if err != nil {
			return exitError(3, "failed to load input for day %d: %v", day, err)
		}
		logger.Debug("loaded input",
			zap.Int("day", day),
			zap.String("path", file.FilePath),
			zap.String("hash", file.Hash))

		jobs = append(jobs, solver.Job{Solver: s, Role: role, File: file})
	}

	// 5. Solve
	logger.Debug("solving", zap.Ints("days", days), zap.Ints("parts", parts), zap.Int("workers", cfg.Workers))
	results, err := solver.RunAll(ctx, logger, jobs, parts, cfg.Workers)
	if err != nil {
		return fmt.Errorf("solve interrupted: %w", err)
	}

	rep := report.New(version, results, report.Meta{
		DataDir: cfg.DataDir,
		Workers: cfg.Workers,
		Started: started,
	})

	// 6. Output
	output, err := render.Render(rep, report.Format(cfg.Format))
	if err != nil {
		return exitError(3, "%v", err)
	}

	if f.out != "" {
		logger.Debug("writing output", zap.String("path", f.out))
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		w := f.stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := io.WriteString(w, output); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	// 7. Exit code
	if rep.Summary.FailedCount > 0 {
		return exitError(5, "%d part(s) failed", rep.Summary.FailedCount)
	}
	return nil
}

func parseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return solver.Days(), nil
	}
	seen := make(map[int]bool)
	var days []int
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", a)
		}
		if d < input.FirstDay || d > input.LastDay {
			return nil, fmt.Errorf("%w %d: outside %d..%d", solver.ErrUnknownDay, d, input.FirstDay, input.LastDay)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	return days, nil
}
