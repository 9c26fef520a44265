package solver

import (
	"context"
	"time"

	"github.com/dshills/aoc/internal/input"
	"github.com/dshills/aoc/internal/report"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job pairs a solver with the input it runs against.
type Job struct {
	Solver Solver
	Role   input.Role
	File   *input.File
}

// Run solves the selected parts of one job. A part that fails records its
// error in the result; only cancellation is returned as an error.
func Run(ctx context.Context, logger *zap.Logger, job Job, parts []int) (report.Result, error) {
	res := report.Result{
		Day:       job.Solver.Day,
		Title:     job.Solver.Title,
		Role:      string(job.Role),
		InputFile: job.File.FilePath,
		InputHash: job.File.Hash,
	}

	for _, n := range parts {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		pr := report.PartResult{Part: n}

		fn, err := job.Solver.Part(n)
		if err != nil {
			pr.Error = err.Error()
			res.Parts = append(res.Parts, pr)
			continue
		}
		if fn == nil {
			logger.Debug("part has no solver", zap.Int("day", res.Day), zap.Int("part", n))
			res.Parts = append(res.Parts, pr)
			continue
		}

		start := time.Now()
		ans, err := fn(job.File.Raw)
		pr.Elapsed = time.Since(start)

		switch {
		case err != nil:
			pr.Error = err.Error()
			logger.Warn("part failed", zap.Int("day", res.Day), zap.Int("part", n), zap.Error(err))
		case ans.Solved:
			v := ans.Value
			pr.Answer = &v
			logger.Debug("part solved",
				zap.Int("day", res.Day),
				zap.Int("part", n),
				zap.Uint64("answer", v),
				zap.Duration("elapsed", pr.Elapsed))
		}
		res.Parts = append(res.Parts, pr)
	}
	return res, nil
}

// RunAll runs independent jobs concurrently, at most workers at a time.
func RunAll(ctx context.Context, logger *zap.Logger, jobs []Job, parts []int, workers int) ([]report.Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]report.Result, len(jobs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			res, err := Run(egCtx, logger, job, parts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report.SortResults(results)
	return results, nil
}
