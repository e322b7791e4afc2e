package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/arkapriyo/closestpair/pkg/closest"
	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/generate"
	"github.com/arkapriyo/closestpair/pkg/geom"
	pointio "github.com/arkapriyo/closestpair/pkg/io"
	"github.com/arkapriyo/closestpair/pkg/observability"
)

// Runner executes comparison runs.
// Both CLI and API use it so that loading, timing and verification behave
// the same everywhere.
//
// The Runner is stateless except for the logger - it doesn't store results.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Compare runs the complete input → solve → compare pipeline.
func (r *Runner) Compare(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	start := time.Now()

	report := &Report{
		ID:        uuid.NewString(),
		Tolerance: opts.Tolerance,
	}

	// Stage 1: Input
	points, source, err := r.LoadPoints(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	report.Source = source
	report.Count = len(points)
	report.Stats.InputTime = time.Since(start)
	if opts.Generated() {
		report.Seed = opts.Seed
	}
	if b, ok := geom.Bounds(points); ok {
		report.Bounds = b
	}

	r.Logger.Debug("loaded points",
		"source", source,
		"count", len(points),
		"duration", report.Stats.InputTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Solve
	if err := r.solveAll(ctx, points, opts, report); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	// Stage 3: Compare
	report.Agree = true
	if report.BruteForce != nil {
		report.Agree = DistancesAgree(report.DivideAndConquer.Distance, report.BruteForce.Distance, opts.Tolerance)
		observability.Pipeline().OnVerify(ctx, report.Agree)
		if !report.Agree {
			r.Logger.Warn("solvers disagree",
				"divide_and_conquer", report.DivideAndConquer.Distance,
				"brute_force", report.BruteForce.Distance)
		}
	}
	report.Stats.TotalTime = time.Since(start)

	r.Logger.Info("compared solvers",
		"count", report.Count,
		"distance", report.DivideAndConquer.Distance,
		"agree", report.Agree,
		"duration", report.Stats.TotalTime)

	return report, nil
}

func (r *Runner) solveAll(ctx context.Context, points []geom.Point, opts Options, report *Report) error {
	algos := []closest.Algorithm{closest.DivideAndConquer}
	switch {
	case opts.SkipBruteForce:
	case opts.BruteForceLimit > 0 && len(points) > opts.BruteForceLimit:
		r.Logger.Debug("brute force skipped", "count", len(points), "limit", opts.BruteForceLimit)
	default:
		algos = append(algos, closest.Brute)
	}
	runs := make([]Run, len(algos))

	if opts.Sequential {
		for i, algo := range algos {
			if err := ctx.Err(); err != nil {
				return err
			}
			run, err := r.Solve(ctx, algo, points)
			if err != nil {
				return err
			}
			runs[i] = run
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for i, algo := range algos {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				run, err := r.Solve(gctx, algo, points)
				if err != nil {
					return err
				}
				runs[i] = run
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	report.DivideAndConquer = runs[0]
	if len(runs) > 1 {
		report.BruteForce = &runs[1]
	}
	return nil
}

// Solve runs one algorithm on points and times it. points is only read.
func (r *Runner) Solve(ctx context.Context, algo closest.Algorithm, points []geom.Point) (Run, error) {
	observability.Pipeline().OnSolveStart(ctx, string(algo), len(points))

	start := time.Now()
	res, err := closest.Solve(algo, points)
	elapsed := time.Since(start)

	observability.Pipeline().OnSolveComplete(ctx, string(algo), res.Comparisons, elapsed, err)
	if err != nil {
		return Run{}, err
	}

	r.Logger.Debug("solved",
		"algorithm", algo,
		"distance", res.Distance,
		"comparisons", res.Comparisons,
		"duration", elapsed)

	return newRun(algo, res, elapsed), nil
}

// LoadPoints resolves the input described by opts and returns the points
// with a description of their source.
func (r *Runner) LoadPoints(ctx context.Context, opts Options) ([]geom.Point, string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", err
	}

	var (
		points []geom.Point
		source string
		err    error
	)
	switch {
	case opts.Points != nil:
		points, source = opts.Points, "request"
		observability.Pipeline().OnLoadComplete(ctx, source, len(points), nil)
	case opts.Input != "":
		source = opts.Input
		points, err = pointio.ImportPoints(opts.Input)
		observability.Pipeline().OnLoadComplete(ctx, source, len(points), err)
	default:
		source = "generated:" + opts.Distribution
		points, err = r.Generate(ctx, opts)
	}
	if err != nil {
		return nil, "", err
	}

	if err := cperrors.ValidateLimit("points", len(points), opts.MaxPoints); err != nil {
		return nil, "", err
	}
	return points, source, nil
}

// Generate draws a synthetic point set as described by opts.
func (r *Runner) Generate(ctx context.Context, opts Options) ([]geom.Point, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	observability.Pipeline().OnGenerateStart(ctx, opts.Distribution, opts.Count)

	start := time.Now()
	points, err := generate.Generate(generate.Distribution(opts.Distribution), opts.Count, opts.GenerateOptions())
	elapsed := time.Since(start)

	observability.Pipeline().OnGenerateComplete(ctx, opts.Distribution, len(points), elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("generated points",
		"distribution", opts.Distribution,
		"requested", opts.Count,
		"count", len(points),
		"duration", elapsed)
	return points, nil
}
