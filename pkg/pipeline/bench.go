package pipeline

import (
	"context"
	"fmt"
	"slices"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
)

// DefaultBenchSizes are the input sizes used when none are given.
var DefaultBenchSizes = []int{1000, 2000, 4000, 8000, 16000}

// DefaultBruteForceLimit is the largest input brute force is run on during
// a benchmark.
const DefaultBruteForceLimit = 20000

// BenchOptions configures a scaling benchmark.
type BenchOptions struct {
	// Sizes lists the input sizes, in the order they are run.
	Sizes []int

	// BruteForceLimit skips brute force above this size. Negative disables
	// brute force entirely; zero means DefaultBruteForceLimit.
	BruteForceLimit int

	// Base carries the generator and solve settings. Count and input
	// fields are ignored.
	Base Options
}

// BenchRow is the result for one input size.
type BenchRow struct {
	Size             int  `json:"size"`
	DivideAndConquer Run  `json:"divide_and_conquer"`
	BruteForce       *Run `json:"brute_force,omitempty"`
	Agree            bool `json:"agree"`

	// Growth is this row's divide-and-conquer comparison count over the
	// previous row's. Zero on the first row.
	Growth float64 `json:"growth,omitempty"`
}

// Bench runs a comparison on a generated input for every size in
// opts.Sizes and reports how the solvers scale.
func (r *Runner) Bench(ctx context.Context, opts BenchOptions) ([]BenchRow, error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = DefaultBenchSizes
	}
	for _, n := range sizes {
		if err := cperrors.ValidateCount("points", n, 2); err != nil {
			return nil, err
		}
	}
	sizes = slices.Clone(sizes)

	limit := opts.BruteForceLimit
	if limit == 0 {
		limit = DefaultBruteForceLimit
	}

	rows := make([]BenchRow, 0, len(sizes))
	for i, n := range sizes {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		run := opts.Base
		run.Points, run.Input = nil, ""
		run.validated = false
		run.Count = n
		run.SkipBruteForce = run.SkipBruteForce || n > limit

		rep, err := r.Compare(ctx, run)
		if err != nil {
			return rows, fmt.Errorf("size %d: %w", n, err)
		}

		row := BenchRow{
			Size:             rep.Count,
			DivideAndConquer: rep.DivideAndConquer,
			BruteForce:       rep.BruteForce,
			Agree:            rep.Agree,
		}
		if i > 0 && rows[i-1].DivideAndConquer.Comparisons > 0 {
			row.Growth = float64(row.DivideAndConquer.Comparisons) / float64(rows[i-1].DivideAndConquer.Comparisons)
		}
		rows = append(rows, row)

		r.Logger.Debug("bench size done", "size", n, "elapsed", row.DivideAndConquer.Elapsed)
	}
	return rows, nil
}
