package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pointio "github.com/arkapriyo/closestpair/pkg/io"
	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// benchCommand creates the bench command, which measures how both solvers
// scale across input sizes.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		gen        genFlags
		sizes      []int
		bruteLimit int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure how both solvers scale with input size",
		Long: `Run both solvers on generated inputs of increasing size and print a table
of times, distance evaluations and growth ratios.

Growth is the divide-and-conquer comparison count over the previous row's.
Doubling n should give a ratio a little above 2; brute force gives 4.

Examples:
  closestpair bench
  closestpair bench --sizes 10000,20000,40000,80000 --brute-limit 20000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			base := c.cfg.PipelineOptions()
			gen.apply(cmd, &base)
			base.Logger = logger

			opts := pipeline.BenchOptions{
				Sizes:           sizes,
				BruteForceLimit: bruteLimit,
				Base:            base,
			}

			prog := newProgress(logger)
			spinner := newSpinnerWithContext(ctx, c.Err, fmt.Sprintf("Benchmarking %d sizes...", len(opts.Sizes)))
			spinner.Start()
			rows, err := c.newRunner().Bench(ctx, opts)
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done("bench finished", "sizes", len(rows))

			if asJSON {
				return pointio.WriteReport(c.Out, rows)
			}
			fmt.Fprintln(c.Out, benchTable(rows))
			for _, r := range rows {
				if r.BruteForce != nil && !r.Agree {
					printWarning(c.Out, "solvers disagree at n=%d", r.Size)
				}
			}
			return nil
		},
	}

	gen.register(cmd, false)
	cmd.Flags().IntSliceVar(&sizes, "sizes", pipeline.DefaultBenchSizes, "input sizes to run")
	cmd.Flags().IntVar(&bruteLimit, "brute-limit", pipeline.DefaultBruteForceLimit, "skip brute force above this size (negative skips it always)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the rows as JSON")

	return cmd
}
