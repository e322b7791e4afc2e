package cli

import (
	"github.com/spf13/cobra"

	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	gen        genFlags
	input      string // point file; generation flags are ignored when set
	json       bool   // write the report as JSON instead of text
	skipBrute  bool
	sequential bool
	tolerance  float64
	strict     bool // exit non-zero when the solvers disagree
}

// compareCommand creates the compare command, which runs both solvers on
// one input and reports whether they agree.
func (c *CLI) compareCommand() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run divide and conquer and brute force on the same points",
		Long: `Run the divide-and-conquer solver and the brute-force scan on the same
point set, time both and check that their distances agree.

Points are generated unless --input names a JSON point file.

Examples:
  closestpair compare                         # 50 clustered points
  closestpair compare -n 10000 -d uniform     # larger uniform input
  closestpair compare --input points.json --strict
  closestpair compare -n 100000 --skip-brute --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd, &opts)
		},
	}

	opts.gen.register(cmd, true)
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read points from a JSON file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the report as JSON")
	cmd.Flags().BoolVar(&opts.skipBrute, "skip-brute", false, "skip the brute-force check")
	cmd.Flags().BoolVar(&opts.sequential, "sequential", false, "run the solvers one after the other")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", pipeline.DefaultTolerance, "relative tolerance when comparing distances")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when the solvers disagree")

	return cmd
}

func (c *CLI) runCompare(cmd *cobra.Command, opts *compareOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts := c.cfg.PipelineOptions()
	opts.gen.apply(cmd, &popts)
	popts.Input = opts.input
	if cmd.Flags().Changed("skip-brute") {
		popts.SkipBruteForce = opts.skipBrute
	}
	if cmd.Flags().Changed("sequential") {
		popts.Sequential = opts.sequential
	}
	if cmd.Flags().Changed("tolerance") {
		popts.Tolerance = opts.tolerance
	}
	popts.Logger = logger

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, c.Err, "Solving...")
	spinner.Start()
	rep, err := c.newRunner().Compare(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("compare finished", "id", rep.ID, "points", rep.Count)

	return c.writeReport(rep, opts)
}

// writeReport prints rep to c.Out. The runner has already logged any
// disagreement; with --strict it also becomes the command's error.
func (c *CLI) writeReport(rep *pipeline.Report, opts *compareOpts) error {
	if opts.json {
		if err := rep.WriteJSON(c.Out); err != nil {
			return err
		}
	} else {
		printReport(c.Out, rep)
	}

	if opts.strict {
		return rep.Verify()
	}
	return nil
}
