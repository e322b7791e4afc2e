package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkapriyo/closestpair/pkg/closest"
	pointio "github.com/arkapriyo/closestpair/pkg/io"
)

// solveCommand creates the solve command, which runs one algorithm on a
// point file.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		algo   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Find the closest pair in a point file",
		Long: `Find the closest pair in a JSON point file with a single algorithm.

The file holds {"points": [[x, y], ...]} or a bare [[x, y], ...] array.

Examples:
  closestpair solve points.json
  closestpair solve points.json --algo brute`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := closest.ParseAlgorithm(algo)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			points, err := pointio.ImportPoints(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("loaded points", "path", args[0], "count", len(points))

			run, err := c.newRunner().Solve(ctx, a, points)
			if err != nil {
				return err
			}

			if asJSON {
				return pointio.WriteReport(c.Out, run)
			}
			printRun(c.Out, run)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", string(closest.DivideAndConquer), "algorithm (dc, brute)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the result as JSON")
	_ = cmd.RegisterFlagCompletionFunc("algo", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(closest.Algorithms))
		for i, a := range closest.Algorithms {
			names[i] = fmt.Sprintf("%s\t%s", string(a), a.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
