package cli

import (
	"github.com/spf13/cobra"

	pointio "github.com/arkapriyo/closestpair/pkg/io"
)

// generateCommand creates the generate command, which writes a synthetic
// point set as JSON.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		gen    genFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated point set as JSON",
		Long: `Write a generated point set as JSON, for use with solve or compare --input.

Examples:
  closestpair generate -n 1000 -o points.json
  closestpair generate -n 500 -d uniform --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts := c.cfg.PipelineOptions()
			gen.apply(cmd, &opts)
			opts.Logger = loggerFromContext(ctx)

			points, err := c.newRunner().Generate(ctx, opts)
			if err != nil {
				return err
			}

			if output == "" {
				return pointio.WritePoints(c.Out, points)
			}
			if err := pointio.ExportPoints(points, output); err != nil {
				return err
			}
			printSuccess(c.Err, "Generated %d points", len(points))
			printFile(c.Err, output)
			return nil
		},
	}

	gen.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
