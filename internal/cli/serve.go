package cli

import (
	"github.com/spf13/cobra"

	"github.com/arkapriyo/closestpair/pkg/api"
	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// serveCommand creates the serve command, which starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		maxPoints  int
		bruteLimit int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Endpoints:
  GET  /healthz       liveness probe
  GET  /version       build information
  POST /v1/closest    solve one point set with one algorithm
  POST /v1/compare    run both solvers and report whether they agree

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("max-points") {
				cfg.MaxPoints = maxPoints
			}
			if cmd.Flags().Changed("brute-limit") {
				cfg.BruteForceLimit = bruteLimit
			}

			srv := api.New(c.newRunner(), c.Logger, api.Options{
				MaxPoints:       cfg.MaxPoints,
				BruteForceLimit: cfg.BruteForceLimit,
				ReadTimeout:     cfg.ReadTimeout.Duration,
				WriteTimeout:    cfg.WriteTimeout.Duration,
			})
			return srv.ListenAndServe(cmd.Context(), cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&maxPoints, "max-points", 200000, "largest point set accepted (0 for no limit)")
	cmd.Flags().IntVar(&bruteLimit, "brute-limit", pipeline.DefaultBruteForceLimit, "largest point set brute force runs on (negative for no limit)")

	return cmd
}
