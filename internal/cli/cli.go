// Package cli implements the closestpair command-line interface.
//
// This package provides commands for generating point sets, running the
// closest-pair solvers on them, comparing the solvers and serving them over
// HTTP. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - compare: Run divide and conquer and brute force on one input and report both
//   - solve: Run a single algorithm on a point file
//   - generate: Write a generated point set as JSON
//   - bench: Measure how both solvers scale across input sizes
//   - serve: Start the HTTP API
//
// # Configuration
//
// Defaults come from a TOML file: --config if given, otherwise
// $XDG_CONFIG_HOME/closestpair/config.toml when it exists. Flags override
// the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arkapriyo/closestpair/pkg/buildinfo"
	"github.com/arkapriyo/closestpair/pkg/config"
	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "closestpair"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Logs and the spinner go to Err.
	Out io.Writer
	Err io.Writer

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance. Command output goes to stdout and logs
// to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "closestpair finds the closest pair among planar points",
		Long:         `closestpair finds the two closest points in a 2D point set with an O(n log n) divide-and-conquer algorithm, and checks it against an O(n²) brute-force scan.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/closestpair/config.toml)")

	// Register all subcommands
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.Load(c.configPath)
	} else {
		c.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded config", "path", c.configPath)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
