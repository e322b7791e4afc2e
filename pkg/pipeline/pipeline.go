// Package pipeline runs the closest-pair solvers side by side for the CLI
// and the HTTP API.
//
// This package implements the load → solve → compare flow that both entry
// points share. By centralizing this logic, the CLI and the API report the
// same numbers for the same input.
//
// # Architecture
//
// A comparison consists of three stages:
//
//  1. Input: generate a synthetic point set, read one from a file, or take
//     points supplied by the caller
//  2. Solve: run divide and conquer and, unless skipped, brute force on the
//     same points, timing each
//  3. Compare: check that both distances agree within a relative tolerance
//
// The solvers only read the point slice, so by default they run
// concurrently. The solvers themselves cannot be interrupted; context
// cancellation is observed between stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	report, err := runner.Compare(ctx, pipeline.Options{Count: 10000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := report.Verify(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.DivideAndConquer.Distance)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/generate"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCount is the number of points generated when no input is given.
	DefaultCount = 50

	// DefaultTolerance is the relative difference allowed between the two
	// solvers' distances.
	DefaultTolerance = 1e-9
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a comparison run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input options. Points takes precedence over Input, which takes
	// precedence over generation.
	Points []geom.Point `json:"-"`
	Input  string       `json:"input,omitempty"`

	// Generation options
	Count        int     `json:"count,omitempty"`
	Distribution string  `json:"distribution,omitempty"`
	Clusters     int     `json:"clusters,omitempty"`
	Spread       float64 `json:"spread,omitempty"`
	Extent       float64 `json:"extent,omitempty"`
	Seed         uint64  `json:"seed,omitempty"`

	// Solve options
	SkipBruteForce bool    `json:"skip_brute_force,omitempty"`
	Sequential     bool    `json:"sequential,omitempty"` // Run the solvers one after the other
	Tolerance      float64 `json:"tolerance,omitempty"`

	// BruteForceLimit skips brute force for inputs with more points. Zero
	// disables the limit.
	BruteForceLimit int `json:"-"`

	// MaxPoints rejects larger inputs with TOO_LARGE. Zero disables the limit.
	MaxPoints int `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Points == nil && o.Input == "" {
		if err := o.validateGenerate(); err != nil {
			return err
		}
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if err := cperrors.ValidatePositive("tolerance", o.Tolerance); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) validateGenerate() error {
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if err := cperrors.ValidateCount("points", o.Count, 2); err != nil {
		return err
	}
	if err := cperrors.ValidateLimit("points", o.Count, o.MaxPoints); err != nil {
		return err
	}
	dist, err := generate.ParseDistribution(o.Distribution)
	if err != nil {
		return err
	}
	o.Distribution = string(dist)

	if dist == generate.DistClustered {
		clusters := o.Clusters
		if clusters == 0 {
			clusters = generate.DefaultOptions().Clusters
		}
		if clusters > 1 && o.Count < clusters {
			return cperrors.New(cperrors.ErrCodeInvalidInput,
				"%d points cannot fill %d clusters: use at least %d points or fewer clusters",
				o.Count, clusters, clusters)
		}
	}
	return nil
}

// GenerateOptions returns the generator settings carried by o.
func (o *Options) GenerateOptions() *generate.Options {
	return &generate.Options{
		Clusters: o.Clusters,
		Spread:   o.Spread,
		Extent:   o.Extent,
		Seed:     o.Seed,
	}
}

// Generated reports whether the run draws its points from the generator.
func (o *Options) Generated() bool {
	return o.Points == nil && o.Input == ""
}
