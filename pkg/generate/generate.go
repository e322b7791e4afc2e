package generate

import (
	"math/rand/v2"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

// Distribution names a point distribution.
type Distribution string

const (
	DistClustered Distribution = "clustered"
	DistUniform   Distribution = "uniform"
)

// Distributions lists every supported distribution.
var Distributions = []Distribution{DistClustered, DistUniform}

// defaultSeed replaces a zero Options.Seed.
const defaultSeed uint64 = 1

// Options configures point generation. Zero fields take their defaults.
type Options struct {
	// Clusters is the number of Gaussian centres. Default: 3.
	Clusters int

	// Spread is the standard deviation of each cluster along both axes.
	// Default: 20.
	Spread float64

	// Extent is the side of the square [0, Extent)² that holds the cluster
	// centres (Clustered) or the points themselves (Uniform). Default: 1000.
	Extent float64

	// Seed selects the random stream. Zero means a fixed default seed.
	Seed uint64
}

var defaultOpts = Options{
	Clusters: 3,
	Spread:   20,
	Extent:   1000,
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() Options {
	return defaultOpts
}

func (o *Options) withDefaults() (Options, error) {
	out := defaultOpts
	if o == nil {
		return out, nil
	}
	if err := cperrors.ValidateNonNegative("clusters", float64(o.Clusters)); err != nil {
		return out, err
	}
	if err := cperrors.ValidateNonNegative("spread", o.Spread); err != nil {
		return out, err
	}
	if err := cperrors.ValidateNonNegative("extent", o.Extent); err != nil {
		return out, err
	}
	if o.Clusters > 0 {
		out.Clusters = o.Clusters
	}
	if o.Spread > 0 {
		out.Spread = o.Spread
	}
	if o.Extent > 0 {
		out.Extent = o.Extent
	}
	out.Seed = o.Seed
	return out, nil
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Clustered returns points drawn around opts.Clusters centres. Each centre
// contributes n/Clusters points with both coordinates drawn from a normal
// distribution of standard deviation Spread around it, so the result holds
// fewer than n points when n is not a multiple of Clusters. Points are
// grouped by cluster in the output. Pass nil for opts to use defaults.
func Clustered(n int, opts *Options) ([]geom.Point, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := cperrors.ValidateCount("points", n, 0); err != nil {
		return nil, err
	}

	rng := newRNG(o.Seed)
	centres := make([]geom.Point, o.Clusters)
	for i := range centres {
		centres[i] = geom.Pt(rng.Float64()*o.Extent, rng.Float64()*o.Extent)
	}

	per := n / o.Clusters
	pts := make([]geom.Point, 0, per*o.Clusters)
	for _, c := range centres {
		for range per {
			x := c.X + rng.NormFloat64()*o.Spread
			y := c.Y + rng.NormFloat64()*o.Spread
			pts = append(pts, geom.Pt(x, y))
		}
	}
	return pts, nil
}

// Uniform returns n points uniform in [0, opts.Extent)². Pass nil for opts
// to use defaults.
func Uniform(n int, opts *Options) ([]geom.Point, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := cperrors.ValidateCount("points", n, 0); err != nil {
		return nil, err
	}

	rng := newRNG(o.Seed)
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*o.Extent, rng.Float64()*o.Extent)
	}
	return pts, nil
}

// Generate dispatches to the generator for dist.
func Generate(dist Distribution, n int, opts *Options) ([]geom.Point, error) {
	switch dist {
	case DistClustered, "":
		return Clustered(n, opts)
	case DistUniform:
		return Uniform(n, opts)
	}
	return nil, cperrors.New(cperrors.ErrCodeInvalidConfig, "unknown distribution %q", string(dist))
}

// ParseDistribution maps a user-supplied name to a Distribution. The empty
// string selects DistClustered.
func ParseDistribution(name string) (Distribution, error) {
	if name == "" {
		return DistClustered, nil
	}
	if err := cperrors.ValidateOneOf("distribution", name, string(DistClustered), string(DistUniform)); err != nil {
		return "", err
	}
	return Distribution(name), nil
}
