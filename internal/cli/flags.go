package cli

import (
	"github.com/spf13/cobra"

	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// genFlags holds the point generation flags shared by compare, generate
// and bench. Only flags the user actually set override the config file.
type genFlags struct {
	count        int
	distribution string
	clusters     int
	spread       float64
	extent       float64
	seed         uint64
}

func (f *genFlags) register(cmd *cobra.Command, withCount bool) {
	fs := cmd.Flags()
	if withCount {
		fs.IntVarP(&f.count, "count", "n", pipeline.DefaultCount, "number of points to generate")
	}
	fs.StringVarP(&f.distribution, "distribution", "d", "clustered", "point distribution (clustered, uniform)")
	fs.IntVar(&f.clusters, "clusters", 3, "number of clusters")
	fs.Float64Var(&f.spread, "spread", 20, "standard deviation of each cluster")
	fs.Float64Var(&f.extent, "extent", 1000, "side of the square points and centres are drawn from")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (0 uses a fixed default)")

	_ = cmd.RegisterFlagCompletionFunc("distribution", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"clustered", "uniform"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// apply copies explicitly set flags onto opts.
func (f *genFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("count") {
		opts.Count = f.count
	}
	if fs.Changed("distribution") {
		opts.Distribution = f.distribution
	}
	if fs.Changed("clusters") {
		opts.Clusters = f.clusters
	}
	if fs.Changed("spread") {
		opts.Spread = f.spread
	}
	if fs.Changed("extent") {
		opts.Extent = f.extent
	}
	if fs.Changed("seed") {
		opts.Seed = f.seed
	}
}
