package closest_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arkapriyo/closestpair/pkg/geom"
)

// relTol is the relative tolerance used when comparing distances from the
// two solvers.
const relTol = 1e-9

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniformPoints returns n points uniform in [0, extent)².
func uniformPoints(rng *rand.Rand, n int, extent float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*extent, rng.Float64()*extent)
	}
	return pts
}

// clusteredPoints returns n points spread around k Gaussian centres.
func clusteredPoints(rng *rand.Rand, n, k int, spread float64) []geom.Point {
	centres := uniformPoints(rng, k, 1000)
	pts := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		c := centres[i%k]
		pts = append(pts, geom.Pt(c.X+rng.NormFloat64()*spread, c.Y+rng.NormFloat64()*spread))
	}
	return pts
}

// gridPoints returns a w×h lattice with unit spacing; every adjacent pair
// ties at distance 1.
func gridPoints(w, h int) []geom.Point {
	pts := make([]geom.Point, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			pts = append(pts, geom.Pt(float64(x), float64(y)))
		}
	}
	return pts
}

// roundedPoints snaps coordinates to a coarse integer grid so that many
// points share an x or y coordinate, or coincide outright.
func roundedPoints(rng *rand.Rand, n int, extent float64) []geom.Point {
	pts := uniformPoints(rng, n, extent)
	for i := range pts {
		pts[i] = geom.Pt(math.Round(pts[i].X), math.Round(pts[i].Y))
	}
	return pts
}

func distancesClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

func mustAgree(t *testing.T, points []geom.Point) {
	t.Helper()
	bf := mustBrute(t, points)
	dc := mustClosest(t, points)
	if !distancesClose(dc.Distance, math.Sqrt(bf.SquaredDistance)) {
		t.Fatalf("n=%d: divide and conquer %.17g, brute force %.17g", len(points), dc.Distance, bf.Distance)
	}
	if got := dc.Pair.SqDist(); got != dc.SquaredDistance {
		t.Fatalf("reported pair %v has squared distance %.17g, result says %.17g", dc.Pair, got, dc.SquaredDistance)
	}
}
