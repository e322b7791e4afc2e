package closest

import (
	"math"

	"github.com/arkapriyo/closestpair/pkg/geom"
)

// BruteForce examines every unordered pair of points once and returns the
// closest. Ties go to the first pair in index order.
//
// Complexity: O(n²) time, O(1) extra memory.
func BruteForce(points []geom.Point) (Result, error) {
	if err := validate(points); err != nil {
		return Result{}, err
	}
	var comparisons int
	sq, pair := scan(points, &comparisons)
	return newResult(sq, pair, comparisons), nil
}

// scan is the exhaustive pair search shared by BruteForce and the recursion
// base case. len(points) must be at least 2.
func scan(points []geom.Point, comparisons *int) (float64, geom.Pair) {
	best := math.Inf(1)
	pair := geom.Pair{A: points[0], B: points[1]}
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			*comparisons++
			if d := geom.SqDist(points[i], points[j]); d < best {
				best = d
				pair = geom.Pair{A: points[i], B: points[j]}
			}
		}
	}
	return best, pair
}
