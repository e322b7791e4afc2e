package closest_test

import (
	"fmt"

	"github.com/arkapriyo/closestpair/pkg/closest"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

func ExampleClosestPair() {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(0, 0.0000001)}

	res, err := closest.ClosestPair(pts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.7f %v\n", res.Distance, res.Pair.Canonical())
	// Output:
	// 0.0000001 (0, 0)-(0, 1e-07)
}

func ExampleBruteForce() {
	square := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1)}

	res, _ := closest.BruteForce(square)
	fmt.Println(res.Distance, res.Pair, res.Comparisons)
	// Output:
	// 1 (0, 0)-(0, 1) 6
}

func ExampleSolve() {
	pts := []geom.Point{geom.Pt(1, 1), geom.Pt(4, 5), geom.Pt(10, 10)}

	for _, algo := range closest.Algorithms {
		res, _ := closest.Solve(algo, pts)
		fmt.Printf("%s: %g\n", algo, res.Distance)
	}
	// Output:
	// Divide and Conquer: 5
	// Brute Force: 5
}

func ExampleClosestPair_tooFew() {
	_, err := closest.ClosestPair([]geom.Point{geom.Pt(1, 2)})
	fmt.Println(err)
	// Output:
	// INVALID_INPUT: got 1 point(s): closest: need at least two points
}
