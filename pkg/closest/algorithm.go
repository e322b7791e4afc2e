package closest

import (
	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

// Algorithm names a solver.
type Algorithm string

const (
	// DivideAndConquer selects ClosestPair.
	DivideAndConquer Algorithm = "dc"
	// Brute selects BruteForce.
	Brute Algorithm = "brute"
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{DivideAndConquer, Brute}

// String returns a display name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DivideAndConquer:
		return "Divide and Conquer"
	case Brute:
		return "Brute Force"
	}
	return string(a)
}

// ParseAlgorithm maps a user-supplied name to an Algorithm. The empty
// string selects DivideAndConquer.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", "dc", "divide-and-conquer":
		return DivideAndConquer, nil
	case "brute", "brute-force":
		return Brute, nil
	}
	return "", cperrors.New(cperrors.ErrCodeInvalidAlgorithm, "unknown algorithm %q (must be one of: dc, brute)", name)
}

// Solve runs the named algorithm on points.
func Solve(algo Algorithm, points []geom.Point) (Result, error) {
	switch algo {
	case DivideAndConquer:
		return ClosestPair(points)
	case Brute:
		return BruteForce(points)
	}
	return Result{}, cperrors.New(cperrors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", string(algo))
}
