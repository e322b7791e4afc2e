package closest

import (
	"errors"
	"math"

	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
)

// ErrTooFewPoints is wrapped by the INVALID_INPUT error both solvers return
// for inputs with fewer than two points.
var ErrTooFewPoints = errors.New("closest: need at least two points")

// baseCaseSize is the largest partition solved by brute force inside the
// recursion.
const baseCaseSize = 3

// Result is the outcome of a closest-pair query.
type Result struct {
	// Distance is the Euclidean distance between the endpoints of Pair.
	Distance float64 `json:"distance"`

	// SquaredDistance is Distance squared, exactly as compared by the solver.
	SquaredDistance float64 `json:"squared_distance"`

	// Pair holds the two closest points.
	Pair geom.Pair `json:"pair"`

	// Comparisons counts squared-distance evaluations made by the solver.
	Comparisons int `json:"comparisons"`
}

func newResult(sq float64, pair geom.Pair, comparisons int) Result {
	return Result{
		Distance:        math.Sqrt(sq),
		SquaredDistance: sq,
		Pair:            pair,
		Comparisons:     comparisons,
	}
}

func validate(points []geom.Point) error {
	if len(points) < 2 {
		return cperrors.Wrap(cperrors.ErrCodeInvalidInput, ErrTooFewPoints, "got %d point(s)", len(points))
	}
	return nil
}
