package pipeline

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/arkapriyo/closestpair/pkg/closest"
	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
	pointio "github.com/arkapriyo/closestpair/pkg/io"
)

// Run is the timed outcome of one solver on one input.
type Run struct {
	Algorithm closest.Algorithm `json:"algorithm"`
	closest.Result

	Elapsed time.Duration `json:"-"`
	// ElapsedMS is Elapsed in fractional milliseconds for JSON output.
	ElapsedMS float64 `json:"elapsed_ms"`
}

func newRun(algo closest.Algorithm, res closest.Result, elapsed time.Duration) Run {
	return Run{
		Algorithm: algo,
		Result:    res,
		Elapsed:   elapsed,
		ElapsedMS: float64(elapsed) / float64(time.Millisecond),
	}
}

// Report records both solvers on one input.
type Report struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Source describes where the points came from: "generated:<distribution>",
	// a file path, or "request".
	Source string `json:"source"`

	// Seed is the generator seed for generated inputs.
	Seed uint64 `json:"seed,omitempty"`

	// Count is the number of points solved.
	Count int `json:"count"`

	// Bounds is the bounding box of the input.
	Bounds geom.Rect `json:"bounds"`

	DivideAndConquer Run  `json:"divide_and_conquer"`
	BruteForce       *Run `json:"brute_force,omitempty"`

	// Agree is true when brute force was skipped or both distances match
	// within Tolerance.
	Agree     bool    `json:"agree"`
	Tolerance float64 `json:"tolerance"`

	// Stats contains timing for the stages around the solvers.
	Stats Stats `json:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	InputTime time.Duration `json:"-"`
	TotalTime time.Duration `json:"-"`
}

// Verified reports whether the brute-force oracle ran.
func (r *Report) Verified() bool {
	return r.BruteForce != nil
}

// Speedup returns brute-force time over divide-and-conquer time, or 0 when
// brute force was skipped.
func (r *Report) Speedup() float64 {
	if r.BruteForce == nil || r.DivideAndConquer.Elapsed <= 0 {
		return 0
	}
	return float64(r.BruteForce.Elapsed) / float64(r.DivideAndConquer.Elapsed)
}

// Verify returns a MISMATCH error when the solvers disagreed. A report
// without a brute-force run has nothing to disagree with.
func (r *Report) Verify() error {
	if r.Agree || !r.Verified() {
		return nil
	}
	return cperrors.New(cperrors.ErrCodeMismatch,
		"divide and conquer found %.17g, brute force %.17g",
		r.DivideAndConquer.Distance, r.BruteForce.Distance)
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	return pointio.WriteReport(w, r)
}

// String returns a one-line summary.
func (r *Report) String() string {
	s := fmt.Sprintf("n=%d d=%g pair=%v", r.Count, r.DivideAndConquer.Distance, r.DivideAndConquer.Pair)
	if r.BruteForce != nil {
		s += fmt.Sprintf(" agree=%t", r.Agree)
	}
	return s
}

// DistancesAgree reports whether a and b differ by at most tol relative to
// the larger of the two.
func DistancesAgree(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}
