package geom

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Point is a location in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Finite reports whether both coordinates are neither NaN nor infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Pair is an unordered pair of points. A is the endpoint that came first
// in whichever sequence the pair was found in.
type Pair struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// String formats the pair as "(ax, ay)-(bx, by)".
func (p Pair) String() string {
	return p.A.String() + "-" + p.B.String()
}

// SqDist returns the squared length of the segment between the endpoints.
func (p Pair) SqDist() float64 {
	return SqDist(p.A, p.B)
}

// Canonical returns the pair with its endpoints in (x, y) order so that two
// pairs naming the same points compare equal regardless of how they were
// found.
func (p Pair) Canonical() Pair {
	if CompareXY(p.B, p.A) < 0 {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

// SqDist returns the squared Euclidean distance between a and b.
func SqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Sqrt(SqDist(a, b))
}

// CompareXY orders points by x, then y.
func CompareXY(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// CompareYX orders points by y, then x.
func CompareYX(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// SortedXY returns a copy of points sorted by (x, y).
func SortedXY(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortFunc(out, CompareXY)
	return out
}

// SortedYX returns a copy of points sorted by (y, x).
func SortedYX(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortFunc(out, CompareYX)
	return out
}

// Finite reports whether every point has finite coordinates. It returns the
// index of the first offending point, or -1.
func Finite(points []Point) (bool, int) {
	for i, p := range points {
		if !p.Finite() {
			return false, i
		}
	}
	return true, -1
}
