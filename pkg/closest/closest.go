package closest

import (
	"slices"

	"github.com/arkapriyo/closestpair/pkg/geom"
)

// ClosestPair returns the closest pair of points using divide and conquer.
// The input is not modified.
//
// Complexity: O(n log n) time, O(n) extra memory.
func ClosestPair(points []geom.Point) (Result, error) {
	if err := validate(points); err != nil {
		return Result{}, err
	}
	s := newSolver(points)
	sq, pair := s.solve(0, len(points))
	return newResult(sq, pair, s.comparisons), nil
}

// solver holds the working arrays for one ClosestPair call. Recursion
// passes [lo, hi) index ranges into them instead of slicing copies.
//
// Invariants for a range [lo, hi):
//   - xs[lo:hi] is sorted by (x, y) and never changes after construction.
//   - ys[lo:hi] holds the same points sorted by (y, x) on entry to solve,
//     and again on return.
//   - tmp[lo:hi] is free scratch space for the duration of the call.
type solver struct {
	xs          []geom.Point
	ys          []geom.Point
	tmp         []geom.Point
	comparisons int
}

func newSolver(points []geom.Point) *solver {
	xs := slices.Clone(points)
	slices.SortFunc(xs, geom.CompareXY)
	ys := slices.Clone(points)
	slices.SortFunc(ys, geom.CompareYX)
	return &solver{
		xs:  xs,
		ys:  ys,
		tmp: make([]geom.Point, len(points)),
	}
}

// solve returns the smallest squared distance within [lo, hi) and the pair
// that realizes it.
func (s *solver) solve(lo, hi int) (float64, geom.Pair) {
	if hi-lo <= baseCaseSize {
		return scan(s.xs[lo:hi], &s.comparisons)
	}

	mid := lo + (hi-lo)/2
	pivot := s.xs[mid]

	s.split(lo, mid, hi, pivot)
	dl, pl := s.solve(lo, mid)
	dr, pr := s.solve(mid, hi)

	d, best := dl, pl
	if dr < dl {
		d, best = dr, pr
	}

	s.merge(lo, mid, hi)
	return s.scanStrip(s.strip(lo, hi, pivot.X, d), d, best)
}

// split partitions ys[lo:hi] so that ys[lo:mid] holds the points of
// xs[lo:mid] and ys[mid:hi] those of xs[mid:hi], each still in (y, x)
// order.
//
// A point goes left when it precedes the pivot in (x, y) order. Copies of
// the pivot itself may sit on both sides of mid in xs; as many of them go
// left as xs has before mid, so both halves keep their exact sizes.
func (s *solver) split(lo, mid, hi int, pivot geom.Point) {
	dupLeft := 0
	for i := mid - 1; i >= lo && s.xs[i] == pivot; i-- {
		dupLeft++
	}

	l, r := lo, mid
	for _, p := range s.ys[lo:hi] {
		c := geom.CompareXY(p, pivot)
		if c < 0 || (c == 0 && dupLeft > 0) {
			if c == 0 {
				dupLeft--
			}
			s.tmp[l] = p
			l++
		} else {
			s.tmp[r] = p
			r++
		}
	}
	copy(s.ys[lo:hi], s.tmp[lo:hi])
}

// merge restores ys[lo:hi] to a single (y, x) ordered run after split.
func (s *solver) merge(lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if geom.CompareYX(s.ys[j], s.ys[i]) < 0 {
			s.tmp[k] = s.ys[j]
			j++
		} else {
			s.tmp[k] = s.ys[i]
			i++
		}
		k++
	}
	k += copy(s.tmp[k:], s.ys[i:mid])
	copy(s.tmp[k:], s.ys[j:hi])
	copy(s.ys[lo:hi], s.tmp[lo:hi])
}

// strip collects, in y order, the points of ys[lo:hi] whose horizontal
// distance to the dividing line is below sqrt(d). The result aliases
// tmp[lo:hi].
func (s *solver) strip(lo, hi int, midx, d float64) []geom.Point {
	out := s.tmp[lo:lo]
	for _, p := range s.ys[lo:hi] {
		if dx := p.X - midx; dx*dx < d {
			out = append(out, p)
		}
	}
	return out
}

// scanStrip compares each strip point with the following ones while their
// vertical gap could still beat d.
func (s *solver) scanStrip(strip []geom.Point, d float64, best geom.Pair) (float64, geom.Pair) {
	for i, a := range strip {
		for _, b := range strip[i+1:] {
			if dy := b.Y - a.Y; dy*dy >= d {
				break
			}
			s.comparisons++
			if sq := geom.SqDist(a, b); sq < d {
				d = sq
				best = geom.Pair{A: a, B: b}
			}
		}
	}
	return d, best
}
