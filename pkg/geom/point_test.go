package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 25},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 25},
		{"horizontal", Pt(0, 2), Pt(5, 2), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SqDist(tt.a, tt.b))
			assert.Equal(t, tt.want, SqDist(tt.b, tt.a), "kernel must be symmetric")
		})
	}
}

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(Pt(0, 0), Pt(3, 4)))
	assert.InDelta(t, math.Sqrt2, Dist(Pt(0, 0), Pt(1, 1)), 1e-15)
}

func TestCompareXY(t *testing.T) {
	assert.Negative(t, CompareXY(Pt(0, 5), Pt(1, 0)))
	assert.Negative(t, CompareXY(Pt(1, 0), Pt(1, 1)), "y breaks ties")
	assert.Positive(t, CompareXY(Pt(2, 0), Pt(1, 9)))
	assert.Zero(t, CompareXY(Pt(1, 1), Pt(1, 1)))
}

func TestCompareYX(t *testing.T) {
	assert.Negative(t, CompareYX(Pt(5, 0), Pt(0, 1)))
	assert.Negative(t, CompareYX(Pt(0, 1), Pt(1, 1)), "x breaks ties")
	assert.Positive(t, CompareYX(Pt(0, 2), Pt(9, 1)))
	assert.Zero(t, CompareYX(Pt(1, 1), Pt(1, 1)))
}

func TestSortedCopiesLeaveInputAlone(t *testing.T) {
	in := []Point{Pt(3, 1), Pt(1, 2), Pt(1, 0), Pt(2, 2)}
	orig := append([]Point(nil), in...)

	xs := SortedXY(in)
	ys := SortedYX(in)

	assert.Equal(t, orig, in)
	assert.Equal(t, []Point{Pt(1, 0), Pt(1, 2), Pt(2, 2), Pt(3, 1)}, xs)
	assert.Equal(t, []Point{Pt(1, 0), Pt(3, 1), Pt(1, 2), Pt(2, 2)}, ys)
}

func TestPairCanonical(t *testing.T) {
	p := Pair{A: Pt(2, 0), B: Pt(1, 5)}
	assert.Equal(t, Pair{A: Pt(1, 5), B: Pt(2, 0)}, p.Canonical())
	assert.Equal(t, p.Canonical(), p.Canonical().Canonical())
	assert.Equal(t, 26.0, p.SqDist())
}

func TestFinite(t *testing.T) {
	ok, idx := Finite([]Point{Pt(0, 0), Pt(1, 1)})
	assert.True(t, ok)
	assert.Equal(t, -1, idx)

	ok, idx = Finite([]Point{Pt(0, 0), Pt(math.NaN(), 1), Pt(math.Inf(1), 0)})
	assert.False(t, ok)
	assert.Equal(t, 1, idx)

	assert.False(t, Pt(0, math.Inf(-1)).Finite())
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	r, ok := Bounds([]Point{Pt(1, 5), Pt(-2, 3), Pt(4, -1)})
	require.True(t, ok)
	assert.Equal(t, Rect{Min: Pt(-2, -1), Max: Pt(4, 5)}, r)
	assert.Equal(t, 6.0, r.Width())
	assert.Equal(t, 6.0, r.Height())
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.False(t, r.Contains(Pt(5, 0)))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1, 2.5)", Pt(1, 2.5).String())
	assert.Equal(t, "(0, 0)-(3, 4)", Pair{A: Pt(0, 0), B: Pt(3, 4)}.String())
}
