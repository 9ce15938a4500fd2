package internal

import (
	"math"

	"github.com/golang/geo/r2"
)

type Point = r2.Point

// Coordinates are normalized to the unit box before triangulating, so this is
// an absolute tolerance on unit-scale determinants.
const Tolerance = 1e-12

// Used by tests comparing areas and values.
const Epsilon = 1e-9

// Points are swept in lexicographic order: smaller X first, and for equal X
// the smaller Y first. Every point is then strictly outside the hull of the
// points before it.
func Before(p, q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise.
func Orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// In-circle determinant. For a counterclockwise triangle abc it is positive
// when d lies strictly inside the circumcircle, zero when the four points are
// co-circular.
func InCircle(a, b, c, d Point) float64 {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y
	return (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
}

// Shoelace area. Positive for counterclockwise polygons.
func SignedArea(points ...Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func IsCCW(points ...Point) bool {
	return SignedArea(points...) > 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// A reference to edge e (from v[e] to v[e+1]) of triangle t in the working mesh.
type edgeRef struct {
	t, e int
}

type edgeStack []edgeRef

func (s *edgeStack) Push(ref edgeRef) {
	*s = append(*s, ref)
}

func (s *edgeStack) Pop() edgeRef {
	ref := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return ref
}

func (s *edgeStack) Empty() bool {
	return len(*s) == 0
}
