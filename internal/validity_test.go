package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The triangles use exactly the distinct input points.
// 2. Every triangle is counterclockwise, so none has zero area.
// 3. Every edge borders at most two triangles, and the hull edges exactly one.
// 4. There are 2n - h - 2 triangles for n distinct points, h of them on the hull.
// 5. The sum of the areas of all triangles is equal to the area of the hull.
// 6. No point lies strictly inside the circumcircle of any triangle.
func AssertValidTriangulation(t *testing.T, tri *Triangulation) {
	require.NoError(t, tri.Validate())

	distinct := map[Point]int{}
	for i, p := range tri.Points {
		if _, ok := distinct[p]; !ok {
			distinct[p] = i
		}
	}
	used := map[int]bool{}
	edges := map[[2]int]int{}
	for _, triangle := range tri.Triangles {
		idx := triangle.Indexes()
		for i, v := range idx {
			used[v] = true
			edges[[2]int{v, idx[CircularIndex(i+1, 3)]}]++
		}
	}
	for p, i := range distinct {
		require.True(t, used[i], "point %d at %v is not in any triangle", i, p)
	}
	require.Len(t, used, len(distinct), "triangles reference duplicate or unknown points")

	for edge, count := range edges {
		require.Equal(t, 1, count, "directed edge %v appears %d times", edge, count)
	}
	hull := tri.ConvexHull()
	for i, v := range hull {
		next := hull[CircularIndex(i+1, len(hull))]
		require.Equal(t, 1, edges[[2]int{v, next}], "hull edge %d -> %d", v, next)
		require.Zero(t, edges[[2]int{next, v}], "hull edge %d -> %d has an outer triangle", v, next)
	}

	require.Len(t, tri.Triangles, 2*len(distinct)-len(hull)-2)
	require.InDelta(t, tri.HullArea(), tri.Area(), Epsilon*math.Max(1, tri.HullArea()))

	AssertEmptyCircumcircles(t, tri)
}

// Checked in unit box coordinates so the tolerance does not depend on scale.
func AssertEmptyCircumcircles(t *testing.T, tri *Triangulation) {
	bounds := r2.EmptyRect()
	for _, p := range tri.Points {
		bounds = bounds.AddPoint(p)
	}
	scale := math.Max(bounds.X.Length(), bounds.Y.Length())
	unit := make([]Point, len(tri.Points))
	for i, p := range tri.Points {
		unit[i] = p.Sub(bounds.Lo()).Mul(1 / scale)
	}

	for _, triangle := range tri.Triangles {
		a, b, c := unit[triangle.A], unit[triangle.B], unit[triangle.C]
		for i, d := range unit {
			if d == a || d == b || d == c {
				continue
			}
			assert.LessOrEqual(t, InCircle(a, b, c, d), 1e-9,
				"point %d at %v is inside the circumcircle of %v", i, tri.Points[i], triangle)
		}
	}
}

// Sample a grid over the hull and check that every sample strictly inside it
// is covered by exactly one triangle, unless it sits on an edge.
func validateCoverageBySampling(t *testing.T, tri *Triangulation) {
	hull := tri.ConvexHull()
	bounds := r2.EmptyRect()
	for _, p := range tri.Points {
		bounds = bounds.AddPoint(p)
	}
	step := math.Max(bounds.X.Length(), bounds.Y.Length()) / 50
	eps := Epsilon * step * step

	inside := func(p Point, loop ...Point) (strict, closed bool) {
		strict, closed = true, true
		for i, a := range loop {
			o := Orient(a, loop[CircularIndex(i+1, len(loop))], p)
			if o <= eps {
				strict = false
			}
			if o < -eps {
				closed = false
			}
		}
		return strict, closed
	}

	hullPoints := make([]Point, len(hull))
	for i, idx := range hull {
		hullPoints[i] = tri.Points[idx]
	}

	for y := bounds.Y.Lo + step/3; y <= bounds.Y.Hi; y += step {
		for x := bounds.X.Lo + step/3; x <= bounds.X.Hi; x += step {
			p := Point{X: x, Y: y}
			if strict, _ := inside(p, hullPoints...); !strict {
				continue
			}
			interior, touching := 0, 0
			for _, triangle := range tri.Triangles {
				v := tri.Vertices(triangle)
				strict, closed := inside(p, v[0], v[1], v[2])
				if strict {
					interior++
				}
				if closed {
					touching++
				}
			}
			assert.LessOrEqual(t, interior, 1, "point %v is inside %d triangles", p, interior)
			assert.GreaterOrEqual(t, touching, 1, "point %v is not covered", p)
		}
	}
}
