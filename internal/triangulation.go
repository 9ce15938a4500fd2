package internal

import (
	"math"

	"github.com/pkg/errors"
)

// A triangle by value. This is what the renderer consumes, so meshes built
// elsewhere can be drawn without going through Build.
type Face [3]Point

func (f Face) SignedArea() float64 {
	return SignedArea(f[0], f[1], f[2])
}

func (t *Triangulation) Vertices(tri Triangle) [3]Point {
	return [3]Point{t.Points[tri.A], t.Points[tri.B], t.Points[tri.C]}
}

func (t *Triangulation) Faces() []Face {
	faces := make([]Face, len(t.Triangles))
	for i, tri := range t.Triangles {
		faces[i] = t.Vertices(tri)
	}
	return faces
}

// Indexes of the hull vertices in counterclockwise order.
func (t *Triangulation) ConvexHull() []int {
	result := make([]int, len(t.hull))
	copy(result, t.hull)
	return result
}

// Sum of the triangle areas.
func (t *Triangulation) Area() float64 {
	var result float64
	for _, tri := range t.Triangles {
		v := t.Vertices(tri)
		result += SignedArea(v[0], v[1], v[2])
	}
	return result
}

func (t *Triangulation) HullArea() float64 {
	points := make([]Point, len(t.hull))
	for i, idx := range t.hull {
		points[i] = t.Points[idx]
	}
	return SignedArea(points...)
}

// Validate performs sanity checks on the triangulation and returns nil if no
// issues were found. This is not needed in normal use but is handy when
// debugging the builder.
func (t *Triangulation) Validate() error {
	for _, tri := range t.Triangles {
		if tri.A == tri.B || tri.B == tri.C || tri.C == tri.A {
			return errors.Errorf("triangle %v repeats a vertex", tri)
		}
		v := t.Vertices(tri)
		if !IsCCW(v[0], v[1], v[2]) {
			return errors.Errorf("triangle %v is not counterclockwise", tri)
		}
	}

	hullArea := t.HullArea()
	area := t.Area()
	if math.Abs(hullArea-area) > Epsilon*math.Max(1, hullArea) {
		return errors.Errorf("triangle area %v disagrees with hull area %v", area, hullArea)
	}
	return nil
}
