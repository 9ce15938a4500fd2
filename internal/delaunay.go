package internal

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Incremental Delaunay triangulation of a scattered point set.
//
// Points are inserted in lexicographic order (see Before), so every new point
// lies strictly outside the hull of the points already inserted. The new point
// is joined to every hull edge it can see, and then the edges opposite it are
// legalized with Lawson flips until every edge satisfies the empty circumcircle
// property.
//
// Co-circular points are never flipped: an edge is only flipped when the
// opposite point is strictly inside the circumcircle (beyond Tolerance). Since
// the insertion order depends only on the point coordinates, the topology of
// the result is the same for any permutation of the same input.
//
// Cost is dominated by the sort and the flips: O(n log n) for typical inputs,
// O(n²) in the worst case.

// Triangle is a counterclockwise triple of indexes into the point list of the
// triangulation that produced it.
type Triangle struct {
	A, B, C int
}

func (tri Triangle) Indexes() [3]int {
	return [3]int{tri.A, tri.B, tri.C}
}

type Triangulation struct {
	// The input points, unmodified. Exact duplicates are kept here but only the
	// first occurrence is referenced by triangles.
	Points    []Point
	Triangles []Triangle
	// Number of edge flips performed while building. Useful for profiling.
	Flips int

	hull []int
}

// Working state of the builder. Triangles reference the original point
// indexes, but coordinates are normalized to the unit box so that tolerances
// do not depend on the scale of the input.
type mesh struct {
	points []Point
	tris   []meshTriangle

	// Hull as a counterclockwise linked list over point indexes. hullTri[v] is
	// the triangle owning the hull edge v -> hullNext[v].
	hullNext []int
	hullPrev []int
	hullTri  []int
	// Most recently inserted point. Always on the hull.
	last int

	flips int
	stack edgeStack
}

type meshTriangle struct {
	v [3]int
	// adj[i] is the triangle across the edge v[i] -> v[i+1], or -1 on the hull
	adj [3]int
}

func Build(points []Point) (*Triangulation, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrDegenerateInput, "need at least 3 points, got %d", len(points))
	}

	bounds := r2.EmptyRect()
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return nil, errors.Wrapf(ErrDegenerateInput, "point %d has non-finite coordinates %v", i, p)
		}
		bounds = bounds.AddPoint(p)
	}

	order := sweepOrder(points)
	if len(order) < 3 {
		return nil, errors.Wrapf(ErrDegenerateInput, "need at least 3 distinct points, got %d", len(order))
	}

	m := newMesh(points, bounds)
	rest, err := m.seed(order)
	if err != nil {
		return nil, err
	}
	for _, i := range rest {
		m.insert(i)
	}

	return &Triangulation{
		Points:    points,
		Triangles: m.triangles(),
		Flips:     m.flips,
		hull:      m.hullLoop(),
	}, nil
}

// Indexes of distinct points in sweep order. Of several identical points, the
// one with the lowest index is kept.
func sweepOrder(points []Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return Before(points[order[i]], points[order[j]])
	})

	n := 1
	for _, idx := range order[1:] {
		if points[idx] != points[order[n-1]] {
			order[n] = idx
			n++
		}
	}
	return order[:n]
}

func newMesh(points []Point, bounds r2.Rect) *mesh {
	scale := math.Max(bounds.X.Length(), bounds.Y.Length())
	origin := bounds.Lo()
	m := &mesh{
		points:   make([]Point, len(points)),
		tris:     make([]meshTriangle, 0, 2*len(points)),
		hullNext: make([]int, len(points)),
		hullPrev: make([]int, len(points)),
		hullTri:  make([]int, len(points)),
	}
	for i, p := range points {
		m.points[i] = p.Sub(origin).Mul(1 / scale)
		m.hullNext[i] = -1
		m.hullPrev[i] = -1
		m.hullTri[i] = -1
	}
	return m
}

// Build the initial fan. The leading points of the sweep may be collinear, so
// we find the first point off their line and connect it to each segment of the
// run. Returns the points still to be inserted.
func (m *mesh) seed(order []int) ([]int, error) {
	a, b := m.points[order[0]], m.points[order[1]]
	k := -1
	for j := 2; j < len(order); j++ {
		c := m.points[order[j]]
		// Sine of the angle at a, so the test does not depend on how close
		// together the first points are.
		sine := Orient(a, b, c) / (b.Sub(a).Norm() * c.Sub(a).Norm())
		if math.Abs(sine) > Tolerance {
			k = j
			break
		}
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrDegenerateInput, "all %d distinct points are collinear", len(order))
	}

	apex := order[k]
	left := Orient(a, b, m.points[apex]) > 0
	for i := 0; i+1 < k; i++ {
		u, v := order[i], order[i+1]
		var t int
		if left {
			t = m.addTriangle(u, v, apex)
		} else {
			t = m.addTriangle(v, u, apex)
		}
		if i > 0 {
			m.linkShared(t-1, t)
		}
	}

	for t, tri := range m.tris {
		for e, adj := range tri.adj {
			if adj >= 0 {
				continue
			}
			from, to := tri.v[e], tri.v[CircularIndex(e+1, 3)]
			m.hullNext[from] = to
			m.hullPrev[to] = from
			m.hullTri[from] = t
		}
	}
	m.last = apex
	return order[k+1:], nil
}

func (m *mesh) addTriangle(a, b, c int) int {
	m.tris = append(m.tris, meshTriangle{
		v:   [3]int{a, b, c},
		adj: [3]int{-1, -1, -1},
	})
	return len(m.tris) - 1
}

// Index of the edge from -> to in triangle t, or -1.
func (m *mesh) edgeIndex(t, from, to int) int {
	tri := &m.tris[t]
	for e := 0; e < 3; e++ {
		if tri.v[e] == from && tri.v[CircularIndex(e+1, 3)] == to {
			return e
		}
	}
	return -1
}

// Connect two triangles along whichever edge they share.
func (m *mesh) linkShared(t, u int) {
	for e := 0; e < 3; e++ {
		from, to := m.tris[t].v[e], m.tris[t].v[CircularIndex(e+1, 3)]
		if f := m.edgeIndex(u, to, from); f >= 0 {
			m.tris[t].adj[e] = u
			m.tris[u].adj[f] = t
			return
		}
	}
	fatalf("triangles %v and %v share no edge", m.tris[t].v, m.tris[u].v)
}

// Point the neighbor reference of t that currently names from at to instead.
func (m *mesh) replaceAdj(t, from, to int) {
	if t < 0 {
		return
	}
	for e, adj := range m.tris[t].adj {
		if adj == from {
			m.tris[t].adj[e] = to
			return
		}
	}
	fatalf("triangle %v is not adjacent to triangle %d", m.tris[t].v, from)
}

// Whether p sees the hull edge from -> to, i.e. lies strictly to its right.
func (m *mesh) visible(from, to int, p Point) bool {
	if from < 0 || to < 0 {
		return false
	}
	return Orient(m.points[from], m.points[to], p) < -Tolerance
}

func (m *mesh) insert(q int) {
	p := m.points[q]

	// The previous point is the rightmost hull vertex, so it is always on the
	// chain of hull edges visible from q. Back up to the start of that chain.
	start := m.last
	for n := 0; m.visible(m.hullPrev[start], start, p); n++ {
		if n > len(m.points) {
			fatalf("hull walk did not terminate inserting point %d", q)
		}
		start = m.hullPrev[start]
	}

	var created []int
	e := start
	for m.visible(e, m.hullNext[e], p) {
		if len(created) > len(m.points) {
			fatalf("hull walk did not terminate inserting point %d", q)
		}
		next := m.hullNext[e]
		t := m.addTriangle(next, e, q)

		// Edge 0 (next -> e) backs onto the old hull edge e -> next
		h := m.hullTri[e]
		f := m.edgeIndex(h, e, next)
		if f < 0 || m.tris[h].adj[f] >= 0 {
			fatalf("hull edge %d -> %d is not owned by triangle %v", e, next, m.tris[h].v)
		}
		m.tris[h].adj[f] = t
		m.tris[t].adj[0] = h

		// Edge 1 (e -> q) is shared with the previous new triangle's edge 2 (q -> e)
		if len(created) > 0 {
			prev := created[len(created)-1]
			m.tris[prev].adj[2] = t
			m.tris[t].adj[1] = prev
		}
		created = append(created, t)

		if e != start {
			// No longer on the hull
			m.hullNext[e] = -1
			m.hullPrev[e] = -1
			m.hullTri[e] = -1
		}
		e = next
	}
	if len(created) == 0 {
		fatalf("point %d at %v sees no hull edge", q, p)
	}
	end := e

	m.hullNext[start] = q
	m.hullPrev[q] = start
	m.hullTri[start] = created[0]
	m.hullNext[q] = end
	m.hullPrev[end] = q
	m.hullTri[q] = created[len(created)-1]
	m.last = q

	for _, t := range created {
		m.legalize(t, 0)
	}
}

// Flip edges until the star of the point opposite edge e of t is Delaunay.
func (m *mesh) legalize(t, e int) {
	m.stack.Push(edgeRef{t, e})
	for !m.stack.Empty() {
		ref := m.stack.Pop()
		t, e := ref.t, ref.e
		u := m.tris[t].adj[e]
		if u < 0 {
			continue
		}
		tri := m.tris[t]
		a, b, c := tri.v[e], tri.v[CircularIndex(e+1, 3)], tri.v[CircularIndex(e+2, 3)]
		f := m.edgeIndex(u, b, a)
		if f < 0 {
			fatalf("neighbor %v of %v does not share edge %d -> %d", m.tris[u].v, tri.v, a, b)
		}
		d := m.tris[u].v[CircularIndex(f+2, 3)]
		if InCircle(m.points[a], m.points[b], m.points[c], m.points[d]) <= Tolerance {
			continue
		}

		m.flip(t, e, u, f)
		// t is now (c, a, d) and u is (d, b, c). The edges opposite c are the
		// ones that may have become illegal.
		m.stack.Push(edgeRef{t, 1})
		m.stack.Push(edgeRef{u, 0})
	}
}

/*
Replace the diagonal a-b shared by t = (a, b, c) and u = (b, a, d) with c-d:

	    c              c
	   / \            /|\
	  a---b   -->    a | b
	   \ /            \|/
	    d              d
*/
func (m *mesh) flip(t, e, u, f int) {
	tt, ut := m.tris[t], m.tris[u]
	a, b, c := tt.v[e], tt.v[CircularIndex(e+1, 3)], tt.v[CircularIndex(e+2, 3)]
	d := ut.v[CircularIndex(f+2, 3)]
	tBC := tt.adj[CircularIndex(e+1, 3)]
	tCA := tt.adj[CircularIndex(e+2, 3)]
	uAD := ut.adj[CircularIndex(f+1, 3)]
	uDB := ut.adj[CircularIndex(f+2, 3)]

	m.tris[t] = meshTriangle{v: [3]int{c, a, d}, adj: [3]int{tCA, uAD, u}}
	m.tris[u] = meshTriangle{v: [3]int{d, b, c}, adj: [3]int{uDB, tBC, t}}
	m.replaceAdj(uAD, u, t)
	m.replaceAdj(tBC, t, u)

	// Hull edges a -> d and b -> c changed owners
	if uAD < 0 {
		m.hullTri[a] = t
	}
	if tBC < 0 {
		m.hullTri[b] = u
	}
	m.flips++
}

func (m *mesh) triangles() []Triangle {
	result := make([]Triangle, len(m.tris))
	for i, tri := range m.tris {
		result[i] = Triangle{tri.v[0], tri.v[1], tri.v[2]}
	}
	return result
}

func (m *mesh) hullLoop() []int {
	hull := []int{m.last}
	for v := m.hullNext[m.last]; v != m.last; v = m.hullNext[v] {
		if v < 0 || len(hull) > len(m.points) {
			fatalf("hull is not a closed loop")
		}
		hull = append(hull, v)
	}
	return hull
}
