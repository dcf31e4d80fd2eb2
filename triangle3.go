package cadgeom

import (
	"fmt"
	"hash/maphash"
)

// Triangle3 is a triangle in 3D space. See [Triangle2] for the general
// contract.
type Triangle3 [3]Point3

// Tri3 returns the triangle with vertices a, b and c.
func Tri3(a, b, c Point3) Triangle3 {
	return Triangle3{a, b, c}
}

// NewTriangle3 returns the triangle whose vertices are pts, which must hold
// exactly three points.
func NewTriangle3(pts []Point3) (Triangle3, error) {
	if len(pts) != 3 {
		return Triangle3{}, fmt.Errorf("triangle needs 3 points, got %d: %w", len(pts), ErrInvalidInput)
	}
	return Triangle3{pts[0], pts[1], pts[2]}, nil
}

// NewTriangle3FromVectors returns the triangle with vertices origin,
// origin+v1 and origin+v2.
func NewTriangle3FromVectors(origin Point3, v1, v2 Vec3) Triangle3 {
	return Triangle3{origin, origin.Translate(v1), origin.Translate(v2)}
}

func (t Triangle3) cross() Vec3 {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Area returns the area of the triangle in its own plane.
func (t Triangle3) Area() float64 {
	return t.cross().Hypot() / 2
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle3) Centroid() Point3 {
	return Point3{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
		Z: (t[0].Z + t[1].Z + t[2].Z) / 3,
	}
}

// Normal returns the unit normal (t[1]−t[0]) × (t[2]−t[0]). It is NaN for
// degenerate triangles.
func (t Triangle3) Normal() Vec3 {
	return t.cross().Normalize()
}

// Plane returns the triangle's supporting plane, oriented by [Triangle3.Normal].
func (t Triangle3) Plane() Plane {
	return Plane{Origin: t[0], Normal: t.Normal()}
}

// Reverse returns the triangle with its winding reversed. The first vertex
// stays in place.
func (t Triangle3) Reverse() Triangle3 {
	return Triangle3{t[0], t[2], t[1]}
}

// Edges returns the edges t[0]→t[1], t[1]→t[2] and t[2]→t[0].
func (t Triangle3) Edges() [3]Line3 {
	return [3]Line3{
		{t[0], t[1]},
		{t[1], t[2]},
		{t[2], t[0]},
	}
}

func (t Triangle3) isDegenerate() bool {
	l1 := t[1].Distance(t[0])
	l2 := t[2].Distance(t[0])
	if l1 == 0 || l2 == 0 || t[2].Distance(t[1]) == 0 {
		return true
	}
	return t.cross().Hypot() <= DegenerateEpsilon*l1*l2
}

// CircumscribedCircle returns the circle through all three vertices. It fails
// for degenerate triangles.
func (t Triangle3) CircumscribedCircle() (Circle3, bool) {
	if t.isDegenerate() {
		return Circle3{}, false
	}
	a := t[1].Sub(t[0])
	b := t[2].Sub(t[0])
	n := a.Cross(b)
	off := b.Cross(n).Mul(a.Dot(a)).
		Add(n.Cross(a).Mul(b.Dot(b))).
		Mul(1 / (2 * n.Dot(n)))
	center := t[0].Translate(off)
	return Circle3{
		Center: center,
		Normal: n.Normalize(),
		Radius: off.Hypot(),
	}, true
}

// InscribedCircle returns the largest circle inside the triangle. It fails
// for degenerate triangles.
func (t Triangle3) InscribedCircle() (Circle3, bool) {
	if t.isDegenerate() {
		return Circle3{}, false
	}
	// The incenter is the mean of the vertices weighted by the lengths of
	// the opposite edges, which is where the angle bisectors meet.
	la := t[1].Distance(t[2])
	lb := t[2].Distance(t[0])
	lc := t[0].Distance(t[1])
	p := la + lb + lc
	o := Point3{}
	center := o.
		Translate(Vec3(t[0]).Mul(la / p)).
		Translate(Vec3(t[1]).Mul(lb / p)).
		Translate(Vec3(t[2]).Mul(lc / p))
	return Circle3{
		Center: center,
		Normal: t.Normal(),
		Radius: 2 * t.Area() / p,
	}, true
}

// AngleAt returns the interior angle at vertex i, in the range [0, π].
func (t Triangle3) AngleAt(i int) float64 {
	p := t[i]
	return t[(i+1)%3].Sub(p).AngleTo(t[(i+2)%3].Sub(p))
}

// IsPointOn reports whether pt lies on one of the triangle's edges.
func (t Triangle3) IsPointOn(pt Point3, tol Tolerance) bool {
	for _, e := range t.Edges() {
		if e.Contains(pt, tol) {
			return true
		}
	}
	return false
}

// IsPointInside reports whether pt lies in the triangle's plane and strictly
// inside the triangle. Points on the boundary are never inside.
//
// A coplanar point is inside when the cross products of each edge with the
// vector from the edge's start to pt all point the same way.
func (t Triangle3) IsPointInside(pt Point3, tol Tolerance) bool {
	if t.isDegenerate() || !t.Plane().Contains(pt, tol) || t.IsPointOn(pt, tol) {
		return false
	}
	var first Vec3
	for i, e := range t.Edges() {
		c := e.P1.Sub(e.P0).Cross(pt.Sub(e.P0))
		if c.IsZero(tol) {
			return false
		}
		if i == 0 {
			first = c
			continue
		}
		if c.Dot(first) <= 0 {
			return false
		}
	}
	return true
}

// IntersectWith returns the distinct points at which the segment l crosses
// the triangle's edges.
func (t Triangle3) IntersectWith(l Line3, tol Tolerance) []Point3 {
	var out []Point3
	for _, e := range t.Edges() {
		pt, ok := l.Intersect(e, tol)
		if !ok {
			continue
		}
		dup := false
		for _, p := range out {
			if p.IsEqualTo(pt, tol) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pt)
		}
	}
	return out
}

// IsEqualTo reports whether both triangles have equal vertices in the same
// order.
func (t Triangle3) IsEqualTo(o Triangle3, tol Tolerance) bool {
	return t[0].IsEqualTo(o[0], tol) &&
		t[1].IsEqualTo(o[1], tol) &&
		t[2].IsEqualTo(o[2], tol)
}

// Hash returns a structural hash of the vertices. See [Point.Hash].
func (t Triangle3) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, p := range t {
		writeFloats(&h, p.X, p.Y, p.Z)
	}
	return h.Sum64()
}

// To2 expresses the triangle in the XY plane of cs, projecting its vertices
// orthogonally onto that plane.
func (t Triangle3) To2(cs CoordinateSystem) Triangle2 {
	return Triangle2{cs.Project2(t[0]), cs.Project2(t[1]), cs.Project2(t[2])}
}
