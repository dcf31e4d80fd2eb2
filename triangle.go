package cadgeom

import (
	"fmt"
	"hash/maphash"
	"math"
)

// Triangle2 is a triangle in the plane. Its vertices keep the order in which
// they were given. Degenerate triangles are allowed; derived properties that
// don't exist for them report failure.
//
// Indexing a triangle with anything other than 0, 1 or 2 panics, as does
// calling a method that takes a vertex index with such an index.
type Triangle2 [3]Point

// Tri2 returns the triangle with vertices a, b and c.
func Tri2(a, b, c Point) Triangle2 {
	return Triangle2{a, b, c}
}

// NewTriangle2 returns the triangle whose vertices are pts, which must hold
// exactly three points.
func NewTriangle2(pts []Point) (Triangle2, error) {
	if len(pts) != 3 {
		return Triangle2{}, fmt.Errorf("triangle needs 3 points, got %d: %w", len(pts), ErrInvalidInput)
	}
	return Triangle2{pts[0], pts[1], pts[2]}, nil
}

// NewTriangle2FromVectors returns the triangle with vertices origin,
// origin+v1 and origin+v2.
func NewTriangle2FromVectors(origin Point, v1, v2 Vec2) Triangle2 {
	return Triangle2{origin, origin.Translate(v1), origin.Translate(v2)}
}

// SignedArea returns the area of the triangle, positive if its vertices run
// counterclockwise and negative if they run clockwise.
func (t Triangle2) SignedArea() float64 {
	return ((t[1].X-t[0].X)*(t[2].Y-t[0].Y) - (t[2].X-t[0].X)*(t[1].Y-t[0].Y)) / 2
}

func (t Triangle2) Area() float64 {
	return math.Abs(t.SignedArea())
}

// IsClockwise reports whether the vertices run clockwise.
func (t Triangle2) IsClockwise() bool {
	return t.SignedArea() < 0
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle2) Centroid() Point {
	return Point{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}

// Reverse returns the triangle with its winding reversed. The first vertex
// stays in place.
func (t Triangle2) Reverse() Triangle2 {
	return Triangle2{t[0], t[2], t[1]}
}

// Edges returns the edges t[0]→t[1], t[1]→t[2] and t[2]→t[0].
func (t Triangle2) Edges() [3]Line {
	return [3]Line{
		{t[0], t[1]},
		{t[1], t[2]},
		{t[2], t[0]},
	}
}

// isDegenerate reports whether the triangle has a zero-length edge or
// collinear vertices.
func (t Triangle2) isDegenerate() bool {
	e1 := t[1].Sub(t[0])
	e2 := t[2].Sub(t[0])
	l1, l2 := e1.Hypot(), e2.Hypot()
	if l1 == 0 || l2 == 0 || t[2].Distance(t[1]) == 0 {
		return true
	}
	return math.Abs(e1.Cross(e2)) <= DegenerateEpsilon*l1*l2
}

// CircumscribedCircle returns the circle through all three vertices, found as
// the crossing of the perpendicular bisectors of two edges. It fails for
// degenerate triangles.
func (t Triangle2) CircumscribedCircle() (Circle, bool) {
	if t.isDegenerate() {
		return Circle{}, false
	}
	b1 := Line{t[0], t[1]}.Bisector()
	b2 := Line{t[1], t[2]}.Bisector()
	center, ok := b1.CrossingPoint(b2)
	if !ok {
		return Circle{}, false
	}
	return Circle{Center: center, Radius: center.Distance(t[0])}, true
}

// InscribedCircle returns the largest circle inside the triangle, found as the
// crossing of the angle bisectors at the first two vertices. It fails for
// degenerate triangles.
func (t Triangle2) InscribedCircle() (Circle, bool) {
	if t.isDegenerate() {
		return Circle{}, false
	}
	d0 := t[1].Sub(t[0]).Normalize().Add(t[2].Sub(t[0]).Normalize())
	d1 := t[0].Sub(t[1]).Normalize().Add(t[2].Sub(t[1]).Normalize())
	center, ok := Line{t[0], t[0].Translate(d0)}.CrossingPoint(Line{t[1], t[1].Translate(d1)})
	if !ok {
		return Circle{}, false
	}
	edge := t[1].Sub(t[0])
	r := math.Abs(edge.Cross(center.Sub(t[0]))) / edge.Hypot()
	return Circle{Center: center, Radius: r}, true
}

// AngleAt returns the interior angle at vertex i, in the range [0, π].
func (t Triangle2) AngleAt(i int) float64 {
	p := t[i]
	v1 := t[(i+1)%3].Sub(p)
	v2 := t[(i+2)%3].Sub(p)
	a := v1.AngleTo(v2)
	if a > math.Pi {
		a = 2*math.Pi - a
	}
	return a
}

// IsPointOn reports whether pt lies on one of the triangle's edges.
func (t Triangle2) IsPointOn(pt Point, tol Tolerance) bool {
	for _, e := range t.Edges() {
		if e.Contains(pt, tol) {
			return true
		}
	}
	return false
}

// IsPointInside reports whether pt lies strictly inside the triangle. Points
// on the boundary are never inside.
//
// The test casts a ray from pt in the +X direction and counts the edges it
// crosses. Each edge includes its lower end point but not its upper one, so
// that a ray through a vertex is counted once.
func (t Triangle2) IsPointInside(pt Point, tol Tolerance) bool {
	if t.IsPointOn(pt, tol) {
		return false
	}
	crossings := 0
	for _, e := range t.Edges() {
		a, b := e.P0, e.P1
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > pt.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

// IntersectWith returns the distinct points at which the segment l crosses
// the triangle's edges.
func (t Triangle2) IntersectWith(l Line, tol Tolerance) []Point {
	var out []Point
	for _, e := range t.Edges() {
		pt, ok := l.Intersect(e, tol)
		if !ok {
			continue
		}
		if !containsPoint(out, pt, tol) {
			out = append(out, pt)
		}
	}
	return out
}

func containsPoint(pts []Point, pt Point, tol Tolerance) bool {
	for _, p := range pts {
		if p.IsEqualTo(pt, tol) {
			return true
		}
	}
	return false
}

// IsEqualTo reports whether both triangles have equal vertices in the same
// order.
func (t Triangle2) IsEqualTo(o Triangle2, tol Tolerance) bool {
	return t[0].IsEqualTo(o[0], tol) &&
		t[1].IsEqualTo(o[1], tol) &&
		t[2].IsEqualTo(o[2], tol)
}

// Hash returns a structural hash of the vertices. See [Point.Hash].
func (t Triangle2) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, p := range t {
		writeFloats(&h, p.X, p.Y)
	}
	return h.Sum64()
}

func (t Triangle2) Transform(aff Affine) Triangle2 {
	return Triangle2{t[0].Transform(aff), t[1].Transform(aff), t[2].Transform(aff)}
}

func (t Triangle2) BoundingBox() Rect {
	return NewRectFromPoints(t[0], t[1]).UnionPoint(t[2])
}

// To3 lifts the triangle into 3D at elevation z.
func (t Triangle2) To3(z float64) Triangle3 {
	return Triangle3{t[0].To3(z), t[1].To3(z), t[2].To3(z)}
}
