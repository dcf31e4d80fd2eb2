package cadgeom

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

// IsOn reports whether pt lies on the circle's perimeter.
func (c Circle) IsOn(pt Point, tol Tolerance) bool {
	return math.Abs(pt.Distance(c.Center)-math.Abs(c.Radius)) <= tol.EqualPoint
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// IntersectCircle returns the points at which the perimeters of two circles
// cross. Circles that touch within tol.EqualPoint produce a single point.
// Concentric circles never intersect.
//
// When there are two points, the first one lies to the left of the vector
// from c's center to o's center.
func (c Circle) IntersectCircle(o Circle, tol Tolerance) ([2]Point, int) {
	d := o.Center.Sub(c.Center)
	dist := d.Hypot()
	r0 := math.Abs(c.Radius)
	r1 := math.Abs(o.Radius)
	if dist <= tol.EqualPoint {
		return [2]Point{}, 0
	}
	if dist > r0+r1+tol.EqualPoint || dist < math.Abs(r0-r1)-tol.EqualPoint {
		return [2]Point{}, 0
	}
	// Distance from c's center to the radical line.
	a := (r0*r0 - r1*r1 + dist*dist) / (2 * dist)
	u := d.Div(dist)
	base := c.Center.Translate(u.Mul(a))
	h2 := r0*r0 - a*a
	if h2 <= 0 || math.Sqrt(h2) <= tol.EqualPoint {
		return [2]Point{base}, 1
	}
	h := math.Sqrt(h2)
	return [2]Point{
		base.Translate(u.Perp().Mul(h)),
		base.Translate(u.Perp().Mul(-h)),
	}, 2
}

// IntersectLine returns the points at which the infinite line through l
// crosses the circle. The points are ordered along l.
func (c Circle) IntersectLine(l Line, tol Tolerance) ([2]Point, int) {
	d := l.P1.Sub(l.P0)
	if d.IsZero(tol) {
		return [2]Point{}, 0
	}
	u := d.Normalize()
	foot := l.P0.Translate(u.Mul(c.Center.Sub(l.P0).Dot(u)))
	dist := foot.Distance(c.Center)
	r := math.Abs(c.Radius)
	if dist > r+tol.EqualPoint {
		return [2]Point{}, 0
	}
	h2 := r*r - dist*dist
	if h2 <= 0 || math.Sqrt(h2) <= tol.EqualPoint {
		return [2]Point{foot}, 1
	}
	h := math.Sqrt(h2)
	return [2]Point{
		foot.Translate(u.Mul(-h)),
		foot.Translate(u.Mul(h)),
	}, 2
}

// Circle3 is a circle in 3D space, lying in the plane through Center
// perpendicular to Normal.
type Circle3 struct {
	Center Point3
	Normal Vec3
	Radius float64
}

func (c Circle3) Plane() Plane {
	return Plane{Origin: c.Center, Normal: c.Normal}
}

// IsOn reports whether pt lies on the circle.
func (c Circle3) IsOn(pt Point3, tol Tolerance) bool {
	return c.Plane().Contains(pt, tol) &&
		math.Abs(pt.Distance(c.Center)-math.Abs(c.Radius)) <= tol.EqualPoint
}
