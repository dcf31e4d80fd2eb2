package cadgeom

import "math"

// Line3 represents a line segment in 3D space.
type Line3 struct {
	P0 Point3
	P1 Point3
}

func (l Line3) Length() float64 {
	return l.P1.Distance(l.P0)
}

// Direction returns the unit vector pointing from P0 to P1.
func (l Line3) Direction() Vec3 {
	return l.P1.Sub(l.P0).Normalize()
}

func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the distance from pt to the segment and the parameter of
// the closest point.
func (l Line3) Nearest(pt Point3) (dist, t float64) {
	d := l.P1.Sub(l.P0)
	dSquared := d.Dot(d)
	if dSquared == 0 {
		return pt.Distance(l.P0), 0
	}
	t = min(max(d.Dot(pt.Sub(l.P0))/dSquared, 0), 1)
	return pt.Distance(l.Eval(t)), t
}

// Contains reports whether pt lies on the segment.
func (l Line3) Contains(pt Point3, tol Tolerance) bool {
	d, _ := l.Nearest(pt)
	return d <= tol.EqualPoint
}

// Intersect returns the point at which two segments intersect. Skew and
// parallel segments don't intersect.
func (l Line3) Intersect(o Line3, tol Tolerance) (Point3, bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	n := d1.Cross(d2)
	nn := n.Dot(n)
	if math.Sqrt(nn) <= tol.EqualVector*d1.Hypot()*d2.Hypot() {
		return Point3{}, false
	}
	w := o.P0.Sub(l.P0)
	// Closest points of the two carrier lines.
	t := w.Cross(d2).Dot(n) / nn
	u := w.Cross(d1).Dot(n) / nn
	p := l.Eval(t)
	q := o.Eval(u)
	if !p.IsEqualTo(q, tol) {
		return Point3{}, false
	}
	if !l.Contains(p, tol) || !o.Contains(p, tol) {
		return Point3{}, false
	}
	return p, true
}

// IntersectPlane returns the point at which the segment crosses the plane.
func (l Line3) IntersectPlane(pl Plane, tol Tolerance) (Point3, bool) {
	pt, ok := pl.ProjectAlong(l.P0, l.P1.Sub(l.P0), tol)
	if !ok || !l.Contains(pt, tol) {
		return Point3{}, false
	}
	return pt, true
}
