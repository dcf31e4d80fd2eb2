package cadgeom

import (
	"math"
)

// Line represents a line segment from P0 to P1. Methods that treat the line as
// infinite say so.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// LineIntersection describes where two lines intersect, as parameters on
// both of them.
type LineIntersection struct {
	// The parameter of the intersection on the receiver, in the range 0..1.
	T float64
	// The parameter of the intersection on the other line, in the range 0..1.
	U float64
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Direction returns the unit vector pointing from P0 to P1.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

// / Computes the point where two lines, if extended to infinity, would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Bisector returns the perpendicular bisector of the segment, as a line
// through its midpoint. It has the same length as l.
func (l Line) Bisector() Line {
	mid := l.P0.Midpoint(l.P1)
	return Line{mid, mid.Translate(l.P1.Sub(l.P0).Perp())}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the segment, and the
// parameter of the closest point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Contains reports whether pt lies on the segment.
func (l Line) Contains(pt Point, tol Tolerance) bool {
	distSq, _ := l.Nearest(pt)
	return math.Sqrt(distSq) <= tol.EqualPoint
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Reverse returns the line with its end points swapped.
func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// IntersectLine intersects two segments, returning the parameters of the
// intersection on both. Coincident segments don't intersect.
func (l Line) IntersectLine(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return LineIntersection{}, false
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	// t = position on self
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		// u = position on probe line
		u :=
			(l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return LineIntersection{T: t, U: u}, true
		}
	}
	return LineIntersection{}, false
}

// Intersect returns the point at which two segments intersect. Points within
// tol.EqualPoint of both segments count, which lets segments touch at their
// end points. Parallel segments never intersect.
func (l Line) Intersect(o Line, tol Tolerance) (Point, bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	den := d1.Cross(d2)
	if math.Abs(den) <= tol.EqualVector*d1.Hypot()*d2.Hypot() {
		return Point{}, false
	}
	w := o.P0.Sub(l.P0)
	t := w.Cross(d2) / den
	pt := l.Eval(t)
	if !l.Contains(pt, tol) || !o.Contains(pt, tol) {
		return Point{}, false
	}
	return pt, true
}
