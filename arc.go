package cadgeom

import (
	"math"
)

// CircularArc is an arc of a circle. It starts at StartAngle and sweeps
// SweepAngle radians; a negative sweep runs clockwise.
type CircularArc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// NewArcFromBulge returns the arc from p0 to p1 encoded by bulge. It fails
// if the bulge is zero, which describes a straight segment, or if the end
// points coincide.
func NewArcFromBulge(p0, p1 Point, bulge float64) (CircularArc, bool) {
	chord := p1.Sub(p0)
	if math.Abs(bulge) < ArcEpsilon || chord.Hypot() == 0 {
		return CircularArc{}, false
	}
	sweep := 4 * math.Atan(bulge)
	c := chord.Hypot()
	// The center lies on the chord's bisector, to the left of the chord for
	// counterclockwise arcs shorter than a half circle.
	center := p0.Midpoint(p1).Translate(chord.Perp().Mul((1 - bulge*bulge) / (4 * bulge)))
	return CircularArc{
		Center:     center,
		Radius:     c * (1 + bulge*bulge) / (4 * math.Abs(bulge)),
		StartAngle: p0.Sub(center).Angle(),
		SweepAngle: sweep,
	}, true
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}

func (a CircularArc) EndAngle() float64 {
	return a.StartAngle + a.SweepAngle
}

func (a CircularArc) StartPoint() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle)
}

func (a CircularArc) EndPoint() Point {
	return pointOnCircle(a.Center, a.Radius, a.EndAngle())
}

// IsClockwise reports whether the arc runs clockwise from its start point.
func (a CircularArc) IsClockwise() bool {
	return a.SweepAngle < 0
}

// Eval returns the point at parameter t ∈ [0, 1], spaced evenly by arc length.
func (a CircularArc) Eval(t float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+t*a.SweepAngle)
}

func (a CircularArc) Length() float64 {
	return math.Abs(a.SweepAngle * a.Radius)
}

// Circle returns the arc's full circle.
func (a CircularArc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}

// Reverse returns the same arc traversed in the opposite direction.
func (a CircularArc) Reverse() CircularArc {
	a.StartAngle = a.EndAngle()
	a.SweepAngle = -a.SweepAngle
	return a
}

// Bulge returns the arc's bulge, the tangent of a quarter of its sweep.
func (a CircularArc) Bulge() float64 {
	return math.Tan(a.SweepAngle / 4)
}

func (a CircularArc) Translate(v Vec2) CircularArc {
	a.Center = a.Center.Translate(v)
	return a
}

// sweepOffset returns how far the direction of pt is from the start angle,
// measured in the direction of the sweep, in the range [0, 2π).
func (a CircularArc) sweepOffset(pt Point) float64 {
	off := pt.Sub(a.Center).Angle() - a.StartAngle
	if a.SweepAngle < 0 {
		off = -off
	}
	off = math.Mod(off, 2*math.Pi)
	if off < 0 {
		off += 2 * math.Pi
	}
	return off
}

// Contains reports whether pt lies on the arc.
func (a CircularArc) Contains(pt Point, tol Tolerance) bool {
	_, ok := a.ParameterOf(pt, tol)
	return ok
}

// ParameterOf returns the parameter of pt on the arc, which is the ratio of
// the arc length up to pt to the total length. It fails if pt doesn't lie on
// the arc.
func (a CircularArc) ParameterOf(pt Point, tol Tolerance) (float64, bool) {
	if !a.Circle().IsOn(pt, tol) {
		return 0, false
	}
	if pt.IsEqualTo(a.StartPoint(), tol) {
		return 0, true
	}
	if pt.IsEqualTo(a.EndPoint(), tol) {
		return 1, true
	}
	sweep := math.Abs(a.SweepAngle)
	if sweep == 0 {
		return 0, false
	}
	off := a.sweepOffset(pt)
	if off > sweep {
		return 0, false
	}
	return off / sweep, true
}

// Nearest returns the squared distance from pt to the arc and the parameter
// of the closest point.
func (a CircularArc) Nearest(pt Point) (distSq, t float64) {
	sweep := math.Abs(a.SweepAngle)
	if sweep > 0 && pt != a.Center {
		if off := a.sweepOffset(pt); off <= sweep {
			d := pt.Distance(a.Center) - math.Abs(a.Radius)
			return d * d, off / sweep
		}
	}
	d0 := pt.DistanceSquared(a.StartPoint())
	d1 := pt.DistanceSquared(a.EndPoint())
	if d1 < d0 {
		return d1, 1
	}
	return d0, 0
}

// SegmentArea returns the signed area of the circular segment enclosed by the
// arc and its chord. It is positive for counterclockwise arcs.
func (a CircularArc) SegmentArea() float64 {
	th := math.Abs(a.SweepAngle)
	area := a.Radius * a.Radius * (th - math.Sin(th)) / 2
	if a.SweepAngle < 0 {
		return -area
	}
	return area
}

// SegmentCentroid returns the centroid of the circular segment enclosed by the
// arc and its chord. It lies on the bisector of the chord, at distance c³/12A
// from the center, where c is the chord length and A the segment's area.
func (a CircularArc) SegmentCentroid() Point {
	p0 := a.StartPoint()
	p1 := a.EndPoint()
	area := math.Abs(a.SegmentArea())
	if area == 0 {
		return p0.Midpoint(p1)
	}
	c := p0.Distance(p1)
	dir := a.Eval(0.5).Sub(a.Center).Normalize()
	return a.Center.Translate(dir.Mul(c * c * c / (12 * area)))
}

// BoundingBox returns the smallest rectangle enclosing the arc.
func (a CircularArc) BoundingBox() Rect {
	r := NewRectFromPoints(a.StartPoint(), a.EndPoint())
	sweep := math.Abs(a.SweepAngle)
	for q := range 4 {
		ang := float64(q) * math.Pi / 2
		pt := pointOnCircle(a.Center, a.Radius, ang)
		if sweep >= 2*math.Pi || a.sweepOffset(pt) <= sweep {
			r = r.UnionPoint(pt)
		}
	}
	return r
}
