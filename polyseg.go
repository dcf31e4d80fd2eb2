package cadgeom

import (
	"math"
)

// PolylineSegment is one edge of a polyline: a straight line if Bulge is zero,
// otherwise a circular arc. The bulge is the tangent of a quarter of the arc's
// included angle; it is negative for arcs running clockwise.
//
// The widths are carried along for polylines with varying width and don't
// affect the segment's geometry.
type PolylineSegment struct {
	StartPoint Point
	EndPoint   Point
	Bulge      float64
	StartWidth float64
	EndWidth   float64
}

// NewLineSegment returns the straight segment from p0 to p1.
func NewLineSegment(p0, p1 Point) PolylineSegment {
	return PolylineSegment{StartPoint: p0, EndPoint: p1}
}

// NewArcSegment returns the arc segment from p0 to p1 with the given bulge.
func NewArcSegment(p0, p1 Point, bulge float64) PolylineSegment {
	return PolylineSegment{StartPoint: p0, EndPoint: p1, Bulge: bulge}
}

// SegmentFromLine returns the straight segment covering l.
func SegmentFromLine(l Line) PolylineSegment {
	return NewLineSegment(l.P0, l.P1)
}

// SegmentFromArc returns the arc segment covering a. Its bulge is
// tan(sweep/4), which is negative for clockwise arcs.
func SegmentFromArc(a CircularArc) PolylineSegment {
	return PolylineSegment{
		StartPoint: a.StartPoint(),
		EndPoint:   a.EndPoint(),
		Bulge:      math.Tan(a.SweepAngle / 4),
	}
}

// ScaleBulge returns the bulge of an arc on the same circle as an arc with
// the given bulge, whose included angle is scaled by factor. Splitting an arc
// at parameter t yields the bulges ScaleBulge(b, t) and ScaleBulge(b, 1-t).
func ScaleBulge(bulge, factor float64) float64 {
	return math.Tan(math.Atan(bulge) * factor)
}

// IsLinear reports whether the segment is a straight line. Bulges smaller
// than ArcEpsilon in magnitude count as straight.
func (s PolylineSegment) IsLinear() bool {
	return math.Abs(s.Bulge) < ArcEpsilon
}

// ToLine returns the segment as a line. It fails for arc segments.
func (s PolylineSegment) ToLine() (Line, bool) {
	if !s.IsLinear() {
		return Line{}, false
	}
	return Line{s.StartPoint, s.EndPoint}, true
}

// ToCircularArc returns the segment as an arc. It fails for straight segments
// and for arcs whose end points coincide.
func (s PolylineSegment) ToCircularArc() (CircularArc, bool) {
	if s.IsLinear() {
		return CircularArc{}, false
	}
	return NewArcFromBulge(s.StartPoint, s.EndPoint, s.Bulge)
}

// Reverse returns the segment traversed in the opposite direction: end points
// and widths are swapped and the bulge is negated.
func (s PolylineSegment) Reverse() PolylineSegment {
	return PolylineSegment{
		StartPoint: s.EndPoint,
		EndPoint:   s.StartPoint,
		Bulge:      -s.Bulge,
		StartWidth: s.EndWidth,
		EndWidth:   s.StartWidth,
	}
}

// Inverse reverses the segment in place. See [PolylineSegment.Reverse].
func (s *PolylineSegment) Inverse() {
	*s = s.Reverse()
}

func (s PolylineSegment) Length() float64 {
	if a, ok := s.ToCircularArc(); ok {
		return a.Length()
	}
	return s.StartPoint.Distance(s.EndPoint)
}

// Eval returns the point at parameter t ∈ [0, 1], spaced evenly by length.
func (s PolylineSegment) Eval(t float64) Point {
	if a, ok := s.ToCircularArc(); ok {
		return a.Eval(t)
	}
	return s.StartPoint.Lerp(s.EndPoint, t)
}

// Nearest returns the squared distance from pt to the segment and the
// parameter of the closest point.
func (s PolylineSegment) Nearest(pt Point) (distSq, t float64) {
	if a, ok := s.ToCircularArc(); ok {
		return a.Nearest(pt)
	}
	return Line{s.StartPoint, s.EndPoint}.Nearest(pt)
}

// Contains reports whether pt lies on the segment.
func (s PolylineSegment) Contains(pt Point, tol Tolerance) bool {
	_, ok := s.ParameterOf(pt, tol)
	return ok
}

// ParameterOf returns the position of pt along the segment as a fraction of
// its length, in the range [0, 1]. It fails if pt doesn't lie on the segment.
func (s PolylineSegment) ParameterOf(pt Point, tol Tolerance) (float64, bool) {
	if a, ok := s.ToCircularArc(); ok {
		return a.ParameterOf(pt, tol)
	}
	l := Line{s.StartPoint, s.EndPoint}
	distSq, t := l.Nearest(pt)
	if math.Sqrt(distSq) > tol.EqualPoint {
		return 0, false
	}
	return t, true
}

// widthAt interpolates the segment's width at parameter t.
func (s PolylineSegment) widthAt(t float64) float64 {
	return s.StartWidth + (s.EndWidth-s.StartWidth)*t
}

// Split splits the segment at parameter t. Arc segments are split into two
// arcs on the same circle, whose bulges are scaled from the original one.
func (s PolylineSegment) Split(t float64) (PolylineSegment, PolylineSegment) {
	mid := s.Eval(t)
	w := s.widthAt(t)
	first := PolylineSegment{
		StartPoint: s.StartPoint,
		EndPoint:   mid,
		StartWidth: s.StartWidth,
		EndWidth:   w,
	}
	second := PolylineSegment{
		StartPoint: mid,
		EndPoint:   s.EndPoint,
		StartWidth: w,
		EndWidth:   s.EndWidth,
	}
	if !s.IsLinear() {
		first.Bulge = ScaleBulge(s.Bulge, t)
		second.Bulge = ScaleBulge(s.Bulge, 1-t)
	}
	return first, second
}

// BoundingBox returns the smallest rectangle enclosing the segment.
func (s PolylineSegment) BoundingBox() Rect {
	if a, ok := s.ToCircularArc(); ok {
		return a.BoundingBox()
	}
	return NewRectFromPoints(s.StartPoint, s.EndPoint)
}

// Transform applies aff to the segment's end points. Arcs stay arcs only
// under transforms that preserve angles; transforms that mirror negate the
// bulge.
func (s PolylineSegment) Transform(aff Affine) PolylineSegment {
	s.StartPoint = s.StartPoint.Transform(aff)
	s.EndPoint = s.EndPoint.Transform(aff)
	if aff.Determinant() < 0 {
		s.Bulge = -s.Bulge
	}
	return s
}
