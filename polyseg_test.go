package cadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentArcRoundTrip(t *testing.T) {
	p0, p1 := Pt(1, 2), Pt(4, -1)
	for _, b := range []float64{0.01, 0.3, 1, 2.5, -0.2, -1, -7} {
		arc, ok := NewArcSegment(p0, p1, b).ToCircularArc()
		if !ok {
			t.Fatalf("bulge %v: no arc", b)
		}
		s := SegmentFromArc(arc)
		if !s.StartPoint.IsEqualTo(p0, Tolerance{EqualPoint: 1e-9}) ||
			!s.EndPoint.IsEqualTo(p1, Tolerance{EqualPoint: 1e-9}) {
			t.Errorf("bulge %v: end points moved to %s and %s", b, s.StartPoint, s.EndPoint)
		}
		if math.Abs(s.Bulge-b) > 1e-9 {
			t.Errorf("got bulge %v, want %v", s.Bulge, b)
		}
	}

	line := NewLineSegment(p0, p1)
	if _, ok := line.ToCircularArc(); ok {
		t.Error("straight segment converts to an arc")
	}
	l, ok := line.ToLine()
	if !ok {
		t.Fatal("straight segment doesn't convert to a line")
	}
	diff(t, Line{p0, p1}, l)
	diff(t, line, SegmentFromLine(l))
	if _, ok := NewArcSegment(p0, p1, 0.5).ToLine(); ok {
		t.Error("arc segment converts to a line")
	}

	// Bulges below ArcEpsilon are straight.
	flat := NewArcSegment(p0, p1, ArcEpsilon/10)
	if !flat.IsLinear() {
		t.Error("segment with a negligible bulge isn't linear")
	}
	if _, ok := flat.ToLine(); !ok {
		t.Error("segment with a negligible bulge doesn't convert to a line")
	}
	if _, ok := flat.ToCircularArc(); ok {
		t.Error("segment with a negligible bulge converts to an arc")
	}
	if (Polyline{Vertices: []Vertex{{Point: p0, Bulge: ArcEpsilon / 10}, {Point: p1}}}).HasArcs() {
		t.Error("polyline with a negligible bulge has arcs")
	}
}

func TestScaleBulge(t *testing.T) {
	const b = 0.7
	if got := ScaleBulge(b, 1); math.Abs(got-b) > 1e-15 {
		t.Errorf("scaling by 1 changed the bulge to %v", got)
	}
	if got := ScaleBulge(b, 0); got != 0 {
		t.Errorf("scaling by 0 gave bulge %v", got)
	}
	// Sweeps of the two halves add up to the original sweep.
	for _, f := range []float64{0.1, 0.5, 0.8} {
		sum := 4*math.Atan(ScaleBulge(b, f)) + 4*math.Atan(ScaleBulge(b, 1-f))
		if math.Abs(sum-4*math.Atan(b)) > 1e-12 {
			t.Errorf("split at %v: sweeps add up to %v", f, sum)
		}
	}
}

func TestSegmentSplit(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	s := PolylineSegment{
		StartPoint: Pt(0, 0),
		EndPoint:   Pt(4, 0),
		Bulge:      0.5,
		StartWidth: 1,
		EndWidth:   3,
	}
	orig, _ := s.ToCircularArc()
	first, second := s.Split(0.25)

	diff(t, s.Eval(0.25), first.EndPoint, opt)
	diff(t, first.EndPoint, second.StartPoint)
	diff(t, s.EndPoint, second.EndPoint)
	if first.EndWidth != 1.5 || second.StartWidth != 1.5 {
		t.Errorf("got widths %v and %v at the split, want 1.5", first.EndWidth, second.StartWidth)
	}

	a1, _ := first.ToCircularArc()
	a2, _ := second.ToCircularArc()
	for _, a := range []CircularArc{a1, a2} {
		diff(t, orig.Center, a.Center, opt)
		if math.Abs(a.Radius-orig.Radius) > 1e-9 {
			t.Errorf("got radius %v, want %v", a.Radius, orig.Radius)
		}
	}
	if l := first.Length() + second.Length(); math.Abs(l-s.Length()) > 1e-9 {
		t.Errorf("halves have length %v, want %v", l, s.Length())
	}

	line := NewLineSegment(Pt(0, 0), Pt(4, 0))
	first, second = line.Split(0.5)
	diff(t, NewLineSegment(Pt(0, 0), Pt(2, 0)), first)
	diff(t, NewLineSegment(Pt(2, 0), Pt(4, 0)), second)
}

func TestSegmentReverse(t *testing.T) {
	s := PolylineSegment{
		StartPoint: Pt(0, 0),
		EndPoint:   Pt(4, 0),
		Bulge:      0.5,
		StartWidth: 1,
		EndWidth:   3,
	}
	want := PolylineSegment{
		StartPoint: Pt(4, 0),
		EndPoint:   Pt(0, 0),
		Bulge:      -0.5,
		StartWidth: 3,
		EndWidth:   1,
	}
	diff(t, want, s.Reverse())

	inv := s
	inv.Inverse()
	diff(t, want, inv)
	inv.Inverse()
	diff(t, s, inv)

	// The reversed arc covers the same points.
	opt := cmpopts.EquateApprox(0, 1e-9)
	a, _ := s.ToCircularArc()
	r, _ := s.Reverse().ToCircularArc()
	diff(t, a.Center, r.Center, opt)
	diff(t, s.Eval(0.3), s.Reverse().Eval(0.7), opt)
}

func TestSegmentParameterOf(t *testing.T) {
	tol := DefaultTolerance
	line := NewLineSegment(Pt(0, 0), Pt(10, 0))
	if got, ok := line.ParameterOf(Pt(2.5, 0), tol); !ok || math.Abs(got-0.25) > 1e-12 {
		t.Errorf("got (%v, %t), want (0.25, true)", got, ok)
	}
	if _, ok := line.ParameterOf(Pt(2.5, 1), tol); ok {
		t.Error("point off the line has a parameter")
	}
	if _, ok := line.ParameterOf(Pt(11, 0), tol); ok {
		t.Error("point beyond the end has a parameter")
	}

	arc := NewArcSegment(Pt(0, 0), Pt(2, 0), 1)
	if got, ok := arc.ParameterOf(Pt(1, -1), tol); !ok || math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got (%v, %t), want (0.5, true)", got, ok)
	}
	if arc.Contains(Pt(1, 1), tol) {
		t.Error("arc contains a point on the other half of its circle")
	}
}

func TestSegmentTransform(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	s := NewArcSegment(Pt(0, 0), Pt(2, 0), 1)

	moved := s.Transform(Translate(Vec(1, 1)))
	if moved.Bulge != 1 {
		t.Errorf("translation changed the bulge to %v", moved.Bulge)
	}

	mirrored := s.Transform(Mirror(Pt(0, 0), Pt(1, 0)))
	if mirrored.Bulge != -1 {
		t.Errorf("got bulge %v after mirroring, want -1", mirrored.Bulge)
	}
	// The mirrored arc bulges to the other side.
	diff(t, Pt(1, 1), mirrored.Eval(0.5), opt)

	diff(t, Rect{0, -1, 2, 0}, s.BoundingBox(), opt)
}
