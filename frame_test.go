package cadgeom

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArbitraryAxis(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		normal Vec3
		x, y   Vec3
	}{
		{ZAxis, XAxis, YAxis},
		{ZAxis.Negate(), XAxis.Negate(), YAxis},
		{XAxis, YAxis, ZAxis},
		{YAxis, XAxis.Negate(), ZAxis},
	}
	for _, tt := range tests {
		cs := ArbitraryAxis(tt.normal)
		diff(t, tt.x, cs.XAxis, opt)
		diff(t, tt.y, cs.YAxis, opt)
		diff(t, tt.normal, cs.ZAxis, opt)
	}

	cs := ArbitraryAxis(Vec3Of(1, 2, 3))
	for _, pair := range [][2]Vec3{{cs.XAxis, cs.YAxis}, {cs.YAxis, cs.ZAxis}, {cs.XAxis, cs.ZAxis}} {
		if d := pair[0].Dot(pair[1]); math.Abs(d) > 1e-12 {
			t.Errorf("axes %s and %s aren't orthogonal", pair[0], pair[1])
		}
	}
	diff(t, cs.ZAxis, cs.XAxis.Cross(cs.YAxis), opt)
}

func TestCoordinateSystem(t *testing.T) {
	tol := DefaultTolerance
	opt := cmpopts.EquateApprox(0, 1e-12)

	cs, err := NewCoordinateSystem(Pt3(1, 2, 3), Vec3Of(0, 2, 0), Vec3Of(-1, 1, 0), tol)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, YAxis, cs.XAxis, opt)
	diff(t, XAxis.Negate(), cs.YAxis, opt)
	diff(t, ZAxis, cs.ZAxis, opt)

	diff(t, Pt3(1, 4, 3), cs.ToWorld(Pt3(2, 0, 0)), opt)
	for _, pt := range []Point3{{0, 0, 0}, {1, -2, 5}, {7, 7, 7}} {
		diff(t, pt, cs.FromWorld(cs.ToWorld(pt)), opt)
	}
	diff(t, Pt(2, 0), cs.Project2(Pt3(1, 4, 10)), opt)
	if !cs.Plane().Contains(Pt3(5, 5, 3), tol) {
		t.Error("point at the origin's elevation isn't in the frame's plane")
	}

	if _, err := NewCoordinateSystem(Point3{}, XAxis, Vec3Of(-3, 0, 0), tol); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
	if _, err := NewCoordinateSystem(Point3{}, Vec3{}, YAxis, tol); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
}

func TestScaledFrame(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	cs := CoordinateSystem{
		Origin: Pt3(10, 0, 0),
		XAxis:  Vec3Of(2, 0, 0),
		YAxis:  Vec3Of(0, 2, 0),
		ZAxis:  ZAxis,
	}
	diff(t, Pt3(12, 4, 1), cs.ToWorld(Pt3(1, 2, 1)), opt)
	diff(t, Pt3(1, 2, 1), cs.FromWorld(Pt3(12, 4, 1)), opt)
}

type frames map[FrameKind]CoordinateSystem

var errNoViewport = errors.New("no active viewport")

func (f frames) Frame(kind FrameKind) (CoordinateSystem, error) {
	cs, ok := f[kind]
	if !ok {
		return CoordinateSystem{}, errNoViewport
	}
	return cs, nil
}

func TestTransformPoint(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	ucs, _ := NewCoordinateSystem(Pt3(10, 0, 0), YAxis, XAxis.Negate(), DefaultTolerance)
	fp := frames{
		UCS: ucs,
		OCS: ArbitraryAxis(ZAxis.Negate()),
	}

	got, err := TransformPoint(Pt3(1, 0, 0), UCS, WCS, fp)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt3(10, 1, 0), got, opt)

	got, err = TransformPoint(Pt3(10, 1, 0), WCS, UCS, fp)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt3(1, 0, 0), got, opt)

	got, err = TransformPoint(Pt3(1, 2, 3), OCS, UCS, fp)
	if err != nil {
		t.Fatal(err)
	}
	// OCS (1, 2, 3) is WCS (-1, 2, -3).
	diff(t, Pt3(2, 11, -3), got, opt)

	got, err = TransformPoint(Pt3(1, 2, 3), DCS, DCS, nil)
	if err != nil || got != Pt3(1, 2, 3) {
		t.Errorf("got (%v, %v), want the point unchanged", got, err)
	}
	if _, err := TransformPoint(Pt3(1, 2, 3), WCS, DCS, fp); !errors.Is(err, errNoViewport) {
		t.Errorf("got error %v, want %v", err, errNoViewport)
	}
	if _, err := TransformPoint(Pt3(1, 2, 3), UCS, WCS, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
}

func TestFrameKindString(t *testing.T) {
	var got []string
	for _, k := range []FrameKind{WCS, UCS, OCS, DCS, PSDCS, 9} {
		got = append(got, fmt.Sprint(k))
	}
	diff(t, []string{"WCS", "UCS", "OCS", "DCS", "PSDCS", "FrameKind(9)"}, got)
}

func TestPlane(t *testing.T) {
	tol := DefaultTolerance
	opt := cmpopts.EquateApprox(0, 1e-12)

	pl, err := NewPlane(Pt3(0, 0, 2), Vec3Of(0, 0, 5), tol)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, ZAxis, pl.Normal)
	if d := pl.SignedDistanceTo(Pt3(3, 4, -1)); d != -3 {
		t.Errorf("got signed distance %v, want -3", d)
	}
	if d := pl.DistanceTo(Pt3(3, 4, -1)); d != 3 {
		t.Errorf("got distance %v, want 3", d)
	}
	diff(t, Pt3(3, 4, 2), pl.Project(Pt3(3, 4, -1)), opt)

	pt, ok := pl.ProjectAlong(Pt3(0, 0, 0), Vec3Of(1, 0, 1), tol)
	if !ok {
		t.Fatal("projection along an oblique direction failed")
	}
	diff(t, Pt3(2, 0, 2), pt, opt)
	if _, ok := pl.ProjectAlong(Pt3(0, 0, 0), XAxis, tol); ok {
		t.Error("projection along a direction parallel to the plane succeeded")
	}

	if _, err := NewPlane(Point3{}, Vec3{}, tol); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got error %v, want ErrInvalidInput", err)
	}
	if !XYPlane.Contains(Pt3(4, -4, 0), tol) {
		t.Error("point isn't in the XY plane")
	}
}
