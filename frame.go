package cadgeom

import (
	"fmt"
	"math"
)

// CoordinateSystem is a frame given by an origin and three axes expressed in
// world coordinates. Frames built with [NewCoordinateSystem] or
// [ArbitraryAxis] are orthonormal, but the axes may also be scaled, such as
// for the paper space display frame of a viewport.
type CoordinateSystem struct {
	Origin Point3
	XAxis  Vec3
	YAxis  Vec3
	ZAxis  Vec3
}

// WorldCS is the world coordinate system.
var WorldCS = CoordinateSystem{
	XAxis: XAxis,
	YAxis: YAxis,
	ZAxis: ZAxis,
}

// NewCoordinateSystem returns the right-handed orthonormal frame at origin
// whose X axis points along xAxis and whose XY plane contains yAxis.
func NewCoordinateSystem(origin Point3, xAxis, yAxis Vec3, tol Tolerance) (CoordinateSystem, error) {
	if xAxis.IsZero(tol) || yAxis.IsZero(tol) || xAxis.IsParallelTo(yAxis, tol) {
		return CoordinateSystem{}, fmt.Errorf("axes %s and %s don't span a plane: %w", xAxis, yAxis, ErrInvalidInput)
	}
	x := xAxis.Normalize()
	z := x.Cross(yAxis).Normalize()
	return CoordinateSystem{
		Origin: origin,
		XAxis:  x,
		YAxis:  z.Cross(x),
		ZAxis:  z,
	}, nil
}

// ArbitraryAxis returns the object coordinate system of an entity with the
// given extrusion direction, as computed by the DXF arbitrary axis algorithm.
// Its origin is the world origin.
func ArbitraryAxis(normal Vec3) CoordinateSystem {
	const limit = 1.0 / 64.0
	n := normal.Normalize()
	var ax Vec3
	if math.Abs(n.X) < limit && math.Abs(n.Y) < limit {
		ax = YAxis.Cross(n).Normalize()
	} else {
		ax = ZAxis.Cross(n).Normalize()
	}
	return CoordinateSystem{
		XAxis: ax,
		YAxis: n.Cross(ax).Normalize(),
		ZAxis: n,
	}
}

// ToWorld converts pt from this frame to world coordinates.
func (cs CoordinateSystem) ToWorld(pt Point3) Point3 {
	return cs.Origin.
		Translate(cs.XAxis.Mul(pt.X)).
		Translate(cs.YAxis.Mul(pt.Y)).
		Translate(cs.ZAxis.Mul(pt.Z))
}

// FromWorld converts pt from world coordinates to this frame. The result is
// NaN if the axes are linearly dependent.
func (cs CoordinateSystem) FromWorld(pt Point3) Point3 {
	d := pt.Sub(cs.Origin)
	det := cs.XAxis.Dot(cs.YAxis.Cross(cs.ZAxis))
	return Point3{
		X: d.Dot(cs.YAxis.Cross(cs.ZAxis)) / det,
		Y: d.Dot(cs.ZAxis.Cross(cs.XAxis)) / det,
		Z: d.Dot(cs.XAxis.Cross(cs.YAxis)) / det,
	}
}

// Plane returns the frame's XY plane.
func (cs CoordinateSystem) Plane() Plane {
	return Plane{Origin: cs.Origin, Normal: cs.ZAxis}
}

// Project2 projects pt orthogonally onto the frame's XY plane and returns its
// 2D coordinates in that plane.
func (cs CoordinateSystem) Project2(pt Point3) Point {
	return cs.FromWorld(pt).To2()
}

// FrameKind identifies one of the coordinate systems of a CAD drawing.
type FrameKind int

const (
	// WCS is the world coordinate system.
	WCS FrameKind = iota
	// UCS is the current user coordinate system.
	UCS
	// OCS is the object coordinate system of the entity being processed.
	OCS
	// DCS is the display coordinate system of the current viewport.
	DCS
	// PSDCS is the paper space display coordinate system.
	PSDCS
)

func (k FrameKind) String() string {
	switch k {
	case WCS:
		return "WCS"
	case UCS:
		return "UCS"
	case OCS:
		return "OCS"
	case DCS:
		return "DCS"
	case PSDCS:
		return "PSDCS"
	default:
		return fmt.Sprintf("FrameKind(%d)", int(k))
	}
}

// A FrameProvider supplies the coordinate systems that depend on the state of
// an open drawing, such as the current UCS or a viewport's display frame.
// Implementations live with the host integration; this package only consumes
// them.
type FrameProvider interface {
	Frame(kind FrameKind) (CoordinateSystem, error)
}

// TransformPoint converts pt from one frame to another. Frames other than WCS
// are obtained from fp.
func TransformPoint(pt Point3, from, to FrameKind, fp FrameProvider) (Point3, error) {
	if from == to {
		return pt, nil
	}
	src, err := frameOf(from, fp)
	if err != nil {
		return Point3{}, err
	}
	dst, err := frameOf(to, fp)
	if err != nil {
		return Point3{}, err
	}
	return dst.FromWorld(src.ToWorld(pt)), nil
}

func frameOf(kind FrameKind, fp FrameProvider) (CoordinateSystem, error) {
	if kind == WCS {
		return WorldCS, nil
	}
	if fp == nil {
		return CoordinateSystem{}, fmt.Errorf("no frame provider for %s: %w", kind, ErrInvalidInput)
	}
	cs, err := fp.Frame(kind)
	if err != nil {
		return CoordinateSystem{}, fmt.Errorf("getting %s: %w", kind, err)
	}
	return cs, nil
}
