package cadgeom

import (
	"fmt"
	"math"
)

// Plane is an infinite plane through Origin, perpendicular to Normal.
type Plane struct {
	Origin Point3
	Normal Vec3
}

// XYPlane is the world XY plane.
var XYPlane = Plane{Normal: ZAxis}

// NewPlane returns the plane through origin with the given normal. The normal
// is normalized; a zero normal is invalid.
func NewPlane(origin Point3, normal Vec3, tol Tolerance) (Plane, error) {
	if normal.IsZero(tol) {
		return Plane{}, fmt.Errorf("plane normal %s: %w", normal, ErrInvalidInput)
	}
	return Plane{Origin: origin, Normal: normal.Normalize()}, nil
}

// SignedDistanceTo returns the distance from the plane to pt, positive on the
// side the normal points to.
func (pl Plane) SignedDistanceTo(pt Point3) float64 {
	return pt.Sub(pl.Origin).Dot(pl.Normal) / pl.Normal.Hypot()
}

func (pl Plane) DistanceTo(pt Point3) float64 {
	return math.Abs(pl.SignedDistanceTo(pt))
}

// Contains reports whether pt lies on the plane.
func (pl Plane) Contains(pt Point3, tol Tolerance) bool {
	return pl.DistanceTo(pt) <= tol.EqualPoint
}

// Project returns the orthogonal projection of pt onto the plane.
func (pl Plane) Project(pt Point3) Point3 {
	n := pl.Normal.Normalize()
	return pt.Translate(n.Mul(-pt.Sub(pl.Origin).Dot(n)))
}

// ProjectAlong projects pt onto the plane along dir. It fails if dir is
// parallel to the plane.
func (pl Plane) ProjectAlong(pt Point3, dir Vec3, tol Tolerance) (Point3, bool) {
	n := pl.Normal.Normalize()
	if dir.IsZero(tol) {
		return Point3{}, false
	}
	den := dir.Normalize().Dot(n)
	if math.Abs(den) <= tol.EqualVector {
		return Point3{}, false
	}
	s := -pt.Sub(pl.Origin).Dot(n) / dir.Dot(n)
	return pt.Translate(dir.Mul(s)), true
}
