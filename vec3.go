package cadgeom

import (
	"fmt"
	"hash/maphash"
	"math"
)

// Point3 is a point in 3D space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

func (pt Point3) Translate(v Vec3) Point3 {
	return Point3{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
		Z: pt.Z + v.Z,
	}
}

// Sub computes p−o.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point3) Lerp(o Point3, t float64) Point3 {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return pt.Sub(o).Hypot()
}

// IsEqualTo reports whether the two points are at most tol.EqualPoint apart.
func (pt Point3) IsEqualTo(o Point3, tol Tolerance) bool {
	return pt.Distance(o) <= tol.EqualPoint
}

// To2 drops the Z coordinate.
func (pt Point3) To2() Point {
	return Point{X: pt.X, Y: pt.Y}
}

// Hash returns a structural hash of the point's coordinates. See [Point.Hash].
func (pt Point3) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	writeFloats(&h, pt.X, pt.Y, pt.Z)
	return h.Sum64()
}

func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// Vec3 is a vector in 3D space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3Of returns the vector ⟨x, y, z⟩.
func Vec3Of(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

var (
	XAxis = Vec3{1, 0, 0}
	YAxis = Vec3{0, 1, 0}
	ZAxis = Vec3{0, 0, 1}
)

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

// AngleTo returns the unsigned angle between v and o, in the range [0, π].
func (v Vec3) AngleTo(o Vec3) float64 {
	return math.Atan2(v.Cross(o).Hypot(), v.Dot(o))
}

// Perp returns a unit vector perpendicular to v.
func (v Vec3) Perp() Vec3 {
	// Avoid crossing with an axis that is nearly parallel to v.
	ax := XAxis
	if math.Abs(v.X) > math.Abs(v.Y) && math.Abs(v.X) > math.Abs(v.Z) {
		ax = YAxis
	}
	return v.Cross(ax).Normalize()
}

func (v Vec3) IsZero(tol Tolerance) bool {
	return v.Hypot() <= tol.EqualVector
}

// IsEqualTo reports whether v and o differ by at most tol.EqualVector.
func (v Vec3) IsEqualTo(o Vec3, tol Tolerance) bool {
	return v.Sub(o).Hypot() <= tol.EqualVector
}

// IsParallelTo reports whether v and o point in the same or in opposite
// directions. Zero vectors are parallel to nothing.
func (v Vec3) IsParallelTo(o Vec3, tol Tolerance) bool {
	if v.IsZero(tol) || o.IsZero(tol) {
		return false
	}
	return v.Normalize().Cross(o.Normalize()).Hypot() <= tol.EqualVector
}

// IsCodirectionalTo reports whether v and o point in the same direction.
func (v Vec3) IsCodirectionalTo(o Vec3, tol Tolerance) bool {
	return v.IsParallelTo(o, tol) && v.Dot(o) > 0
}

// To2 drops the Z component.
func (v Vec3) To2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}
