package cadgeom

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Polar returns the point at distance dist from pt in the direction angle,
// which is expressed in radians.
func (pt Point) Polar(angle, dist float64) Point {
	return pt.Translate(VecFromAngle(angle).Mul(dist))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsEqualTo reports whether the two points are at most tol.EqualPoint apart.
func (pt Point) IsEqualTo(o Point, tol Tolerance) bool {
	return tol.PointsEqual(pt, o)
}

// To3 returns the point lifted to elevation z.
func (pt Point) To3(z float64) Point3 {
	return Point3{X: pt.X, Y: pt.Y, Z: z}
}

// Hash returns a structural hash of the point's coordinates. Hashes are only
// comparable between values hashed with the same seed in the same process.
//
// Points that are equal within a tolerance don't necessarily have equal
// hashes.
func (pt Point) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	writeFloats(&h, pt.X, pt.Y)
	return h.Sum64()
}

func writeFloats(h *maphash.Hash, vs ...float64) {
	var buf [8]byte
	for _, v := range vs {
		// Normalize -0 so that it hashes like +0.
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
