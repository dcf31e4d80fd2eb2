package cadgeom

import (
	"iter"
	"math"
)

// Affine is a 2D affine transform. The coefficients N0 through N5 form the
// matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	| 0  0  1  |
//
// so that a.Mul(b) applies b first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY negates y coordinates.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale scales x and y independently. Only uniform scales keep arcs circular.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// ScaleAbout creates a uniform scaling by f that keeps base in place.
func ScaleAbout(f float64, base Point) Affine {
	c := Vec2(base)
	return Translate(c.Negate()).ThenScale(f, f).ThenTranslate(c)
}

// Translate moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate rotates counterclockwise by th radians about the origin.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates counterclockwise by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Reflect mirrors about the infinite line through pt with the given
// direction.
func Reflect(pt Point, direction Vec2) Affine {
	n := direction.Perp().Normalize()
	// Householder matrix I - 2nnᵀ, applied relative to pt.
	h := Affine{
		N0: 1 - 2*n.X*n.X,
		N1: -2 * n.X * n.Y,
		N2: -2 * n.X * n.Y,
		N3: 1 - 2*n.Y*n.Y,
	}
	return Translate(Vec2(pt).Negate()).Then(h).ThenTranslate(Vec2(pt))
}

// Mirror creates the reflection about the line through p0 and p1.
func Mirror(p0, p1 Point) Affine {
	return Reflect(p0, p1.Sub(p0))
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transform that applies aff, then o.
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

func (aff Affine) ThenRotate(th float64) Affine {
	return aff.Then(Rotate(th))
}

func (aff Affine) ThenScale(x, y float64) Affine {
	return aff.Then(Scale(x, y))
}

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant is negative for transforms that mirror, and zero for
// transforms that collapse the plane onto a line or point.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. The result is made of NaNs and
// infinities if the determinant is zero.
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		N0: k * aff.N3,
		N1: -k * aff.N1,
		N2: -k * aff.N2,
		N3: k * aff.N0,
		N4: k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		N5: k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// IsConformal reports whether aff preserves angles, that is, whether it is a
// combination of translation, rotation, uniform scaling and mirroring. Only
// such transforms map circular arcs to circular arcs.
func (aff Affine) IsConformal(tol Tolerance) bool {
	col0 := Vec2{aff.N0, aff.N1}
	col1 := Vec2{aff.N2, aff.N3}
	l0, l1 := col0.Hypot(), col1.Hypot()
	if l0 == 0 || l1 == 0 {
		return false
	}
	return math.Abs(l0-l1) <= tol.EqualVector*max(l0, l1) &&
		math.Abs(col0.Dot(col1)) <= tol.EqualVector*l0*l1
}

func (aff Affine) Translation() Vec2 {
	return Vec2{aff.N4, aff.N5}
}

// Transform maps every value of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
