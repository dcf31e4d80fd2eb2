package cadgeom

import (
	"math"
	"slices"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
}

func TestAffineAbout(t *testing.T) {
	const epsilon = 1e-9
	c := Pt(1, 1)
	assertNear(t, c.Transform(RotateAbout(1.234, c)), c, epsilon)
	assertNear(t, Pt(2, 1).Transform(RotateAbout(math.Pi/2, c)), Pt(1, 2), epsilon)
	assertNear(t, c.Transform(ScaleAbout(3, c)), c, epsilon)
	assertNear(t, Pt(2, 3).Transform(ScaleAbout(2, c)), Pt(3, 5), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a2.Then(a1)), epsilon)

	// Translate, then rotate.
	chain := Translate(Vec(1, 0)).ThenRotate(math.Pi / 2).ThenScale(2, 2)
	assertNear(t, Pt(0, 0).Transform(chain), Pt(0, 2), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestReflection(t *testing.T) {
	affineAssertNear := func(a0, a1 Affine) {
		t.Helper()
		a0a := [6]float64{a0.N0, a0.N1, a0.N2, a0.N3, a0.N4, a0.N5}
		a1a := [6]float64{a1.N0, a1.N1, a1.N2, a1.N3, a1.N4, a1.N5}
		for i := range 6 {
			if d := math.Abs(a0a[i] - a1a[i]); d > 1e-9 {
				t.Fatalf("%g > %g", d, 1e-9)
			}
		}
	}

	affineAssertNear(Reflect(Point{}, Vec(1, 0)), Affine{1, 0, 0, -1, 0, 0})
	affineAssertNear(Reflect(Point{}, Vec(0, 1)), Affine{-1, 0, 0, 1, 0, 0})
	affineAssertNear(Reflect(Point{}, Vec(1, 1)), Affine{0, 1, 1, 0, 0, 0})

	const epsilon = 1e-9
	{
		// No translation
		aff := Reflect(Pt(0, 0), Vec(1, 1))
		assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 0), epsilon)
		assertNear(t, Pt(1, 1).Transform(aff), Pt(1, 1), epsilon)
		assertNear(t, Pt(1, 2).Transform(aff), Pt(2, 1), epsilon)
	}

	{
		// With translation
		aff := Mirror(Pt(1, 0), Pt(2, 1))
		assertNear(t, Pt(1, 0).Transform(aff), Pt(1, 0), epsilon)
		assertNear(t, Pt(2, 1).Transform(aff), Pt(2, 1), epsilon)
		assertNear(t, Pt(2, 2).Transform(aff), Pt(3, 1), epsilon)
	}

	if d := Mirror(Pt(0, 0), Pt(1, 3)).Determinant(); math.Abs(d+1) > epsilon {
		t.Errorf("got determinant %v, want -1", d)
	}
}

func TestAffineIsConformal(t *testing.T) {
	tol := DefaultTolerance
	tests := []struct {
		name string
		aff  Affine
		want bool
	}{
		{"identity", Identity, true},
		{"rotation", RotateAbout(0.7, Pt(3, -2)), true},
		{"uniform scale", ScaleAbout(2.5, Pt(1, 1)), true},
		{"mirror", Mirror(Pt(0, 0), Pt(1, 2)), true},
		{"non-uniform scale", Scale(1, 2), false},
		{"shear", Affine{1, 0, 1, 1, 0, 0}, false},
		{"collapse", Scale(0, 0), false},
	}
	for _, tt := range tests {
		if got := tt.aff.IsConformal(tol); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestTransformSeq(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(1, 1)},
	}
	got := slices.Collect(Transform(slices.Values(lines), Translate(Vec(2, 3))))
	want := []Line{
		{Pt(2, 3), Pt(3, 3)},
		{Pt(3, 3), Pt(3, 4)},
	}
	diff(t, want, got)
}
