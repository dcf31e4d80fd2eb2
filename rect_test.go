package cadgeom

import (
	"math"
	"testing"
)

func TestRectBasics(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 5))
	diff(t, Rect{0, 0, 10, 5}, r)
	diff(t, Pt(5, 2.5), r.Center())
	if w, h := r.Width(), r.Height(); w != 10 || h != 5 {
		t.Errorf("got size %vx%v, want 10x5", w, h)
	}
	if !r.Contains(Pt(10, 5)) {
		t.Error("rectangle doesn't contain its corner")
	}
	if r.Contains(Pt(10.5, 5)) {
		t.Error("rectangle contains an outside point")
	}
	diff(t, Rect{-1, -1, 11, 6}, r.Inflate(1))
	diff(t, Rect{-2, 0, 10, 7}, r.UnionPoint(Pt(-2, 7)))
	diff(t, Rect{0, -3, 10, 5}, r.Union(Rect{2, -3, 4, 1}))
}

func TestRectTransform(t *testing.T) {
	r := Rect{0, 0, 2, 1}
	got := r.Transform(Rotate(math.Pi / 2))
	want := Rect{-1, 0, 0, 2}
	const epsilon = 1e-12
	if math.Abs(got.X0-want.X0) > epsilon || math.Abs(got.Y0-want.Y0) > epsilon ||
		math.Abs(got.X1-want.X1) > epsilon || math.Abs(got.Y1-want.Y1) > epsilon {
		t.Errorf("got %v, want %v", got, want)
	}
}
