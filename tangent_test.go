package cadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// checkTangent verifies that l touches c at l.P0, perpendicular to the radius.
func checkTangent(t *testing.T, c Circle, l Line, at Point) {
	t.Helper()
	tol := Tolerance{EqualPoint: 1e-9, EqualVector: 1e-9}
	if !c.IsOn(at, tol) {
		t.Errorf("contact point %s isn't on %v", at, c)
	}
	radius := at.Sub(c.Center)
	if d := math.Abs(radius.Normalize().Dot(l.Direction())); d > 1e-9 {
		t.Errorf("line %v isn't perpendicular to the radius at %s", l, at)
	}
}

func TestTangentsFromPoint(t *testing.T) {
	tol := DefaultTolerance
	c := Circle{Pt(0, 0), 5}
	lines, ok := c.TangentsFromPoint(Pt(13, 0), tol)
	if !ok {
		t.Fatal("no tangents from an outside point")
	}
	want := [2]Line{
		{Pt(25.0/13.0, 60.0/13.0), Pt(13, 0)},
		{Pt(25.0/13.0, -60.0/13.0), Pt(13, 0)},
	}
	diff(t, want, lines, cmpopts.EquateApprox(0, 1e-9))
	for _, l := range lines {
		if n := l.Length(); math.Abs(n-12) > 1e-9 {
			t.Errorf("got tangent length %v, want 12", n)
		}
		checkTangent(t, c, l, l.P0)
		if a := math.Abs(l.P0.Sub(c.Center).Angle()); math.Abs(a-math.Acos(5.0/13.0)) > 1e-9 {
			t.Errorf("got contact angle %v, want %v", a, math.Acos(5.0/13.0))
		}
	}

	if _, ok := c.TangentsFromPoint(Pt(3, 0), tol); ok {
		t.Error("tangents from a point inside the circle")
	}
	if _, ok := c.TangentsFromPoint(Pt(0, 5), tol); ok {
		t.Error("tangents from a point on the circle")
	}

	arc, _ := NewArcFromBulge(Pt(5, 0), Pt(-5, 0), 1)
	alines, ok := arc.TangentsFromPoint(Pt(13, 0), tol)
	if !ok {
		t.Fatal("no tangents to an arc's circle")
	}
	diff(t, lines, alines, cmpopts.EquateApprox(0, 1e-9))
}

func TestTangentsToOuterAndInner(t *testing.T) {
	tol := DefaultTolerance
	c0 := Circle{Pt(0, 0), 2}
	c1 := Circle{Pt(10, 0), 1}

	lines, n := c0.TangentsTo(c1, TangentBoth, tol)
	if n != 4 {
		t.Fatalf("got %d tangents, want 4", n)
	}
	for i, l := range lines[:n] {
		checkTangent(t, c0, l, l.P0)
		checkTangent(t, c1, l, l.P1)
		// The left tangent of each pair touches above the center line.
		if above := l.P0.Y > 0; above != (i%2 == 0) {
			t.Errorf("tangent %d touches at %s, on the wrong side", i, l.P0)
		}
	}
	// Outer tangents keep both circles on one side, inner ones separate them.
	for i, l := range lines[:n] {
		d := l.P1.Sub(l.P0)
		s0 := d.Cross(c0.Center.Sub(l.P0))
		s1 := d.Cross(c1.Center.Sub(l.P0))
		outer := i < 2
		if (s0*s1 > 0) != outer {
			t.Errorf("tangent %d: got outer=%t, want %t", i, s0*s1 > 0, outer)
		}
	}

	outer, n := c0.TangentsTo(c1, TangentOuter, tol)
	if n != 2 {
		t.Fatalf("got %d outer tangents, want 2", n)
	}
	diff(t, lines[:2], outer[:n], cmpopts.EquateApprox(0, 1e-9))

	inner, n := c0.TangentsTo(c1, TangentInner, tol)
	if n != 2 {
		t.Fatalf("got %d inner tangents, want 2", n)
	}
	diff(t, lines[2:4], inner[:n], cmpopts.EquateApprox(0, 1e-9))
	// Inner tangents cross at the internal center of similitude.
	x, ok := inner[0].CrossingPoint(inner[1])
	if !ok {
		t.Fatal("inner tangents are parallel")
	}
	diff(t, Pt(20.0/3.0, 0), x, cmpopts.EquateApprox(0, 1e-9))
}

func TestTangentsToEqualRadii(t *testing.T) {
	tol := DefaultTolerance
	c0 := Circle{Pt(0, 0), 1}
	c1 := Circle{Pt(4, 0), 1}
	lines, n := c0.TangentsTo(c1, TangentOuter, tol)
	want := []Line{
		{Pt(0, 1), Pt(4, 1)},
		{Pt(0, -1), Pt(4, -1)},
	}
	diff(t, want, lines[:n], cmpopts.EquateApprox(0, 1e-12))
}

func TestTangentsToCounts(t *testing.T) {
	tol := DefaultTolerance
	c0 := Circle{Pt(0, 0), 2}
	tests := []struct {
		name  string
		other Circle
		flags TangentType
		want  int
	}{
		{"separate", Circle{Pt(10, 0), 1}, TangentBoth, 4},
		{"overlapping", Circle{Pt(2, 0), 1}, TangentBoth, 2},
		{"overlapping inner", Circle{Pt(2, 0), 1}, TangentInner, 0},
		{"nested", Circle{Pt(0.5, 0), 1}, TangentBoth, 0},
		{"internally touching", Circle{Pt(1, 0), 1}, TangentBoth, 0},
		{"externally touching", Circle{Pt(3, 0), 1}, TangentInner, 0},
		{"nearly touching", Circle{Pt(3+1e-11, 0), 1}, TangentInner, 0},
		{"nearly touching both", Circle{Pt(3+1e-11, 0), 1}, TangentBoth, 2},
		{"barely apart", Circle{Pt(3.001, 0), 1}, TangentInner, 2},
		{"concentric", Circle{Pt(0, 0), 2}, TangentBoth, 0},
		{"none selected", Circle{Pt(10, 0), 1}, 0, 0},
	}
	for _, tt := range tests {
		if _, n := c0.TangentsTo(tt.other, tt.flags, tol); n != tt.want {
			t.Errorf("%s: got %d tangents, want %d", tt.name, n, tt.want)
		}
	}
}

func TestTangentTypeString(t *testing.T) {
	for tt, want := range map[TangentType]string{
		TangentInner: "inner",
		TangentOuter: "outer",
		TangentBoth:  "inner|outer",
		0:            "none",
	} {
		if got := tt.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
