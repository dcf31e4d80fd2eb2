package cadgeom

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// FilletAt rounds the corner at vertex i with an arc of the given radius,
// tangent to both adjacent segments. The vertex is replaced by the arc's end
// points.
//
// Both segments meeting at the vertex must be straight. It returns
// ErrNoSolution if they aren't, if they are collinear, or if the arc doesn't
// fit on them.
func (p Polyline) FilletAt(i int, radius float64) (Polyline, error) {
	n := len(p.Vertices)
	if radius <= 0 {
		return Polyline{}, fmt.Errorf("fillet radius %g: %w", radius, ErrInvalidInput)
	}
	if i < 0 || i >= n {
		return Polyline{}, fmt.Errorf("vertex index %d out of range [0, %d): %w", i, n, ErrInvalidInput)
	}
	prev := i - 1
	if i == 0 {
		if !p.Closed {
			return Polyline{}, fmt.Errorf("first vertex of open polyline has no corner: %w", ErrInvalidInput)
		}
		prev = n - 1
	}
	if !p.Closed && i == n-1 {
		return Polyline{}, fmt.Errorf("last vertex of open polyline has no corner: %w", ErrInvalidInput)
	}

	s1 := p.segment(prev)
	s2 := p.segment(i)
	if !s1.IsLinear() || !s2.IsLinear() {
		return Polyline{}, fmt.Errorf("vertex %d joins an arc: %w", i, ErrNoSolution)
	}
	v1 := s1.StartPoint.Sub(s1.EndPoint)
	v2 := s2.EndPoint.Sub(s2.StartPoint)
	alpha := v1.AngleTo(v2)
	if alpha > math.Pi {
		alpha = 2*math.Pi - alpha
	}
	// Half of the deflection angle.
	half := (math.Pi - alpha) / 2
	dist := radius * math.Tan(half)
	if dist < ArcEpsilon || dist > v1.Hypot() || dist > v2.Hypot() {
		return Polyline{}, fmt.Errorf("fillet of radius %g doesn't fit at vertex %d: %w", radius, i, ErrNoSolution)
	}

	bulge := math.Tan(half / 2)
	if s1.EndPoint.Sub(s1.StartPoint).Cross(s2.EndPoint.Sub(s1.StartPoint)) < 0 {
		bulge = -bulge
	}
	start := Vertex{
		Point: s1.EndPoint.Translate(v1.Normalize().Mul(dist)),
		Bulge: bulge,
	}
	end := p.Vertices[i]
	end.Point = s2.StartPoint.Translate(v2.Normalize().Mul(dist))

	out := p.Clone()
	out.Vertices[i] = end
	out.Vertices = slices.Insert(out.Vertices, i, start)
	return out, nil
}

// FilletAll rounds every corner between two straight segments that can take
// an arc of the given radius, and returns the number of corners rounded.
func (p Polyline) FilletAll(radius float64) (Polyline, int, error) {
	if radius <= 0 {
		return Polyline{}, 0, fmt.Errorf("fillet radius %g: %w", radius, ErrInvalidInput)
	}
	skip := 1
	if p.Closed {
		skip = 0
	}
	out := p.Clone()
	count := 0
	for i := skip; i < len(out.Vertices)-skip; {
		q, err := out.FilletAt(i, radius)
		switch {
		case err == nil:
			out = q
			count++
			// Step over the inserted vertex.
			i += 2
		case errors.Is(err, ErrNoSolution):
			i++
		default:
			return Polyline{}, 0, err
		}
	}
	return out, count, nil
}
