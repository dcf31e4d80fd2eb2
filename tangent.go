package cadgeom

import (
	"math"
	"strings"
)

// TangentType selects families of common tangents of two circles. The values
// can be combined.
type TangentType int

const (
	// TangentInner selects tangents that pass between the two circles.
	TangentInner TangentType = 1 << iota
	// TangentOuter selects tangents that keep both circles on the same side.
	TangentOuter

	TangentBoth = TangentInner | TangentOuter
)

func (tt TangentType) String() string {
	var parts []string
	if tt&TangentInner != 0 {
		parts = append(parts, "inner")
	}
	if tt&TangentOuter != 0 {
		parts = append(parts, "outer")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// TangentsFromPoint returns the two lines through pt that touch the circle.
// Each line runs from its contact point to pt. The line whose contact point
// lies to the left of the vector from the center to pt comes first.
//
// There are no tangents if pt lies inside or on the circle.
func (c Circle) TangentsFromPoint(pt Point, tol Tolerance) ([2]Line, bool) {
	if pt.Distance(c.Center) <= math.Abs(c.Radius) {
		return [2]Line{}, false
	}
	// The contact points see the segment from the center to pt at a right
	// angle, so they lie on the circle with that segment as its diameter.
	half := pt.Sub(c.Center).Mul(0.5)
	thales := Circle{Center: c.Center.Translate(half), Radius: half.Hypot()}
	inters, n := c.IntersectCircle(thales, tol)
	if n != 2 {
		return [2]Line{}, false
	}
	i := 1
	if half.Cross(inters[0].Sub(c.Center)) > 0 {
		i = 0
	}
	var out [2]Line
	out[i] = Line{inters[0], pt}
	out[i^1] = Line{inters[1], pt}
	return out, true
}

// TangentsTo returns the common tangents of c and o selected by flags. Each
// line runs from its contact point on c to its contact point on o.
//
// Outer tangents come first, followed by inner tangents. Within each pair the
// tangent touching to the left of the vector from c's center to o's center
// comes first. There are no tangents if one circle lies inside the other, and
// no inner tangents if the circles overlap.
func (c Circle) TangentsTo(o Circle, flags TangentType, tol Tolerance) ([4]Line, int) {
	var out [4]Line
	r1 := math.Abs(c.Radius)
	r2 := math.Abs(o.Radius)
	vec := o.Center.Sub(c.Center)
	dist := vec.Hypot()
	if dist-math.Abs(r1-r2) <= tol.EqualPoint {
		return out, 0
	}
	overlap := dist-(r1+r2) <= tol.EqualPoint

	n := 0
	if flags&TangentOuter != 0 {
		pair, ok := c.outerTangents(o, tol)
		if ok {
			out[n], out[n+1] = pair[0], pair[1]
			n += 2
		}
	}
	if flags&TangentInner != 0 && !overlap {
		pair, ok := c.innerTangents(o, tol)
		if ok {
			out[n], out[n+1] = pair[0], pair[1]
			n += 2
		}
	}
	return out, n
}

// orderPair orders two tangents so that the left one comes first. n0 is the
// unit normal at l0's contact point on the first circle.
func orderPair(vec Vec2, n0 Vec2, l0, l1 Line) [2]Line {
	if vec.Cross(n0) > 0 {
		return [2]Line{l0, l1}
	}
	return [2]Line{l1, l0}
}

func (c Circle) outerTangents(o Circle, tol Tolerance) ([2]Line, bool) {
	r1 := math.Abs(c.Radius)
	r2 := math.Abs(o.Radius)
	vec := o.Center.Sub(c.Center)

	if math.Abs(r1-r2) <= tol.EqualPoint {
		// Equal radii: the tangents are parallel to the center line, touching
		// where the perpendicular through the center meets the circle.
		u := vec.Normalize().Perp()
		n0, n1 := u, u.Negate()
		p0 := c.Center.Translate(n0.Mul(r1))
		p1 := c.Center.Translate(n1.Mul(r1))
		return orderPair(vec, n0,
			Line{p0, p0.Translate(vec)},
			Line{p1, p1.Translate(vec)},
		), true
	}

	// Shrink both circles by the smaller radius. The tangents from the smaller
	// center to the shrunk larger circle are parallel to the outer tangents,
	// and their contact points give the common normals.
	center := c.Center
	if r1 < r2 {
		center = o.Center
	}
	shrunk := Circle{Center: center, Radius: math.Abs(r1 - r2)}
	thales := Circle{Center: c.Center.Translate(vec.Mul(0.5)), Radius: vec.Hypot() / 2}
	inters, n := shrunk.IntersectCircle(thales, tol)
	if n != 2 {
		return [2]Line{}, false
	}
	n0 := inters[0].Sub(center).Normalize()
	n1 := inters[1].Sub(center).Normalize()
	return orderPair(vec, n0,
		Line{c.Center.Translate(n0.Mul(r1)), o.Center.Translate(n0.Mul(r2))},
		Line{c.Center.Translate(n1.Mul(r1)), o.Center.Translate(n1.Mul(r2))},
	), true
}

func (c Circle) innerTangents(o Circle, tol Tolerance) ([2]Line, bool) {
	r1 := math.Abs(c.Radius)
	r2 := math.Abs(o.Radius)
	vec := o.Center.Sub(c.Center)

	// The inner tangents cross at the internal center of similitude, which
	// divides the center line in the ratio of the radii. Their contact points
	// on c are those of the tangents from that point.
	ratio := r1 / (r1 + r2) / 2
	thales := Circle{
		Center: c.Center.Translate(vec.Mul(ratio)),
		Radius: vec.Hypot() * ratio,
	}
	inters, n := Circle{Center: c.Center, Radius: r1}.IntersectCircle(thales, tol)
	if n != 2 {
		return [2]Line{}, false
	}
	n0 := inters[0].Sub(c.Center).Normalize()
	n1 := inters[1].Sub(c.Center).Normalize()
	return orderPair(vec, n0,
		Line{c.Center.Translate(n0.Mul(r1)), o.Center.Translate(n0.Mul(-r2))},
		Line{c.Center.Translate(n1.Mul(r1)), o.Center.Translate(n1.Mul(-r2))},
	), true
}

// TangentsFromPoint returns the tangents from pt to the arc's full circle. See
// [Circle.TangentsFromPoint].
func (a CircularArc) TangentsFromPoint(pt Point, tol Tolerance) ([2]Line, bool) {
	return a.Circle().TangentsFromPoint(pt, tol)
}

// TangentsTo returns the common tangents of the full circles of two arcs. See
// [Circle.TangentsTo].
func (a CircularArc) TangentsTo(o CircularArc, flags TangentType, tol Tolerance) ([4]Line, int) {
	return a.Circle().TangentsTo(o.Circle(), flags, tol)
}
