package cadgeom

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Vertex is a polyline vertex. Bulge and the widths describe the segment that
// starts at the vertex.
type Vertex struct {
	Point      Point
	Bulge      float64
	StartWidth float64
	EndWidth   float64
}

// Polyline is a path of line and arc segments through its vertices. A closed
// polyline has an additional segment from the last vertex back to the first.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
}

// NewPolyline returns the polyline of straight segments through pts.
func NewPolyline(closed bool, pts ...Point) Polyline {
	vs := make([]Vertex, len(pts))
	for i, pt := range pts {
		vs[i] = Vertex{Point: pt}
	}
	return Polyline{Vertices: vs, Closed: closed}
}

// PolylineFromSegments returns the polyline through a chain of segments, each
// of which must start where the previous one ends. The polyline is closed if
// the chain ends where it starts.
func PolylineFromSegments(segs []PolylineSegment, tol Tolerance) Polyline {
	if len(segs) == 0 {
		return Polyline{}
	}
	vs := make([]Vertex, 0, len(segs)+1)
	for _, s := range segs {
		vs = append(vs, Vertex{
			Point:      s.StartPoint,
			Bulge:      s.Bulge,
			StartWidth: s.StartWidth,
			EndWidth:   s.EndWidth,
		})
	}
	last := segs[len(segs)-1].EndPoint
	if len(segs) > 1 && last.IsEqualTo(segs[0].StartPoint, tol) {
		return Polyline{Vertices: vs, Closed: true}
	}
	vs = append(vs, Vertex{Point: last})
	return Polyline{Vertices: vs}
}

// Clone returns a copy of the polyline that doesn't share its vertices.
func (p Polyline) Clone() Polyline {
	return Polyline{Vertices: slices.Clone(p.Vertices), Closed: p.Closed}
}

// NumSegments returns the number of segments, including the closing segment
// of closed polylines.
func (p Polyline) NumSegments() int {
	n := len(p.Vertices)
	switch {
	case n < 2:
		return 0
	case p.Closed:
		return n
	default:
		return n - 1
	}
}

// HasArcs reports whether any segment is an arc. The bulge of the last vertex
// of an open polyline doesn't count.
func (p Polyline) HasArcs() bool {
	for i := range p.NumSegments() {
		if !p.segment(i).IsLinear() {
			return true
		}
	}
	return false
}

func (p Polyline) segment(i int) PolylineSegment {
	v := p.Vertices[i]
	next := p.Vertices[(i+1)%len(p.Vertices)]
	return PolylineSegment{
		StartPoint: v.Point,
		EndPoint:   next.Point,
		Bulge:      v.Bulge,
		StartWidth: v.StartWidth,
		EndWidth:   v.EndWidth,
	}
}

// Segment returns the i-th segment, which starts at the i-th vertex.
func (p Polyline) Segment(i int) (PolylineSegment, error) {
	if i < 0 || i >= p.NumSegments() {
		return PolylineSegment{}, fmt.Errorf("segment index %d out of range [0, %d): %w", i, p.NumSegments(), ErrInvalidInput)
	}
	return p.segment(i), nil
}

// Segments iterates over the polyline's segments and their indices.
func (p Polyline) Segments() iter.Seq2[int, PolylineSegment] {
	return func(yield func(int, PolylineSegment) bool) {
		for i := range p.NumSegments() {
			if !yield(i, p.segment(i)) {
				return
			}
		}
	}
}

func (p Polyline) Length() float64 {
	l := 0.0
	for _, s := range p.Segments() {
		l += s.Length()
	}
	return l
}

// BoundingBox returns the smallest rectangle enclosing the polyline,
// including the extent of its arcs.
func (p Polyline) BoundingBox() Rect {
	if len(p.Vertices) == 0 {
		return Rect{}
	}
	pt := p.Vertices[0].Point
	r := Rect{pt.X, pt.Y, pt.X, pt.Y}
	for _, s := range p.Segments() {
		r = r.Union(s.BoundingBox())
	}
	return r
}

// Reverse returns the polyline traversed in the opposite direction.
func (p Polyline) Reverse() Polyline {
	n := len(p.Vertices)
	out := Polyline{Vertices: make([]Vertex, n), Closed: p.Closed}
	for j := range n {
		v := Vertex{Point: p.Vertices[n-1-j].Point}
		// The new segment j is the old segment k traversed backwards.
		k := n - 2 - j
		if k < 0 && p.Closed {
			k += n
		}
		if k >= 0 {
			old := p.Vertices[k]
			v.Bulge = -old.Bulge
			v.StartWidth = old.EndWidth
			v.EndWidth = old.StartWidth
		}
		out.Vertices[j] = v
	}
	return out
}

// Transform applies aff to all vertices. Transforms that mirror negate the
// bulges.
func (p Polyline) Transform(aff Affine) Polyline {
	out := p.Clone()
	flip := aff.Determinant() < 0
	for i := range out.Vertices {
		v := &out.Vertices[i]
		v.Point = v.Point.Transform(aff)
		if flip {
			v.Bulge = -v.Bulge
		}
	}
	return out
}

// areaMoments returns the signed area of the region bounded by the polyline
// and its first moment, which is the area-weighted sum of the centroids of
// the pieces the region is decomposed into.
//
// The region is decomposed into a fan of triangles from the first vertex,
// covering the polygon of the chords, plus one circular segment per arc,
// whose signed area adds to or subtracts from the polygon. Open polylines are
// treated as closed by a straight segment.
func (p Polyline) areaMoments() (area float64, moment Vec2) {
	vs := p.Vertices
	for i := 1; i+1 < len(vs); i++ {
		tri := Tri2(vs[0].Point, vs[i].Point, vs[i+1].Point)
		a := tri.SignedArea()
		area += a
		moment = moment.Add(Vec2(tri.Centroid()).Mul(a))
	}
	for _, s := range p.Segments() {
		arc, ok := s.ToCircularArc()
		if !ok {
			continue
		}
		a := arc.SegmentArea()
		area += a
		moment = moment.Add(Vec2(arc.SegmentCentroid()).Mul(a))
	}
	return area, moment
}

// SignedArea returns the area enclosed by the polyline, positive if it runs
// counterclockwise.
func (p Polyline) SignedArea() float64 {
	a, _ := p.areaMoments()
	return a
}

func (p Polyline) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsClockwise reports whether the polyline encloses its area clockwise.
func (p Polyline) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Centroid returns the centroid of the area enclosed by the polyline. It
// returns ErrDegenerate if the area vanishes.
func (p Polyline) Centroid() (Point, error) {
	c, _, err := CentroidOf(p)
	return c, err
}

// CentroidOf returns the centroid and total signed area of the region bounded
// by several loops. Loops contribute with the sign of their area, so holes
// winding opposite to their outer boundary are subtracted. It returns
// ErrDegenerate if the total area vanishes.
func CentroidOf(loops ...Polyline) (Point, float64, error) {
	var area float64
	var moment Vec2
	for _, l := range loops {
		a, m := l.areaMoments()
		area += a
		moment = moment.Add(m)
	}
	if math.Abs(area) < DegenerateEpsilon {
		return Point{}, area, fmt.Errorf("centroid of area %g: %w", area, ErrDegenerate)
	}
	return Point(moment.Div(area)), area, nil
}

// Nearest returns the point on the polyline closest to pt, and its
// parameter. The integer part of the parameter is the index of the segment,
// the fractional part the position along that segment.
func (p Polyline) Nearest(pt Point) (Point, float64) {
	if p.NumSegments() == 0 {
		if len(p.Vertices) == 0 {
			return Point{}, 0
		}
		return p.Vertices[0].Point, 0
	}
	best := math.Inf(1)
	var param float64
	for i, s := range p.Segments() {
		d, t := s.Nearest(pt)
		if d < best {
			best = d
			param = float64(i) + t
		}
	}
	q, _ := p.PointAtParameter(param)
	return q, param
}

// PointAtParameter returns the point at the given parameter, which ranges
// from 0 to the number of segments.
func (p Polyline) PointAtParameter(param float64) (Point, error) {
	ns := p.NumSegments()
	if param < 0 || param > float64(ns) || ns == 0 {
		return Point{}, fmt.Errorf("parameter %g out of range [0, %d]: %w", param, ns, ErrInvalidInput)
	}
	i := int(math.Floor(param))
	if i == ns {
		return p.segment(ns - 1).EndPoint, nil
	}
	return p.segment(i).Eval(param - float64(i)), nil
}

// ParameterAtPoint returns the parameter of pt, which must lie on the
// polyline.
func (p Polyline) ParameterAtPoint(pt Point, tol Tolerance) (float64, error) {
	for i, s := range p.Segments() {
		if t, ok := s.ParameterOf(pt, tol); ok {
			return float64(i) + t, nil
		}
	}
	return 0, fmt.Errorf("point %s not on polyline: %w", pt, ErrInvalidInput)
}

// openVertices returns a copy of the vertices in which closed polylines are
// opened at their first vertex, by repeating it at the end.
func (p Polyline) openVertices() []Vertex {
	vs := slices.Clone(p.Vertices)
	if p.Closed && len(vs) > 1 {
		vs = append(vs, Vertex{Point: vs[0].Point})
	}
	return vs
}

// BreakAt splits the polyline at the point closest to pt. See
// [Polyline.BreakAtParameter].
func (p Polyline) BreakAt(pt Point, tol Tolerance) (Polyline, Polyline, error) {
	if p.NumSegments() == 0 {
		return Polyline{}, Polyline{}, fmt.Errorf("breaking polyline without segments: %w", ErrInvalidInput)
	}
	_, param := p.Nearest(pt)
	return p.BreakAtParameter(param)
}

// BreakAtParameter splits the polyline into two open polylines at the given
// parameter. Parameters within ParamEpsilon of a vertex split at that vertex.
// Otherwise a vertex is inserted, and an arc segment being split is replaced
// by two arcs on the same circle whose bulges are scaled so that together
// they reproduce the original arc.
//
// Closed polylines are opened at their first vertex before splitting. Breaking
// at either end of the path returns ErrInvalidInput.
func (p Polyline) BreakAtParameter(param float64) (Polyline, Polyline, error) {
	ns := p.NumSegments()
	if ns == 0 {
		return Polyline{}, Polyline{}, fmt.Errorf("breaking polyline without segments: %w", ErrInvalidInput)
	}
	if param <= ParamEpsilon || param >= float64(ns)-ParamEpsilon {
		return Polyline{}, Polyline{}, fmt.Errorf("break parameter %g at end of polyline: %w", param, ErrInvalidInput)
	}
	vs := p.openVertices()

	i := int(math.Floor(param))
	t := param - float64(i)
	switch {
	case t < ParamEpsilon:
		return splitVertices(vs, i)
	case 1-t < ParamEpsilon:
		return splitVertices(vs, i+1)
	}

	first, second := p.segment(i).Split(t)
	head := slices.Clone(vs[:i+1])
	head[i].Bulge = first.Bulge
	head[i].EndWidth = first.EndWidth
	head = append(head, Vertex{Point: first.EndPoint})

	tail := make([]Vertex, 0, len(vs)-i)
	tail = append(tail, Vertex{
		Point:      second.StartPoint,
		Bulge:      second.Bulge,
		StartWidth: second.StartWidth,
		EndWidth:   second.EndWidth,
	})
	tail = append(tail, vs[i+1:]...)
	return Polyline{Vertices: head}, Polyline{Vertices: tail}, nil
}

// splitVertices partitions vs at vertex k, which ends up in both halves.
func splitVertices(vs []Vertex, k int) (Polyline, Polyline, error) {
	head := slices.Clone(vs[:k+1])
	head[k].Bulge = 0
	tail := slices.Clone(vs[k:])
	return Polyline{Vertices: head}, Polyline{Vertices: tail}, nil
}
