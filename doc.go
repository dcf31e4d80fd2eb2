// Package cadgeom provides the planar and spatial geometry that CAD editing
// commands are built on: triangles, circle tangents, and polylines made of line
// and arc segments.
//
// # Features
//
// We provide the following notable features:
//
//   - Triangle measures and derived circles in 2D and 3D (see [Triangle2] and [Triangle3])
//   - Tangents from a point to a circle and common tangents of two circles (see [Circle.TangentsTo])
//   - Bulge-encoded polyline segments and their conversion to lines and arcs (see [PolylineSegment])
//   - Area and centroid of polylines with arc segments (see [CentroidOf])
//   - Breaking polylines at a point and rounding their corners (see [Polyline.BreakAt] and [Polyline.FilletAt])
//   - Ordering loose segments into chains (see [Order] and [Join])
//   - Coordinate systems, including the arbitrary axis algorithm (see [CoordinateSystem])
//
// # Bulges
//
// A polyline vertex stores the bulge of the segment that starts at it. The
// bulge is the tangent of a quarter of the segment's included angle. Zero
// describes a straight segment, 1 a counterclockwise half circle and -1 a
// clockwise one. See [NewArcFromBulge] for how an arc is recovered from its
// end points and bulge.
//
// # Tolerances
//
// Geometric comparisons take a [Tolerance], which bounds the distance at which
// two points count as equal and the deviation at which two vectors count as
// equal or parallel. Callers normally pass [DefaultTolerance] or a tolerance
// obtained from the drawing being edited. A few algorithms additionally use
// fixed epsilons, such as [ParamEpsilon], that don't depend on the drawing.
//
// # Failure
//
// Queries that can have no answer, such as the tangents from a point inside a
// circle, report this with a boolean or a count. Operations that reject their
// input return errors wrapping [ErrInvalidInput], [ErrDegenerate],
// [ErrNotContiguous] or [ErrNoSolution], to be tested with [errors.Is].
//
// # Coordinate systems
//
// Points are stored in world coordinates unless stated otherwise. Frames that
// depend on the state of a drawing, such as the current UCS, are supplied by
// the host through a [FrameProvider]; the arbitrary axis algorithm for object
// coordinate systems is implemented by [ArbitraryAxis].
package cadgeom
