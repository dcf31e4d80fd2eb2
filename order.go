package cadgeom

import (
	"fmt"
	"slices"
)

// Order arranges segs into a single chain in which every segment starts where
// the previous one ends, reversing segments as needed. The first segment keeps
// its direction. It returns ErrNotContiguous if some segment can't be
// attached to the chain.
func Order(segs []PolylineSegment, tol Tolerance) ([]PolylineSegment, error) {
	if len(segs) == 0 {
		return nil, nil
	}
	chain, rest := growChain(slices.Clone(segs), tol)
	if len(rest) != 0 {
		return nil, fmt.Errorf("no segment connects to %s or %s: %w",
			chain[0].StartPoint, chain[len(chain)-1].EndPoint, ErrNotContiguous)
	}
	return chain, nil
}

// Join groups segs into maximal chains and returns one polyline per chain.
// Chains whose ends meet become closed polylines.
func Join(segs []PolylineSegment, tol Tolerance) []Polyline {
	var out []Polyline
	rest := slices.Clone(segs)
	for len(rest) > 0 {
		var chain []PolylineSegment
		chain, rest = growChain(rest, tol)
		out = append(out, PolylineFromSegments(chain, tol))
	}
	return out
}

// growChain starts a chain with the first of segs and attaches segments to
// either end until none fit. It returns the chain and the unused segments.
// segs is modified.
func growChain(segs []PolylineSegment, tol Tolerance) (chain, rest []PolylineSegment) {
	chain = []PolylineSegment{segs[0]}
	rest = segs[1:]
	for len(rest) > 0 {
		start := chain[0].StartPoint
		end := chain[len(chain)-1].EndPoint
		if start.IsEqualTo(end, tol) && len(chain) > 1 {
			// Closed loop.
			break
		}
		found := false
		for i, s := range rest {
			switch {
			case s.StartPoint.IsEqualTo(end, tol):
				chain = append(chain, s)
			case s.EndPoint.IsEqualTo(end, tol):
				chain = append(chain, s.Reverse())
			case s.EndPoint.IsEqualTo(start, tol):
				chain = slices.Insert(chain, 0, s)
			case s.StartPoint.IsEqualTo(start, tol):
				chain = slices.Insert(chain, 0, s.Reverse())
			default:
				continue
			}
			rest = slices.Delete(rest, i, i+1)
			found = true
			break
		}
		if !found {
			break
		}
	}
	return chain, rest
}
