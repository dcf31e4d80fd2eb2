package cadgeom

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance controls how coordinates are compared. Two points are equal if
// their distance is at most EqualPoint. Two vectors are equal, parallel or
// zero if they agree within EqualVector.
type Tolerance struct {
	EqualPoint  float64
	EqualVector float64
}

// DefaultTolerance is the tolerance used by CAD hosts when none is specified.
var DefaultTolerance = Tolerance{
	EqualPoint:  1e-10,
	EqualVector: 1e-12,
}

// Epsilons used by the algorithms in this package, independent of any
// caller-supplied [Tolerance]. Programs that need different thresholds may
// set them once at startup, before any geometry runs.
var (
	// ParamEpsilon is the distance in parameter space within which a break
	// point snaps to an existing polyline vertex.
	ParamEpsilon = 1e-6
	// DegenerateEpsilon is the magnitude below which a total area is treated as
	// zero when computing centroids.
	DegenerateEpsilon = 1e-8
	// ArcEpsilon is the magnitude below which bulges, sweeps and parameters
	// are treated as zero.
	ArcEpsilon = 1e-9
)

var (
	// ErrInvalidInput is returned when arguments violate a precondition, such
	// as a wrong number of points or an out-of-range index.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerate is returned when a computation would divide by a vanishing
	// quantity, such as the centroid of a zero-area polyline.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrNotContiguous is returned when segments cannot be ordered into a
	// connected chain.
	ErrNotContiguous = errors.New("segments are not contiguous")
	// ErrNoSolution is returned by editing operations that have no
	// geometric solution for their arguments, such as a fillet that doesn't
	// fit between two segments.
	ErrNoSolution = errors.New("no solution")
)

// PointsEqual reports whether p and o are within tol.EqualPoint of each other.
func (tol Tolerance) PointsEqual(p, o Point) bool {
	return p.Sub(o).Hypot() <= tol.EqualPoint
}

// IsZero reports whether |x| is within tol.EqualPoint of zero.
func (tol Tolerance) IsZero(x float64) bool {
	return math.Abs(x) <= tol.EqualPoint
}

func (tol Tolerance) String() string {
	return fmt.Sprintf("{point: %g, vector: %g}", tol.EqualPoint, tol.EqualVector)
}
