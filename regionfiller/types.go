package regionfiller

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/geom"
)

// Sentinel errors returned by Fill.
var (
	// ErrInvalidRegion indicates fewer than three polylines, a polyline with
	// fewer than two points, an index outside the vertex list, or consecutive
	// polylines that do not share an endpoint.
	ErrInvalidRegion = errors.New("regionfiller: invalid region")

	// ErrInfeasibleFill indicates that the side counts admit no quad layout:
	// some derived ray or side segment count is not positive.
	ErrInfeasibleFill = errors.New("regionfiller: infeasible fill")
)

// Node is a region vertex. Source names the skeleton node the vertex was
// derived from; generated vertices inherit it from the nearest boundary vertex.
type Node struct {
	Position geom.Vec
	Radius   float64
	Source   int
}

// Branch names the construction a fill used.
type Branch int

const (
	// BranchNone: no fill has run.
	BranchNone Branch = iota
	// BranchQuadDirect: four sides with opposite sides of equal count.
	BranchQuadDirect
	// BranchQuadInteger: four sides split by a center with integer offsets.
	BranchQuadInteger
	// BranchQuadNonInteger: four sides with an odd total; one corner is
	// clipped and the rest is steered through a six-sided fan.
	BranchQuadNonInteger
	// BranchQuadSimilar: four sides whose opposite pairs differ by the same
	// amount.
	BranchQuadSimilar
	// BranchOddEvenSum: an odd side count with an even segment total.
	BranchOddEvenSum
	// BranchOddOddSum: an odd side count with an odd segment total; one
	// corner is clipped first.
	BranchOddOddSum
	// BranchEvenBothEven: even side count, both alternating sums even.
	BranchEvenBothEven
	// BranchEvenBothOdd: even side count, both alternating sums odd.
	BranchEvenBothOdd
	// BranchEvenEvenOdd: even side count, second alternating sum odd.
	BranchEvenEvenOdd
	// BranchEvenOddEven: even side count, first alternating sum odd.
	BranchEvenOddEven
	// BranchThreeSided: three sides closed by splits and at most one triangle.
	BranchThreeSided
	// BranchUnpartitioned: no construction applied; the region is one polygon.
	BranchUnpartitioned
)

var branchNames = [...]string{
	BranchNone:           "none",
	BranchQuadDirect:     "quad-direct",
	BranchQuadInteger:    "quad-integer",
	BranchQuadNonInteger: "quad-non-integer",
	BranchQuadSimilar:    "quad-similar",
	BranchOddEvenSum:     "odd-even-sum",
	BranchOddOddSum:      "odd-odd-sum",
	BranchEvenBothEven:   "even-both-even",
	BranchEvenBothOdd:    "even-both-odd",
	BranchEvenEvenOdd:    "even-even-odd",
	BranchEvenOddEven:    "even-odd-even",
	BranchThreeSided:     "three-sided",
	BranchUnpartitioned:  "unpartitioned",
}

// String implements fmt.Stringer.
func (b Branch) String() string {
	if b < 0 || int(b) >= len(branchNames) {
		return "unknown"
	}

	return branchNames[b]
}

// Report describes the last Fill or FillWithoutPartition call.
type Report struct {
	Branch     Branch // construction used; BranchNone after a failed Fill
	Sides      int    // polylines in the input region
	Segments   int    // total boundary segment count
	Clipped    int    // corner triangles cut off
	SubRegions int    // Coons patches built
	Rays       []int  // fan ray segment counts, nil without a fan
	PQSwapped  bool   // four-sided relabel mirrored the short pair
	Vertices   int    // vertices appended to the input
	Faces      int    // faces produced
}

// Options configures a Filler.
type Options struct {
	Logger *zap.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the defaults: a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes plan diagnostics to log. nil restores the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log == nil {
			log = zap.NewNop()
		}
		o.Logger = log
	}
}
