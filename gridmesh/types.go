package gridmesh

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/cyclefinder"
	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
)

// Sentinel errors.
var (
	// ErrNodeOutOfRange indicates an edge endpoint that was never added.
	ErrNodeOutOfRange = errors.New("gridmesh: node index out of range")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("gridmesh: self-loop edge")

	// ErrNoCycles indicates that the skeleton encloses no face.
	ErrNoCycles = errors.New("gridmesh: no cycles found")

	// ErrEmptyMesh indicates that no vertex is left on any face.
	ErrEmptyMesh = errors.New("gridmesh: empty mesh")

	// ErrBadTargetEdgeLength indicates a non-positive subdivision length.
	ErrBadTargetEdgeLength = errors.New("gridmesh: target edge length must be positive")

	// ErrBadCornerDegrees indicates a corner angle outside (0, 180).
	ErrBadCornerDegrees = errors.New("gridmesh: corner degrees must be in (0, 180)")

	// ErrBadBigRingSize indicates a ring limit below one.
	ErrBadBigRingSize = errors.New("gridmesh: max big ring size must be at least 1")
)

// Defaults.
const (
	// DefaultTargetEdgeLength is the longest edge left alone by subdivision.
	DefaultTargetEdgeLength = 0.04

	// MaxSubdivisions caps the nodes inserted into one edge; edges needing
	// more are left whole.
	MaxSubdivisions = 100

	// DefaultCornerDegrees is the smallest turn that splits a cycle into sides.
	DefaultCornerDegrees = 35.0

	// DefaultMaxBigRingSize is the largest number of foreign faces one face
	// may border before it is pruned. Doubled when subdividing.
	DefaultMaxBigRingSize = 8
)

// Vertex is an output mesh vertex. Source is the skeleton node it came from.
type Vertex struct {
	Position geom.Vec
	Source   int
}

// Stats summarizes the last Build.
type Stats struct {
	Nodes     int // skeleton nodes after subdivision
	Edges     int // skeleton edges after subdivision
	Cycles    int // cycles discovered
	Filled    int // cycles meshed by the region filler
	Fallbacks int // cycles whose fill failed and became one polygon
	NGons     int // cycles with fewer than three corners, kept as one polygon
	Conflicts int // faces skipped by winding reconciliation
	Pruned    int // faces removed as big rings
	OpenEdges int // half-edges stitched between the sheets
	Vertices  int
	Faces     int
	Branches  map[regionfiller.Branch]int
}

// Options configures a Builder.
type Options struct {
	Subdivide        bool
	TargetEdgeLength float64
	CornerDegrees    float64
	MaxBigRingSize   int
	CycleOptions     []cyclefinder.Option
	Logger           *zap.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the builder defaults.
func DefaultOptions() Options {
	return Options{
		Subdivide:        false,
		TargetEdgeLength: DefaultTargetEdgeLength,
		CornerDegrees:    DefaultCornerDegrees,
		MaxBigRingSize:   DefaultMaxBigRingSize,
		Logger:           zap.NewNop(),
	}
}

// WithSubdivide enables edge subdivision before cycle discovery.
func WithSubdivide(on bool) Option {
	return func(o *Options) { o.Subdivide = on }
}

// WithTargetEdgeLength sets the subdivision length. Panics on length ≤ 0.
func WithTargetEdgeLength(length float64) Option {
	return func(o *Options) {
		if length <= 0 {
			panic(ErrBadTargetEdgeLength.Error())
		}
		o.TargetEdgeLength = length
	}
}

// WithCornerDegrees sets the turn that marks a side corner. Panics outside (0, 180).
func WithCornerDegrees(deg float64) Option {
	return func(o *Options) {
		if deg <= 0 || deg >= 180 {
			panic(ErrBadCornerDegrees.Error())
		}
		o.CornerDegrees = deg
	}
}

// WithMaxBigRingSize sets the prune limit. Panics on size < 1.
func WithMaxBigRingSize(size int) Option {
	return func(o *Options) {
		if size < 1 {
			panic(ErrBadBigRingSize.Error())
		}
		o.MaxBigRingSize = size
	}
}

// WithCycleOptions forwards options to the cycle finder.
func WithCycleOptions(opts ...cyclefinder.Option) Option {
	return func(o *Options) {
		o.CycleOptions = append(o.CycleOptions, opts...)
	}
}

// WithLogger routes build diagnostics to log. nil restores the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log == nil {
			log = zap.NewNop()
		}
		o.Logger = log
	}
}
