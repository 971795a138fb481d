package cyclefinder

import (
	"errors"

	"go.uber.org/zap"
)

// Default thresholds.
const (
	// DefaultOppositeOverlapRatio rejects a candidate that runs backwards
	// over more than half of an accepted cycle.
	DefaultOppositeOverlapRatio = 0.5

	// DefaultFlatnessThreshold is the largest accepted mean squared distance
	// between consecutive corner normals.
	DefaultFlatnessThreshold = 1.0

	// DefaultFlatnessCornerDegrees is the smallest turn counted as a corner
	// by the flatness test.
	DefaultFlatnessCornerDegrees = 15.0

	// DefaultReusePenalty is added to an edge weight each time a cycle
	// consumes the edge.
	DefaultReusePenalty int64 = 100000

	// LengthScale converts real edge lengths to integer weights.
	LengthScale = 10000.0
)

// Errors raised by Option constructors on meaningless values.
var (
	// ErrBadOverlapRatio indicates a ratio outside (0, 1].
	ErrBadOverlapRatio = errors.New("cyclefinder: opposite overlap ratio must be in (0, 1]")

	// ErrBadFlatnessThreshold indicates a negative flatness threshold.
	ErrBadFlatnessThreshold = errors.New("cyclefinder: flatness threshold must be non-negative")

	// ErrBadCornerDegrees indicates a corner angle outside [0, 180).
	ErrBadCornerDegrees = errors.New("cyclefinder: corner degrees must be in [0, 180)")

	// ErrBadReusePenalty indicates a negative reuse penalty.
	ErrBadReusePenalty = errors.New("cyclefinder: reuse penalty must be non-negative")
)

// Cycle is a closed walk over node indices. The last node connects back to
// the first. Length is the sum of the scaled edge lengths.
type Cycle struct {
	Nodes  []int
	Length int64
}

// RejectReason says why a candidate cycle was discarded.
type RejectReason int

const (
	// RejectClaimed: a directed half-edge of the candidate already has an owner.
	RejectClaimed RejectReason = iota
	// RejectOppositeOverlap: the candidate mirrors too much of an accepted cycle.
	RejectOppositeOverlap
	// RejectNotFlat: the corner normals swing too much.
	RejectNotFlat
	// RejectTooShort: fewer than three nodes.
	RejectTooShort
)

// String implements fmt.Stringer.
func (r RejectReason) String() string {
	switch r {
	case RejectClaimed:
		return "claimed"
	case RejectOppositeOverlap:
		return "opposite-overlap"
	case RejectNotFlat:
		return "not-flat"
	case RejectTooShort:
		return "too-short"
	default:
		return "unknown"
	}
}

// Stats summarizes the last Find call.
type Stats struct {
	Searches   int                  // shortest-path queries run
	NoDetour   int                  // queries with no alternative path
	Candidates int                  // candidate cycles formed
	Accepted   int                  // cycles kept
	Rejected   map[RejectReason]int // rejections by reason
	Skipped    int                  // input edges ignored (self-loop, duplicate, out of range)
}

// Options configures a Finder.
type Options struct {
	OppositeOverlapRatio  float64
	FlatnessThreshold     float64
	FlatnessCornerDegrees float64
	ReusePenalty          int64
	Logger                *zap.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the thresholds used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		OppositeOverlapRatio:  DefaultOppositeOverlapRatio,
		FlatnessThreshold:     DefaultFlatnessThreshold,
		FlatnessCornerDegrees: DefaultFlatnessCornerDegrees,
		ReusePenalty:          DefaultReusePenalty,
		Logger:                zap.NewNop(),
	}
}

// WithOppositeOverlapRatio sets the mirror rejection ratio. Panics outside (0, 1].
func WithOppositeOverlapRatio(ratio float64) Option {
	return func(o *Options) {
		if ratio <= 0 || ratio > 1 {
			panic(ErrBadOverlapRatio.Error())
		}
		o.OppositeOverlapRatio = ratio
	}
}

// WithFlatnessThreshold sets the flatness bound. Panics on negative values.
func WithFlatnessThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold < 0 {
			panic(ErrBadFlatnessThreshold.Error())
		}
		o.FlatnessThreshold = threshold
	}
}

// WithFlatnessCornerDegrees sets the corner turn used by the flatness test.
// Panics outside [0, 180).
func WithFlatnessCornerDegrees(deg float64) Option {
	return func(o *Options) {
		if deg < 0 || deg >= 180 {
			panic(ErrBadCornerDegrees.Error())
		}
		o.FlatnessCornerDegrees = deg
	}
}

// WithReusePenalty sets the weight added to consumed edges. Panics on negative values.
func WithReusePenalty(penalty int64) Option {
	return func(o *Options) {
		if penalty < 0 {
			panic(ErrBadReusePenalty.Error())
		}
		o.ReusePenalty = penalty
	}
}

// WithLogger routes rejection diagnostics to log. nil restores the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log == nil {
			log = zap.NewNop()
		}
		o.Logger = log
	}
}
