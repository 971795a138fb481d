package shortestpath

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNodeOutOfRange indicates that start, stop or an edge endpoint is not in [0, nodeCount).
	ErrNodeOutOfRange = errors.New("shortestpath: node index out of range")

	// ErrWeightCountMismatch indicates that the weight list does not match the edge list.
	ErrWeightCountMismatch = errors.New("shortestpath: weights and edges differ in length")

	// ErrNegativeWeight indicates that a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrNoPath indicates that stop is unreachable from start.
	ErrNoPath = errors.New("shortestpath: no path between start and stop")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("shortestpath: InfEdgeThreshold must be positive")
)

// Edge is an unordered pair of node indices.
type Edge struct {
	U, V int
}

// Other returns the endpoint of e that is not n.
func (e Edge) Other(n int) int {
	if e.U == n {
		return e.V
	}

	return e.U
}

// Options configures ShortestPath.
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64 (nothing impassable).
type Options struct {
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithInfEdgeThreshold treats every edge whose weight is ≥ threshold as a wall.
// Panics on threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the option set used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		InfEdgeThreshold: math.MaxInt64,
	}
}
