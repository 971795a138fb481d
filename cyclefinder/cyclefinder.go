package cyclefinder

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/shortestpath"
)

// halfEdge is one direction of an undirected edge.
type halfEdge struct {
	from, to int
}

// edgeKey is an undirected edge normalized to lo < hi.
type edgeKey struct {
	lo, hi int
}

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// Finder discovers face cycles over a fixed set of positions and edges.
// A Finder is not safe for concurrent use; Find may be called repeatedly and
// always starts from scratch.
type Finder struct {
	options   Options
	positions []geom.Vec
	edges     []shortestpath.Edge // deduplicated, valid edges
	base      []int64             // scaled length per edge
	index     map[edgeKey]int     // undirected edge → position in edges
	skipped   int

	// per-Find state
	weights []int64
	owner   map[halfEdge]int // claimed half-edge → cycle index
	tried   map[halfEdge]bool
	touched []bool // edge tried in some direction
	queue   []halfEdge
	cycles  []Cycle
	stats   Stats
}

// New prepares a Finder. Self-loops, duplicate edges and edges with an
// endpoint outside positions are ignored and counted in Stats.Skipped.
func New(positions []geom.Vec, edges []shortestpath.Edge, opts ...Option) *Finder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Finder{
		options:   cfg,
		positions: positions,
		index:     make(map[edgeKey]int, len(edges)),
	}

	n := len(positions)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			f.skipped++
			continue
		}
		k := keyOf(e.U, e.V)
		if _, dup := f.index[k]; dup {
			f.skipped++
			continue
		}
		f.index[k] = len(f.edges)
		f.edges = append(f.edges, e)
		f.base = append(f.base, scaledLength(positions[e.U], positions[e.V]))
	}

	return f
}

// scaledLength returns round(|a-b|×LengthScale), at least 1.
func scaledLength(a, b geom.Vec) int64 {
	w := int64(math.Round(geom.Distance(a, b) * LengthScale))
	if w < 1 {
		w = 1
	}

	return w
}

// Stats returns the counters of the last Find.
func (f *Finder) Stats() Stats {
	out := f.stats
	out.Rejected = make(map[RejectReason]int, len(f.stats.Rejected))
	for k, v := range f.stats.Rejected {
		out.Rejected[k] = v
	}

	return out
}

// Find runs the discovery and returns the accepted cycles in acceptance order.
func (f *Finder) Find() []Cycle {
	// 1) Reset per-run state.
	f.weights = append([]int64(nil), f.base...)
	f.owner = make(map[halfEdge]int)
	f.tried = make(map[halfEdge]bool)
	f.touched = make([]bool, len(f.edges))
	f.queue = f.queue[:0]
	f.cycles = nil
	f.stats = Stats{Rejected: make(map[RejectReason]int), Skipped: f.skipped}

	// 2) Drain the queue; reseed with the lowest untouched edge each time it empties.
	for seed := 0; seed < len(f.edges); seed++ {
		if f.touched[seed] {
			continue
		}
		e := f.edges[seed]
		f.queue = append(f.queue, halfEdge{from: e.U, to: e.V})
		f.drain()
	}

	return f.cycles
}

// drain processes queued half-edges until none remain.
func (f *Finder) drain() {
	for len(f.queue) > 0 {
		he := f.queue[0]
		f.queue = f.queue[1:]

		if f.tried[he] {
			continue
		}
		f.tried[he] = true
		idx := f.index[keyOf(he.from, he.to)]
		f.touched[idx] = true

		// already bounding a face in this direction
		if _, claimed := f.owner[he]; claimed {
			continue
		}

		nodes, ok := f.detour(he, idx)
		if !ok {
			continue
		}
		f.stats.Candidates++

		if reason, bad := f.validate(nodes); bad {
			f.stats.Rejected[reason]++
			f.options.Logger.Debug("cycle rejected",
				zap.Stringer("reason", reason),
				zap.Ints("candidate", nodes),
			)
			continue
		}
		f.accept(nodes)
	}
}

// detour removes edge idx and returns the cheapest walk back from he.to to
// he.from. Read cyclically, the walk contains the directed edge he.
func (f *Finder) detour(he halfEdge, idx int) ([]int, bool) {
	edges := make([]shortestpath.Edge, 0, len(f.edges)-1)
	weights := make([]int64, 0, len(f.edges)-1)
	edges = append(edges, f.edges[:idx]...)
	edges = append(edges, f.edges[idx+1:]...)
	weights = append(weights, f.weights[:idx]...)
	weights = append(weights, f.weights[idx+1:]...)

	f.stats.Searches++
	// path is ordered he.to → … → he.from
	path, err := shortestpath.ShortestPath(len(f.positions), edges, weights, he.from, he.to)
	if err != nil {
		if errors.Is(err, shortestpath.ErrNoPath) {
			f.stats.NoDetour++
		}

		return nil, false
	}

	return path, true
}

// validate reports the first rule the candidate breaks.
func (f *Finder) validate(nodes []int) (RejectReason, bool) {
	n := len(nodes)
	if n < 3 {
		return RejectTooShort, true
	}

	// 1) No half-edge may already have an owner.
	for i := 0; i < n; i++ {
		if _, claimed := f.owner[halfEdge{from: nodes[i], to: nodes[(i+1)%n]}]; claimed {
			return RejectClaimed, true
		}
	}

	// 2) Sum, per accepted cycle, the candidate length running against it.
	overlap := make(map[int]int64)
	for i := 0; i < n; i++ {
		a, b := nodes[i], nodes[(i+1)%n]
		if c, ok := f.owner[halfEdge{from: b, to: a}]; ok {
			overlap[c] += f.base[f.index[keyOf(a, b)]]
		}
	}
	for c, length := range overlap {
		if float64(length) > f.options.OppositeOverlapRatio*float64(f.cycles[c].Length) {
			return RejectOppositeOverlap, true
		}
	}

	// 3) Flatness.
	if flatnessError(f.positions, nodes, f.options.FlatnessCornerDegrees) > f.options.FlatnessThreshold {
		return RejectNotFlat, true
	}

	return 0, false
}

// accept claims the half-edges, penalizes the consumed edges and queues the
// opposite directions.
func (f *Finder) accept(nodes []int) {
	ci := len(f.cycles)
	n := len(nodes)
	var length int64
	for i := 0; i < n; i++ {
		a, b := nodes[i], nodes[(i+1)%n]
		idx := f.index[keyOf(a, b)]
		f.owner[halfEdge{from: a, to: b}] = ci
		length += f.base[idx]
		f.weights[idx] += f.options.ReusePenalty
		f.queue = append(f.queue, halfEdge{from: b, to: a})
	}

	f.cycles = append(f.cycles, Cycle{Nodes: append([]int(nil), nodes...), Length: length})
	f.stats.Accepted++
}

// Find is a convenience wrapper around New(...).Find().
func Find(positions []geom.Vec, edges []shortestpath.Edge, opts ...Option) []Cycle {
	return New(positions, edges, opts...).Find()
}
