package gridmesh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/cyclefinder"
	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
	"github.com/katalvlaran/skinmesh/shortestpath"
)

// edgeKey is an undirected edge, normalized so lo < hi.
type edgeKey struct{ lo, hi int }

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// halfEdge is a directed edge of a face.
type halfEdge struct{ from, to int }

// Builder turns a skeleton graph into a closed two-sheet shell.
//
// Nodes and edges are added first; Build then runs the whole pipeline in one
// pass. A Builder is not safe for concurrent use.
type Builder struct {
	options Options

	nodes     []regionfiller.Node
	edges     []shortestpath.Edge
	edgeIndex map[edgeKey]int

	// output of the last Build
	vertices []Vertex
	faces    [][]int
	normals  []geom.Vec
	cycles   []cyclefinder.Cycle
	stats    Stats
	err      error
}

// New returns an empty Builder.
func New(opts ...Option) *Builder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		options:   cfg,
		edgeIndex: make(map[edgeKey]int),
	}
}

// AddNode appends a skeleton node and returns its index. A negative radius
// is clamped to zero.
func (b *Builder) AddNode(pos geom.Vec, radius float64) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, regionfiller.Node{
		Position: pos,
		Radius:   max(0, radius),
		Source:   idx,
	})

	return idx
}

// AddEdge connects nodes i and j and returns the edge index. Adding an edge
// that already exists, in either direction, returns the existing index.
func (b *Builder) AddEdge(i, j int) (int, error) {
	n := len(b.nodes)
	if i < 0 || i >= n || j < 0 || j >= n {
		return -1, fmt.Errorf("%w: edge %d-%d with %d nodes", ErrNodeOutOfRange, i, j, n)
	}
	if i == j {
		return -1, fmt.Errorf("%w: node %d", ErrSelfLoop, i)
	}
	k := keyOf(i, j)
	if idx, ok := b.edgeIndex[k]; ok {
		return idx, nil
	}
	idx := len(b.edges)
	b.edges = append(b.edges, shortestpath.Edge{U: i, V: j})
	b.edgeIndex[k] = idx

	return idx, nil
}

// SetSubdived toggles edge subdivision for the next Build.
func (b *Builder) SetSubdived(on bool) { b.options.Subdivide = on }

// Vertices returns the shell vertices of the last successful Build: the
// outer sheet first, then the inner sheet in the same order.
func (b *Builder) Vertices() []Vertex { return b.vertices }

// Faces returns the shell faces of the last successful Build.
func (b *Builder) Faces() [][]int { return b.faces }

// Normals returns the vertex normals of the single-sheet mesh the shell was
// extruded from. Normal i belongs to vertex i of both sheets.
func (b *Builder) Normals() []geom.Vec { return b.normals }

// Cycles returns the cycles discovered by the last Build.
func (b *Builder) Cycles() []cyclefinder.Cycle { return b.cycles }

// Stats returns counters of the last Build.
func (b *Builder) Stats() Stats { return b.stats }

// Err reports why the last Build failed, or nil.
func (b *Builder) Err() error { return b.err }

// Build runs the full pipeline and reports whether a mesh was produced.
// On failure Err tells why and the mesh accessors return nothing.
func (b *Builder) Build() bool {
	b.vertices, b.faces, b.normals, b.cycles = nil, nil, nil, nil
	b.stats = Stats{Branches: make(map[regionfiller.Branch]int)}

	b.err = b.build()
	if b.err != nil {
		b.vertices, b.faces, b.normals = nil, nil, nil
		b.options.Logger.Debug("mesh build failed", zap.Error(b.err))

		return false
	}
	b.options.Logger.Debug("mesh built",
		zap.Int("cycles", b.stats.Cycles),
		zap.Int("vertices", b.stats.Vertices),
		zap.Int("faces", b.stats.Faces),
	)

	return true
}

func (b *Builder) build() error {
	// 1) Working copy, optionally subdivided.
	nodes, edges := b.nodes, b.edges
	if b.options.Subdivide {
		nodes, edges = subdivide(nodes, edges, b.options.TargetEdgeLength)
	}
	b.stats.Nodes, b.stats.Edges = len(nodes), len(edges)

	// 2) Snapshot into the shared vertex buffer.
	verts := append([]regionfiller.Node(nil), nodes...)
	positions := make([]geom.Vec, len(verts))
	for i, n := range verts {
		positions[i] = n.Position
	}

	// 3) Cycles.
	copts := append([]cyclefinder.Option{cyclefinder.WithLogger(b.options.Logger)}, b.options.CycleOptions...)
	b.cycles = cyclefinder.Find(positions, edges, copts...)
	b.stats.Cycles = len(b.cycles)
	if len(b.cycles) == 0 {
		return fmt.Errorf("%w: %d nodes, %d edges", ErrNoCycles, len(nodes), len(edges))
	}

	// 4) Regions.
	verts, cands := b.fillCycles(verts)

	// 5) Winding.
	faces := b.reconcile(cands)

	// 6) Normals.
	normals := vertexNormals(verts, faces)

	// 7) Big rings.
	limit := b.options.MaxBigRingSize
	if b.options.Subdivide {
		limit *= 2
	}
	faces = b.prune(faces, limit)

	// 8) Shell over the vertices the faces still use.
	verts, normals, faces = compact(verts, normals, faces)
	if len(verts) == 0 {
		return ErrEmptyMesh
	}
	b.normals = normals
	b.extrude(verts, normals, faces)
	b.stats.Vertices, b.stats.Faces = len(b.vertices), len(b.faces)

	return nil
}

// face is a candidate face tagged with the cycle it came from.
type face struct {
	nodes []int
	cycle int
}
