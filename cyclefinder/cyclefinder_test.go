package cyclefinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/skinmesh/cyclefinder"
	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/shortestpath"
)

// unitSquare is a closed loop of four unit edges in the XY plane.
func unitSquare() ([]geom.Vec, []shortestpath.Edge) {
	pos := []geom.Vec{geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(1, 1, 0), geom.V(0, 1, 0)}
	edges := []shortestpath.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}

	return pos, edges
}

// unitCube is the wireframe of a unit cube: bottom ring 0-3, top ring 4-7.
func unitCube() ([]geom.Vec, []shortestpath.Edge) {
	pos := []geom.Vec{
		geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(1, 1, 0), geom.V(0, 1, 0),
		geom.V(0, 0, 1), geom.V(1, 0, 1), geom.V(1, 1, 1), geom.V(0, 1, 1),
	}
	edges := []shortestpath.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0},
		{U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 7}, {U: 7, V: 4},
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
	}

	return pos, edges
}

// assertManifold checks that no directed half-edge is used twice and that
// every step of every cycle is an input edge.
func assertManifold(t *testing.T, cycles []cyclefinder.Cycle, edges []shortestpath.Edge) {
	t.Helper()

	type pair struct{ a, b int }
	undirected := make(map[pair]bool, len(edges))
	for _, e := range edges {
		undirected[pair{e.U, e.V}] = true
		undirected[pair{e.V, e.U}] = true
	}

	owner := make(map[pair]int)
	for ci, c := range cycles {
		require.GreaterOrEqual(t, len(c.Nodes), 3, "cycle %d too short", ci)
		n := len(c.Nodes)
		for i := 0; i < n; i++ {
			he := pair{c.Nodes[i], c.Nodes[(i+1)%n]}
			assert.True(t, undirected[he], "cycle %d steps over non-edge %v", ci, he)
			prev, dup := owner[he]
			assert.False(t, dup, "half-edge %v owned by cycles %d and %d", he, prev, ci)
			owner[he] = ci
		}
	}
}

func TestFind_SquareYieldsOneCycle(t *testing.T) {
	pos, edges := unitSquare()

	f := cyclefinder.New(pos, edges)
	cycles := f.Find()

	require.Len(t, cycles, 1)
	assert.Equal(t, []int{1, 2, 3, 0}, cycles[0].Nodes)
	assert.Equal(t, int64(40000), cycles[0].Length)

	stats := f.Stats()
	assert.Equal(t, 1, stats.Accepted)
	assert.Equal(t, 4, stats.Rejected[cyclefinder.RejectOppositeOverlap])
}

func TestFind_SingleEdgeYieldsNothing(t *testing.T) {
	pos := []geom.Vec{geom.V(0, 0, 0), geom.V(1, 0, 0)}
	edges := []shortestpath.Edge{{U: 0, V: 1}}

	f := cyclefinder.New(pos, edges)
	assert.Empty(t, f.Find())
	assert.Equal(t, 1, f.Stats().NoDetour)
}

func TestFind_EmptyInput(t *testing.T) {
	assert.Empty(t, cyclefinder.Find(nil, nil))
	assert.Empty(t, cyclefinder.Find([]geom.Vec{geom.V(0, 0, 0)}, nil))
}

func TestFind_DisconnectedComponents(t *testing.T) {
	pos := []geom.Vec{
		geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0),
		geom.V(5, 0, 0), geom.V(6, 0, 0), geom.V(5, 1, 0),
	}
	edges := []shortestpath.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0},
		{U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 3},
	}

	f := cyclefinder.New(pos, edges)
	cycles := f.Find()

	require.Len(t, cycles, 2)
	assert.Equal(t, []int{1, 2, 0}, cycles[0].Nodes)
	assert.Equal(t, []int{4, 5, 3}, cycles[1].Nodes)
	assert.Equal(t, 6, f.Stats().Rejected[cyclefinder.RejectOppositeOverlap])
}

func TestFind_SkipsInvalidEdges(t *testing.T) {
	pos, edges := unitSquare()
	edges = append(edges,
		shortestpath.Edge{U: 1, V: 0}, // duplicate
		shortestpath.Edge{U: 2, V: 2}, // self-loop
		shortestpath.Edge{U: 0, V: 9}, // out of range
	)

	f := cyclefinder.New(pos, edges)
	cycles := f.Find()

	require.Len(t, cycles, 1)
	assert.Equal(t, 3, f.Stats().Skipped)
}

func TestFind_RejectsNonFlatCandidate(t *testing.T) {
	// skew quadrilateral: node 2 is lifted off the plane
	pos := []geom.Vec{geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(1, 1, 1), geom.V(0, 1, 0)}
	_, edges := unitSquare()

	// the default threshold tolerates the skew
	require.Len(t, cyclefinder.Find(pos, edges), 1)

	f := cyclefinder.New(pos, edges, cyclefinder.WithFlatnessThreshold(0))
	assert.Empty(t, f.Find())
	assert.Positive(t, f.Stats().Rejected[cyclefinder.RejectNotFlat])
}

func TestFind_CubeIsManifoldAndDeterministic(t *testing.T) {
	pos, edges := unitCube()

	first := cyclefinder.Find(pos, edges)
	second := cyclefinder.Find(pos, edges)

	require.Len(t, first, 6)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{1, 2, 3, 0}, first[0].Nodes)
	assert.Equal(t, []int{5, 4, 7, 6}, first[5].Nodes)
	assertManifold(t, first, edges)
}

func TestFind_PlanarGridFindsEveryCell(t *testing.T) {
	// 3×3 lattice of unit cells; the outer boundary loop mirrors two edges
	// of each corner cell and is rejected.
	var pos []geom.Vec
	var edges []shortestpath.Edge
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			pos = append(pos, geom.V(float64(x), float64(y), 0))
			i := y*3 + x
			if x < 2 {
				edges = append(edges, shortestpath.Edge{U: i, V: i + 1})
			}
			if y < 2 {
				edges = append(edges, shortestpath.Edge{U: i, V: i + 3})
			}
		}
	}

	cycles := cyclefinder.Find(pos, edges)

	require.Len(t, cycles, 4)
	assert.Equal(t, []int{1, 4, 3, 0}, cycles[0].Nodes)
	assert.Equal(t, []int{5, 8, 7, 4}, cycles[3].Nodes)
	assertManifold(t, cycles, edges)
}

func TestFind_RepeatedCallsOnOneFinder(t *testing.T) {
	pos, edges := unitCube()

	f := cyclefinder.New(pos, edges)
	a := f.Find()
	statsA := f.Stats()
	b := f.Find()

	assert.Equal(t, a, b)
	assert.Equal(t, statsA, f.Stats())
}

func TestFind_LogsRejections(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	pos, edges := unitSquare()

	cyclefinder.Find(pos, edges, cyclefinder.WithLogger(zap.New(core)))

	rejected := logs.FilterMessage("cycle rejected").All()
	require.Len(t, rejected, 4)
	assert.Equal(t, "opposite-overlap", rejected[0].ContextMap()["reason"])
}

func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	apply := func(opt cyclefinder.Option) func() {
		return func() {
			o := cyclefinder.DefaultOptions()
			opt(&o)
		}
	}

	assert.Panics(t, apply(cyclefinder.WithOppositeOverlapRatio(0)))
	assert.Panics(t, apply(cyclefinder.WithOppositeOverlapRatio(1.5)))
	assert.Panics(t, apply(cyclefinder.WithFlatnessThreshold(-1)))
	assert.Panics(t, apply(cyclefinder.WithFlatnessCornerDegrees(180)))
	assert.Panics(t, apply(cyclefinder.WithReusePenalty(-1)))
	assert.NotPanics(t, apply(cyclefinder.WithLogger(nil)))
}

func TestRejectReason_String(t *testing.T) {
	assert.Equal(t, "claimed", cyclefinder.RejectClaimed.String())
	assert.Equal(t, "not-flat", cyclefinder.RejectNotFlat.String())
	assert.Equal(t, "unknown", cyclefinder.RejectReason(99).String())
}
