package gridmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
	"github.com/katalvlaran/skinmesh/shortestpath"
)

func faceNodes(faces []face) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = f.nodes
	}

	return out
}

func TestSubdivide(t *testing.T) {
	nodes := []regionfiller.Node{
		{Position: geom.V(0, 0, 0), Radius: 1, Source: 0},
		{Position: geom.V(3.5, 0, 0), Radius: 2, Source: 1},
		{Position: geom.V(3.5, 0.5, 0), Radius: 2, Source: 2},
	}
	edges := []shortestpath.Edge{{U: 0, V: 1}, {U: 1, V: 2}}

	outNodes, outEdges := subdivide(nodes, edges, 1)

	// 3.5 gets three interior nodes at t = 1/4, 1/2, 3/4; 0.5 is left alone.
	require.Len(t, outNodes, 6)
	assert.Equal(t, []shortestpath.Edge{
		{U: 0, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 1}, {U: 1, V: 2},
	}, outEdges)

	assert.InDelta(t, 0.875, outNodes[3].Position.X, 1e-12)
	assert.InDelta(t, 1.75, outNodes[4].Position.X, 1e-12)
	assert.InDelta(t, 1.5, outNodes[4].Radius, 1e-12)
	assert.Equal(t, []int{0, 0, 1}, []int{outNodes[3].Source, outNodes[4].Source, outNodes[5].Source})

	assert.Len(t, nodes, 3, "input untouched")
}

func TestSubdivide_TooManyPiecesKeepsEdge(t *testing.T) {
	nodes := []regionfiller.Node{
		{Position: geom.V(0, 0, 0)},
		{Position: geom.V(1, 0, 0), Source: 1},
	}
	edges := []shortestpath.Edge{{U: 0, V: 1}}

	outNodes, outEdges := subdivide(nodes, edges, 0.001)

	assert.Len(t, outNodes, 2)
	assert.Equal(t, edges, outEdges)
}

func TestSidesAt(t *testing.T) {
	assert.Equal(t,
		[][]int{{1, 2}, {2, 3}, {3, 0}, {0, 1}},
		sidesAt([]int{1, 2, 3, 0}, []int{0, 1, 2, 3}),
	)
	assert.Equal(t,
		[][]int{{11, 12, 13}, {13, 14, 10, 11}},
		sidesAt([]int{10, 11, 12, 13, 14}, []int{1, 3}),
	)
}

func TestCornerIndices(t *testing.T) {
	verts := []regionfiller.Node{
		{Position: geom.V(0, 0, 0)},
		{Position: geom.V(1, 0, 0)},
		{Position: geom.V(2, 0, 0)},
		{Position: geom.V(2, 1, 0)},
		{Position: geom.V(0, 1, 0)},
	}

	// node 1 sits on a straight run
	assert.Equal(t, []int{0, 2, 3, 4}, cornerIndices(verts, []int{0, 1, 2, 3, 4}, DefaultCornerDegrees))
}

func TestReconcile_ReversesAgainstClaimedEdges(t *testing.T) {
	b := New()
	out := b.reconcile([]face{
		{nodes: []int{0, 1, 2}, cycle: 0},
		{nodes: []int{0, 1, 3}, cycle: 1},
		{nodes: []int{5, 6, 7}, cycle: 2},
		{nodes: []int{5, 6, 8}, cycle: 3},
	})

	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 1}, {5, 6, 7}, {5, 8, 6}}, faceNodes(out))
	assert.Zero(t, b.stats.Conflicts)
}

func TestReconcile_DropsTrueConflicts(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	b := New(WithLogger(zap.New(core)))

	// three faces on edge 0-1: the third fits neither way
	out := b.reconcile([]face{
		{nodes: []int{0, 1, 2}, cycle: 0},
		{nodes: []int{1, 0, 3}, cycle: 1},
		{nodes: []int{0, 1, 4}, cycle: 2},
	})

	assert.Equal(t, [][]int{{0, 1, 2}, {1, 0, 3}}, faceNodes(out))
	assert.Equal(t, 1, b.stats.Conflicts)

	entries := logs.FilterMessage("face conflict").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["face"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["cycle"])
}

func TestPrune(t *testing.T) {
	ring := func(centerCycle int) []face {
		return []face{
			{nodes: []int{0, 1, 2, 3}, cycle: centerCycle},
			{nodes: []int{1, 0, 4}, cycle: 1},
			{nodes: []int{2, 1, 5}, cycle: 2},
			{nodes: []int{3, 2, 6}, cycle: 3},
			{nodes: []int{0, 3, 7}, cycle: 4},
		}
	}

	b := New()
	out := b.prune(ring(0), 3)
	assert.Len(t, out, 4)
	assert.Equal(t, []int{1, 0, 4}, out[0].nodes)
	assert.Equal(t, 1, b.stats.Pruned)

	b = New()
	assert.Len(t, b.prune(ring(0), 4), 5)
	assert.Zero(t, b.stats.Pruned)

	// neighbours from the same cycle do not count
	b = New()
	assert.Len(t, b.prune(ring(1), 3), 5)
}

func TestReverseFace(t *testing.T) {
	assert.Equal(t, []int{1, 0, 3, 2}, reverseFace([]int{1, 2, 3, 0}))
	assert.Empty(t, reverseFace(nil))
}

func TestCompact(t *testing.T) {
	verts := []regionfiller.Node{
		{Source: 0}, {Source: 1}, {Source: 2}, {Source: 3}, {Source: 4},
	}
	normals := []geom.Vec{geom.V(0, 0, 1), {}, geom.V(0, 0, 2), geom.V(0, 0, 3), geom.V(0, 0, 4)}
	faces := []face{{nodes: []int{0, 2, 3}, cycle: 0}, {nodes: []int{3, 2, 4}, cycle: 1}}

	kv, kn, kf := compact(verts, normals, faces)

	require.Len(t, kv, 4)
	assert.Equal(t, []int{0, 2, 3, 4}, []int{kv[0].Source, kv[1].Source, kv[2].Source, kv[3].Source})
	assert.Equal(t, []geom.Vec{geom.V(0, 0, 1), geom.V(0, 0, 2), geom.V(0, 0, 3), geom.V(0, 0, 4)}, kn)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 1, 3}}, faceNodes(kf))
	assert.Equal(t, 1, kf[1].cycle)
	assert.Equal(t, []int{0, 2, 3}, faces[0].nodes, "input faces are left alone")

	kv, kn, kf = compact(verts, normals, nil)
	assert.Empty(t, kv)
	assert.Empty(t, kn)
	assert.Empty(t, kf)
}
