package skeleton_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/gridmesh"
	"github.com/katalvlaran/skinmesh/skeleton"
)

// TestConstructors checks node and edge counts of every generator.
func TestConstructors(t *testing.T) {
	tests := []struct {
		name         string
		ctor         skeleton.Constructor
		nodes, edges int
	}{
		{"Ring(5)", skeleton.Ring(5), 5, 5},
		{"Grid(3,4)", skeleton.Grid(3, 4), 12, 17},
		{"Tube(6,3)", skeleton.Tube(6, 3), 18, 30},
		{"Cube", skeleton.Cube(), 8, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := skeleton.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Len(t, s.Nodes, tc.nodes)
			assert.Len(t, s.Edges, tc.edges)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestConstructors_RejectSmallSizes(t *testing.T) {
	for name, ctor := range map[string]skeleton.Constructor{
		"Ring(2)":   skeleton.Ring(2),
		"Grid(1,5)": skeleton.Grid(1, 5),
		"Tube(3,1)": skeleton.Tube(3, 1),
		"Tube(2,4)": skeleton.Tube(2, 4),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := skeleton.Build(nil, ctor)
			assert.ErrorIs(t, err, skeleton.ErrTooFewNodes)
		})
	}
}

func TestRing_EdgesHaveSpacing(t *testing.T) {
	s, err := skeleton.Build([]skeleton.Option{skeleton.WithSpacing(0.5)}, skeleton.Ring(7))
	require.NoError(t, err)

	for _, e := range s.Edges {
		d := geom.Distance(s.Nodes[e[0]].Position, s.Nodes[e[1]].Position)
		assert.InDelta(t, 0.5, d, 1e-12)
	}
	assert.Equal(t, skeleton.Edge{6, 0}, s.Edges[6])
}

func TestGrid_RowMajorLayout(t *testing.T) {
	s, err := skeleton.Build([]skeleton.Option{
		skeleton.WithSpacing(2),
		skeleton.WithOrigin(geom.V(1, 1, 1)),
	}, skeleton.Grid(2, 3))
	require.NoError(t, err)

	assert.Equal(t, geom.V(1, 1, 1), s.Nodes[0].Position)
	assert.Equal(t, geom.V(5, 3, 1), s.Nodes[5].Position)
	// (0,0) emits right then bottom
	assert.Equal(t, []skeleton.Edge{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}, s.Edges)
}

func TestBuild_ComposesComponents(t *testing.T) {
	s, err := skeleton.Build(nil, skeleton.Ring(3), skeleton.Ring(4))
	require.NoError(t, err)

	require.Len(t, s.Nodes, 7)
	assert.Equal(t, skeleton.Edge{3, 4}, s.Edges[3])
	assert.Equal(t, skeleton.Edge{6, 3}, s.Edges[6])
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := skeleton.Build(nil, skeleton.Ring(3), nil)
	assert.ErrorIs(t, err, skeleton.ErrNilConstructor)
}

func TestWithRadiusFn(t *testing.T) {
	s, err := skeleton.Build([]skeleton.Option{
		skeleton.WithRadiusFn(func(i int, _ geom.Vec) float64 { return float64(i) / 10 }),
	}, skeleton.Ring(4))
	require.NoError(t, err)
	assert.InDelta(t, 0.3, s.Nodes[3].Radius, 1e-12)

	_, err = skeleton.Build([]skeleton.Option{
		skeleton.WithRadiusFn(func(int, geom.Vec) float64 { return -1 }),
	}, skeleton.Cube())
	assert.ErrorIs(t, err, skeleton.ErrBadRadius)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { skeleton.WithSpacing(0) })
	assert.Panics(t, func() { skeleton.WithSpacing(math.Inf(1)) })
	assert.Panics(t, func() { skeleton.WithRadius(-0.1) })
	assert.Panics(t, func() { skeleton.WithRadiusFn(nil) })
	assert.NotPanics(t, func() { skeleton.WithRadius(0) })
}

func TestSkeleton_AddValidates(t *testing.T) {
	var s skeleton.Skeleton
	_, err := s.AddNode(geom.V(0, 0, 0), 0.1)
	require.NoError(t, err)
	_, err = s.AddNode(geom.V(1, 0, 0), math.NaN())
	assert.ErrorIs(t, err, skeleton.ErrBadRadius)

	assert.ErrorIs(t, s.AddEdge(0, 1), skeleton.ErrNodeOutOfRange)
	assert.ErrorIs(t, s.AddEdge(0, 0), skeleton.ErrSelfLoop)
	assert.Empty(t, s.Edges)
}

func TestSkeleton_Bounds(t *testing.T) {
	s, err := skeleton.Build([]skeleton.Option{skeleton.WithOrigin(geom.V(-1, 0, 2))}, skeleton.Cube())
	require.NoError(t, err)

	lo, hi := s.Bounds()
	assert.Equal(t, geom.V(-1, 0, 2), lo)
	assert.Equal(t, geom.V(0, 1, 3), hi)

	lo, hi = (&skeleton.Skeleton{}).Bounds()
	assert.Equal(t, geom.Vec{}, lo)
	assert.Equal(t, geom.Vec{}, hi)
}

func TestApplyTo_BuildsMesh(t *testing.T) {
	tests := []struct {
		name         string
		ctor         skeleton.Constructor
		cycles       int
		verts, faces int
	}{
		{"Cube", skeleton.Cube(), 6, 16, 12},
		{"Grid(3,3)", skeleton.Grid(3, 3), 4, 18, 16},
		{"Tube(4,3)", skeleton.Tube(4, 3), 10, 24, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := skeleton.Build(nil, tc.ctor)
			require.NoError(t, err)

			b := gridmesh.New()
			require.NoError(t, s.ApplyTo(b))
			require.True(t, b.Build())

			assert.Equal(t, tc.cycles, b.Stats().Cycles)
			assert.Len(t, b.Vertices(), tc.verts)
			assert.Len(t, b.Faces(), tc.faces)
		})
	}
}

func TestApplyTo_RejectsInvalid(t *testing.T) {
	s := &skeleton.Skeleton{
		Nodes: []skeleton.Node{{Position: geom.V(0, 0, 0)}},
		Edges: []skeleton.Edge{{0, 3}},
	}
	assert.ErrorIs(t, s.ApplyTo(gridmesh.New()), skeleton.ErrNodeOutOfRange)
}

const twoNodes = `
nodes:
  - {position: [0, 0, 0], radius: 0.1}
  - {position: [1, 0, 0], radius: 0.2}
edges:
  - [0, 1]
`

func TestDecode(t *testing.T) {
	s, err := skeleton.Decode(strings.NewReader(twoNodes))
	require.NoError(t, err)

	assert.Equal(t, []skeleton.Node{
		{Position: geom.V(0, 0, 0), Radius: 0.1},
		{Position: geom.V(1, 0, 0), Radius: 0.2},
	}, s.Nodes)
	assert.Equal(t, []skeleton.Edge{{0, 1}}, s.Edges)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", skeleton.ErrDecode},
		{"unknown key", "nodes: []\ncolor: red\n", skeleton.ErrDecode},
		{"short position", "nodes:\n  - {position: [0, 0], radius: 1}\n", skeleton.ErrDecode},
		{"edge out of range", "nodes:\n  - {position: [0, 0, 0], radius: 1}\nedges:\n  - [0, 1]\n", skeleton.ErrNodeOutOfRange},
		{"negative radius", "nodes:\n  - {position: [0, 0, 0], radius: -1}\n", skeleton.ErrBadRadius},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := skeleton.Decode(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEncode_FlowStyle(t *testing.T) {
	s, err := skeleton.Decode(strings.NewReader(twoNodes))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	out := buf.String()

	assert.Contains(t, out, "position: [1, 0, 0]")
	assert.Contains(t, out, "radius: 0.2")
	assert.Contains(t, out, "[0, 1]")
}

func TestSaveLoad(t *testing.T) {
	s, err := skeleton.Build([]skeleton.Option{skeleton.WithRadius(0.25)}, skeleton.Tube(5, 2))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tube.yaml")
	require.NoError(t, s.Save(path))

	got, err := skeleton.Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = skeleton.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
