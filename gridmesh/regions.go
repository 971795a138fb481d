package gridmesh

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
)

// fillCycles meshes every discovered cycle into the shared vertex buffer and
// returns the grown buffer with the candidate faces, in cycle order.
func (b *Builder) fillCycles(verts []regionfiller.Node) ([]regionfiller.Node, []face) {
	var cands []face
	for ci, c := range b.cycles {
		corners := cornerIndices(verts, c.Nodes, b.options.CornerDegrees)

		// 1) Too round to split: the cycle is the face.
		if len(corners) < 3 {
			cands = append(cands, face{nodes: append([]int(nil), c.Nodes...), cycle: ci})
			b.stats.NGons++
			continue
		}

		// 2) Region fill, falling back to one polygon.
		f := regionfiller.New(verts, sidesAt(c.Nodes, corners), regionfiller.WithLogger(b.options.Logger))
		if err := f.Fill(); err != nil {
			b.options.Logger.Info("region fill fell back",
				zap.Int("cycle", ci),
				zap.Int("sides", len(corners)),
				zap.Error(err),
			)
			f.FillWithoutPartition()
			b.stats.Fallbacks++
		} else {
			b.stats.Filled++
		}
		b.stats.Branches[f.Report().Branch]++

		verts = f.Vertices()
		for _, fc := range f.Faces() {
			cands = append(cands, face{nodes: fc, cycle: ci})
		}
	}

	return verts, cands
}

// cornerIndices returns the positions within cycle whose turn angle reaches
// deg, in cycle order.
func cornerIndices(verts []regionfiller.Node, cycle []int, deg float64) []int {
	n := len(cycle)
	var out []int
	for i := 0; i < n; i++ {
		prev := verts[cycle[(i+n-1)%n]].Position
		cur := verts[cycle[i]].Position
		next := verts[cycle[(i+1)%n]].Position
		if geom.TurnDegrees(prev, cur, next) >= deg {
			out = append(out, i)
		}
	}

	return out
}

// sidesAt cuts cycle into polylines running from one corner to the next.
// Consecutive polylines share their corner vertex.
func sidesAt(cycle, corners []int) [][]int {
	n := len(cycle)
	sides := make([][]int, len(corners))
	for s, start := range corners {
		end := corners[(s+1)%len(corners)]
		if end <= start {
			end += n
		}
		side := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			side = append(side, cycle[i%n])
		}
		sides[s] = side
	}

	return sides
}
