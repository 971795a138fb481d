package gridmesh

import (
	"math"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
	"github.com/katalvlaran/skinmesh/shortestpath"
)

// subdivide splits every edge longer than target into equal pieces shorter
// than target. An edge of length L gets floor(L/target) interior nodes;
// edges that would need more than MaxSubdivisions are kept whole.
//
// Interior nodes interpolate position and radius and take the source of the
// nearer endpoint, the first one on a tie. The input slices are not modified.
func subdivide(nodes []regionfiller.Node, edges []shortestpath.Edge, target float64) ([]regionfiller.Node, []shortestpath.Edge) {
	outNodes := append([]regionfiller.Node(nil), nodes...)
	outEdges := make([]shortestpath.Edge, 0, len(edges))

	for _, e := range edges {
		a, b := nodes[e.U], nodes[e.V]
		length := geom.Distance(a.Position, b.Position)
		count := int(math.Floor(length / target))
		if length <= target || count < 1 || count > MaxSubdivisions {
			outEdges = append(outEdges, e)
			continue
		}

		prev := e.U
		for k := 1; k <= count; k++ {
			t := float64(k) / float64(count+1)
			src := a.Source
			if t > 0.5 {
				src = b.Source
			}
			outNodes = append(outNodes, regionfiller.Node{
				Position: geom.Lerp(a.Position, b.Position, t),
				Radius:   (1-t)*a.Radius + t*b.Radius,
				Source:   src,
			})
			cur := len(outNodes) - 1
			outEdges = append(outEdges, shortestpath.Edge{U: prev, V: cur})
			prev = cur
		}
		outEdges = append(outEdges, shortestpath.Edge{U: prev, V: e.V})
	}

	return outNodes, outEdges
}
