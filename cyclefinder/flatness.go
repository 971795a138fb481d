package cyclefinder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinmesh/geom"
)

// flatnessError returns the mean squared distance between consecutive corner
// normals of the closed walk nodes. Corners are nodes turning by at least
// cornerDeg. Fewer than two corners count as perfectly flat.
func flatnessError(positions []geom.Vec, nodes []int, cornerDeg float64) float64 {
	n := len(nodes)
	normals := make([]geom.Vec, 0, n)
	for i := 0; i < n; i++ {
		prev := positions[nodes[(i+n-1)%n]]
		cur := positions[nodes[i]]
		next := positions[nodes[(i+1)%n]]
		if geom.TurnDegrees(prev, cur, next) < cornerDeg {
			continue
		}
		normals = append(normals, geom.CornerNormal(prev, cur, next))
	}

	m := len(normals)
	if m < 2 {
		return 0
	}

	var sum float64
	for i := 0; i < m; i++ {
		sum += r3.Norm2(r3.Sub(normals[i], normals[(i+1)%m]))
	}

	return sum / float64(m)
}
