package gridmesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
)

// faceNormal is the normalized sum of the corner cross products of f.
func faceNormal(verts []regionfiller.Node, nodes []int) geom.Vec {
	pts := make([]geom.Vec, len(nodes))
	for i, v := range nodes {
		pts[i] = verts[v].Position
	}

	return geom.PolygonNormal(pts)
}

// vertexNormals averages the normals of the faces around each vertex.
// Vertices on no face get the zero vector.
func vertexNormals(verts []regionfiller.Node, faces []face) []geom.Vec {
	sum := make([]geom.Vec, len(verts))
	for _, f := range faces {
		n := faceNormal(verts, f.nodes)
		for _, v := range f.nodes {
			sum[v] = r3.Add(sum[v], n)
		}
	}
	for i := range sum {
		sum[i] = geom.Unit(sum[i])
	}

	return sum
}
