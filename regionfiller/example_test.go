package regionfiller_test

import (
	"fmt"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
)

// ExampleFiller_Fill meshes a 2×2 square whose sides carry one midpoint
// each. Opposite sides match, so a single Coons patch adds one vertex.
func ExampleFiller_Fill() {
	pts := []geom.Vec{
		geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(2, 0, 0), geom.V(2, 1, 0),
		geom.V(2, 2, 0), geom.V(1, 2, 0), geom.V(0, 2, 0), geom.V(0, 1, 0),
	}
	nodes := make([]regionfiller.Node, len(pts))
	for i, p := range pts {
		nodes[i] = regionfiller.Node{Position: p, Radius: 0.5, Source: i}
	}
	sides := [][]int{{0, 1, 2}, {2, 3, 4}, {4, 5, 6}, {6, 7, 0}}

	f := regionfiller.New(nodes, sides)
	if err := f.Fill(); err != nil {
		fmt.Println("error:", err)
		return
	}

	c := f.Vertices()[8]
	fmt.Println(f.Report().Branch, len(f.Faces()), c.Position.X, c.Position.Y)
	// Output: quad-direct 4 1 1
}

// ExampleFiller_FillWithoutPartition emits the boundary as one polygon.
func ExampleFiller_FillWithoutPartition() {
	nodes := make([]regionfiller.Node, 5)
	f := regionfiller.New(nodes, [][]int{{0, 1, 2}, {2, 3}, {3, 4, 0}})
	f.FillWithoutPartition()

	fmt.Println(f.Faces())
	// Output: [[0 1 2 3 4]]
}
