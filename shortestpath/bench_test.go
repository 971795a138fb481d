package shortestpath_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/skinmesh/shortestpath"
)

// BenchmarkShortestPath_Grid measures a corner-to-corner query on a 100×100
// lattice with random weights in [1, 10000].
// Complexity: O((V+E) log V)
func BenchmarkShortestPath_Grid(b *testing.B) {
	const side = 100
	r := rand.New(rand.NewSource(42))

	edges := make([]shortestpath.Edge, 0, 2*side*side)
	weights := make([]int64, 0, 2*side*side)
	id := func(x, y int) int { return y*side + x }
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x+1 < side {
				edges = append(edges, shortestpath.Edge{U: id(x, y), V: id(x+1, y)})
				weights = append(weights, 1+r.Int63n(10000))
			}
			if y+1 < side {
				edges = append(edges, shortestpath.Edge{U: id(x, y), V: id(x, y+1)})
				weights = append(weights, 1+r.Int63n(10000))
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := shortestpath.ShortestPath(side*side, edges, weights, 0, side*side-1); err != nil {
			b.Fatal(err)
		}
	}
}
