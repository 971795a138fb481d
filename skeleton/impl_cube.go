// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// impl_cube.go — Cube() constructor: the wireframe of an axis-aligned cube
// with edge length spacing.
//
// Canonical layout:
//   • Bottom ring 0..3 at z = 0, top ring 4..7 at z = spacing, both
//     counter-clockwise seen from +Z starting at the origin corner.
//   • Edges: bottom ring, top ring, then the four verticals.

package skeleton

const methodCube = "Cube"

var (
	cubeCorners = [8][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	cubeEdges = [12]Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

// Cube returns a Constructor that builds the 8-node, 12-edge cube wireframe.
func Cube() Constructor {
	return func(s *Skeleton, cfg config) error {
		first := len(s.Nodes)
		for i, c := range cubeCorners {
			p := [3]float64{c[0] * cfg.spacing, c[1] * cfg.spacing, c[2] * cfg.spacing}
			if _, err := cfg.addNode(s, methodCube, i, p); err != nil {
				return err
			}
		}
		for _, e := range cubeEdges {
			if err := addEdge(s, methodCube, first+e[0], first+e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
