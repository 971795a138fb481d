// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewNodes); smaller lattices hold no cell.
//   • Nodes in row-major order, node (r,c) at (c·spacing, r·spacing, 0).
//   • For each (r,c) emit the Right edge, then the Bottom edge, if present.
//
// Complexity: O(rows·cols) nodes and edges.

package skeleton

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 2
)

// Grid returns a Constructor that builds a planar rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s *Skeleton, cfg config) error {
		// 1) Validate.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		// 2) Nodes, row-major.
		first := len(s.Nodes)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := [3]float64{float64(c) * cfg.spacing, float64(r) * cfg.spacing, 0}
				if _, err := cfg.addNode(s, methodGrid, r*cols+c, p); err != nil {
					return err
				}
			}
		}

		// 3) Right and Bottom neighbours.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := first + r*cols + c
				if c+1 < cols {
					if err := addEdge(s, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(s, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
