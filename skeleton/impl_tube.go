// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// impl_tube.go — Tube(n, rings) constructor.
//
// Contract:
//   • n ≥ 3 and rings ≥ 2 (else ErrTooFewNodes).
//   • Ring k is a Ring(n) placed at z = k·spacing; node i of ring k has
//     index k·n + i.
//   • Per ring: its loop edges, then the rungs to the previous ring.
//
// Complexity: O(n·rings) nodes and edges.

package skeleton

import "fmt"

const (
	methodTube   = "Tube"
	minTubeRings = 2
)

// Tube returns a Constructor that builds a capped cylinder of stacked rings.
func Tube(n, rings int) Constructor {
	return func(s *Skeleton, cfg config) error {
		if n < minRingNodes || rings < minTubeRings {
			return fmt.Errorf("%s: n=%d (min %d), rings=%d (min %d): %w",
				methodTube, n, minRingNodes, rings, minTubeRings, ErrTooFewNodes)
		}

		prev := -1
		for k := 0; k < rings; k++ {
			first, err := addRing(s, cfg, methodTube, n, k*n, float64(k)*cfg.spacing)
			if err != nil {
				return err
			}
			if err := closeRing(s, methodTube, first, n); err != nil {
				return err
			}
			if prev >= 0 {
				for i := 0; i < n; i++ {
					if err := addEdge(s, methodTube, prev+i, first+i); err != nil {
						return err
					}
				}
			}
			prev = first
		}

		return nil
	}
}
