// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// impl_ring.go — Ring(n) and the shared ring placement.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Nodes lie on a circle in the XY plane around the origin, node i at
//     angle 2πi/n, with circumradius chosen so each edge has the configured
//     spacing.
//   • Edges i → (i+1)%n in ascending i.

package skeleton

import (
	"fmt"
	"math"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that builds a closed loop of n nodes.
func Ring(n int) Constructor {
	return func(s *Skeleton, cfg config) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}

		first, err := addRing(s, cfg, methodRing, n, 0, 0)
		if err != nil {
			return err
		}

		return closeRing(s, methodRing, first, n)
	}
}

// ringRadius is the circumradius of a regular n-gon with the given side.
func ringRadius(n int, side float64) float64 {
	return side / (2 * math.Sin(math.Pi/float64(n)))
}

// addRing adds n ring nodes at height z; base is the index of the first one
// within the calling constructor. Returns the skeleton index of the first node.
func addRing(s *Skeleton, cfg config, method string, n, base int, z float64) (int, error) {
	r := ringRadius(n, cfg.spacing)
	first := -1
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		idx, err := cfg.addNode(s, method, base+i, [3]float64{r * math.Cos(a), r * math.Sin(a), z})
		if err != nil {
			return -1, err
		}
		if i == 0 {
			first = idx
		}
	}

	return first, nil
}

func closeRing(s *Skeleton, method string, first, n int) error {
	for i := 0; i < n; i++ {
		if err := addEdge(s, method, first+i, first+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}
