// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// api.go — the Build orchestrator and the Constructor type.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Resolves the config once and
//     runs the constructors in order against one Skeleton.
//   • Constructors append; node indices they emit are offset by the nodes
//     already present, so several constructors compose into disconnected
//     components.
//   • Determinism: same options and constructor order ⇒ identical skeletons.

package skeleton

import "fmt"

// Constructor appends a topology to s using the resolved configuration.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(s *Skeleton, cfg config) error

// Build creates an empty Skeleton and applies cons in order. The first
// constructor error is wrapped with "Build: %w" and returned; the partial
// skeleton is discarded.
func Build(opts []Option, cons ...Constructor) (*Skeleton, error) {
	cfg := newConfig(opts...)
	s := &Skeleton{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return s, nil
}

// addNode places a generated node at origin+p with the configured radius.
// i is the node's index within its constructor.
func (c config) addNode(s *Skeleton, method string, i int, p [3]float64) (int, error) {
	pos := c.origin
	pos.X += p[0]
	pos.Y += p[1]
	pos.Z += p[2]
	idx, err := s.AddNode(pos, c.radiusFn(i, pos))
	if err != nil {
		return -1, fmt.Errorf("%s: %w", method, err)
	}

	return idx, nil
}

func addEdge(s *Skeleton, method string, i, j int) error {
	if err := s.AddEdge(i, j); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
