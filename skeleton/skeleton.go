// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// skeleton.go — the Skeleton value type and its validation.
//
// Contract:
//   • Nodes are addressed by their index in Nodes; edges are index pairs.
//   • AddNode/AddEdge validate eagerly and never leave a partial entry.
//   • Validate re-checks a Skeleton assembled by hand or decoded from a file.

package skeleton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/gridmesh"
)

// Node is one skeleton point: the center of a sphere of the given radius.
type Node struct {
	Position geom.Vec
	Radius   float64
}

// Edge connects two nodes by index.
type Edge [2]int

// Skeleton is an undirected graph of nodes with radii.
type Skeleton struct {
	Nodes []Node
	Edges []Edge
}

// AddNode appends a node and returns its index.
func (s *Skeleton) AddNode(pos geom.Vec, radius float64) (int, error) {
	if err := checkRadius(len(s.Nodes), radius); err != nil {
		return -1, err
	}
	s.Nodes = append(s.Nodes, Node{Position: pos, Radius: radius})

	return len(s.Nodes) - 1, nil
}

// AddEdge connects nodes i and j.
func (s *Skeleton) AddEdge(i, j int) error {
	if err := s.checkEdge(len(s.Edges), Edge{i, j}); err != nil {
		return err
	}
	s.Edges = append(s.Edges, Edge{i, j})

	return nil
}

// Validate checks every radius and edge.
func (s *Skeleton) Validate() error {
	for i, n := range s.Nodes {
		if err := checkRadius(i, n.Radius); err != nil {
			return err
		}
	}
	for i, e := range s.Edges {
		if err := s.checkEdge(i, e); err != nil {
			return err
		}
	}

	return nil
}

// Bounds returns the axis-aligned box around all node centers. An empty
// skeleton yields two zero vectors.
func (s *Skeleton) Bounds() (lo, hi geom.Vec) {
	if len(s.Nodes) == 0 {
		return lo, hi
	}
	lo, hi = s.Nodes[0].Position, s.Nodes[0].Position
	for _, n := range s.Nodes[1:] {
		p := n.Position
		lo = geom.V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = geom.V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}

	return lo, hi
}

// ApplyTo feeds the skeleton into a mesh builder. Node i of s becomes the
// builder's node offset+i, where offset is the builder's node count before
// the call.
func (s *Skeleton) ApplyTo(b *gridmesh.Builder) error {
	if err := s.Validate(); err != nil {
		return err
	}
	offset := -1
	for i, n := range s.Nodes {
		idx := b.AddNode(n.Position, n.Radius)
		if i == 0 {
			offset = idx
		}
	}
	for i, e := range s.Edges {
		if _, err := b.AddEdge(offset+e[0], offset+e[1]); err != nil {
			return fmt.Errorf("ApplyTo: edge %d: %w", i, err)
		}
	}

	return nil
}

func checkRadius(i int, r float64) error {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("node %d: radius %v: %w", i, r, ErrBadRadius)
	}

	return nil
}

func (s *Skeleton) checkEdge(i int, e Edge) error {
	n := len(s.Nodes)
	if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
		return fmt.Errorf("edge %d (%d-%d) with %d nodes: %w", i, e[0], e[1], n, ErrNodeOutOfRange)
	}
	if e[0] == e[1] {
		return fmt.Errorf("edge %d at node %d: %w", i, e[0], ErrSelfLoop)
	}

	return nil
}
