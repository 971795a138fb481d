// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// io.go — YAML encoding of skeletons.
//
// File format:
//
//	nodes:
//	  - {position: [0, 0, 0], radius: 0.1}
//	edges:
//	  - [0, 1]
//
// Unknown keys are rejected. Decoded skeletons are validated.

package skeleton

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skinmesh/geom"
)

type fileNode struct {
	Position [3]float64 `yaml:"position,flow"`
	Radius   float64    `yaml:"radius"`
}

// MarshalYAML writes the node on one line.
func (n fileNode) MarshalYAML() (interface{}, error) {
	type plain fileNode
	var node yaml.Node
	if err := node.Encode(plain(n)); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle

	return &node, nil
}

type fileEdge [2]int

// MarshalYAML writes the edge as [i, j].
func (e fileEdge) MarshalYAML() (interface{}, error) {
	var node yaml.Node
	if err := node.Encode([2]int(e)); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle

	return &node, nil
}

type file struct {
	Nodes []fileNode `yaml:"nodes"`
	Edges []fileEdge `yaml:"edges"`
}

// Decode reads one YAML skeleton from r.
func Decode(r io.Reader) (*Skeleton, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	s := &Skeleton{
		Nodes: make([]Node, len(f.Nodes)),
		Edges: make([]Edge, len(f.Edges)),
	}
	for i, n := range f.Nodes {
		s.Nodes[i] = Node{Position: geom.V(n.Position[0], n.Position[1], n.Position[2]), Radius: n.Radius}
	}
	for i, e := range f.Edges {
		s.Edges[i] = Edge(e)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Encode writes s to w in the skeleton file format.
func (s *Skeleton) Encode(w io.Writer) error {
	f := file{
		Nodes: make([]fileNode, len(s.Nodes)),
		Edges: make([]fileEdge, len(s.Edges)),
	}
	for i, n := range s.Nodes {
		f.Nodes[i] = fileNode{Position: [3]float64{n.Position.X, n.Position.Y, n.Position.Z}, Radius: n.Radius}
	}
	for i, e := range s.Edges {
		f.Edges[i] = fileEdge(e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("skeleton: encode: %w", err)
	}

	return enc.Close()
}

// Load reads a skeleton file.
func Load(path string) (*Skeleton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("skeleton: read %s: %w", path, err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Save writes s to path, replacing any existing file.
func (s *Skeleton) Save(path string) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("skeleton: write %s: %w", path, err)
	}

	return nil
}
