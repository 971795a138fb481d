// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// options.go — functional options for the skeleton constructors.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves return errors and never panic.
//   • No hidden globals; everything flows through config.
//   • Later options override earlier ones.

package skeleton

import (
	"math"

	"github.com/katalvlaran/skinmesh/geom"
)

// Option customizes the shared constructor configuration.
type Option func(*config)

// config holds the knobs read by every constructor.
type config struct {
	spacing  float64                          // edge length of generated lattices
	origin   geom.Vec                         // position of the first generated node
	radiusFn func(i int, pos geom.Vec) float64 // radius of the i-th generated node
}

// Deterministic defaults.
const (
	DefaultSpacing = 1.0
	DefaultRadius  = 0.1
)

func newConfig(opts ...Option) config {
	cfg := config{
		spacing:  DefaultSpacing,
		radiusFn: constRadius(DefaultRadius),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func constRadius(r float64) func(int, geom.Vec) float64 {
	return func(int, geom.Vec) float64 { return r }
}

// WithSpacing sets the edge length of generated skeletons. Panics on s ≤ 0.
func WithSpacing(s float64) Option {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic("skeleton: WithSpacing requires a positive finite length")
	}

	return func(c *config) { c.spacing = s }
}

// WithOrigin translates generated skeletons so they start at o.
func WithOrigin(o geom.Vec) Option {
	return func(c *config) { c.origin = o }
}

// WithRadius gives every generated node radius r. Panics on r < 0.
func WithRadius(r float64) Option {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic("skeleton: WithRadius requires a non-negative finite radius")
	}

	return func(c *config) { c.radiusFn = constRadius(r) }
}

// WithRadiusFn computes each node radius from its index within the
// constructor and its position. Panics on nil.
func WithRadiusFn(fn func(i int, pos geom.Vec) float64) Option {
	if fn == nil {
		panic("skeleton: WithRadiusFn(nil)")
	}

	return func(c *config) { c.radiusFn = fn }
}
