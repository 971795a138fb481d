// SPDX-License-Identifier: MIT
// Package: skinmesh/skeleton
//
// errors.go — sentinel errors for the skeleton package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Constructors and file decoding never panic; option constructors do.

package skeleton

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("skeleton: parameter too small")

// ErrNodeOutOfRange indicates an edge endpoint that names no node.
var ErrNodeOutOfRange = errors.New("skeleton: node index out of range")

// ErrSelfLoop indicates an edge from a node to itself.
var ErrSelfLoop = errors.New("skeleton: self-loop edge")

// ErrBadRadius indicates a negative or non-finite node radius.
var ErrBadRadius = errors.New("skeleton: invalid radius")

// ErrNilConstructor indicates a nil Constructor passed to Build.
var ErrNilConstructor = errors.New("skeleton: nil constructor")

// ErrDecode indicates a skeleton file that could not be parsed.
var ErrDecode = errors.New("skeleton: decode failed")
