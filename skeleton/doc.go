// Package skeleton describes the input of the mesh builder: an undirected
// graph of points with radii. It also generates common test skeletons and
// reads and writes them as YAML.
//
// Generators follow one pattern. Build resolves the options once and runs
// each Constructor in order against a fresh Skeleton:
//
//	s, err := skeleton.Build(
//		[]skeleton.Option{skeleton.WithSpacing(0.5), skeleton.WithRadius(0.05)},
//		skeleton.Grid(3, 3),
//	)
//
// Available constructors:
//
//   - Ring(n): a closed loop of n nodes on a circle.
//   - Grid(rows, cols): a planar lattice of unit cells.
//   - Tube(n, rings): stacked rings joined by rungs, a capped cylinder.
//   - Cube(): the twelve-edge wireframe of a cube.
//
// Several constructors in one Build produce disconnected components; the
// origin option applies to all of them.
//
// Guarantees:
//
//   - Deterministic: equal options and constructor order give equal output.
//   - Constructors never panic; they return errors wrapping the package
//     sentinels (ErrTooFewNodes, ErrBadRadius, ...). Option constructors panic
//     on meaningless values.
//   - Decode validates; a decoded Skeleton is always safe to ApplyTo a
//     gridmesh.Builder.
package skeleton
