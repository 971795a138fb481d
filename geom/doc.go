// Package geom collects the handful of 3D vector helpers shared by the
// skinmesh pipeline.
//
// Vectors are gonum's r3.Vec values; this package only adds the operations
// the mesh stages need on top of r3 (zero-safe normalization, interpolation,
// turn angles, corner areas and polygon normals).
//
// Every helper is pure, allocation-free and safe for concurrent use.
package geom
