// Package gridmesh builds a closed quad-dominant shell around a skeleton
// graph of points with radii.
//
// The Builder collects skeleton nodes and edges and runs a one-shot pipeline:
//
//  1. Optional subdivision of long edges (SetSubdived).
//  2. Cycle discovery with cyclefinder. No cycle fails the build with
//     ErrNoCycles.
//  3. Every cycle is split into sides at its corners (turn ≥ CornerDegrees)
//     and meshed by regionfiller. Cycles with fewer than three corners stay a
//     single polygon, and fills that are infeasible fall back to one.
//  4. Candidate faces are oriented breadth-first so that every directed
//     half-edge is used once; true conflicts are dropped and logged.
//  5. Face and vertex normals.
//  6. Faces bordering too many foreign faces are pruned (MaxBigRingSize,
//     doubled when subdividing).
//  7. Vertices on no remaining face, such as nodes of dangling branches, are
//     dropped and the rest renumbered in buffer order.
//  8. Extrusion by ±radius along the vertex normals into an outer and an
//     inner sheet, stitched along open edges.
//
// Output:
//
//   - Vertices: 2N entries for the N vertices the faces use, outer sheet in
//     [0,N) and inner in [N,2N), both in the order of the single-sheet mesh.
//     Each carries the index of the skeleton node it was derived from.
//   - Faces: outer faces, inner faces, then stitching quads.
//
// Build is deterministic: two builds of the same input produce identical
// output. Builders share no state and are not safe for concurrent use.
package gridmesh
