// Package cyclefinder discovers the face cycles of a skeleton graph with the
// "remove one edge, find the detour" heuristic.
//
// Overview:
//
//   - Every undirected edge is considered once per direction. For a directed
//     half-edge u→v the undirected edge u—v is removed and package
//     shortestpath finds the cheapest detour from u to v. Detour plus the
//     removed edge is a candidate cycle that runs through u→v.
//   - A cycle claims its directed half-edges. A half-edge can belong to at
//     most one cycle, so every undirected edge ends up bounding at most two
//     faces, one per direction. This is the manifold bookkeeping the mesh
//     builder relies on.
//   - After a cycle is accepted, the weights of its edges are raised by a
//     reuse penalty and the opposite half-edges are queued, so the next
//     searches prefer edges no face has consumed yet.
//
// Validation of a candidate (any failure rejects it, logged at debug level):
//
//  1. One of its half-edges is already claimed by an accepted cycle.
//  2. Its edges whose opposite half-edges belong to one accepted cycle C add
//     up to more than OppositeOverlapRatio × C's length. This rejects the
//     mirror image of an existing face.
//  3. It is not reasonably flat: the normals at its corners (turns of at
//     least FlatnessCornerDegrees) swing on average by more than
//     FlatnessThreshold, measured as squared distance between consecutive
//     unit normals.
//
// Lengths are carried as integers: each edge weight is round(length×10000),
// at least 1.
//
// Determinism:
//
//   - The queue is seeded with edge 0. When it drains, the lowest-index edge
//     never tried in either direction seeds the next round, so disconnected
//     skeleton components are covered in a fixed order.
//   - Ties in the shortest-path search go to the lower node index.
//
// Complexity:
//
//   - Time:  O(E · (V + E) log V), one search per directed half-edge.
//   - Space: O(V + E)
//
// Find never returns an error: empty or acyclic input yields an empty list.
package cyclefinder
