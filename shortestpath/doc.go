// Package shortestpath computes single-pair shortest paths with Dijkstra's
// algorithm over an index-addressed, undirected, integer-weighted graph.
//
// Overview:
//
//   - Nodes are the integers [0, nodeCount). Edges are unordered index pairs,
//     each with a matching non-negative int64 weight.
//   - Callers that measure real distances pre-scale them (for example
//     ×10000) so precision survives the integer arithmetic.
//   - The returned path runs from stop back to start (stop → … → start).
//     Callers reconstructing a start → stop walk must reverse it. The cycle
//     discovery in package cyclefinder depends on this orientation.
//
// When to use:
//
//   - Any "remove one edge, find the detour" style query where the graph is
//     rebuilt per call and string-keyed graph containers would only add
//     overhead.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E) for adjacency, distances, predecessors and heap entries.
//
// Determinism:
//
//   - Among equal-distance heap entries the lower node index is expanded
//     first, and adjacency lists keep the caller's edge order, so identical
//     inputs always yield identical paths.
//
// Errors (sentinel):
//
//   - ErrNodeOutOfRange:      start, stop or an edge endpoint is outside [0, nodeCount).
//   - ErrWeightCountMismatch: len(weights) != len(edges).
//   - ErrNegativeWeight:      an edge weight is negative.
//   - ErrNoPath:              start and stop are disconnected.
//
// Example usage:
//
//	path, err := shortestpath.ShortestPath(4, edges, weights, 0, 3)
//	if errors.Is(err, shortestpath.ErrNoPath) {
//	    // disconnected
//	}
//	// path[0] == 3, path[len(path)-1] == 0
package shortestpath
