package shortestpath

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath finds a minimum-weight path between start and stop in the
// undirected graph with nodeCount nodes, the given edges and their weights.
//
// Returns:
//
//   - path: node indices ordered stop → … → start (both ends included).
//     start == stop yields the single-node path []int{start}.
//   - err:  ErrNoPath when stop is unreachable, or a validation sentinel.
//
// Preconditions and validation (in order):
//  1. len(weights) == len(edges) (ErrWeightCountMismatch).
//  2. start and stop in [0, nodeCount) (ErrNodeOutOfRange).
//  3. Every edge endpoint in range (ErrNodeOutOfRange).
//  4. No negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(nodeCount int, edges []Edge, weights []int64, start, stop int, opts ...Option) ([]int, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the inputs before allocating anything.
	if len(weights) != len(edges) {
		return nil, fmt.Errorf("%w: %d edges, %d weights", ErrWeightCountMismatch, len(edges), len(weights))
	}
	if start < 0 || start >= nodeCount || stop < 0 || stop >= nodeCount {
		return nil, fmt.Errorf("%w: start=%d stop=%d nodeCount=%d", ErrNodeOutOfRange, start, stop, nodeCount)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= nodeCount || e.V < 0 || e.V >= nodeCount {
			return nil, fmt.Errorf("%w: edge %d (%d-%d)", ErrNodeOutOfRange, i, e.U, e.V)
		}
		if weights[i] < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d-%d) weight=%d", ErrNegativeWeight, i, e.U, e.V, weights[i])
		}
	}

	// 3) Trivial query.
	if start == stop {
		return []int{start}, nil
	}

	// 4) Run the search.
	r := newRunner(nodeCount, edges, weights, cfg)
	r.init(start)
	r.process(stop)

	if r.dist[stop] == math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, start, stop)
	}

	// 5) Walk predecessors from stop back to start; this is the returned order.
	path := make([]int, 0, 8)
	for v := stop; v != start; v = r.prev[v] {
		path = append(path, v)
	}
	path = append(path, start)

	return path, nil
}

// arc is one direction of an undirected edge in the adjacency list.
type arc struct {
	to     int
	weight int64
}

// runner holds the mutable state for a single search.
type runner struct {
	adj     [][]arc // node → outgoing arcs, in edge order
	dist    []int64 // best-known distance from start
	prev    []int   // predecessor on the best-known path, -1 if none
	visited []bool  // distance finalized
	pq      nodePQ  // lazy min-heap
}

// newRunner builds the adjacency from the edge list. Impassable edges are
// dropped here so relax never sees them.
func newRunner(nodeCount int, edges []Edge, weights []int64, cfg Options) *runner {
	adj := make([][]arc, nodeCount)
	for i, e := range edges {
		w := weights[i]
		if w >= cfg.InfEdgeThreshold {
			continue
		}
		adj[e.U] = append(adj[e.U], arc{to: e.V, weight: w})
		if e.U != e.V {
			adj[e.V] = append(adj[e.V], arc{to: e.U, weight: w})
		}
	}

	return &runner{
		adj:     adj,
		dist:    make([]int64, nodeCount),
		prev:    make([]int, nodeCount),
		visited: make([]bool, nodeCount),
		pq:      make(nodePQ, 0, nodeCount),
	}
}

// init sets every distance to +∞ and pushes start with distance 0.
func (r *runner) init(start int) {
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
		r.prev[v] = -1
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})
}

// process pops vertices in distance order until the heap is empty or stop
// is finalized.
func (r *runner) process(stop int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// stop's distance is final; nothing left to learn.
		if u == stop {
			return
		}
		r.relax(u)
	}
}

// relax improves the distance of every neighbour of u reachable through a
// strictly shorter path.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.adj[u] {
		if r.visited[a.to] {
			continue
		}
		// guard against overflow on pathological weights
		if a.weight > math.MaxInt64-du {
			continue
		}
		nd := du + a.weight
		if nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.prev[a.to] = u
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: nd})
	}
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances expand the lower index first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a *nodeItem) to the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
