package gridmesh

import "go.uber.org/zap"

// reconcile orients candidate faces so that no directed half-edge is used
// twice.
//
// Faces are visited breadth-first across shared edges, starting from face 0
// and re-seeding from the lowest unvisited face. A face whose half-edges
// collide with claimed ones is reversed; if it still collides, it is a true
// conflict and is dropped. Kept faces are returned in candidate order.
func (b *Builder) reconcile(cands []face) []face {
	// 1) Undirected edge → faces using it, in face order.
	byEdge := make(map[edgeKey][]int)
	for fi, f := range cands {
		n := len(f.nodes)
		for i := 0; i < n; i++ {
			k := keyOf(f.nodes[i], f.nodes[(i+1)%n])
			byEdge[k] = append(byEdge[k], fi)
		}
	}

	claimed := make(map[halfEdge]int)
	visited := make([]bool, len(cands))
	kept := make([]bool, len(cands))
	queue := make([]int, 0, len(cands))

	// 2) Breadth-first over every component.
	for seed := range cands {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue = append(queue[:0], seed)

		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]

			f := &cands[fi]
			if collides(claimed, f.nodes) {
				f.nodes = reverseFace(f.nodes)
				if collides(claimed, f.nodes) {
					b.stats.Conflicts++
					b.options.Logger.Warn("face conflict",
						zap.Int("face", fi),
						zap.Int("cycle", f.cycle),
						zap.Ints("nodes", f.nodes),
					)
					continue
				}
			}

			n := len(f.nodes)
			for i := 0; i < n; i++ {
				claimed[halfEdge{from: f.nodes[i], to: f.nodes[(i+1)%n]}] = fi
			}
			kept[fi] = true

			for i := 0; i < n; i++ {
				for _, nb := range byEdge[keyOf(f.nodes[i], f.nodes[(i+1)%n])] {
					if !visited[nb] {
						visited[nb] = true
						queue = append(queue, nb)
					}
				}
			}
		}
	}

	out := make([]face, 0, len(cands))
	for fi, f := range cands {
		if kept[fi] {
			out = append(out, f)
		}
	}

	return out
}

func collides(claimed map[halfEdge]int, nodes []int) bool {
	n := len(nodes)
	for i := 0; i < n; i++ {
		if _, ok := claimed[halfEdge{from: nodes[i], to: nodes[(i+1)%n]}]; ok {
			return true
		}
	}

	return false
}

// reverseFace flips the winding, keeping the first vertex in place.
func reverseFace(nodes []int) []int {
	n := len(nodes)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	out[0] = nodes[0]
	for i := 1; i < n; i++ {
		out[i] = nodes[n-i]
	}

	return out
}
