package gridmesh

import "go.uber.org/zap"

// prune drops faces that border more than limit distinct faces of other
// cycles across their edges. Such faces appear where many cycles meet and
// the filler had no better answer than one large ring. All faces are judged
// against the same half-edge map before any is removed.
func (b *Builder) prune(faces []face, limit int) []face {
	owner := make(map[halfEdge]int, 4*len(faces))
	for fi, f := range faces {
		n := len(f.nodes)
		for i := 0; i < n; i++ {
			owner[halfEdge{from: f.nodes[i], to: f.nodes[(i+1)%n]}] = fi
		}
	}

	out := make([]face, 0, len(faces))
	for fi, f := range faces {
		ring := make(map[int]struct{})
		n := len(f.nodes)
		for i := 0; i < n; i++ {
			opp, ok := owner[halfEdge{from: f.nodes[(i+1)%n], to: f.nodes[i]}]
			if ok && faces[opp].cycle != f.cycle {
				ring[opp] = struct{}{}
			}
		}
		if len(ring) > limit {
			b.stats.Pruned++
			b.options.Logger.Info("big ring pruned",
				zap.Int("face", fi),
				zap.Int("cycle", f.cycle),
				zap.Int("ring", len(ring)),
				zap.Int("limit", limit),
			)
			continue
		}
		out = append(out, f)
	}

	return out
}
