package regionfiller

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinmesh/geom"
)

// fan builds the balanced fan described by sides and rays.
//
// Side i is split at x[i] = rays[i-1]. Ray i runs from the center C to the
// split point S[i] = sides[i][x[i]] in rays[i] segments. The sub-region at
// the corner closing side i is the loop
//
//	C → S[i] (ray i), S[i] → V[i] (side i), V[i] → S[i+1] (side i+1), S[i+1] → C
//
// with rays[i] × rays[i+1] quads.
func (f *Filler) fan(sides [][]int, rays []int) {
	k := len(sides)

	// 1) Center.
	center := f.appendVertex(f.center(sides))
	f.synthetic[center] = true

	// 2) Rays, each created once and shared by its two sub-regions.
	offset := make([]int, k)
	rayChain := make([][]int, k)
	for i := 0; i < k; i++ {
		offset[i] = rays[mod(i-1, k)]
		end := sides[i][offset[i]]
		rayChain[i] = f.interpolate(center, end, rays[i])
	}

	// 3) One Coons patch per corner.
	for i := 0; i < k; i++ {
		j := (i + 1) % k
		f.coons(
			rayChain[i],
			sides[i][offset[i]:],
			sides[j][:offset[j]+1],
			reversed(rayChain[j]),
		)
	}
}

// interpolate returns the chain from vertex a to vertex b in segs segments,
// appending the segs-1 interior vertices. They take the source of b.
func (f *Filler) interpolate(a, b, segs int) []int {
	chain := make([]int, 0, segs+1)
	chain = append(chain, a)
	va, vb := f.vertices[a], f.vertices[b]
	for s := 1; s < segs; s++ {
		t := float64(s) / float64(segs)
		n := blend2(va, vb, t)
		n.Source = vb.Source
		chain = append(chain, f.appendVertex(n))
	}

	return append(chain, b)
}

// center blends the corner vertices of sides. Corner i weighs
// 1/(A[i] + Ā), where A[i] is the area of the triangle it forms with its
// neighbouring corners and Ā the mean of those areas.
func (f *Filler) center(sides [][]int) Node {
	k := len(sides)
	corners := make([]Node, k)
	for i, s := range sides {
		corners[i] = f.vertices[s[0]]
	}

	areas := make([]float64, k)
	var mean float64
	for i := range corners {
		areas[i] = geom.TriangleArea(
			corners[mod(i-1, k)].Position,
			corners[i].Position,
			corners[(i+1)%k].Position,
		)
		mean += areas[i]
	}
	mean /= float64(k)

	var (
		pos    geom.Vec
		radius float64
		wsum   float64
	)
	for i, c := range corners {
		w := 1.0
		if den := areas[i] + mean; den > 0 {
			w = 1 / den
		}
		pos = r3.Add(pos, r3.Scale(w, c.Position))
		radius += w * c.Radius
		wsum += w
	}
	pos = r3.Scale(1/wsum, pos)

	var boundary []int
	for _, s := range sides {
		boundary = append(boundary, s[:len(s)-1]...)
	}

	return Node{
		Position: pos,
		Radius:   radius / wsum,
		Source:   f.nearestSource(pos, boundary),
	}
}

func reversed(chain []int) []int {
	out := make([]int, len(chain))
	for i, v := range chain {
		out[len(chain)-1-i] = v
	}

	return out
}
