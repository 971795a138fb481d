package regionfiller

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinmesh/geom"
)

// coons fills the balanced four-chain loop c0 → c1 → c2 → c3 with an
// m×n quad grid, where m = len(c0)-1 = len(c2)-1 and n = len(c1)-1 = len(c3)-1.
//
// The grid P(i,j), 0 ≤ i ≤ m, 0 ≤ j ≤ n, takes its border from the chains:
//
//	P(i,0) = c0[i]   P(m,j) = c1[j]   P(i,n) = c2[m-i]   P(0,j) = c3[n-j]
//
// and its interior from the discrete Coons blend Lc + Ld − B, applied to
// position and radius alike. Quads follow the loop winding.
func (f *Filler) coons(c0, c1, c2, c3 []int) {
	m, n := len(c0)-1, len(c1)-1

	// 1) Border.
	grid := make([][]int, m+1)
	for i := range grid {
		grid[i] = make([]int, n+1)
		for j := range grid[i] {
			grid[i][j] = -1
		}
	}
	for i := 0; i <= m; i++ {
		grid[i][0] = c0[i]
		grid[i][n] = c2[m-i]
	}
	for j := 0; j <= n; j++ {
		grid[m][j] = c1[j]
		grid[0][j] = c3[n-j]
	}

	border := f.nonSynthetic(c0, c1, c2, c3)

	// 2) Interior.
	at := func(i, j int) Node { return f.vertices[grid[i][j]] }
	p00, pm0, p0n, pmn := at(0, 0), at(m, 0), at(0, n), at(m, n)
	for i := 1; i < m; i++ {
		u := float64(i) / float64(m)
		bottom, top := at(i, 0), at(i, n)
		for j := 1; j < n; j++ {
			v := float64(j) / float64(n)
			left, right := at(0, j), at(m, j)

			lc := blend2(bottom, top, v)
			ld := blend2(left, right, u)
			b := blend4(p00, pm0, p0n, pmn, u, v)

			pos := r3.Sub(r3.Add(lc.Position, ld.Position), b.Position)
			node := Node{
				Position: pos,
				Radius:   max(0, lc.Radius+ld.Radius-b.Radius),
				Source:   f.nearestSource(pos, border),
			}
			grid[i][j] = f.appendVertex(node)
		}
	}

	// 3) Faces.
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			f.faces = append(f.faces, []int{grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1]})
		}
	}
	f.report.SubRegions++
}

// blend2 interpolates position and radius from a (t=0) to b (t=1).
func blend2(a, b Node, t float64) Node {
	return Node{
		Position: geom.Lerp(a.Position, b.Position, t),
		Radius:   (1-t)*a.Radius + t*b.Radius,
	}
}

// blend4 is the bilinear corner blend.
func blend4(p00, p10, p01, p11 Node, u, v float64) Node {
	w00 := (1 - u) * (1 - v)
	w10 := u * (1 - v)
	w01 := (1 - u) * v
	w11 := u * v

	pos := r3.Add(
		r3.Add(r3.Scale(w00, p00.Position), r3.Scale(w10, p10.Position)),
		r3.Add(r3.Scale(w01, p01.Position), r3.Scale(w11, p11.Position)),
	)

	return Node{
		Position: pos,
		Radius:   w00*p00.Radius + w10*p10.Radius + w01*p01.Radius + w11*p11.Radius,
	}
}

// nonSynthetic collects the chain vertices that are not fan centers.
func (f *Filler) nonSynthetic(chains ...[]int) []int {
	var out []int
	for _, c := range chains {
		for _, idx := range c {
			if !f.synthetic[idx] {
				out = append(out, idx)
			}
		}
	}

	return out
}

// nearestSource returns the source of the candidate closest to pos. Ties
// keep the earlier candidate.
func (f *Filler) nearestSource(pos geom.Vec, candidates []int) int {
	best, bestDist := -1, 0.0
	for _, idx := range candidates {
		d := r3.Norm2(r3.Sub(f.vertices[idx].Position, pos))
		if best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		return -1
	}

	return f.vertices[best].Source
}
