package gridmesh

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinmesh/geom"
	"github.com/katalvlaran/skinmesh/regionfiller"
)

// extrude offsets the single-sheet mesh by ±radius along the vertex normals
// and closes it into a shell.
//
// Sheet A is p + n·r and sheet B is p − n·r. The sheet whose open edges are
// longer in total is the outer one (A on a tie) and takes indices [0,N); the
// other takes [N,2N). A faces keep their winding and B faces are reversed, so
// both face away from the other sheet. Every open half-edge a→b gets the
// quad A(b) A(a) B(a) B(b), which closes the shell.
func (b *Builder) extrude(verts []regionfiller.Node, normals []geom.Vec, faces []face) {
	n := len(verts)

	// 1) Sheets.
	sheetA := make([]geom.Vec, n)
	sheetB := make([]geom.Vec, n)
	for i, v := range verts {
		off := r3.Scale(v.Radius, normals[i])
		sheetA[i] = r3.Add(v.Position, off)
		sheetB[i] = r3.Sub(v.Position, off)
	}

	// 2) Open half-edges, in face order.
	used := make(map[halfEdge]struct{}, 4*len(faces))
	for _, f := range faces {
		k := len(f.nodes)
		for i := 0; i < k; i++ {
			used[halfEdge{from: f.nodes[i], to: f.nodes[(i+1)%k]}] = struct{}{}
		}
	}
	var open []halfEdge
	var lenA, lenB float64
	for _, f := range faces {
		k := len(f.nodes)
		for i := 0; i < k; i++ {
			he := halfEdge{from: f.nodes[i], to: f.nodes[(i+1)%k]}
			if _, ok := used[halfEdge{from: he.to, to: he.from}]; ok {
				continue
			}
			open = append(open, he)
			lenA += geom.Distance(sheetA[he.from], sheetA[he.to])
			lenB += geom.Distance(sheetB[he.from], sheetB[he.to])
		}
	}
	b.stats.OpenEdges = len(open)

	// 3) Index maps.
	outerIsA := lenA >= lenB
	idxA := func(v int) int { return v }
	idxB := func(v int) int { return v + n }
	outer, inner := sheetA, sheetB
	if !outerIsA {
		idxA = func(v int) int { return v + n }
		idxB = func(v int) int { return v }
		outer, inner = sheetB, sheetA
	}

	b.vertices = make([]Vertex, 0, 2*n)
	for i, p := range outer {
		b.vertices = append(b.vertices, Vertex{Position: p, Source: verts[i].Source})
	}
	for i, p := range inner {
		b.vertices = append(b.vertices, Vertex{Position: p, Source: verts[i].Source})
	}

	// 4) Faces: outer sheet, inner sheet, stitches.
	onA := make([][]int, 0, len(faces))
	onB := make([][]int, 0, len(faces))
	for _, f := range faces {
		fa := make([]int, len(f.nodes))
		for i, v := range f.nodes {
			fa[i] = idxA(v)
		}
		onA = append(onA, fa)

		rev := reverseFace(f.nodes)
		fb := make([]int, len(rev))
		for i, v := range rev {
			fb[i] = idxB(v)
		}
		onB = append(onB, fb)
	}

	b.faces = make([][]int, 0, 2*len(faces)+len(open))
	if outerIsA {
		b.faces = append(b.faces, onA...)
		b.faces = append(b.faces, onB...)
	} else {
		b.faces = append(b.faces, onB...)
		b.faces = append(b.faces, onA...)
	}
	for _, he := range open {
		b.faces = append(b.faces, []int{idxA(he.to), idxA(he.from), idxB(he.from), idxB(he.to)})
	}
}

// compact keeps the vertices referenced by faces, in buffer order, and
// renumbers the faces to match. Normals follow their vertices.
func compact(verts []regionfiller.Node, normals []geom.Vec, faces []face) ([]regionfiller.Node, []geom.Vec, []face) {
	remap := make([]int, len(verts))
	for i := range remap {
		remap[i] = -1
	}
	for _, f := range faces {
		for _, v := range f.nodes {
			remap[v] = 0
		}
	}

	keptVerts := make([]regionfiller.Node, 0, len(verts))
	keptNormals := make([]geom.Vec, 0, len(verts))
	for i, v := range verts {
		if remap[i] < 0 {
			continue
		}
		remap[i] = len(keptVerts)
		keptVerts = append(keptVerts, v)
		keptNormals = append(keptNormals, normals[i])
	}

	out := make([]face, len(faces))
	for fi, f := range faces {
		nodes := make([]int, len(f.nodes))
		for i, v := range f.nodes {
			nodes[i] = remap[v]
		}
		out[fi] = face{nodes: nodes, cycle: f.cycle}
	}

	return keptVerts, keptNormals, out
}
