package regionfiller

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/skinmesh/geom"
)

// plan is an index-only description of a fill. Nothing is written to the
// vertex buffer until a complete plan exists, so a failed attempt leaves no
// trace.
type plan struct {
	branch  Branch
	clips   [][3]int // corner triangles, in boundary winding
	sides   [][]int  // sides of the region that remains after clipping
	rays    []int    // fan ray counts; nil means one Coons patch over 4 sides
	swapped bool
}

// planner chooses a plan for a region. It only reads vertex positions.
type planner struct {
	verts []Node
}

// segments returns the segment count per side.
func segments(sides [][]int) []int {
	d := make([]int, len(sides))
	for i, s := range sides {
		d[i] = len(s) - 1
	}

	return d
}

func total(d []int) int {
	sum := 0
	for _, v := range d {
		sum += v
	}

	return sum
}

// rotate returns sides starting at side first.
func rotate(sides [][]int, first int) [][]int {
	k := len(sides)
	out := make([][]int, k)
	for i := range out {
		out[i] = sides[(first+i)%k]
	}

	return out
}

// split cuts side at offset into two sides sharing side[offset].
func split(side []int, offset int) ([]int, []int) {
	return side[:offset+1], side[offset:]
}

// plan selects the construction by side count.
func (p *planner) plan(sides [][]int) (plan, error) {
	k := len(sides)
	switch {
	case k == 4:
		return p.planQuad(sides, true)
	case k == 3:
		if pl, err := p.planOdd(sides); err == nil {
			return pl, nil
		}

		return p.planThreeSided(sides)
	case k%2 == 1:
		return p.planOdd(sides)
	default:
		return p.planEven(sides)
	}
}

// turnAt returns the turn angle at the corner closing side s.
func (p *planner) turnAt(sides [][]int, s int) float64 {
	cur := sides[s]
	next := sides[(s+1)%len(sides)]

	return geom.TurnDegrees(
		p.verts[cur[len(cur)-2]].Position,
		p.verts[cur[len(cur)-1]].Position,
		p.verts[next[1]].Position,
	)
}

// cornersBySharpness lists the corners accepted by keep, sharpest turn
// first; equal turns keep the lower index first.
func (p *planner) cornersBySharpness(sides [][]int, keep func(s int) bool) []int {
	return p.cornersByTurn(sides, keep, true)
}

// cornersByFlatness lists all corners, smallest turn first.
func (p *planner) cornersByFlatness(sides [][]int) []int {
	return p.cornersByTurn(sides, func(int) bool { return true }, false)
}

func (p *planner) cornersByTurn(sides [][]int, keep func(s int) bool, sharpFirst bool) []int {
	idx := make([]int, 0, len(sides))
	turn := make([]float64, len(sides))
	for s := range sides {
		if !keep(s) {
			continue
		}
		idx = append(idx, s)
		turn[s] = p.turnAt(sides, s)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if sharpFirst {
			return turn[idx[a]] > turn[idx[b]]
		}

		return turn[idx[a]] < turn[idx[b]]
	})

	return idx
}

// clip cuts the triangle at the corner closing side s. Side s loses its last
// segment and side s+1 starts from the new corner instead. Requires at least
// two segments on side s.
func clip(sides [][]int, s int) ([][]int, [3]int, bool) {
	k := len(sides)
	cur := sides[s]
	nextIdx := (s + 1) % k
	next := sides[nextIdx]
	if len(cur) < 3 || len(next) < 2 {
		return nil, [3]int{}, false
	}

	a := cur[len(cur)-2]
	v := cur[len(cur)-1]
	b := next[1]

	out := make([][]int, k)
	copy(out, sides)
	out[s] = cur[:len(cur)-1]
	replaced := make([]int, 0, len(next))
	replaced = append(replaced, a)
	replaced = append(replaced, next[1:]...)
	out[nextIdx] = replaced

	return out, [3]int{a, v, b}, true
}

// merge joins the first two sides into one.
func merge(sides [][]int) [][]int {
	joined := make([]int, 0, len(sides[0])+len(sides[1])-1)
	joined = append(joined, sides[0]...)
	joined = append(joined, sides[1][1:]...)

	out := make([][]int, 0, len(sides)-1)
	out = append(out, joined)

	return append(out, sides[2:]...)
}

func infeasible(branch Branch, d []int) error {
	return fmt.Errorf("%w: %s with side counts %v", ErrInfeasibleFill, branch, d)
}

// planOdd builds a fan over an odd number of sides. An odd segment total is
// first made even by clipping one corner, sharpest first.
func (p *planner) planOdd(sides [][]int) (plan, error) {
	d := segments(sides)
	if total(d)%2 == 0 {
		r := oddRays(d)
		if !raysValid(d, r) {
			return plan{}, infeasible(BranchOddEvenSum, d)
		}

		return plan{branch: BranchOddEvenSum, sides: sides, rays: r}, nil
	}

	for _, s := range p.cornersBySharpness(sides, func(s int) bool { return d[s] >= 2 }) {
		clipped, tri, ok := clip(sides, s)
		if !ok {
			continue
		}
		cd := segments(clipped)
		if r := oddRays(cd); raysValid(cd, r) {
			return plan{branch: BranchOddOddSum, clips: [][3]int{tri}, sides: clipped, rays: r}, nil
		}
	}

	return plan{}, infeasible(BranchOddOddSum, d)
}

// planEven builds a fan over an even number (> 4) of sides, keyed on the
// parities of l1 = Σ d[even] and l2 = Σ d[odd].
func (p *planner) planEven(sides [][]int) (plan, error) {
	d := segments(sides)
	var l1, l2 int
	for i, v := range d {
		if i%2 == 0 {
			l1 += v
		} else {
			l2 += v
		}
	}

	switch {
	case l1%2 == 0 && l2%2 == 0:
		r := evenRays(d)
		if !raysValid(d, r) {
			return plan{}, infeasible(BranchEvenBothEven, d)
		}

		return plan{branch: BranchEvenBothEven, sides: sides, rays: r}, nil

	case l1%2 == 1 && l2%2 == 1:
		// Merge the two sides of the flattest corner; k-1 sides with an
		// even total go to the odd solver.
		for _, c := range p.cornersByFlatness(sides) {
			merged := merge(rotate(sides, c))
			md := segments(merged)
			if r := oddRays(md); raysValid(md, r) {
				return plan{branch: BranchEvenBothOdd, sides: merged, rays: r}, nil
			}
		}

		return plan{}, infeasible(BranchEvenBothOdd, d)

	default:
		// Shorten a side of the odd-summed class by one segment.
		branch, parity := BranchEvenEvenOdd, 1
		if l1%2 == 1 {
			branch, parity = BranchEvenOddEven, 0
		}
		keep := func(s int) bool { return s%2 == parity && d[s] >= 2 }
		for _, s := range p.cornersBySharpness(sides, keep) {
			clipped, tri, ok := clip(sides, s)
			if !ok {
				continue
			}
			cd := segments(clipped)
			if r := evenRays(cd); raysValid(cd, r) {
				return plan{branch: branch, clips: [][3]int{tri}, sides: clipped, rays: r}, nil
			}
		}

		return plan{}, infeasible(branch, d)
	}
}

// planThreeSided handles triangles the fan cannot balance. L is the longest
// side (first on ties), X and Y follow it. The quad [L1, L2, X, Y] made by a
// virtual corner on L is balanced when l == x+y. A total one off that needs
// exactly one triangle, since a quad fill of the rest has an even boundary.
//
//   - l == x+y:   the virtual corner sits at L[x].
//   - l == x+y-1: the apex triangle between X and Y is clipped first, then
//     the corner sits at L[x-1].
//   - l == x+y+1: the triangle at the end of L is clipped first, then the
//     corner sits at L[x].
func (p *planner) planThreeSided(sides [][]int) (plan, error) {
	d := segments(sides)
	longest := 0
	for i := 1; i < 3; i++ {
		if d[i] > d[longest] {
			longest = i
		}
	}
	rot := rotate(sides, longest)
	l, x, y := d[longest], d[(longest+1)%3], d[(longest+2)%3]

	switch {
	case l == x+y:
		l1, l2 := split(rot[0], x)

		return plan{branch: BranchThreeSided, sides: [][]int{l1, l2, rot[1], rot[2]}}, nil

	case l == x+y-1 && x >= 2:
		clipped, tri, ok := clip(rot, 1)
		if !ok {
			break
		}
		l1, l2 := split(clipped[0], x-1)

		return plan{
			branch: BranchThreeSided,
			clips:  [][3]int{tri},
			sides:  [][]int{l1, l2, clipped[1], clipped[2]},
		}, nil

	case l == x+y+1:
		clipped, tri, ok := clip(rot, 0)
		if !ok {
			break
		}
		l1, l2 := split(clipped[0], x)

		return plan{
			branch: BranchThreeSided,
			clips:  [][3]int{tri},
			sides:  [][]int{l1, l2, clipped[1], clipped[2]},
		}, nil
	}

	return plan{}, infeasible(BranchThreeSided, d)
}
