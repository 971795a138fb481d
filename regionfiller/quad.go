package regionfiller

import "math"

// planQuad handles four sides. The opposite pair with the larger count
// difference is (m, n) with m ≥ n; the other pair is (p, q) with p ≥ q.
// Sides are rotated so that m comes first: [M, B1, N, B2]. When B1 is the
// shorter of the second pair the layout below is mirrored, which swaps
// offsets measured from a side start for offsets measured from its end.
//
//   - m == n, p == q:  one Coons patch over the whole region.
//   - odd total:       virtual corners on M and P from the rounded balance,
//     then one clip; without room for them, clip the corner at the end of M
//     and retry once.
//   - m-n ≠ p-q:       virtual corner on M makes a pentagon.
//   - m-n == p-q:      virtual corners on M and P make a hexagon.
func (p *planner) planQuad(sides [][]int, allowClip bool) (plan, error) {
	d := segments(sides)
	if d[0] == d[2] && d[1] == d[3] {
		return plan{branch: BranchQuadDirect, sides: sides}, nil
	}

	// 1) Label the sides.
	mi := 0
	if abs(d[1]-d[3]) > abs(d[0]-d[2]) {
		mi = 1
	}
	if d[mi+2] > d[mi] {
		mi += 2
	}
	rot := rotate(sides, mi)
	rd := segments(rot)
	m, n := rd[0], rd[2]
	swapped := rd[1] < rd[3]
	pc, qc := rd[1], rd[3]
	if swapped {
		pc, qc = qc, pc
	}

	// 2) Odd total: half-integer balance.
	if total(d)%2 == 1 {
		if !allowClip {
			return plan{}, infeasible(BranchQuadNonInteger, d)
		}
		if pl, ok := p.quadNonInteger(rot, m, n, pc, qc, swapped); ok {
			return pl, nil
		}
		clipped, tri, ok := clip(rot, 0)
		if !ok {
			return plan{}, infeasible(BranchQuadNonInteger, d)
		}
		sub, err := p.planQuad(clipped, false)
		if err != nil {
			return plan{}, infeasible(BranchQuadNonInteger, d)
		}
		sub.branch = BranchQuadNonInteger
		sub.clips = append([][3]int{tri}, sub.clips...)

		return sub, nil
	}

	// 3) Even total.
	if m-n != pc-qc {
		return quadInteger(rot, m, n, pc, qc, swapped)
	}

	return quadSimilar(rot, m, n, pc, qc, swapped)
}

// quadInteger places one virtual corner on M at a = round((lo+hi)/2) with
//
//	lo = (m-n+p-q+2)/2,  hi = (m+n+p-q-2)/2
//
// which bounds the two rays that depend on a. The pentagon
// [M1(a), M2(m-a), P, N, Q] then has rays
//
//	r0 = (m-n+q-p)/2, r1 = (m-n+p-q)/2, r2 = (m+n+p-q-2a)/2,
//	r3 = (n+p+q-m)/2, r4 = (n-m+q-p+2a)/2.
func quadInteger(rot [][]int, m, n, pc, qc int, swapped bool) (plan, error) {
	fail := func() (plan, error) {
		return plan{}, infeasible(BranchQuadInteger, segments(rot))
	}

	lo := (m - n + pc - qc + 2) / 2
	hi := (m + n + pc - qc - 2) / 2
	if lo > hi {
		return fail()
	}
	a := int(math.Round(float64(lo+hi) / 2))

	off := a
	if swapped {
		off = m - a
	}
	if off < 1 || off > m-1 {
		return fail()
	}

	m1, m2 := split(rot[0], off)
	penta := [][]int{m1, m2, rot[1], rot[2], rot[3]}
	pd := segments(penta)
	r := oddRays(pd)
	if !raysValid(pd, r) {
		return fail()
	}

	return plan{branch: BranchQuadInteger, sides: penta, rays: r, swapped: swapped}, nil
}

// balance returns the real-valued virtual corner offsets a* on M and b* on
// P of the hexagon [M1(a), M2(m-a), P1(b), P2(p-b), N, Q], and their sum σ*.
// With σ = a+b and ω = a-b its rays are positive for
//
//	n < σ < m+p-q,  max(-n, m-p-q) < ω < min(n, m-p+q)
//
// and σ*, ω* are the midpoints of those intervals.
func balance(m, n, pc, qc int) (aStar, bStar, sigmaStar float64) {
	sigmaStar = float64(n+m+pc-qc) / 2
	omegaStar := float64(max(-n, m-pc-qc)+min(n, m-pc+qc)) / 2

	return (sigmaStar + omegaStar) / 2, (sigmaStar - omegaStar) / 2, sigmaStar
}

// nonIntegerOffsets rounds the balance of an odd-total quad. Both values are
// rounded up on their own; when that pushes a+b past ⌈σ*⌉, b is taken from
// a so that a+b == ⌈σ*⌉.
func nonIntegerOffsets(m, n, pc, qc int) (a, b int) {
	aStar, bStar, sigmaStar := balance(m, n, pc, qc)
	a = int(math.Ceil(aStar))
	b = int(math.Ceil(bStar))
	if sum := int(math.Ceil(sigmaStar)); a+b > sum {
		b = sum - a
	}

	return a, b
}

// hexagon splits M at a and P at b. The offsets are measured in the mirrored
// direction when swapped. It reports false when a split misses the interior
// of its side.
func hexagon(rot [][]int, m, pc, a, b int, swapped bool) ([][]int, bool) {
	offM, offP, pIdx := a, b, 1
	if swapped {
		offM, offP, pIdx = m-a, pc-b, 3
	}
	if offM < 1 || offM > m-1 || offP < 1 || offP > pc-1 {
		return nil, false
	}

	m1, m2 := split(rot[0], offM)
	p1, p2 := split(rot[pIdx], offP)
	if swapped {
		return [][]int{m1, m2, rot[1], rot[2], p1, p2}, true
	}

	return [][]int{m1, m2, p1, p2, rot[2], rot[3]}, true
}

// quadNonInteger places the two steering corners of an odd-total quad. The
// hexagon keeps the odd total, so exactly one of its interleaved sums is odd
// and the even solver clips one corner on that class.
func (p *planner) quadNonInteger(rot [][]int, m, n, pc, qc int, swapped bool) (plan, bool) {
	a, b := nonIntegerOffsets(m, n, pc, qc)
	hexa, ok := hexagon(rot, m, pc, a, b, swapped)
	if !ok {
		return plan{}, false
	}
	pl, err := p.planEven(hexa)
	if err != nil {
		return plan{}, false
	}
	pl.branch = BranchQuadNonInteger
	pl.swapped = swapped

	return pl, true
}

// quadSimilar handles m-n == p-q = δ, where the balance is σ* = n+δ. Both
// values are rounded up; when that breaks the parity σ ≡ n (mod 2), b moves
// to its lower neighbour, then its upper one.
func quadSimilar(rot [][]int, m, n, pc, qc int, swapped bool) (plan, error) {
	aStar, bStar, _ := balance(m, n, pc, qc)
	a := int(math.Ceil(aStar))
	b := int(math.Ceil(bStar))

	candidates := []int{b}
	if mod(a+b-n, 2) != 0 {
		candidates = []int{b - 1, b + 1}
	}

	for _, bb := range candidates {
		hexa, ok := hexagon(rot, m, pc, a, bb, swapped)
		if !ok {
			continue
		}
		hd := segments(hexa)
		if r := evenRays(hd); raysValid(hd, r) {
			return plan{branch: BranchQuadSimilar, sides: hexa, rays: r, swapped: swapped}, nil
		}
	}

	return plan{}, infeasible(BranchQuadSimilar, segments(rot))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
