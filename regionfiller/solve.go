package regionfiller

// A fan over k sides with ray counts r is balanced when every side i splits
// into r[i-1] and r[i+1] segments:
//
//	d[i] = r[i-1] + r[i+1]   (indices mod k)
//
// The solvers below return r for a given d, or nil when the system has no
// integer solution. Positivity is checked separately by raysValid.

// oddRays solves the balance system for an odd side count:
//
//	2·r[j] = Σ_{m=0}^{k-1} (-1)^m · d[(j-1-2m) mod k]
func oddRays(d []int) []int {
	k := len(d)
	r := make([]int, k)
	for j := 0; j < k; j++ {
		sum := 0
		for m := 0; m < k; m++ {
			v := d[mod(j-1-2*m, k)]
			if m%2 == 1 {
				v = -v
			}
			sum += v
		}
		if sum%2 != 0 {
			return nil
		}
		r[j] = sum / 2
	}

	return r
}

// evenRays solves the balance system for an even side count. It splits into
// two independent cyclic systems: the odd sides fix the even rays
// (d[2t+1] = r[2t] + r[2t+2]) and the even sides fix the odd rays
// (d[2t] = r[2t-1] + r[2t+1]).
func evenRays(d []int) []int {
	k := len(d)
	h := k / 2
	oddSides := make([]int, h)
	evenSides := make([]int, h)
	for t := 0; t < h; t++ {
		oddSides[t] = d[2*t+1]
		evenSides[t] = d[2*t]
	}

	x := pairSolve(oddSides)  // x[t] = r[2t]
	y := pairSolve(evenSides) // y[t] = r[2t-1]
	if x == nil || y == nil {
		return nil
	}

	r := make([]int, k)
	for t := 0; t < h; t++ {
		r[2*t] = x[t]
		r[mod(2*t-1, k)] = y[t]
	}

	return r
}

// pairSolve solves x[t] + x[t+1] = e[t] (indices mod h).
//
// Odd h has the unique solution 2·x[t] = Σ_{j=0}^{h-1} (-1)^j · e[t+j].
// Even h is singular: it is solvable only when the alternating sum of e
// vanishes, and then x[t] = c[t] ± f for a free integer f, chosen to
// maximize min(x) (ties: the smaller f).
func pairSolve(e []int) []int {
	h := len(e)
	if h == 0 {
		return nil
	}

	if h%2 == 1 {
		x := make([]int, h)
		for t := 0; t < h; t++ {
			sum := 0
			for j := 0; j < h; j++ {
				v := e[(t+j)%h]
				if j%2 == 1 {
					v = -v
				}
				sum += v
			}
			if sum%2 != 0 {
				return nil
			}
			x[t] = sum / 2
		}

		return x
	}

	alt := 0
	for t, v := range e {
		if t%2 == 1 {
			v = -v
		}
		alt += v
	}
	if alt != 0 {
		return nil
	}

	// particular solution with x[0] = 0
	c := make([]int, h)
	for t := 0; t+1 < h; t++ {
		c[t+1] = e[t] - c[t]
	}
	minEven, minOdd := c[0], c[1]
	for t := 2; t < h; t++ {
		if t%2 == 0 {
			minEven = min(minEven, c[t])
		} else {
			minOdd = min(minOdd, c[t])
		}
	}

	// min(minEven+f, minOdd-f) peaks around f = (minOdd-minEven)/2.
	f := floorDiv(minOdd-minEven, 2)
	floorMin := min(minEven+f, minOdd-f)
	ceilMin := min(minEven+f+1, minOdd-f-1)
	if ceilMin > floorMin {
		f++
	}

	x := make([]int, h)
	for t := range c {
		if t%2 == 0 {
			x[t] = c[t] + f
		} else {
			x[t] = c[t] - f
		}
	}

	return x
}

// raysValid reports whether r is a positive solution of the balance system for d.
func raysValid(d, r []int) bool {
	k := len(d)
	if r == nil || len(r) != k {
		return false
	}
	for _, v := range r {
		if v < 1 {
			return false
		}
	}
	for i := 0; i < k; i++ {
		if d[i] != r[mod(i-1, k)]+r[mod(i+1, k)] {
			return false
		}
	}

	return true
}

// mod returns a mod n in [0, n).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}

	return a
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}

	return q
}
