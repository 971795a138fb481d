package regionfiller

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOddRays(t *testing.T) {
	assert.Equal(t, []int{1, 1, 1}, oddRays([]int{2, 2, 2}))
	// triangle: 2·r0 = d1 + d2 - d0
	assert.Equal(t, []int{2, 1, 3}, oddRays([]int{4, 5, 3}))
	assert.Nil(t, oddRays([]int{2, 2, 1}))
}

func TestEvenRays(t *testing.T) {
	d := []int{4, 2, 2, 2, 4, 2}
	r := evenRays(d)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 3}, r)
	assert.True(t, raysValid(d, r))

	// odd class sum is odd: no integer solution
	assert.Nil(t, evenRays([]int{2, 1, 2, 2, 2, 2}))
}

func TestPairSolve_Singular(t *testing.T) {
	// x0+x1=2, x1+x2=4, x2+x3=4, x3+x0=2: alternating sum vanishes
	x := pairSolve([]int{2, 4, 4, 2})
	assert.Equal(t, []int{1, 1, 3, 1}, x)

	// alternating sum 2 - 4 + 4 - 4 ≠ 0
	assert.Nil(t, pairSolve([]int{2, 4, 4, 4}))
}

func TestRaysValid(t *testing.T) {
	assert.True(t, raysValid([]int{2, 2, 2}, []int{1, 1, 1}))
	assert.False(t, raysValid([]int{2, 2, 2}, []int{2, 0, 2}))
	assert.False(t, raysValid([]int{2, 2, 2}, nil))
	assert.False(t, raysValid([]int{3, 2, 2}, []int{1, 1, 1}))
}

func TestClip(t *testing.T) {
	sides := [][]int{{0, 1, 2}, {2, 3}, {3, 4, 0}}

	out, tri, ok := clip(sides, 0)
	assert.True(t, ok)
	assert.Equal(t, [3]int{1, 2, 3}, tri)
	assert.Equal(t, [][]int{{0, 1}, {1, 3}, {3, 4, 0}}, out)
	// input untouched
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3}, {3, 4, 0}}, sides)

	_, _, ok = clip(sides, 1)
	assert.False(t, ok)
}

func TestMergeAndRotate(t *testing.T) {
	sides := [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 0}, {0, 1}}, rotate(sides, 1))
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3}, {3, 0}}, merge(sides))
}

func TestBalance(t *testing.T) {
	// similar quad m=6 n=4 p=4 q=2: σ* = n+δ = 6
	a, b, sigma := balance(6, 4, 4, 2)
	assert.Equal(t, 4.0, a)
	assert.Equal(t, 2.0, b)
	assert.Equal(t, 6.0, sigma)

	a, b, sigma = balance(5, 2, 5, 3)
	assert.Equal(t, 2.25, a)
	assert.Equal(t, 2.25, b)
	assert.Equal(t, 4.5, sigma)
}

func TestNonIntegerOffsets(t *testing.T) {
	tests := []struct {
		name       string
		m, n, p, q int
		a, b       int
	}{
		// ⌈2.25⌉ + ⌈2.25⌉ = 6 overshoots ⌈4.5⌉ = 5; b is taken from a
		{"both round up", 5, 2, 5, 3, 3, 2},
		{"both round up, larger", 7, 2, 7, 3, 4, 3},
		// a* = 3 is whole; only b* = 1.5 rounds
		{"one rounds up", 5, 3, 3, 2, 3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := nonIntegerOffsets(tc.m, tc.n, tc.p, tc.q)
			assert.Equal(t, tc.a, a)
			assert.Equal(t, tc.b, b)

			_, _, sigma := balance(tc.m, tc.n, tc.p, tc.q)
			assert.Equal(t, int(math.Ceil(sigma)), a+b)
		})
	}
}

func TestHexagon(t *testing.T) {
	rot := [][]int{{0, 1, 2, 3}, {3, 4, 5}, {5, 6}, {6, 7, 0}}

	hexa, ok := hexagon(rot, 3, 2, 1, 1, false)
	assert.True(t, ok)
	assert.Equal(t, [][]int{{0, 1}, {1, 2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7, 0}}, hexa)

	// mirrored: offsets count from the other end, P is the last side
	hexa, ok = hexagon(rot, 3, 2, 1, 1, true)
	assert.True(t, ok)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3}, {3, 4, 5}, {5, 6}, {6, 7}, {7, 0}}, hexa)

	_, ok = hexagon(rot, 3, 2, 3, 1, false)
	assert.False(t, ok)
}
