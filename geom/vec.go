package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is the position/direction type used across the module.
type Vec = r3.Vec

// epsilon below which a vector length is treated as zero.
const epsilon = 1e-12

// V builds a Vec from its components.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Unit returns v scaled to unit length, or the zero vector when v has no
// measurable length (r3.Unit would return NaNs).
func Unit(v Vec) Vec {
	n := r3.Norm(v)
	if n < epsilon {
		return Vec{}
	}

	return r3.Scale(1/n, v)
}

// IsZero reports whether v has no measurable length.
func IsZero(v Vec) bool {
	return r3.Norm(v) < epsilon
}

// Lerp interpolates linearly from a (t=0) to b (t=1).
func Lerp(a, b Vec, t float64) Vec {
	return r3.Add(r3.Scale(1-t, a), r3.Scale(t, b))
}

// Distance returns |a-b|.
func Distance(a, b Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// DegreesBetween returns the angle between a and b in degrees, in [0,180].
// Zero-length inputs yield 0.
func DegreesBetween(a, b Vec) float64 {
	ua, ub := Unit(a), Unit(b)
	if IsZero(ua) || IsZero(ub) {
		return 0
	}
	c := r3.Dot(ua, ub)
	// clamp rounding noise outside [-1,1]
	c = math.Max(-1, math.Min(1, c))

	return math.Acos(c) * 180 / math.Pi
}

// TurnDegrees returns how far the direction changes at cur when walking
// prev → cur → next.
func TurnDegrees(prev, cur, next Vec) float64 {
	return DegreesBetween(r3.Sub(cur, prev), r3.Sub(next, cur))
}

// TriangleArea returns the area of triangle abc.
func TriangleArea(a, b, c Vec) float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// CornerNormal returns the unit normal at cur of the corner prev → cur → next,
// oriented so that a counter-clockwise walk seen from +Z yields +Z.
func CornerNormal(prev, cur, next Vec) Vec {
	return Unit(r3.Cross(r3.Sub(next, cur), r3.Sub(prev, cur)))
}

// PolygonNormal sums the per-corner cross products of the closed polygon and
// normalizes the result. Degenerate polygons yield the zero vector.
func PolygonNormal(points []Vec) Vec {
	n := len(points)
	var sum Vec
	for i := 0; i < n; i++ {
		h := (i + n - 1) % n
		j := (i + 1) % n
		sum = r3.Add(sum, r3.Cross(r3.Sub(points[j], points[i]), r3.Sub(points[h], points[i])))
	}

	return Unit(sum)
}
