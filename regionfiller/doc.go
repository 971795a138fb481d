// Package regionfiller fills an N-sided closed region with a quad mesh built
// from discrete Coons patches.
//
// A region is a loop of k ≥ 3 polylines (sides). Polyline i ends where
// polyline i+1 starts, and the last one closes back onto the first. Side i
// has d[i] segments.
//
// Overview:
//
// With four sides and equal opposite counts the region is one Coons patch.
// Everything else becomes a fan: a center vertex C, a split point on every
// side and a ray from C to each split point. The sub-region around each
// corner is bounded by two rays and two half-sides, and it is a balanced quad
// iff the ray segment counts r satisfy
//
//	d[i] = r[i-1] + r[i+1]
//
// The closed forms for r depend on parity:
//
//   - k odd, Σd even: direct solve.
//   - k odd, Σd odd: one corner triangle is clipped first (sharpest turn
//     first, first feasible wins).
//   - k even > 4: two interleaved cyclic systems. Both sums even: direct.
//     Both odd: the sides of the flattest corner are merged and the odd
//     solver takes over. Mixed: one corner on the odd-summed class is clipped.
//   - k = 4, unbalanced, even total: one virtual corner turns the quad into
//     a pentagon, or two turn it into a hexagon when both opposite pairs
//     differ by the same amount.
//   - k = 4, odd total: the balancing offsets on the long side and on the
//     longer of the other pair are half-integers. Both are rounded up, the
//     second is pulled back when their sum overshoots, and the resulting
//     hexagon is clipped once. Without room for the corners the corner
//     closing the long side is clipped and the quad planned again.
//   - k = 3 the fan cannot balance: the longest side gets a virtual corner.
//     A total one off gets one triangle first, at the apex or at the end of
//     the longest side.
//
// Any derived count below one makes the fill infeasible (ErrInfeasibleFill).
// Callers then fall back to FillWithoutPartition, which emits the boundary as
// a single polygon.
//
// Vertex bookkeeping:
//
//   - Input vertices keep their index and value; new vertices are appended.
//   - Generated positions and radii come from the Coons blend Lc + Ld − B.
//     A generated vertex takes the Source of the nearest boundary vertex of
//     its patch, ignoring fan centers. Ray vertices take the Source of the
//     side vertex they end on.
//   - All faces follow the winding of the input loop.
//
// A failed Fill leaves the Filler holding the input unchanged and no faces.
package regionfiller
