package sweep

import (
	"sort"

	"github.com/lycantropos/clipping/segment"
)

// BruteForce finds every pairwise crossing among inputs by the naive
// O(n^2) method: compare each pair of segments directly via
// [segment.IntersectRat]. It exists only as a test oracle for [Run].
//
// The result is every distinct point any two input segments share: a single
// crossing point, a touching endpoint, or either endpoint of a collinear
// overlap. It does not label operand membership or reconstruct fragments;
// callers only use it to check that [Run] found the same crossing positions.
func BruteForce(inputs []Input) []segment.RatPoint {
	seen := make(map[string]segment.RatPoint)
	add := func(p segment.RatPoint) {
		seen[p.X.RatString()+","+p.Y.RatString()] = p
	}

	for i := 0; i < len(inputs); i++ {
		for j := i + 1; j < len(inputs); j++ {
			res := segment.IntersectRat(inputs[i].Lo, inputs[i].Hi, inputs[j].Lo, inputs[j].Hi)
			switch res.Relation {
			case segment.PointIntersection:
				add(res.Point)
			case segment.OverlapIntersection:
				add(res.OverlapStart)
				add(res.OverlapEnd)
			}
		}
	}

	out := make([]segment.RatPoint, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
