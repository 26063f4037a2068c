package boolean

import (
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/lycantropos/clipping/types"
)

// linearFragment is one kept piece of a linear reconstruction, before
// adjacent collinear fragments are merged.
type linearFragment struct {
	lo, hi segment.RatPoint
}

// reconstructLinear collects the sweep pieces selectLinear keeps, merges
// adjacent collinear runs into their longest constituent segments (so the
// output uses maximal segments, not artifacts of where the sweep happened
// to split them), and converts the result back to T.
func reconstructLinear[T types.SignedNumber](res *sweep.Result, op Operation) (polygon.Multisegment[T], error) {
	frags := keptLinearFragments(res, op)
	merged := mergeCollinear(frags)
	return fragmentsToMultisegment[T](merged)
}

// fragmentsToMultisegment converts merged RatPoint fragments back to T,
// shared by [reconstructLinear] and [CompleteIntersectSegments].
func fragmentsToMultisegment[T types.SignedNumber](merged []linearFragment) (polygon.Multisegment[T], error) {
	out := make(polygon.Multisegment[T], 0, len(merged))
	for _, f := range merged {
		p, err := pointFromRat[T](f.lo)
		if err != nil {
			return nil, err
		}
		q, err := pointFromRat[T](f.hi)
		if err != nil {
			return nil, err
		}
		s, err := segment.New(p, q)
		if err != nil {
			// f.lo and f.hi coincide; the sweep never emits zero-length
			// pieces, so this would mean a conversion collapsed two
			// distinct rationals onto the same T value. Drop the
			// degenerate piece rather than fail the whole operation.
			continue
		}
		out = append(out, s)
	}
	return out.Sorted(), nil
}

// keptLinearFragments collects the pre-merge sweep pieces selectLinear keeps
// for op, without running [mergeCollinear]. It is used both by [reconstructLinear]
// and by the 0D-residue computation in [CompleteIntersectSegments], which
// needs to know which vertices a kept piece actually touched before
// adjacent collinear runs were fused away.
func keptLinearFragments(res *sweep.Result, op Operation) []linearFragment {
	var frags []linearFragment
	for _, id := range res.Pieces {
		ev := res.Arena.Get(id)
		ev.InResult = selectLinear(op, ev)
		if !ev.InResult {
			continue
		}
		lo, hi := res.Arena.SegmentOf(id)
		frags = append(frags, linearFragment{lo: lo, hi: hi})
	}
	return frags
}

// ratKey renders a RatPoint as a comparable map key, since *big.Rat values
// cannot be used as map keys directly.
func ratKey(p segment.RatPoint) string {
	return p.X.RatString() + "," + p.Y.RatString()
}

// mergeCollinear repeatedly fuses pairs of fragments that meet at a
// degree-2 vertex and continue in a straight line, until no such pair
// remains. Each merge pass rebuilds the adjacency map from scratch; the
// fragment count strictly decreases every pass that performs a merge, so
// the loop terminates.
func mergeCollinear(frags []linearFragment) []linearFragment {
	for {
		byVertex := make(map[string][]int, len(frags)*2)
		for i, f := range frags {
			byVertex[ratKey(f.lo)] = append(byVertex[ratKey(f.lo)], i)
			byVertex[ratKey(f.hi)] = append(byVertex[ratKey(f.hi)], i)
		}

		merged := false
		removed := make(map[int]bool)
		var next []linearFragment

		for key, idxs := range byVertex {
			if len(idxs) != 2 || removed[idxs[0]] || removed[idxs[1]] {
				continue
			}
			i, j := idxs[0], idxs[1]
			fi, fj := frags[i], frags[j]

			shared, okI := sharedEndpoint(fi, key)
			_, okJ := sharedEndpoint(fj, key)
			if !okI || !okJ {
				continue
			}
			farI := other(fi, shared)
			farJ := other(fj, shared)
			if farI.Eq(farJ) {
				// A 2-cycle between the same two vertices: not mergeable.
				continue
			}
			if segment.OrientationRat(farI, shared, farJ) != types.PointsCollinear {
				continue
			}

			removed[i] = true
			removed[j] = true
			merged = true
			lo, hi := farI, farJ
			if hi.Compare(lo) < 0 {
				lo, hi = hi, lo
			}
			next = append(next, linearFragment{lo: lo, hi: hi})
		}

		if !merged {
			return frags
		}
		for i, f := range frags {
			if !removed[i] {
				next = append(next, f)
			}
		}
		frags = next
	}
}

func sharedEndpoint(f linearFragment, key string) (segment.RatPoint, bool) {
	if ratKey(f.lo) == key {
		return f.lo, true
	}
	if ratKey(f.hi) == key {
		return f.hi, true
	}
	return segment.RatPoint{}, false
}

func other(f linearFragment, p segment.RatPoint) segment.RatPoint {
	if p.Eq(f.lo) {
		return f.hi
	}
	return f.lo
}
