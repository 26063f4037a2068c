package boolean

import (
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/lycantropos/clipping/types"
)

// pointTouch tracks, for one distinct sweep coordinate, whether a
// non-redundant piece from each operand passes through it.
type pointTouch struct {
	point     segment.RatPoint
	fromLeft  bool
	fromRight bool
}

// completeIntersectResidualPoints finds the 0D residue of a complete
// intersection: points where the two operands make contact (an endpoint of
// one operand coincides with, or lands on, a piece of the other) without
// that contact being explained by the 1D (overlap) part.
//
// explainedFrags carries the endpoints of every fragment the caller's 1D
// (and, for the areal case, 2D) reconstructed output already accounts for;
// a degenerate fragment with lo == hi marks a single explained point (see
// [explainedAsFragments]). A point touch at one of these vertices is not
// reported again as a 0D residue.
func completeIntersectResidualPoints[T types.SignedNumber](res *sweep.Result, explainedFrags []linearFragment) (polygon.MultiPoint[T], error) {
	explained := make(map[string]bool, len(explainedFrags)*2)
	for _, f := range explainedFrags {
		explained[ratKey(f.lo)] = true
		explained[ratKey(f.hi)] = true
	}

	touches := make(map[string]*pointTouch)
	for i := 0; i < res.Arena.Len(); i++ {
		ev := res.Arena.Get(sweep.EventID(i))
		if ev.Redundant {
			continue
		}
		key := ratKey(ev.Point)
		t, ok := touches[key]
		if !ok {
			t = &pointTouch{point: ev.Point}
			touches[key] = t
		}
		inA, inB := presence(ev)
		t.fromLeft = t.fromLeft || inA
		t.fromRight = t.fromRight || inB
	}

	var out polygon.MultiPoint[T]
	for key, t := range touches {
		if !t.fromLeft || !t.fromRight || explained[key] {
			continue
		}
		p, err := pointFromRat[T](t.point)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out.Sorted(), nil
}
