package boolean

import (
	"fmt"

	"github.com/lycantropos/clipping/numeric"
	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/lycantropos/clipping/types"
)

// segmentsToInputs converts one operand's segments into sweep.Input values,
// tagging every one with fromLeft.
func segmentsToInputs[T types.SignedNumber](segs []segment.Segment[T], fromLeft bool) []sweep.Input {
	inputs := make([]sweep.Input, len(segs))
	for i, s := range segs {
		inputs[i] = sweep.Input{
			Lo:       ratOf(s.Start()),
			Hi:       ratOf(s.End()),
			FromLeft: fromLeft,
		}
	}
	return inputs
}

func ratOf[T types.SignedNumber](p point.Point[T]) segment.RatPoint {
	return segment.RatPoint{X: numeric.ToRat(p.X()), Y: numeric.ToRat(p.Y())}
}

// pointFromRat converts a RatPoint produced by the sweep back to T,
// reporting ErrNotExact if T is an integer type that cannot hold it exactly
// (see numeric.FromRat).
func pointFromRat[T types.SignedNumber](p segment.RatPoint) (point.Point[T], error) {
	x, ok := numeric.FromRat[T](p.X)
	if !ok {
		return point.Point[T]{}, fmt.Errorf("%w: x=%s", ErrNotExact, p.X.RatString())
	}
	y, ok := numeric.FromRat[T](p.Y)
	if !ok {
		return point.Point[T]{}, fmt.Errorf("%w: y=%s", ErrNotExact, p.Y.RatString())
	}
	return point.New(x, y), nil
}
