package boolean

import (
	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/sweep"
	"github.com/lycantropos/clipping/types"
)

func runLinear[T types.SignedNumber](a, b polygon.Multisegment[T], opts options.EngineOptions) *sweep.Result {
	inputs := make([]sweep.Input, 0, len(a)+len(b))
	inputs = append(inputs, segmentsToInputs(a, true)...)
	inputs = append(inputs, segmentsToInputs(b, false)...)
	return sweep.Run(sweep.ModeLinear, inputs, opts)
}

// IntersectSegments returns the pieces present in both multisegment
// operands.
func IntersectSegments[T types.SignedNumber](a, b polygon.Multisegment[T], opts options.EngineOptions) (polygon.Multisegment[T], error) {
	return reconstructLinear[T](runLinear(a, b, opts), Intersection)
}

// UniteSegments returns the union of two multisegments.
func UniteSegments[T types.SignedNumber](a, b polygon.Multisegment[T], opts options.EngineOptions) (polygon.Multisegment[T], error) {
	return reconstructLinear[T](runLinear(a, b, opts), Union)
}

// SubtractSegments returns the pieces of a not present in b.
func SubtractSegments[T types.SignedNumber](a, b polygon.Multisegment[T], opts options.EngineOptions) (polygon.Multisegment[T], error) {
	return reconstructLinear[T](runLinear(a, b, opts), Difference)
}

// SymmetricSubtractSegments returns the pieces present in exactly one of
// the two multisegment operands.
func SymmetricSubtractSegments[T types.SignedNumber](a, b polygon.Multisegment[T], opts options.EngineOptions) (polygon.Multisegment[T], error) {
	return reconstructLinear[T](runLinear(a, b, opts), SymmetricDifference)
}

// CompleteIntersectSegments returns the same 1D result as
// [IntersectSegments], plus the 0D residue of point contacts the 1D part
// does not already explain.
//
// When a and b denote the same set of segments the 1D part is that set and
// the 0D part is empty: every piece is then an overlap of a segment of a
// with its copy in b, present in both operands, so the kept pieces'
// endpoints explain every cross-operand point contact.
func CompleteIntersectSegments[T types.SignedNumber](a, b polygon.Multisegment[T], opts options.EngineOptions) (polygon.MultiPoint[T], polygon.Multisegment[T], error) {
	res := runLinear(a, b, opts)

	frags := keptLinearFragments(res, Intersection)
	merged := mergeCollinear(frags)
	oneD, err := fragmentsToMultisegment[T](merged)
	if err != nil {
		return nil, nil, err
	}

	zeroD, err := completeIntersectResidualPoints[T](res, frags)
	if err != nil {
		return nil, nil, err
	}

	return zeroD, oneD, nil
}
