package boolean

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/lycantropos/clipping/types"
)

func polygonSegments[T types.SignedNumber](m polygon.Multipolygon[T]) []segment.Segment[T] {
	var segs []segment.Segment[T]
	for _, p := range m {
		segs = append(segs, p.Shell.Segments()...)
		for _, h := range p.Holes {
			segs = append(segs, h.Segments()...)
		}
	}
	return segs
}

func runAreal[T types.SignedNumber](a, b polygon.Multipolygon[T], opts options.EngineOptions) (*sweep.Result, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: operand a: %s", ErrInvalidInput, err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: operand b: %s", ErrInvalidInput, err)
	}
	inputs := make([]sweep.Input, 0)
	inputs = append(inputs, segmentsToInputs(polygonSegments(a), true)...)
	inputs = append(inputs, segmentsToInputs(polygonSegments(b), false)...)
	return sweep.Run(sweep.ModeAreal, inputs, opts), nil
}

// IntersectPolygons returns the areal intersection of two multipolygons.
func IntersectPolygons[T types.SignedNumber](a, b polygon.Multipolygon[T], opts options.EngineOptions) (polygon.Multipolygon[T], error) {
	res, err := runAreal(a, b, opts)
	if err != nil {
		return nil, err
	}
	return reconstructAreal[T](res, Intersection)
}

// UnitePolygons returns the union of two multipolygons.
func UnitePolygons[T types.SignedNumber](a, b polygon.Multipolygon[T], opts options.EngineOptions) (polygon.Multipolygon[T], error) {
	res, err := runAreal(a, b, opts)
	if err != nil {
		return nil, err
	}
	return reconstructAreal[T](res, Union)
}

// SubtractPolygons returns the difference a minus b of two multipolygons.
func SubtractPolygons[T types.SignedNumber](a, b polygon.Multipolygon[T], opts options.EngineOptions) (polygon.Multipolygon[T], error) {
	res, err := runAreal(a, b, opts)
	if err != nil {
		return nil, err
	}
	return reconstructAreal[T](res, Difference)
}

// SymmetricSubtractPolygons returns the symmetric difference of two
// multipolygons.
func SymmetricSubtractPolygons[T types.SignedNumber](a, b polygon.Multipolygon[T], opts options.EngineOptions) (polygon.Multipolygon[T], error) {
	res, err := runAreal(a, b, opts)
	if err != nil {
		return nil, err
	}
	return reconstructAreal[T](res, SymmetricDifference)
}

// CompleteIntersectPolygons returns all-dimensional overlap between two
// multipolygons as a triple (points, segments, polygons) of 0D, 1D, and 2D
// contact.
//
// The 2D part is exactly [IntersectPolygons]'s result. The 1D part is the
// set of boundary edges the operands share exactly but that do not bound
// any 2D overlap: a coincident edge where the two operands' interiors lie
// on opposite sides of it, as with two triangles tiling a square and
// sharing only their common diagonal. The 0D part is any remaining point
// contact neither the 1D nor 2D part already accounts for.
func CompleteIntersectPolygons[T types.SignedNumber](a, b polygon.Multipolygon[T], opts options.EngineOptions) (polygon.MultiPoint[T], polygon.Multisegment[T], polygon.Multipolygon[T], error) {
	res, err := runAreal(a, b, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	twoD, err := reconstructAreal[T](res, Intersection)
	if err != nil {
		return nil, nil, nil, err
	}

	oneDFrags := collectDifferentTransitionFragments(res)
	oneD, err := fragmentsToMultisegment[T](mergeCollinear(oneDFrags))
	if err != nil {
		return nil, nil, nil, err
	}

	explained := make(map[string]bool, len(oneDFrags)*2)
	for _, f := range oneDFrags {
		explained[ratKey(f.lo)] = true
		explained[ratKey(f.hi)] = true
	}
	for _, p := range twoD {
		for _, v := range p.Shell {
			explained[ratKey(ratOf(v))] = true
		}
		for _, h := range p.Holes {
			for _, v := range h {
				explained[ratKey(ratOf(v))] = true
			}
		}
	}

	zeroD, err := completeIntersectResidualPoints[T](res, explainedAsFragments(explained))
	if err != nil {
		return nil, nil, nil, err
	}

	return zeroD, oneD, twoD, nil
}

// collectDifferentTransitionFragments gathers the overlap pieces shared by
// both operands whose interiors face opposite sides of the shared edge,
// the 1D residue [CompleteIntersectPolygons] reports.
func collectDifferentTransitionFragments(res *sweep.Result) []linearFragment {
	var frags []linearFragment
	for _, id := range res.Pieces {
		ev := res.Arena.Get(id)
		if ev.Redundant || !ev.Overlap {
			continue
		}
		bothOperands := ev.OverlapFromLeft != ev.FromLeft
		if !bothOperands || ev.InOut == ev.OtherInOut {
			continue
		}
		lo, hi := res.Arena.SegmentOf(id)
		frags = append(frags, linearFragment{lo: lo, hi: hi})
	}
	return frags
}

// explainedAsFragments adapts a set of already-accounted-for point keys
// into the degenerate single-point "fragment" shape
// [completeIntersectResidualPoints] expects to exclude, reusing that
// helper's linear-reconstruction logic for the areal case too.
func explainedAsFragments(explained map[string]bool) []linearFragment {
	frags := make([]linearFragment, 0, len(explained))
	for key := range explained {
		pt := keyToRatPoint(key)
		frags = append(frags, linearFragment{lo: pt, hi: pt})
	}
	return frags
}

// keyToRatPoint parses a [ratKey]-formatted string back into a RatPoint.
// ratKey joins the two coordinates' [math/big.Rat.RatString] forms (each
// containing no comma of its own) with a single separating comma, so a
// single split recovers both exactly.
func keyToRatPoint(key string) segment.RatPoint {
	comma := strings.IndexByte(key, ',')
	x, _ := new(big.Rat).SetString(key[:comma])
	y, _ := new(big.Rat).SetString(key[comma+1:])
	return segment.RatPoint{X: x, Y: y}
}
