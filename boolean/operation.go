package boolean

import "github.com/lycantropos/clipping/sweep"

// Operation identifies one of the public Boolean operations.
type Operation uint8

const (
	Intersection Operation = iota
	Union
	Difference
	SymmetricDifference
)

// presence reports whether ev's piece belongs to operand A ("left"),
// operand B ("right"), or both. A non-overlap piece belongs to
// exactly one operand; an overlap piece (Overlap && !Redundant) belongs to
// both only when its two contributing segments came from different
// operands, otherwise it is a same-operand duplicate (e.g. two coincident
// edges both drawn from operand A) and still belongs to just that operand.
func presence(ev *sweep.Event) (inA, inB bool) {
	inA = ev.FromLeft
	inB = !ev.FromLeft
	if ev.Overlap {
		if ev.OverlapFromLeft {
			inA = true
		} else {
			inB = true
		}
	}
	return inA, inB
}

// selectLinear decides whether a linear piece contributes to op's output:
// plain set operations over per-piece operand-presence bits.
func selectLinear(op Operation, ev *sweep.Event) bool {
	if ev.Redundant {
		return false
	}
	inA, inB := presence(ev)
	switch op {
	case Intersection:
		return inA && inB
	case Union:
		return inA || inB
	case Difference:
		return inA && !inB
	case SymmetricDifference:
		return inA != inB
	default:
		return false
	}
}

// selectAreal decides whether an areal piece contributes to op's output.
// It reports whether ev is kept and, if so, the direction
// ("ResultUp": true means the result's interior lies on the Lo->Hi side)
// reconstruction should thread it in, keeping the result's interior
// consistently on one side (see boolean/reconstruct_areal.go).
func selectAreal(op Operation, ev *sweep.Event) (keep, up bool) {
	if ev.Redundant {
		return false, false
	}

	if ev.Overlap {
		bothOperands := ev.OverlapFromLeft != ev.FromLeft
		if bothOperands {
			// Martinez-Rueda's SAME_TRANSITION/DIFFERENT_TRANSITION split
			// for coincident edges from two different operands: an edge
			// where both operands' in/out transitions agree (both have
			// their interior on the same side of the shared edge) bounds
			// area for Intersection/Union; one where they disagree (one
			// operand's interior, the other's exterior, share the edge)
			// bounds area only for Difference. Neither case ever
			// contributes to SymmetricDifference: a perfectly coincident,
			// same- or opposite-facing edge pair cancels out either way.
			sameTransition := ev.InOut == ev.OtherInOut
			switch {
			case sameTransition && (op == Intersection || op == Union):
				return true, !ev.InOut
			case !sameTransition && op == Difference:
				// The difference's interior is on operand A's inside,
				// whichever operand this member came from.
				if ev.FromLeft {
					return true, !ev.InOut
				}
				return true, !ev.OtherInOut
			default:
				return false, false
			}
		}
		// Same-operand duplicate: fall through and treat like a normal,
		// single-operand piece below.
	}

	switch op {
	case Intersection:
		return !ev.OtherInOut, !ev.InOut
	case Union:
		return ev.OtherInOut, !ev.InOut
	case Difference:
		if ev.FromLeft {
			return ev.OtherInOut, !ev.InOut
		}
		// Piece from B: kept where its "above" side lies inside A, with
		// orientation flipped since B's interior is being removed, not
		// retained.
		return !ev.OtherInOut, ev.InOut
	case SymmetricDifference:
		// The result lies on whichever side is inside exactly one
		// operand: the piece's own inside when the other operand is
		// absent there, its own outside when the other operand covers
		// both sides.
		return true, ev.InOut != ev.OtherInOut
	default:
		return false, false
	}
}
