package sweep

import "github.com/lycantropos/clipping/segment"

// EventID indexes an [Event] inside an [Arena]. Paired events reference
// each other through ids rather than Go pointers, so subdividing a segment
// (which mutates an existing event's Other field) never has to reason
// about cyclic ownership.
type EventID int

// noEvent is never a valid index; used as a sentinel where "no such event"
// must be distinguished from EventID(0).
const noEvent EventID = -1

// Event is a single sweep-line event: a segment endpoint (original or
// produced by subdivision), plus the per-fragment labelling metadata the
// selector and reconstruction consume.
type Event struct {
	// Point is the coordinate at which this event occurs.
	Point segment.RatPoint

	// IsStart reports whether this is the lower-abscissa (left) endpoint of
	// its segment in RatPoint order.
	IsStart bool

	// Other is the paired event: this segment's other endpoint. Mutated in
	// place when the segment is subdivided.
	Other EventID

	// FromLeft reports which operand produced this piece: true for operand
	// A ("left"), false for operand B ("right").
	FromLeft bool

	// Overlap reports that this piece is collinear with, and exactly
	// coextensive with, another piece.
	Overlap bool

	// OverlapFromLeft holds the FromLeft bit of the *other* segment this
	// piece was found to coincide with, valid only when Overlap is true.
	// Package boolean derives per-operand presence from FromLeft and
	// OverlapFromLeft together rather than a separate bitset, since at most
	// two segments are ever merged into one canonical overlap piece.
	OverlapFromLeft bool

	// OverlapPartner is the start event of the coincident piece, set only
	// on start events whose Overlap is true. The partner's InOut is this piece's
	// other-operand transition: the two bound the same line.
	OverlapPartner EventID

	// Redundant marks the suppressed duplicate of an overlap pair; the
	// canonical piece (Redundant == false) carries the combined label.
	Redundant bool

	// InOut is this piece's own-operand in/out transition: false if
	// sweeping upward across it crosses from outside to inside that
	// operand's interior, true for inside-to-outside.
	InOut bool

	// OtherInOut is the analogous transition for the other operand,
	// computed during labelling; meaningless in ModeLinear.
	OtherInOut bool

	// InResult is set by package boolean's operation selector: does this
	// piece contribute to the output.
	InResult bool

	// ResultUp records, for kept areal pieces, whether the result's
	// interior lies above this piece when traversed Lo->Hi (true) or only
	// when traversed Hi->Lo (false), the directed-edge convention
	// reconstruction threads on.
	ResultUp bool

	// ContourID is reconstruction scratch: the index of the output contour
	// this piece was threaded into, set within package boolean. -1 until
	// the piece is consumed by a contour walk.
	ContourID int
}

// Arena owns every Event allocated during one [Run] call. Events live
// only for that operation; an Arena is never reused across operations.
type Arena struct {
	events []Event
}

func newArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(e Event) EventID {
	id := EventID(len(a.events))
	e.ContourID = -1
	e.OverlapPartner = noEvent
	a.events = append(a.events, e)
	return id
}

// Get returns a pointer to the event at id, for in-place field mutation.
func (a *Arena) Get(id EventID) *Event { return &a.events[id] }

func (a *Arena) get(id EventID) *Event { return a.Get(id) }

// Len reports how many events the arena has allocated (including events
// superseded by a later subdivision).
func (a *Arena) Len() int { return len(a.events) }

// SegmentOf returns the RatPoint endpoint pair (lo, hi), lo before hi, of
// the segment id belongs to; whichever of id/id.Other is the start event
// determines which field is which.
func (a *Arena) SegmentOf(id EventID) (lo, hi segment.RatPoint) {
	e := a.get(id)
	o := a.get(e.Other)
	if e.IsStart {
		return e.Point, o.Point
	}
	return o.Point, e.Point
}

// StartOf returns the start-event id of the segment id belongs to.
func (a *Arena) StartOf(id EventID) EventID {
	e := a.get(id)
	if e.IsStart {
		return id
	}
	return e.Other
}

// IsVertical reports whether the segment id belongs to is vertical.
func (a *Arena) IsVertical(id EventID) bool {
	lo, hi := a.SegmentOf(id)
	return lo.X.Cmp(hi.X) == 0
}
