// Package sweep implements the plane-sweep core: a Bentley-Ottmann-style
// event queue and sweep-line status over [segment.RatPoint] fragments, the
// intersection/subdivision processor that splits segments at crossings and
// merges collinear overlaps, and the per-edge labelling (above/below
// operand membership) that the operation selector in package boolean
// consumes.
//
// Everything here operates on rational coordinates rather than a caller's
// T: a subdivided segment's endpoints may fall off T's lattice entirely
// (two integer segments can cross at (3/2, 1/2)), so the sweep never looks
// at T. Callers convert their [point.Point][T]/[segment.Segment][T]
// operands to [segment.RatPoint] pairs before calling [Run], and convert
// the emitted pieces back via
// [github.com/lycantropos/clipping/numeric.FromRat] after.
package sweep

import (
	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/segment"
)

// Mode selects which labelling discipline the sweep applies: full
// above/below attribution for areal operands, presence bits alone for
// linear ones.
type Mode uint8

const (
	// ModeAreal runs full above/below in_out labelling, for polygon
	// (multipolygon) operands.
	ModeAreal Mode = iota
	// ModeLinear skips in_out labelling; package boolean's linear selector
	// works from operand-presence bits alone.
	ModeLinear
)

// Input is one segment of one operand, fed to [Run]. Lo must sort before Hi
// in [segment.RatPoint.Compare] order.
type Input struct {
	Lo, Hi   segment.RatPoint
	FromLeft bool // true: operand A ("left"); false: operand B ("right").
}

// Result is the sweep's output: the event arena (every event, live or
// superseded by a later subdivision) and the set of event ids that
// represent the final, no-further-subdivided fragments.
type Result struct {
	Arena  *Arena
	Pieces []EventID
}

// Run seeds events for every input segment from both operands, executes
// the sweep to a fixed point (after every processed event, no two active
// segments cross in their interiors), and returns the resulting fragment
// arena. It never mutates inputs and never retains state beyond what it
// returns.
func Run(mode Mode, inputs []Input, opts options.EngineOptions) *Result {
	arena := newArena()
	queue := newEventQueue(arena)

	for _, in := range inputs {
		if in.Lo.Eq(in.Hi) {
			continue
		}
		startID := arena.alloc(Event{Point: in.Lo, IsStart: true, FromLeft: in.FromLeft})
		endID := arena.alloc(Event{Point: in.Hi, IsStart: false, FromLeft: in.FromLeft})
		arena.get(startID).Other = endID
		arena.get(endID).Other = startID
		queue.Push(startID)
		queue.Push(endID)
	}

	p := &processor{
		arena: arena,
		queue: queue,
		mode:  mode,
		opts:  opts,
	}
	p.status = newStatus(arena, &p.sweepX)
	p.run()

	if mode == ModeAreal {
		// A coincident pair bounds both operands along the same line, so
		// each member's other-operand transition is its partner's own
		// transition, which may not have been known yet when the member
		// was labelled.
		for i := range arena.events {
			ev := &arena.events[i]
			if ev.IsStart && ev.Overlap && ev.OverlapFromLeft != ev.FromLeft {
				ev.OtherInOut = arena.get(ev.OverlapPartner).InOut
			}
		}
	}

	pieces := make([]EventID, 0, len(arena.events)/2)
	for i, ev := range arena.events {
		if ev.IsStart {
			pieces = append(pieces, EventID(i))
		}
	}

	return &Result{Arena: arena, Pieces: pieces}
}
