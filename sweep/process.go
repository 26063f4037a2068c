package sweep

import (
	"math/big"

	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/segment"
)

// processor runs the Bentley-Ottmann loop: pop an event, update the
// status, test newly-adjacent segments for intersection, and repeat. On
// every status insertion the new segment is tested against its immediate
// predecessor and successor; on every removal the just-freed neighbors are
// tested against each other.
type processor struct {
	arena  *Arena
	queue  *eventQueue
	status *status
	mode   Mode
	opts   options.EngineOptions
	sweepX *big.Rat
}

func (p *processor) run() {
	for {
		id, ok := p.queue.Pop()
		if !ok {
			return
		}
		ev := p.arena.get(id)
		p.sweepX = ev.Point.X

		if ev.IsStart {
			p.handleStart(id)
		} else {
			p.handleEnd(id)
		}
	}
}

func (p *processor) handleStart(id EventID) {
	p.status.Insert(id)
	if p.opts.Trace {
		p.opts.Logf("sweep: insert start event %d at %s", id, p.arena.get(id).Point)
	}

	if p.mode == ModeAreal {
		p.computeLabel(id)
	}

	predID, hasPred := p.status.Predecessor(id)
	succID, hasSucc := p.status.Successor(id)

	if hasPred {
		p.possibleIntersection(id, predID)
	}
	if hasSucc {
		p.possibleIntersection(id, succID)
	}
}

func (p *processor) handleEnd(id EventID) {
	startID := p.arena.get(id).Other

	predID, hasPred := p.status.Predecessor(startID)
	succID, hasSucc := p.status.Successor(startID)

	p.status.Erase(startID)
	if p.opts.Trace {
		p.opts.Logf("sweep: erase end event %d at %s", id, p.arena.get(id).Point)
	}

	if hasPred && hasSucc {
		p.possibleIntersection(predID, succID)
	}
}

// possibleIntersection tests the segments owning events e1 and e2 (either
// may be a start or end event; only their segment matters) and subdivides
// or merges them as needed.
func (p *processor) possibleIntersection(e1, e2 EventID) {
	s1, s2 := p.arena.StartOf(e1), p.arena.StartOf(e2)
	if s1 == s2 {
		return
	}
	lo1, hi1 := p.arena.SegmentOf(s1)
	lo2, hi2 := p.arena.SegmentOf(s2)

	res := segment.IntersectRat(lo1, hi1, lo2, hi2)
	switch res.Relation {
	case segment.NoIntersection:
		return
	case segment.PointIntersection:
		pt := res.Point
		if !pt.Eq(lo1) && !pt.Eq(hi1) {
			p.divideSegment(s1, pt)
		}
		if !pt.Eq(lo2) && !pt.Eq(hi2) {
			p.divideSegment(s2, pt)
		}
	case segment.OverlapIntersection:
		p.handleOverlap(s1, s2, res.OverlapStart, res.OverlapEnd)
	}
}

// divideSegment splits the segment whose start event is startID at point
// at: the original start event's Other is redirected to a new interior end
// event, and a new pair is enqueued for the latter part. Returns the ids
// of the new interior end event (pairing with startID) and the new
// start event (pairing with the original end), so callers that need to
// keep addressing a specific sub-fragment can follow the right one.
func (p *processor) divideSegment(startID EventID, at segment.RatPoint) (newEnd, newStart EventID) {
	endID := p.arena.get(startID).Other
	fromLeft := p.arena.get(startID).FromLeft

	// alloc may grow the arena, so events are re-fetched by id below
	// rather than held across the calls.
	newEnd = p.arena.alloc(Event{Point: at, IsStart: false, FromLeft: fromLeft})
	newStart = p.arena.alloc(Event{Point: at, IsStart: true, FromLeft: fromLeft})

	// The original end event is still queued, and its sort key includes
	// its paired event's point; pull it out before redirecting the pair
	// links, then re-enqueue it under the new key.
	p.queue.Remove(endID)

	p.arena.get(newEnd).Other = startID
	p.arena.get(startID).Other = newEnd
	p.arena.get(newStart).Other = endID
	p.arena.get(endID).Other = newStart

	p.queue.Push(endID)
	p.queue.Push(newEnd)
	p.queue.Push(newStart)
	return newEnd, newStart
}

// isolate ensures the segment whose start event is startID has endpoints
// exactly (lo, hi), subdividing at whichever of lo/hi is still interior,
// and returns the (possibly new) start event id of the resulting exact
// fragment.
func (p *processor) isolate(startID EventID, lo, hi segment.RatPoint) EventID {
	_, segHi := p.arena.SegmentOf(startID)
	if hi.Compare(segHi) < 0 {
		p.divideSegment(startID, hi)
	}
	segLo, _ := p.arena.SegmentOf(startID)
	if lo.Compare(segLo) > 0 {
		_, newStart := p.divideSegment(startID, lo)
		startID = newStart
	}
	return startID
}

// handleOverlap isolates the shared [lo, hi] sub-segment of the two
// coincident segments (starting at s1, s2) and marks the resulting exact
// pair as a canonical/redundant overlap: the canonical piece carries the
// combined labels from both segments, the redundant one is suppressed.
func (p *processor) handleOverlap(s1, s2 EventID, lo, hi segment.RatPoint) {
	s1 = p.isolate(s1, lo, hi)
	s2 = p.isolate(s2, lo, hi)

	canonical := p.arena.get(s1)
	duplicate := p.arena.get(s2)

	if canonical.Overlap && duplicate.Overlap {
		// Already paired; neighbors re-tested after an unrelated removal
		// rediscover the same coincidence.
		return
	}

	canonical.Overlap = true
	canonical.OverlapFromLeft = duplicate.FromLeft
	canonical.OverlapPartner = s2
	duplicate.Overlap = true
	duplicate.OverlapFromLeft = canonical.FromLeft
	duplicate.OverlapPartner = s1
	duplicate.Redundant = true

	canonicalEnd := p.arena.get(canonical.Other)
	duplicateEnd := p.arena.get(duplicate.Other)
	canonicalEnd.Overlap = true
	canonicalEnd.OverlapFromLeft = duplicate.FromLeft
	duplicateEnd.Overlap = true
	duplicateEnd.OverlapFromLeft = canonical.FromLeft
	duplicateEnd.Redundant = true
}

// computeLabel fills in start-event id's InOut/OtherInOut fields from its
// predecessor in the status. Only meaningful (and only called) in
// ModeAreal.
func (p *processor) computeLabel(id EventID) {
	ev := p.arena.get(id)
	predID, hasPred := p.status.Predecessor(id)
	if !hasPred {
		// Nothing below: the region below this piece is outside both
		// operands, so its above side is inside its own operand and still
		// outside the other.
		ev.InOut = false
		ev.OtherInOut = true
		return
	}
	pred := p.arena.get(predID)

	if pred.FromLeft == ev.FromLeft {
		ev.InOut = !pred.InOut
		if pred.Overlap && pred.OverlapFromLeft != pred.FromLeft {
			// pred coincides with an edge of the other operand, so
			// crossing it flips the other operand's side as well.
			ev.OtherInOut = p.arena.get(pred.OverlapPartner).InOut
		} else {
			ev.OtherInOut = pred.OtherInOut
		}
		return
	}

	if sameOperandID, found := p.findSameOperandBelow(predID, ev.FromLeft); found {
		ev.InOut = !p.arena.get(sameOperandID).InOut
	} else {
		ev.InOut = false
	}

	// The region above pred is inside the other operand exactly when
	// pred's own transition says so; a vertical pred contributes the
	// opposite side at this abscissa.
	if p.arena.IsVertical(predID) {
		ev.OtherInOut = !pred.InOut
	} else {
		ev.OtherInOut = pred.InOut
	}
}

// findSameOperandBelow walks predecessors starting from id until it finds
// one belonging to operand fromLeft.
func (p *processor) findSameOperandBelow(id EventID, fromLeft bool) (EventID, bool) {
	cur := id
	for {
		if p.arena.get(cur).FromLeft == fromLeft {
			return cur, true
		}
		next, ok := p.status.Predecessor(cur)
		if !ok {
			return noEvent, false
		}
		cur = next
	}
}
