package sweep

import (
	"github.com/google/btree"
	"github.com/lycantropos/clipping/segment"
)

// eventQueue is the min-priority event container, a
// [github.com/google/btree.BTreeG] keyed by a position-then-tiebreak
// comparator. BTreeG has set semantics (a ReplaceOrInsert of an "equal"
// key overwrites, so two genuinely distinct events at the same coordinate
// would collide); the event id itself is therefore the final tie-break
// term in [compareEvents], making the comparator a strict total order over
// ids so the tree holds every event distinctly.
type eventQueue struct {
	tree  *btree.BTreeG[EventID]
	arena *Arena
}

func newEventQueue(arena *Arena) *eventQueue {
	q := &eventQueue{arena: arena}
	q.tree = btree.NewG[EventID](32, q.less)
	return q
}

func (q *eventQueue) less(a, b EventID) bool {
	return compareEvents(q.arena, a, b) < 0
}

// Push inserts an event. Duplicates (same point, distinct segments) are
// supported via the id tie-break in compareEvents.
func (q *eventQueue) Push(id EventID) {
	q.tree.ReplaceOrInsert(id)
}

// Pop removes and returns the queue's minimum event.
func (q *eventQueue) Pop() (EventID, bool) {
	return q.tree.DeleteMin()
}

// Remove deletes a queued event. Callers about to change an event's sort
// key (subdivision redirects Other, part of the tie-break) must Remove it
// first and Push it again afterwards, or the tree's ordering invariant
// breaks.
func (q *eventQueue) Remove(id EventID) {
	q.tree.Delete(id)
}

func (q *eventQueue) Empty() bool {
	return q.tree.Len() == 0
}

// compareEvents orders events by point ascending; for equal points,
// end-events before start-events; for further ties, the event whose other
// endpoint is below comes first, so horizontal and tangent edges process
// deterministically.
func compareEvents(arena *Arena, x, y EventID) int {
	if x == y {
		return 0
	}
	ex, ey := arena.get(x), arena.get(y)

	if c := ex.Point.Compare(ey.Point); c != 0 {
		return c
	}

	if ex.IsStart != ey.IsStart {
		if ex.IsStart {
			return 1 // end events sort first
		}
		return -1
	}

	ox, oy := arena.get(ex.Other), arena.get(ey.Other)
	if c := belowOrder(ox.Point, oy.Point); c != 0 {
		return c
	}

	// Final, purely-deterministic tie-break: distinct events never compare
	// equal, so the btree never silently drops one (see type doc).
	if x < y {
		return -1
	}
	return 1
}

// belowOrder orders two points by "which is below": lower y first, then
// lower x, used only to decide which of two same-point events' segments
// points "more downward".
func belowOrder(p, q segment.RatPoint) int {
	if c := p.Y.Cmp(q.Y); c != 0 {
		return c
	}
	return p.X.Cmp(q.X)
}
