package sweep

import (
	"math/big"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/lycantropos/clipping/segment"
)

// status is the sweep-line status: an ordered set of currently-active
// start events, ordered by vertical position at the current sweep abscissa.
// It wraps a [github.com/emirpasic/gods/trees/redblacktree.Tree] behind a
// comparator that closes over a pointer to the current sweep abscissa and
// compares via [segment.BelowRat], so the ordering stays exact.
type status struct {
	tree  *rbt.Tree
	arena *Arena
	atX   **big.Rat
}

func newStatus(arena *Arena, atX **big.Rat) *status {
	s := &status{arena: arena, atX: atX}
	s.tree = rbt.NewWith(s.compare)
	return s
}

func (s *status) compare(x, y any) int {
	a, b := x.(EventID), y.(EventID)
	if a == b {
		return 0
	}
	aLo, aHi := s.arena.SegmentOf(a)
	bLo, bHi := s.arena.SegmentOf(b)
	c := segment.BelowRat(aLo, aHi, bLo, bHi, *s.atX)
	if aHi.Eq(bHi) && aHi.X.Cmp(*s.atX) == 0 && aLo.X.Cmp(*s.atX) < 0 && bLo.X.Cmp(*s.atX) < 0 {
		// Both segments arrive from the left and end at the same point on
		// the sweep line. BelowRat's direction tie-break orders segments
		// leaving a shared point; of two segments converging on one, the
		// one going more downward came from above, so their order is the
		// reverse of that tie-break (the order they were inserted in).
		c = -c
	}
	if c != 0 {
		return c
	}
	// Distinct active segments never truly tie (active segments only touch
	// at endpoints); break remaining ties by id
	// so the tree still orders distinct entries deterministically during
	// the instant they share an endpoint.
	if a < b {
		return -1
	}
	return 1
}

// Insert adds a start event's segment to the status.
func (s *status) Insert(id EventID) { s.tree.Put(id, nil) }

// Erase removes a start event's segment from the status.
func (s *status) Erase(id EventID) { s.tree.Remove(id) }

// Predecessor returns the event immediately below id in the status, if any.
func (s *status) Predecessor(id EventID) (EventID, bool) {
	node := s.tree.GetNode(id)
	if node == nil {
		return noEvent, false
	}
	it := s.tree.IteratorAt(node)
	if it.Prev() {
		return it.Key().(EventID), true
	}
	return noEvent, false
}

// Successor returns the event immediately above id in the status, if any.
func (s *status) Successor(id EventID) (EventID, bool) {
	node := s.tree.GetNode(id)
	if node == nil {
		return noEvent, false
	}
	it := s.tree.IteratorAt(node)
	if it.Next() {
		return it.Key().(EventID), true
	}
	return noEvent, false
}
