// Package segment defines [Segment], the oriented line-segment primitive the
// sweep-line engine operates on, along with the exact predicates (Intersect,
// Orientation-based crossing tests, the sweep-abscissa ordering) that every
// higher-level component in package sweep ultimately reduces to.
//
// A Segment canonicalizes its two endpoints into (start, end) with
// start < end in [point.Point]'s lexicographic order. Zero-length segments
// are rejected at construction rather than silently dropped.
package segment

import (
	"encoding/json"
	"fmt"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/types"
)

// Segment is a straight, non-degenerate line segment between two distinct
// points, stored with its endpoints canonically ordered.
type Segment[T types.SignedNumber] struct {
	start point.Point[T]
	end   point.Point[T]
}

// New builds a Segment from two endpoints, reordering them if necessary so
// that Start() <= End() in point order. Reports an error if p and q are the
// same point, since a Segment must have two distinct endpoints.
func New[T types.SignedNumber](p, q point.Point[T]) (Segment[T], error) {
	if p.Eq(q) {
		return Segment[T]{}, fmt.Errorf("segment: endpoints %v and %v coincide", p, q)
	}
	if q.Less(p) {
		p, q = q, p
	}
	return Segment[T]{start: p, end: q}, nil
}

// Start returns the segment's lexicographically smaller endpoint.
func (s Segment[T]) Start() point.Point[T] { return s.start }

// End returns the segment's lexicographically larger endpoint.
func (s Segment[T]) End() point.Point[T] { return s.end }

// Eq reports whether s and other share the same canonical endpoints.
func (s Segment[T]) Eq(other Segment[T]) bool {
	return s.start.Eq(other.start) && s.end.Eq(other.end)
}

// Compare orders segments for deterministic output, lexicographically by
// canonical (start, end).
func (s Segment[T]) Compare(other Segment[T]) int {
	if c := s.start.Compare(other.start); c != 0 {
		return c
	}
	return s.end.Compare(other.end)
}

// IsVertical reports whether the segment's two endpoints share an x
// coordinate.
func (s Segment[T]) IsVertical() bool {
	return s.start.X() == s.end.X()
}

// ContainsPoint reports whether p lies on the closed segment s (on the line
// through s.start/s.end, and between the endpoints inclusive), using the
// exact orientation predicate.
func (s Segment[T]) ContainsPoint(p point.Point[T]) bool {
	if point.Orientation(s.start, s.end, p) != types.PointsCollinear {
		return false
	}
	return between(s.start.X(), p.X(), s.end.X()) && between(s.start.Y(), p.Y(), s.end.Y())
}

func between[T types.SignedNumber](a, v, b T) bool {
	if a > b {
		a, b = b, a
	}
	return a <= v && v <= b
}

// String renders the segment as "start->end".
func (s Segment[T]) String() string {
	return fmt.Sprintf("%v->%v", s.start, s.end)
}

// MarshalJSON serializes Segment as an {"start":...,"end":...} JSON
// object of two endpoint objects.
func (s Segment[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start point.Point[T] `json:"start"`
		End   point.Point[T] `json:"end"`
	}{Start: s.start, End: s.end})
}

// UnmarshalJSON deserializes JSON into a Segment, re-canonicalizing the
// endpoint order per [New].
func (s *Segment[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		Start point.Point[T] `json:"start"`
		End   point.Point[T] `json:"end"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	built, err := New(temp.Start, temp.End)
	if err != nil {
		return err
	}
	*s = built
	return nil
}
