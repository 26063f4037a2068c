// Package point defines [Point], the foundational geometric primitive the
// rest of the clipping library is built on, along with the exact
// orientation predicate every higher-level component ultimately reduces to.
//
// Point is generic over [types.SignedNumber] so callers can work in integer
// or floating coordinates; every comparison on Point is exact (componentwise
// equality, lexicographic ordering) with no epsilon tolerance.
package point

import (
	"encoding/json"
	"fmt"

	"github.com/lycantropos/clipping/types"
)

// Point is an exact 2D coordinate pair (x, y).
type Point[T types.SignedNumber] struct {
	x, y T
}

// New creates a Point at the given coordinates.
func New[T types.SignedNumber](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// X returns the point's x-coordinate.
func (p Point[T]) X() T { return p.x }

// Y returns the point's y-coordinate.
func (p Point[T]) Y() T { return p.y }

// Eq reports whether p and q hold the exact same coordinates.
func (p Point[T]) Eq(q Point[T]) bool {
	return p.x == q.x && p.y == q.y
}

// Less reports whether p sorts strictly before q in the point total
// order: lexicographic by x, then by y.
func (p Point[T]) Less(q Point[T]) bool {
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}

// Compare returns -1, 0, or 1 according to whether p sorts before, equal
// to, or after q in [Point.Less] order.
func (p Point[T]) Compare(q Point[T]) int {
	switch {
	case p.Eq(q):
		return 0
	case p.Less(q):
		return -1
	default:
		return 1
	}
}

// Sub returns the vector from q to p (p - q), expressed as a Point.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{x: p.x - q.x, y: p.y - q.y}
}

// String renders the point as "(x,y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}

// MarshalJSON serializes Point as a {"x":...,"y":...} JSON object.
func (p Point[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X T `json:"x"`
		Y T `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point, the counterpart to
// [Point.MarshalJSON].
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		X T `json:"x"`
		Y T `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x, p.y = temp.X, temp.Y
	return nil
}
