// Package polygon defines the areal and linear aggregate types the Boolean
// engine reconstructs output into: [Contour], [Polygon] (a shell with
// holes), [Multipolygon], and [Multisegment]. It also supplies the exact
// area, orientation, and point-in-region predicates those types need.
package polygon

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/lycantropos/clipping/numeric"
	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/types"
)

// Contour is a closed sequence of vertices: the last vertex implicitly
// connects back to the first. A well-formed Contour has at least 3 vertices,
// non-zero area, and no self-intersecting edges (see [Contour.Validate]).
type Contour[T types.SignedNumber] []point.Point[T]

// Segments returns the contour's edges, skipping degenerate (zero-length)
// ones caused by a repeated vertex.
func (c Contour[T]) Segments() []segment.Segment[T] {
	n := len(c)
	if n < 2 {
		return nil
	}

	segments := make([]segment.Segment[T], 0, n)
	for i := 0; i < n; i++ {
		start := c[i]
		end := c[(i+1)%n]
		if start.Eq(end) {
			continue
		}
		s, err := segment.New(start, end)
		if err != nil {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

// Area2XSigned returns twice the exact signed area of the contour via the
// shoelace formula, computed over [math/big.Rat] so that it cannot overflow
// for integer coordinate types.
//
// The sign follows the standard convention: positive for a
// counterclockwise-ordered contour, negative for clockwise, zero for a
// degenerate (collinear or under-3-vertex) contour.
func (c Contour[T]) Area2XSigned() *big.Rat {
	n := len(c)
	if n < 3 {
		return new(big.Rat)
	}

	area := new(big.Rat)
	for i := 0; i < n; i++ {
		p1 := c[i]
		p2 := c[(i+1)%n]
		x1, y1 := numeric.ToRat(p1.X()), numeric.ToRat(p1.Y())
		x2, y2 := numeric.ToRat(p2.X()), numeric.ToRat(p2.Y())

		term := new(big.Rat).Sub(new(big.Rat).Mul(x1, y2), new(big.Rat).Mul(x2, y1))
		area.Add(area, term)
	}
	return area
}

// Orientation reports whether the contour is wound counterclockwise,
// clockwise, or degenerate (zero area), via the sign of [Contour.Area2XSigned].
func (c Contour[T]) Orientation() types.PointOrientation {
	switch numeric.Sign(c.Area2XSigned()) {
	case 0:
		return types.PointsCollinear
	case 1:
		return types.PointsCounterClockwise
	default:
		return types.PointsClockwise
	}
}

// Reverse returns the contour with its vertex order reversed, flipping its
// orientation.
func (c Contour[T]) Reverse() Contour[T] {
	reversed := make(Contour[T], len(c))
	for i, p := range c {
		reversed[len(c)-1-i] = p
	}
	return reversed
}

// CanonicalStart rotates the contour so that it starts at its
// lexicographically smallest vertex. Reconstructed output uses this so that
// identical inputs always render identically.
func (c Contour[T]) CanonicalStart() Contour[T] {
	if len(c) == 0 {
		return c
	}
	minIdx := 0
	for i, p := range c {
		if p.Less(c[minIdx]) {
			minIdx = i
		}
	}
	rotated := make(Contour[T], len(c))
	for i := range c {
		rotated[i] = c[(minIdx+i)%len(c)]
	}
	return rotated
}

// SmallestVertex returns the contour's lexicographically smallest vertex,
// used to order sibling contours deterministically.
func (c Contour[T]) SmallestVertex() point.Point[T] {
	min := c[0]
	for _, p := range c[1:] {
		if p.Less(min) {
			min = p
		}
	}
	return min
}

// String renders the contour as its vertices joined by "->".
func (c Contour[T]) String() string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(parts, "->")
}
