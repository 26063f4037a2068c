package polygon

import (
	"math/big"

	"github.com/lycantropos/clipping/numeric"
	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/types"
)

// Contains reports where p falls relative to the contour's boundary: on it,
// strictly inside it, or strictly outside it.
//
// Uses the standard exact crossing-number test: count edges straddling a
// horizontal ray cast from p to +x, with all comparisons done over
// [math/big.Rat] so the result is exact regardless of T.
func (c Contour[T]) Contains(p point.Point[T]) types.PointPosition {
	for _, edge := range c.Segments() {
		if edge.ContainsPoint(p) {
			return types.PointOnBoundary
		}
	}

	px, py := numeric.ToRat(p.X()), numeric.ToRat(p.Y())
	inside := false

	n := len(c)
	for i := 0; i < n; i++ {
		a := c[i]
		b := c[(i+1)%n]
		ay, by := numeric.ToRat(a.Y()), numeric.ToRat(b.Y())

		// Does the edge straddle the horizontal line y = py?
		if (ay.Cmp(py) > 0) == (by.Cmp(py) > 0) {
			continue
		}

		ax, bx := numeric.ToRat(a.X()), numeric.ToRat(b.X())

		// x-coordinate where the edge crosses y = py:
		// x = ax + (py-ay)/(by-ay) * (bx-ax)
		t := new(big.Rat).Quo(new(big.Rat).Sub(py, ay), new(big.Rat).Sub(by, ay))
		crossX := new(big.Rat).Add(ax, new(big.Rat).Mul(t, new(big.Rat).Sub(bx, ax)))

		if crossX.Cmp(px) > 0 {
			inside = !inside
		}
	}

	if inside {
		return types.PointInside
	}
	return types.PointOutside
}
