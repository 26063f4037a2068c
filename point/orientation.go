package point

import (
	"math/big"

	"github.com/lycantropos/clipping/numeric"
	"github.com/lycantropos/clipping/types"
)

// Orientation determines whether three points p, q, r form a clockwise
// turn, a counterclockwise turn, or are collinear.
//
// The test is the sign of the cross product (q-p) × (r-p), computed over
// exact [math/big.Rat] values (via [numeric.ToRat]) rather than in T's own
// arithmetic, so the result is exact even when T is an integer type narrow
// enough that the cross product's intermediate products would overflow, and
// exact-for-the-given-value when T is floating.
func Orientation[T types.SignedNumber](p, q, r Point[T]) types.PointOrientation {
	px, py := numeric.ToRat(p.x), numeric.ToRat(p.y)
	qx, qy := numeric.ToRat(q.x), numeric.ToRat(q.y)
	rx, ry := numeric.ToRat(r.x), numeric.ToRat(r.y)

	// (qx-px)*(ry-py) - (qy-py)*(rx-px)
	dqx := new(big.Rat).Sub(qx, px)
	dqy := new(big.Rat).Sub(qy, py)
	drx := new(big.Rat).Sub(rx, px)
	dry := new(big.Rat).Sub(ry, py)

	cross := new(big.Rat).Sub(
		new(big.Rat).Mul(dqx, dry),
		new(big.Rat).Mul(dqy, drx),
	)

	switch numeric.Sign(cross) {
	case 0:
		return types.PointsCollinear
	case 1:
		return types.PointsCounterClockwise
	default:
		return types.PointsClockwise
	}
}
