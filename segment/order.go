package segment

import (
	"math/big"

	"github.com/lycantropos/clipping/numeric"
	"github.com/lycantropos/clipping/types"
)

// YAt returns the exact y-coordinate at which s crosses the vertical line
// x = atX, assuming atX falls within s's x-extent and s is not vertical.
func YAt[T types.SignedNumber](s Segment[T], atX *big.Rat) *big.Rat {
	x1, y1 := numeric.ToRat(s.start.X()), numeric.ToRat(s.start.Y())
	x2, y2 := numeric.ToRat(s.end.X()), numeric.ToRat(s.end.Y())

	dx := new(big.Rat).Sub(x2, x1)
	if dx.Sign() == 0 {
		// Vertical: y at x1 is ambiguous; callers must special-case
		// IsVertical() before calling.
		return y1
	}
	dy := new(big.Rat).Sub(y2, y1)

	t := new(big.Rat).Quo(new(big.Rat).Sub(atX, x1), dx)
	return new(big.Rat).Add(y1, new(big.Rat).Mul(t, dy))
}

// Below orders two active, non-crossing segments by their vertical position
// at the current sweep abscissa atX: a precedes b iff a lies strictly below
// b there. On exact coincidence the tie is broken by the sign of the cross
// product of the two segment directions, so the segment going more downward
// compares smaller. Returns -1, 0, or 1.
func Below[T types.SignedNumber](a, b Segment[T], atX *big.Rat) int {
	ya, yb := yAtOrStart(a, atX), yAtOrStart(b, atX)
	if c := ya.Cmp(yb); c != 0 {
		return c
	}

	// Tie: compare directions via cross product sign. A direction vector
	// with a smaller (more negative) slope, going "more downward", sorts
	// first.
	dax := new(big.Rat).Sub(numeric.ToRat(a.end.X()), numeric.ToRat(a.start.X()))
	day := new(big.Rat).Sub(numeric.ToRat(a.end.Y()), numeric.ToRat(a.start.Y()))
	dbx := new(big.Rat).Sub(numeric.ToRat(b.end.X()), numeric.ToRat(b.start.X()))
	dby := new(big.Rat).Sub(numeric.ToRat(b.end.Y()), numeric.ToRat(b.start.Y()))

	// cross(da, db) > 0 means db is counterclockwise from da, i.e. da's
	// direction angle is the smaller (more clockwise / more downward) of
	// the two, so a sorts first.
	cross := new(big.Rat).Sub(new(big.Rat).Mul(dax, dby), new(big.Rat).Mul(day, dbx))
	switch numeric.Sign(cross) {
	case 0:
		return 0
	case 1:
		return -1
	default:
		return 1
	}
}

func yAtOrStart[T types.SignedNumber](s Segment[T], atX *big.Rat) *big.Rat {
	if s.IsVertical() {
		return numeric.ToRat(s.start.Y())
	}
	return YAt(s, atX)
}

// YAtRat is [YAt] expressed directly over [RatPoint] endpoints, for package
// sweep's post-subdivision fragments whose endpoints may not lie on any T's
// lattice.
func YAtRat(lo, hi RatPoint, atX *big.Rat) *big.Rat {
	dx := new(big.Rat).Sub(hi.X, lo.X)
	if dx.Sign() == 0 {
		return lo.Y
	}
	dy := new(big.Rat).Sub(hi.Y, lo.Y)
	t := new(big.Rat).Quo(new(big.Rat).Sub(atX, lo.X), dx)
	return new(big.Rat).Add(lo.Y, new(big.Rat).Mul(t, dy))
}

// BelowRat is [Below] expressed directly over [RatPoint] endpoint pairs, used
// by the sweep-line status structure once segments have been subdivided into
// rational fragments. lo/hi must each already be in RatPoint order
// (lo.Compare(hi) < 0).
func BelowRat(aLo, aHi, bLo, bHi RatPoint, atX *big.Rat) int {
	ya, yb := yAtOrStartRat(aLo, aHi, atX), yAtOrStartRat(bLo, bHi, atX)
	if c := ya.Cmp(yb); c != 0 {
		return c
	}

	dax := new(big.Rat).Sub(aHi.X, aLo.X)
	day := new(big.Rat).Sub(aHi.Y, aLo.Y)
	dbx := new(big.Rat).Sub(bHi.X, bLo.X)
	dby := new(big.Rat).Sub(bHi.Y, bLo.Y)

	cross := new(big.Rat).Sub(new(big.Rat).Mul(dax, dby), new(big.Rat).Mul(day, dbx))
	switch numeric.Sign(cross) {
	case 0:
		return 0
	case 1:
		return -1
	default:
		return 1
	}
}

func yAtOrStartRat(lo, hi RatPoint, atX *big.Rat) *big.Rat {
	if lo.X.Cmp(hi.X) == 0 {
		return lo.Y
	}
	return YAtRat(lo, hi, atX)
}
