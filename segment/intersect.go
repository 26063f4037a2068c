package segment

import (
	"math/big"

	"github.com/lycantropos/clipping/numeric"
	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/types"
)

// Relation classifies how two segments interact: disjoint, meeting at a
// single crossing point, or sharing a collinear overlap interval.
type Relation uint8

const (
	// NoIntersection indicates the segments share no point.
	NoIntersection Relation = iota
	// PointIntersection indicates the segments meet at exactly one point
	// (which may be an endpoint of either).
	PointIntersection
	// OverlapIntersection indicates the segments are collinear and share a
	// non-degenerate sub-segment.
	OverlapIntersection
)

// RatPoint is an exact point with rational coordinates, used to represent
// intersection points that may fall off the lattice of T (e.g. the crossing
// of two integer-coordinate segments at a non-integer point). The sweep
// engine subdivides segments at RatPoint positions internally; see
// package sweep.
type RatPoint struct {
	X, Y *big.Rat
}

// Eq reports whether two RatPoint values denote the same exact position.
func (p RatPoint) Eq(q RatPoint) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Compare orders RatPoint values lexicographically by (X, Y).
func (p RatPoint) Compare(q RatPoint) int {
	if c := p.X.Cmp(q.X); c != 0 {
		return c
	}
	return p.Y.Cmp(q.Y)
}

func (p RatPoint) String() string {
	return "(" + p.X.RatString() + "," + p.Y.RatString() + ")"
}

// Result is the outcome of intersecting two segments.
type Result struct {
	Relation Relation
	// Point holds the crossing position when Relation is PointIntersection.
	Point RatPoint
	// OverlapStart and OverlapEnd hold the shared sub-segment's endpoints,
	// in RatPoint order (OverlapStart < OverlapEnd), when Relation is
	// OverlapIntersection.
	OverlapStart, OverlapEnd RatPoint
}

// Intersect computes the exact relationship between s and other, grounded on
// the determinant line-intersection formula combined with the orientation
// predicate to confine the result to the two segments' extents.
//
// All arithmetic is performed over [math/big.Rat], so the result is exact
// regardless of whether the intersection point itself lies on T's lattice.
func Intersect[T types.SignedNumber](s, other Segment[T]) Result {
	return IntersectRat(
		toRatPoint(s.start), toRatPoint(s.end),
		toRatPoint(other.start), toRatPoint(other.end),
	)
}

// IntersectRat computes the exact relationship between two segments already
// expressed as [RatPoint] endpoint pairs (a, b) and (c, d), each in RatPoint
// order (a before b, c before d). This is the same predicate [Intersect]
// delegates to, exposed directly so package sweep can re-test fragments
// produced by subdividing a segment at a prior intersection, whose
// endpoints may not lie on T's lattice at all.
func IntersectRat(a, b, c, d RatPoint) Result {
	o1 := ratOrientation(a, b, c)
	o2 := ratOrientation(a, b, d)
	o3 := ratOrientation(c, d, a)
	o4 := ratOrientation(c, d, b)

	if o1 == types.PointsCollinear && o2 == types.PointsCollinear {
		return intersectCollinear(a, b, c, d)
	}

	if (o1 != o2) && (o3 != o4) {
		return Result{Relation: PointIntersection, Point: crossingPoint(a, b, c, d)}
	}

	// Touching endpoint (T-junction): one endpoint of one segment lies
	// collinear with, and within the extent of, the other segment.
	if o1 == types.PointsCollinear && within(a, b, c) {
		return Result{Relation: PointIntersection, Point: c}
	}
	if o2 == types.PointsCollinear && within(a, b, d) {
		return Result{Relation: PointIntersection, Point: d}
	}
	if o3 == types.PointsCollinear && within(c, d, a) {
		return Result{Relation: PointIntersection, Point: a}
	}
	if o4 == types.PointsCollinear && within(c, d, b) {
		return Result{Relation: PointIntersection, Point: b}
	}

	return Result{Relation: NoIntersection}
}

// ratOrientation is [point.Orientation]'s cross-product sign test expressed
// directly over [RatPoint] values, for callers (package sweep) that only
// have rational coordinates to begin with, post-subdivision.
func ratOrientation(p, q, r RatPoint) types.PointOrientation {
	dqx := new(big.Rat).Sub(q.X, p.X)
	dqy := new(big.Rat).Sub(q.Y, p.Y)
	drx := new(big.Rat).Sub(r.X, p.X)
	dry := new(big.Rat).Sub(r.Y, p.Y)

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

func toRatPoint[T types.SignedNumber](p point.Point[T]) RatPoint {
	return RatPoint{X: numeric.ToRat(p.X()), Y: numeric.ToRat(p.Y())}
}

// OrientationRat is [ratOrientation] exported for callers outside this
// package (package boolean's linear reconstructor) that need a three-way
// collinearity test over [RatPoint] values, e.g. to decide whether two
// fragments sharing an endpoint continue in a straight line.
func OrientationRat(p, q, r RatPoint) types.PointOrientation {
	return ratOrientation(p, q, r)
}

// within reports whether p (known collinear with a-b) lies within the
// closed bounding box of a and b.
func within(a, b, p RatPoint) bool {
	lo, hi := a.X, b.X
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	if p.X.Cmp(lo) < 0 || p.X.Cmp(hi) > 0 {
		return false
	}
	lo, hi = a.Y, b.Y
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return p.Y.Cmp(lo) >= 0 && p.Y.Cmp(hi) <= 0
}

// crossingPoint computes the exact intersection of lines AB and CD, assuming
// the caller has already established they are not parallel.
func crossingPoint(a, b, c, d RatPoint) RatPoint {
	// Line AB: a1*x + b1*y = c1
	a1 := new(big.Rat).Sub(b.Y, a.Y)
	b1 := new(big.Rat).Sub(a.X, b.X)
	c1 := new(big.Rat).Add(new(big.Rat).Mul(a1, a.X), new(big.Rat).Mul(b1, a.Y))

	// Line CD: a2*x + b2*y = c2
	a2 := new(big.Rat).Sub(d.Y, c.Y)
	b2 := new(big.Rat).Sub(c.X, d.X)
	c2 := new(big.Rat).Add(new(big.Rat).Mul(a2, c.X), new(big.Rat).Mul(b2, c.Y))

	det := new(big.Rat).Sub(new(big.Rat).Mul(a1, b2), new(big.Rat).Mul(a2, b1))

	x := new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Mul(b2, c1), new(big.Rat).Mul(b1, c2)), det)
	y := new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Mul(a1, c2), new(big.Rat).Mul(a2, c1)), det)

	return RatPoint{X: x, Y: y}
}

// intersectCollinear handles the case where both segments lie on the same
// line.
func intersectCollinear(a, b, c, d RatPoint) Result {
	// a < b and c < d already hold by Segment's canonical ordering.
	lo := a
	if c.Compare(lo) > 0 {
		lo = c
	}
	hi := b
	if d.Compare(hi) < 0 {
		hi = d
	}

	switch lo.Compare(hi) {
	case 0:
		return Result{Relation: PointIntersection, Point: lo}
	case 1:
		return Result{Relation: NoIntersection}
	default:
		return Result{Relation: OverlapIntersection, OverlapStart: lo, OverlapEnd: hi}
	}
}
