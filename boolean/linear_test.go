package boolean_test

import (
	"testing"

	"github.com/lycantropos/clipping/boolean"
	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 int) segment.Segment[int] {
	s, err := segment.New(point.New(x1, y1), point.New(x2, y2))
	if err != nil {
		panic(err)
	}
	return s
}

// trident and squareBoundary are the shared fixtures: a three-segment
// "trident" out of the unit square's corner, and the unit square's
// boundary as four segments.
func trident() polygon.Multisegment[int] {
	return polygon.Multisegment[int]{
		seg(0, 0, 0, 1),
		seg(0, 0, 1, 1),
		seg(0, 0, 1, 0),
	}
}

func squareBoundary() polygon.Multisegment[int] {
	return polygon.Multisegment[int]{
		seg(0, 0, 1, 0),
		seg(1, 0, 1, 1),
		seg(1, 1, 0, 1),
		seg(0, 1, 0, 0),
	}
}

// Intersecting the trident with the square's boundary keeps only the two
// edges they share.
func TestIntersectSegmentsKeepsSharedEdges(t *testing.T) {
	a, b := trident(), squareBoundary()

	got, err := boolean.IntersectSegments(a, b, options.Apply())
	require.NoError(t, err)

	want := polygon.Multisegment[int]{
		seg(0, 0, 0, 1),
		seg(0, 0, 1, 0),
	}.Sorted()
	assert.True(t, got.Eq(want), "got %v, want %v", got, want)
}

// Complete intersection additionally reports the point (1,1) where the
// trident's diagonal touches the square's corner without overlapping any
// edge there.
func TestCompleteIntersectSegmentsReportsPointTouch(t *testing.T) {
	a, b := trident(), squareBoundary()

	points, segs, err := boolean.CompleteIntersectSegments(a, b, options.Apply())
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.Equal(t, point.New(1, 1), points[0])

	want := polygon.Multisegment[int]{
		seg(0, 0, 0, 1),
		seg(0, 0, 1, 0),
	}.Sorted()
	assert.True(t, segs.Eq(want), "got %v, want %v", segs, want)
}

// Subtraction of multisegments is not symmetric: A - B keeps only the
// diagonal (the one trident edge not shared with the square), while B - A
// keeps the two square edges the trident never touches.
func TestSubtractSegmentsAsymmetric(t *testing.T) {
	a, b := trident(), squareBoundary()

	aMinusB, err := boolean.SubtractSegments(a, b, options.Apply())
	require.NoError(t, err)
	wantAMinusB := polygon.Multisegment[int]{seg(0, 0, 1, 1)}
	assert.True(t, aMinusB.Eq(wantAMinusB), "got %v, want %v", aMinusB, wantAMinusB)

	bMinusA, err := boolean.SubtractSegments(b, a, options.Apply())
	require.NoError(t, err)
	wantBMinusA := polygon.Multisegment[int]{
		seg(0, 1, 1, 1),
		seg(1, 0, 1, 1),
	}
	assert.True(t, bMinusA.Eq(wantBMinusA), "got %v, want %v", bMinusA, wantBMinusA)
}

// unite(A, empty) = A.
func TestUniteSegmentsIdentity(t *testing.T) {
	a := trident()

	got, err := boolean.UniteSegments(a, nil, options.Apply())
	require.NoError(t, err)
	assert.True(t, got.Eq(a.Sorted()), "got %v, want %v", got, a.Sorted())
}

// intersect(A, empty) = empty.
func TestIntersectSegmentsEmptyIdentity(t *testing.T) {
	a := trident()

	got, err := boolean.IntersectSegments(a, nil, options.Apply())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// intersect(A, B) = intersect(B, A).
func TestIntersectSegmentsCommutative(t *testing.T) {
	a, b := trident(), squareBoundary()

	ab, err := boolean.IntersectSegments(a, b, options.Apply())
	require.NoError(t, err)
	ba, err := boolean.IntersectSegments(b, a, options.Apply())
	require.NoError(t, err)

	assert.True(t, ab.Eq(ba), "intersect(A,B) = %v, intersect(B,A) = %v", ab, ba)
}

// The symmetric difference equals the union of the two one-sided
// differences.
func TestSymmetricSubtractSegmentsDecomposition(t *testing.T) {
	a, b := trident(), squareBoundary()

	symmetric, err := boolean.SymmetricSubtractSegments(a, b, options.Apply())
	require.NoError(t, err)

	aMinusB, err := boolean.SubtractSegments(a, b, options.Apply())
	require.NoError(t, err)
	bMinusA, err := boolean.SubtractSegments(b, a, options.Apply())
	require.NoError(t, err)
	decomposed, err := boolean.UniteSegments(aMinusB, bMinusA, options.Apply())
	require.NoError(t, err)

	assert.True(t, symmetric.Eq(decomposed), "symmetric=%v decomposed=%v", symmetric, decomposed)
}

// Complete intersection of two identical multisegments returns the
// operand itself as the 1D part with no 0D residue.
func TestCompleteIntersectSegmentsIdenticalOperands(t *testing.T) {
	a := trident()

	points, segs, err := boolean.CompleteIntersectSegments(a, a, options.Apply())
	require.NoError(t, err)

	assert.Empty(t, points)
	assert.True(t, segs.Eq(a.Sorted()), "got %v, want %v", segs, a.Sorted())
}
