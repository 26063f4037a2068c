package sweep_test

import (
	"math/big"
	"testing"

	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/stretchr/testify/assert"
)

func ratPoint(x, y int64) segment.RatPoint {
	return segment.RatPoint{X: new(big.Rat).SetInt64(x), Y: new(big.Rat).SetInt64(y)}
}

func input(fromLeft bool, x1, y1, x2, y2 int64) sweep.Input {
	a, b := ratPoint(x1, y1), ratPoint(x2, y2)
	if b.Compare(a) < 0 {
		a, b = b, a
	}
	return sweep.Input{Lo: a, Hi: b, FromLeft: fromLeft}
}

// A's trident shares two full edges with B's square boundary: the sweep
// should detect both as exact coincidences rather than splitting them,
// leaving the diagonal and the two untouched square edges alone.
func TestRunOverlapsAreMarked(t *testing.T) {
	a := []sweep.Input{
		input(true, 0, 0, 0, 1),
		input(true, 0, 0, 1, 1),
		input(true, 0, 0, 1, 0),
	}
	b := []sweep.Input{
		input(false, 0, 0, 1, 0),
		input(false, 1, 0, 1, 1),
		input(false, 1, 1, 0, 1),
		input(false, 0, 1, 0, 0),
	}

	res := sweep.Run(sweep.ModeLinear, append(a, b...), options.Apply())

	assert.Len(t, res.Pieces, 7, "no interior crossings: every original segment survives as one piece")

	overlapCount, redundantCount := 0, 0
	for _, id := range res.Pieces {
		ev := res.Arena.Get(id)
		if ev.Overlap {
			overlapCount++
		}
		if ev.Redundant {
			redundantCount++
		}
	}
	assert.Equal(t, 4, overlapCount, "two coincident pairs => 4 pieces flagged Overlap")
	assert.Equal(t, 2, redundantCount, "one piece per coincident pair is the suppressed duplicate")
}

// TestRunSplitsCrossingSegments checks the classic crossing-diagonals
// case through the full sweep: two segments crossing in their interiors
// must each be subdivided into two pieces at the crossing point.
func TestRunSplitsCrossingSegments(t *testing.T) {
	inputs := []sweep.Input{
		input(true, 0, 0, 4, 4),
		input(false, 0, 4, 4, 0),
	}

	res := sweep.Run(sweep.ModeLinear, inputs, options.Apply())

	assert.Len(t, res.Pieces, 4, "each of the two segments splits into two at the crossing")

	mid := new(big.Rat).SetInt64(2)
	for _, id := range res.Pieces {
		lo, hi := res.Arena.SegmentOf(id)
		assert.True(t, lo.X.Cmp(mid) == 0 || hi.X.Cmp(mid) == 0,
			"every piece should touch the crossing point (2,2)")
	}
}
