package sweep_test

import (
	"testing"

	"github.com/lycantropos/clipping/options"
	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/sweep"
	"github.com/stretchr/testify/assert"
)

// eventPoints collects every distinct point where some piece of the sweep's
// result starts or ends, for comparison against [sweep.BruteForce]'s oracle
// output.
func eventPoints(res *sweep.Result) map[string]segment.RatPoint {
	points := make(map[string]segment.RatPoint)
	for _, id := range res.Pieces {
		lo, hi := res.Arena.SegmentOf(id)
		points[lo.X.RatString()+","+lo.Y.RatString()] = lo
		points[hi.X.RatString()+","+hi.Y.RatString()] = hi
	}
	return points
}

// TestBruteForceAgreesWithRunOnCrossingSegments cross-checks [sweep.Run]
// against [sweep.BruteForce] on the classic crossing-diagonals case: the
// brute-force oracle's single crossing must be among the sweep's piece
// endpoints.
func TestBruteForceAgreesWithRunOnCrossingSegments(t *testing.T) {
	inputs := []sweep.Input{
		input(true, 0, 0, 4, 4),
		input(false, 0, 4, 4, 0),
	}

	res := sweep.Run(sweep.ModeLinear, inputs, options.Apply())
	found := eventPoints(res)

	oracle := sweep.BruteForce(inputs)
	require := assert.New(t)
	require.Len(oracle, 1, "exactly one crossing point")
	key := oracle[0].X.RatString() + "," + oracle[0].Y.RatString()
	_, ok := found[key]
	require.True(ok, "brute-force crossing %v must appear among sweep's piece endpoints", oracle[0])
}

// TestBruteForceAgreesWithRunOnOverlappingTrident cross-checks the
// trident/square fixture: every point the brute-force oracle reports as
// shared by two segments must also be a piece endpoint of sweep.Run.
func TestBruteForceAgreesWithRunOnOverlappingTrident(t *testing.T) {
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
	inputs := append(a, b...)

	res := sweep.Run(sweep.ModeLinear, inputs, options.Apply())
	found := eventPoints(res)

	oracle := sweep.BruteForce(inputs)
	for _, p := range oracle {
		key := p.X.RatString() + "," + p.Y.RatString()
		_, ok := found[key]
		assert.True(t, ok, "brute-force crossing %v missing from sweep's reported piece endpoints", p)
	}
}
