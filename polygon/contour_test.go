package polygon_test

import (
	"math/big"
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/types"
	"github.com/stretchr/testify/assert"
)

func square() polygon.Contour[int] {
	return polygon.Contour[int]{
		point.New(0, 0),
		point.New(4, 0),
		point.New(4, 4),
		point.New(0, 4),
	}
}

func TestAreaAndOrientationCCW(t *testing.T) {
	c := square()
	assert.Equal(t, 0, c.Area2XSigned().Cmp(big.NewRat(32, 1)))
	assert.Equal(t, types.PointsCounterClockwise, c.Orientation())
}

func TestReverseFlipsOrientation(t *testing.T) {
	c := square().Reverse()
	assert.Equal(t, types.PointsClockwise, c.Orientation())
}

func TestCanonicalStart(t *testing.T) {
	c := polygon.Contour[int]{point.New(4, 4), point.New(0, 4), point.New(0, 0), point.New(4, 0)}
	rotated := c.CanonicalStart()
	assert.Equal(t, point.New(0, 0), rotated[0])
}

func TestSegmentsSkipsDegenerateEdges(t *testing.T) {
	c := polygon.Contour[int]{point.New(0, 0), point.New(0, 0), point.New(4, 0), point.New(0, 4)}
	assert.Len(t, c.Segments(), 3)
}
