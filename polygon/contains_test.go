package polygon_test

import (
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/types"
	"github.com/stretchr/testify/assert"
)

func TestContourContains(t *testing.T) {
	c := square()

	assert.Equal(t, types.PointInside, c.Contains(point.New(2, 2)))
	assert.Equal(t, types.PointOutside, c.Contains(point.New(5, 5)))
	assert.Equal(t, types.PointOnBoundary, c.Contains(point.New(0, 2)))
	assert.Equal(t, types.PointOnBoundary, c.Contains(point.New(4, 4)))
}

func TestContourContainsConcave(t *testing.T) {
	// A "C" shaped notch: (2,5) is in the bounding box but outside the shape.
	notch := polygon.Contour[int]{
		point.New(0, 0), point.New(10, 0), point.New(10, 10), point.New(0, 10),
		point.New(0, 6), point.New(6, 6), point.New(6, 4), point.New(0, 4),
	}
	assert.Equal(t, types.PointInside, notch.Contains(point.New(8, 5)))
	assert.Equal(t, types.PointOutside, notch.Contains(point.New(2, 5)))
}
