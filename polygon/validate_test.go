package polygon_test

import (
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsSquare(t *testing.T) {
	assert.NoError(t, square().Validate())
}

func TestValidateRejectsTooFewVertices(t *testing.T) {
	c := polygon.Contour[int]{point.New(0, 0), point.New(1, 1)}
	assert.ErrorIs(t, c.Validate(), polygon.ErrInvalidInput)
}

func TestValidateRejectsZeroArea(t *testing.T) {
	c := polygon.Contour[int]{point.New(0, 0), point.New(1, 0), point.New(2, 0)}
	assert.ErrorIs(t, c.Validate(), polygon.ErrInvalidInput)
}

func TestValidateRejectsSelfIntersectingBowtie(t *testing.T) {
	c := polygon.Contour[int]{point.New(0, 0), point.New(4, 4), point.New(4, 0), point.New(0, 4)}
	assert.ErrorIs(t, c.Validate(), polygon.ErrInvalidInput)
}

func TestPolygonValidateRejectsHoleOutsideShell(t *testing.T) {
	shell := square()
	hole := polygon.Contour[int]{point.New(20, 20), point.New(21, 20), point.New(21, 21), point.New(20, 21)}

	p := polygon.New(shell, hole)
	assert.ErrorIs(t, p.Validate(), polygon.ErrInvalidInput)
}

func TestPolygonContainsRespectsHoles(t *testing.T) {
	shell := polygon.Contour[int]{point.New(0, 0), point.New(8, 0), point.New(8, 8), point.New(0, 8)}
	hole := polygon.Contour[int]{point.New(2, 2), point.New(4, 2), point.New(4, 4), point.New(2, 4)}
	p := polygon.New(shell, hole)

	assert.NoError(t, p.Validate())
	assert.Equal(t, types.PointOutside, p.Contains(point.New(3, 3)))
	assert.Equal(t, types.PointInside, p.Contains(point.New(6, 6)))
}
