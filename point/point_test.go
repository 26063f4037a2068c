package point_test

import (
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/types"
	"github.com/stretchr/testify/assert"
)

func TestPointEqAndLess(t *testing.T) {
	a := point.New(1, 2)
	b := point.New(1, 2)
	c := point.New(1, 3)
	d := point.New(0, 5)

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
	assert.True(t, a.Less(c))
	assert.True(t, d.Less(a))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1,2)", point.New(1, 2).String())
}

func TestOrientationInteger(t *testing.T) {
	p := point.New(0, 0)
	q := point.New(1, 0)

	assert.Equal(t, types.PointsCounterClockwise, point.Orientation(p, q, point.New(1, 1)))
	assert.Equal(t, types.PointsClockwise, point.Orientation(p, q, point.New(1, -1)))
	assert.Equal(t, types.PointsCollinear, point.Orientation(p, q, point.New(2, 0)))
}

func TestOrientationFloat(t *testing.T) {
	p := point.New(0.0, 0.0)
	q := point.New(1.0, 0.0)

	assert.Equal(t, types.PointsCounterClockwise, point.Orientation(p, q, point.New(1.0, 0.5)))
}

func TestOrientationLargeIntegersDoNotOverflow(t *testing.T) {
	// A naive int64 cross product here would overflow; the exact big.Rat path must not.
	p := point.New[int64](1<<40, 1<<40)
	q := point.New[int64](1<<41, 1<<41+1)
	r := point.New[int64](1<<41+1, 1<<41)

	assert.NotEqual(t, types.PointsCollinear, point.Orientation(p, q, r))
}
