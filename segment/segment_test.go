package segment_test

import (
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanonicalizesEndpoints(t *testing.T) {
	p := point.New(1, 1)
	q := point.New(0, 0)

	s, err := segment.New(p, q)
	require.NoError(t, err)
	assert.Equal(t, q, s.Start())
	assert.Equal(t, p, s.End())
}

func TestNewRejectsDegenerateSegment(t *testing.T) {
	p := point.New(1, 1)
	_, err := segment.New(p, p)
	assert.Error(t, err)
}

func TestEqAndCompare(t *testing.T) {
	a, _ := segment.New(point.New(0, 0), point.New(1, 1))
	b, _ := segment.New(point.New(1, 1), point.New(0, 0))
	c, _ := segment.New(point.New(0, 0), point.New(2, 2))

	assert.True(t, a.Eq(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
}

func TestContainsPoint(t *testing.T) {
	s, _ := segment.New(point.New(0, 0), point.New(4, 4))
	assert.True(t, s.ContainsPoint(point.New(2, 2)))
	assert.False(t, s.ContainsPoint(point.New(2, 3)))
	assert.False(t, s.ContainsPoint(point.New(5, 5)))
}

func TestIsVertical(t *testing.T) {
	s, _ := segment.New(point.New(1, 0), point.New(1, 5))
	assert.True(t, s.IsVertical())

	h, _ := segment.New(point.New(0, 1), point.New(5, 1))
	assert.False(t, h.IsVertical())
}

func TestString(t *testing.T) {
	s, _ := segment.New(point.New(0, 0), point.New(1, 1))
	assert.Equal(t, "(0,0)->(1,1)", s.String())
}
