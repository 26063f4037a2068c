package segment_test

import (
	"math/big"
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/segment"
	"github.com/stretchr/testify/assert"
)

func TestYAt(t *testing.T) {
	s, _ := segment.New(point.New(0, 0), point.New(4, 4))
	y := segment.YAt(s, rat(2))
	assert.Equal(t, 0, y.Cmp(rat(2)))
}

func TestBelowOrdersByVerticalPosition(t *testing.T) {
	lower, _ := segment.New(point.New(0, 0), point.New(4, 0))
	upper, _ := segment.New(point.New(0, 1), point.New(4, 1))

	assert.Equal(t, -1, segment.Below(lower, upper, rat(2)))
	assert.Equal(t, 1, segment.Below(upper, lower, rat(2)))
}

func TestBelowBreaksTieByDirection(t *testing.T) {
	// Both pass through (2,2) at x=2; steep descends, shallow continues up.
	steep, _ := segment.New(point.New(2, 2), point.New(3, 0))
	shallow, _ := segment.New(point.New(2, 2), point.New(3, 3))

	result := segment.Below(steep, shallow, big.NewRat(2, 1))
	assert.Equal(t, -1, result)
}
