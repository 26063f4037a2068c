package polygon_test

import (
	"testing"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/polygon"
	"github.com/lycantropos/clipping/segment"
	"github.com/stretchr/testify/assert"
)

func seg(x1, y1, x2, y2 int) segment.Segment[int] {
	s, _ := segment.New(point.New(x1, y1), point.New(x2, y2))
	return s
}

func TestMultisegmentSortedDedupes(t *testing.T) {
	m := polygon.Multisegment[int]{
		seg(1, 1, 2, 2),
		seg(0, 0, 1, 1),
		seg(1, 1, 2, 2),
	}

	sorted := m.Sorted()
	assert.Len(t, sorted, 2)
	assert.True(t, sorted[0].Eq(seg(0, 0, 1, 1)))
	assert.True(t, sorted[1].Eq(seg(1, 1, 2, 2)))
}

func TestMultisegmentEqIgnoresOrderAndDuplicates(t *testing.T) {
	a := polygon.Multisegment[int]{seg(0, 0, 1, 1), seg(1, 1, 2, 2)}
	b := polygon.Multisegment[int]{seg(1, 1, 2, 2), seg(1, 1, 2, 2), seg(0, 0, 1, 1)}

	assert.True(t, a.Eq(b))
}
