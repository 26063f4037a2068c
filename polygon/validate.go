package polygon

import (
	"fmt"

	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/types"
)

// Validate checks that c is well-formed: at least 3 vertices, non-zero
// area, and no self-intersecting edges other than consecutive edges
// touching at their shared vertex. The pairwise edge check uses
// [segment.Intersect], so the result is exact for exact coordinates.
func (c Contour[T]) Validate() error {
	if len(c) < 3 {
		return fmt.Errorf("%w: contour has fewer than 3 vertices", ErrInvalidInput)
	}
	if c.Orientation() == types.PointsCollinear {
		return fmt.Errorf("%w: contour has zero area", ErrInvalidInput)
	}

	edges := c.Segments()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)

			result := segment.Intersect(edges[i], edges[j])
			switch result.Relation {
			case segment.NoIntersection:
				continue
			case segment.OverlapIntersection:
				return fmt.Errorf("%w: edges %v and %v overlap", ErrInvalidInput, edges[i], edges[j])
			case segment.PointIntersection:
				if adjacent {
					// Consecutive edges are expected to touch at their
					// shared vertex; anything else is a self-intersection.
					continue
				}
				return fmt.Errorf("%w: edges %v and %v cross", ErrInvalidInput, edges[i], edges[j])
			}
		}
	}

	return nil
}
