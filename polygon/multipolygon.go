package polygon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lycantropos/clipping/types"
)

// Multipolygon is an unordered collection of [Polygon] regions with
// pairwise-disjoint interiors, the operand and result type for the areal
// Boolean operations.
type Multipolygon[T types.SignedNumber] []Polygon[T]

// Validate checks that every polygon is individually well-formed and that
// no shell lies inside another.
func (m Multipolygon[T]) Validate() error {
	for i, p := range m {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("multipolygon[%d]: %w", i, err)
		}
	}
	for i := 0; i < len(m); i++ {
		for j := i + 1; j < len(m); j++ {
			if m[i].Shell.Contains(m[j].Shell.SmallestVertex()) == types.PointInside {
				return fmt.Errorf("multipolygon: %w: shells %d and %d overlap", ErrInvalidInput, i, j)
			}
			if m[j].Shell.Contains(m[i].Shell.SmallestVertex()) == types.PointInside {
				return fmt.Errorf("multipolygon: %w: shells %d and %d overlap", ErrInvalidInput, i, j)
			}
		}
	}
	return nil
}

// Sorted returns m with polygons ordered by the lexicographically smallest
// vertex of their shell, and holes within each polygon by their own
// smallest vertex.
func (m Multipolygon[T]) Sorted() Multipolygon[T] {
	out := make(Multipolygon[T], len(m))
	copy(out, m)

	for i := range out {
		holes := make([]Contour[T], len(out[i].Holes))
		copy(holes, out[i].Holes)
		sort.Slice(holes, func(a, b int) bool {
			return holes[a].SmallestVertex().Less(holes[b].SmallestVertex())
		})
		out[i].Holes = holes
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].Shell.SmallestVertex().Less(out[b].Shell.SmallestVertex())
	})
	return out
}

// String renders the multipolygon as its polygons joined by "; ".
func (m Multipolygon[T]) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}
