package polygon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/types"
)

// MultiPoint is an unordered collection of points. Complete-intersection
// operations return one alongside a [Multisegment] (and, for areal
// operands, a [Multipolygon]) to capture isolated point contacts that the
// higher-dimensional parts do not already cover.
type MultiPoint[T types.SignedNumber] []point.Point[T]

// Sorted returns a deduplicated copy of m in lexicographic point order,
// the same deterministic ordering the other result types use.
func (m MultiPoint[T]) Sorted() MultiPoint[T] {
	out := make(MultiPoint[T], len(m))
	copy(out, m)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	deduped := out[:0]
	for i, p := range out {
		if i > 0 && p.Eq(out[i-1]) {
			continue
		}
		deduped = append(deduped, p)
	}
	return deduped
}

// String renders the multipoint as its points joined by "; ".
func (m MultiPoint[T]) String() string {
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(parts, "; ")
}
