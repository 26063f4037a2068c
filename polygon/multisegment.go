package polygon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lycantropos/clipping/segment"
	"github.com/lycantropos/clipping/types"
)

// Multisegment is an unordered collection of line segments, possibly
// overlapping; duplicates are not semantically meaningful. It is the
// operand and result type for the linear Boolean operations.
type Multisegment[T types.SignedNumber] []segment.Segment[T]

// Sorted returns a deduplicated copy of m ordered lexicographically by
// canonical (start, end).
func (m Multisegment[T]) Sorted() Multisegment[T] {
	out := make(Multisegment[T], len(m))
	copy(out, m)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})

	deduped := out[:0]
	for i, s := range out {
		if i > 0 && s.Eq(out[i-1]) {
			continue
		}
		deduped = append(deduped, s)
	}
	return deduped
}

// Eq reports whether two multisegments contain the same set of segments,
// ignoring order and duplicates.
func (m Multisegment[T]) Eq(other Multisegment[T]) bool {
	a, b := m.Sorted(), other.Sorted()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

// String renders the multisegment as its segments joined by "; ".
func (m Multisegment[T]) String() string {
	parts := make([]string, len(m))
	for i, s := range m {
		parts[i] = fmt.Sprintf("%v", s)
	}
	return strings.Join(parts, "; ")
}
