package polygon

import "errors"

// ErrInvalidInput is returned when a contour or polygon fails its
// well-formedness checks: fewer than 3 vertices, zero area, a
// self-intersecting boundary, a hole outside its shell, or a multipolygon
// with overlapping shells. Repeated consecutive vertices are not rejected:
// [Contour.Segments] skips the zero-length edges they form. The engine
// rejects invalid input rather than attempting to repair it.
var ErrInvalidInput = errors.New("polygon: invalid input")
