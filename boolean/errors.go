// Package boolean exposes the planar Boolean set operations: the
// top-level entry points that seed events from operand geometry, run the
// sweep (package sweep), apply the operation-specific selector, and
// reconstruct linear or areal output.
package boolean

import "errors"

// ErrInvalidInput is returned when a multipolygon operand fails validation:
// a self-intersecting polygon boundary or a multipolygon with overlapping
// shells. Multisegment operands are not validated here; a degenerate
// segment is rejected earlier, by segment.New.
var ErrInvalidInput = errors.New("boolean: invalid input")

// ErrUnsupportedOperands is returned for operand combinations this package
// does not implement.
var ErrUnsupportedOperands = errors.New("boolean: unsupported operand combination")

// ErrNotExact is returned when a reconstructed output vertex does not lie
// on an integer T's lattice, as when two integer-coordinate segments cross
// at a non-integer point that an integer coordinate type cannot represent.
// Callers working in integer coordinates that expect this can switch to a
// floating T, which always succeeds (see numeric.FromRat).
var ErrNotExact = errors.New("boolean: result vertex is not exactly representable in the requested coordinate type")
