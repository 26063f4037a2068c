package types

import "fmt"

// PointPosition describes where a point falls relative to a polygon region:
// strictly inside, exactly on the boundary, or strictly outside.
type PointPosition uint8

const (
	// PointOutside indicates the point lies strictly outside the region.
	PointOutside PointPosition = iota

	// PointOnBoundary indicates the point lies exactly on the region's boundary.
	PointOnBoundary

	// PointInside indicates the point lies strictly inside the region.
	PointInside
)

// String returns a human-readable name for the PointPosition constant.
func (p PointPosition) String() string {
	switch p {
	case PointOutside:
		return "PointOutside"
	case PointOnBoundary:
		return "PointOnBoundary"
	case PointInside:
		return "PointInside"
	default:
		panic(fmt.Errorf("unsupported PointPosition: %d", p))
	}
}
