package polygon

import (
	"encoding/json"
	"fmt"

	"github.com/lycantropos/clipping/point"
	"github.com/lycantropos/clipping/types"
)

// Polygon is a single areal region: an outer shell wound counterclockwise,
// with zero or more holes wound clockwise.
type Polygon[T types.SignedNumber] struct {
	Shell Contour[T]
	Holes []Contour[T]
}

// New builds a Polygon, normalizing the shell to counterclockwise and every
// hole to clockwise orientation regardless of the winding the caller passed
// in.
func New[T types.SignedNumber](shell Contour[T], holes ...Contour[T]) Polygon[T] {
	if shell.Orientation() == types.PointsClockwise {
		shell = shell.Reverse()
	}
	normalizedHoles := make([]Contour[T], len(holes))
	for i, h := range holes {
		if h.Orientation() == types.PointsCounterClockwise {
			h = h.Reverse()
		}
		normalizedHoles[i] = h
	}
	return Polygon[T]{Shell: shell, Holes: normalizedHoles}
}

// Validate checks that the shell and every hole are individually
// well-formed, and that every hole actually lies within the shell.
func (p Polygon[T]) Validate() error {
	if err := p.Shell.Validate(); err != nil {
		return fmt.Errorf("polygon shell: %w", err)
	}
	for i, hole := range p.Holes {
		if err := hole.Validate(); err != nil {
			return fmt.Errorf("polygon hole %d: %w", i, err)
		}
		if p.Shell.Contains(hole.SmallestVertex()) == types.PointOutside {
			return fmt.Errorf("polygon hole %d: %w: hole lies outside its shell", i, ErrInvalidInput)
		}
	}
	return nil
}

// Contains reports where pt falls relative to the polygon region: inside the
// shell and outside every hole is PointInside; on the shell or any hole
// boundary is PointOnBoundary; anything else is PointOutside.
func (p Polygon[T]) Contains(pt point.Point[T]) types.PointPosition {
	switch p.Shell.Contains(pt) {
	case types.PointOutside:
		return types.PointOutside
	case types.PointOnBoundary:
		return types.PointOnBoundary
	}

	for _, hole := range p.Holes {
		switch hole.Contains(pt) {
		case types.PointInside:
			return types.PointOutside
		case types.PointOnBoundary:
			return types.PointOnBoundary
		}
	}
	return types.PointInside
}

// String renders the polygon as its shell followed by each hole in
// parentheses.
func (p Polygon[T]) String() string {
	s := p.Shell.String()
	for _, h := range p.Holes {
		s += fmt.Sprintf(" (%v)", h)
	}
	return s
}

// MarshalJSON serializes Polygon as its shell and hole contours, the shape
// [cmd/clipdemo] reads/writes multipolygon operands and results in.
func (p Polygon[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Shell Contour[T]   `json:"shell"`
		Holes []Contour[T] `json:"holes,omitempty"`
	}{Shell: p.Shell, Holes: p.Holes})
}

// UnmarshalJSON deserializes JSON into a Polygon, the counterpart to
// [Polygon.MarshalJSON]. Unlike [New], it does not re-normalize shell/hole
// orientation; callers that need that should call New explicitly.
func (p *Polygon[T]) UnmarshalJSON(data []byte) error {
	var temp struct {
		Shell Contour[T]   `json:"shell"`
		Holes []Contour[T] `json:"holes,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.Shell, p.Holes = temp.Shell, temp.Holes
	return nil
}
