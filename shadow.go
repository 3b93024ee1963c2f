package shadow

import (
	"fmt"
	"math"
)

// Margins reserved around the silhouette so the blur can spread without
// being clipped by the buffer edges. They are shared by every render.
const (
	// OffsetTop is the margin between the top of the buffer and the shadow.
	OffsetTop = 5
	// OffsetLeft is the margin between the left of the buffer and the shadow.
	OffsetLeft = 10
	// OffsetBottom is the margin between the bottom of the buffer and the shadow.
	OffsetBottom = 10
	// OffsetRight is the margin between the right of the buffer and the shadow.
	OffsetRight = 10
)

// Elevation levels.
const (
	// ElevationNone casts no shadow.
	ElevationNone = 0.0
	// ElevationDefault is a low elevation, suitable for most components.
	ElevationDefault = 1.0
	// ElevationHighest is the level at which the curves stop growing.
	ElevationHighest = 2.0
	// ElevationTop is the largest accepted level.
	ElevationTop = 5.0
)

// DefaultTileThreshold is the smallest side, in pixels, from which square
// shadows are blurred strip by strip instead of whole. Stress tests on the
// blur put the break-even point near 150×150.
const DefaultTileThreshold = 150

// Shape selects the silhouette a shadow is cast from.
type Shape int

const (
	// Square is a (rounded) rectangle shadow for panels, windows and paper
	// components in general.
	Square Shape = iota
	// Circular is a perfect circle centered in the buffer, even when the
	// buffer is not square.
	Circular
	// Round is an ellipse filling the shadow area, mainly for floating
	// action buttons.
	Round
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Circular:
		return "circular"
	case Round:
		return "round"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Spec describes a shadow to render. It is a comparable value and can be
// used as a map key.
type Spec struct {
	// Width and Height are the dimensions of the returned buffer, margins
	// included.
	Width, Height int

	// CornerRadius rounds the corners of Square shadows.
	CornerRadius int

	// Elevation is the level in [ElevationNone, ElevationTop].
	Elevation float64

	// Shape selects the silhouette.
	Shape Shape
}

// Validate reports whether the spec can be rendered.
func (s Spec) Validate() error {
	if err := validateLevel(s.Elevation); err != nil {
		return err
	}
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("shadow size %dx%d is negative: %w", s.Width, s.Height, ErrInvalidArgument)
	}
	if s.CornerRadius < 0 {
		return fmt.Errorf("corner radius %d is negative: %w", s.CornerRadius, ErrInvalidArgument)
	}
	switch s.Shape {
	case Square, Circular, Round:
	default:
		return fmt.Errorf("unknown %v: %w", s.Shape, ErrInvalidArgument)
	}
	return nil
}

// empty reports whether the spec renders a fully transparent buffer.
func (s Spec) empty() bool {
	return s.Width == 0 || s.Height == 0 || s.Elevation == ElevationNone
}

func validateLevel(level float64) error {
	if math.IsNaN(level) || level < ElevationNone || level > ElevationTop {
		return fmt.Errorf("elevation %v outside [%v, %v]: %w", level, ElevationNone, ElevationTop, ErrInvalidArgument)
	}
	return nil
}
