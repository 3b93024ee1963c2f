package shadow

import (
	"fmt"
	"math"
	"strings"
)

// Interpolator is the easing applied between two keyframes.
type Interpolator int

const (
	// Linear interpolates along straight segments.
	Linear Interpolator = iota
	// SmoothStep eases in and out of every keyframe (3u² − 2u³).
	SmoothStep
)

// String returns the name used in configuration files.
func (i Interpolator) String() string {
	switch i {
	case Linear:
		return "linear"
	case SmoothStep:
		return "smoothstep"
	default:
		return fmt.Sprintf("Interpolator(%d)", int(i))
	}
}

// ParseInterpolator parses an interpolator name. The empty string is Linear.
func ParseInterpolator(s string) (Interpolator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "smoothstep", "smooth":
		return SmoothStep, nil
	default:
		return Linear, fmt.Errorf("unknown interpolation %q: %w", s, ErrInvalidConfig)
	}
}

// ease maps the segment position u ∈ [0, 1] to an interpolation weight.
func (i Interpolator) ease(u float64) float64 {
	if i == SmoothStep {
		return u * u * (3 - 2*u)
	}
	return u
}

// Keyframe pins a curve to Value at normalized position At.
type Keyframe struct {
	At    float64 `yaml:"at"`
	Value float64 `yaml:"value"`
}

// Curve is a piecewise function of t ∈ [0, 1]. It starts at Start for t = 0,
// passes through each frame in order and holds the last value beyond it.
type Curve struct {
	Start  float64    `yaml:"start"`
	Frames []Keyframe `yaml:"frames"`
}

// At evaluates the curve at t using the given interpolator.
func (c Curve) At(t float64, interp Interpolator) float64 {
	prevAt, prevVal := 0.0, c.Start
	for _, f := range c.Frames {
		if t <= f.At {
			span := f.At - prevAt
			if span <= 0 {
				return f.Value
			}
			u := (t - prevAt) / span
			if u < 0 {
				u = 0
			}
			return prevVal + (f.Value-prevVal)*interp.ease(u)
		}
		prevAt, prevVal = f.At, f.Value
	}
	return prevVal
}

// Validate checks that frames lie in (0, 1], strictly increase and that all
// values are finite.
func (c Curve) Validate() error {
	if !finite(c.Start) {
		return fmt.Errorf("curve start %v is not finite: %w", c.Start, ErrInvalidConfig)
	}
	prev := 0.0
	for i, f := range c.Frames {
		if !finite(f.At) || f.At <= prev || f.At > 1 {
			return fmt.Errorf("keyframe %d at %v must increase within (0, 1]: %w", i, f.At, ErrInvalidConfig)
		}
		if !finite(f.Value) {
			return fmt.Errorf("keyframe %d value %v is not finite: %w", i, f.Value, ErrInvalidConfig)
		}
		prev = f.At
	}
	return nil
}

// bounds returns the smallest and largest value the curve passes through.
// Both interpolators stay within that range.
func (c Curve) bounds() (lo, hi float64) {
	lo, hi = c.Start, c.Start
	for _, f := range c.Frames {
		lo = math.Min(lo, f.Value)
		hi = math.Max(hi, f.Value)
	}
	return lo, hi
}

// Params are the shadow parameters for one elevation level.
type Params struct {
	// Opacity is the alpha of the silhouette, in [0, 1].
	Opacity float64
	// Radius is the blur radius in pixels.
	Radius float64
	// Offset shifts the silhouette away from the top-left margin, in pixels.
	Offset float64
}

// Elevation maps an elevation level to shadow parameters through three
// independent curves. The zero value is not useful; start from
// [DefaultElevation].
type Elevation struct {
	Opacity      Curve
	Radius       Curve
	Offset       Curve
	Interpolator Interpolator
}

// DefaultElevation returns the Material curves: keyframes at levels 1 and 2
// (t = 1/5 and 2/5), held constant above level 2.
//
//	level    0     1     2..5
//	opacity  0     0.2   0.4
//	radius   0     6     18
//	offset   0     1     3
func DefaultElevation() Elevation {
	return Elevation{
		Opacity: Curve{Start: 0, Frames: []Keyframe{{At: 1.0 / 5, Value: 0.2}, {At: 2.0 / 5, Value: 0.4}}},
		Radius:  Curve{Start: 0, Frames: []Keyframe{{At: 1.0 / 5, Value: 6}, {At: 2.0 / 5, Value: 18}}},
		Offset:  Curve{Start: 0, Frames: []Keyframe{{At: 1.0 / 5, Value: 1}, {At: 2.0 / 5, Value: 3}}},
	}
}

// Evaluate returns the shadow parameters for level ∈ [0, 5].
// Levels outside that range return ErrInvalidArgument.
//
// Evaluate has no side effects and is safe for concurrent use.
func (e Elevation) Evaluate(level float64) (Params, error) {
	if err := validateLevel(level); err != nil {
		return Params{}, err
	}
	t := level / ElevationTop
	p := Params{
		Opacity: e.Opacity.At(t, e.Interpolator),
		Radius:  e.Radius.At(t, e.Interpolator),
		Offset:  e.Offset.At(t, e.Interpolator),
	}
	p.Opacity = math.Min(math.Max(p.Opacity, 0), 1)
	return p, nil
}

// Validate checks all three curves.
func (e Elevation) Validate() error {
	for _, c := range []struct {
		name  string
		curve Curve
	}{
		{"opacity", e.Opacity},
		{"radius", e.Radius},
		{"offset", e.Offset},
	} {
		if err := c.curve.Validate(); err != nil {
			return fmt.Errorf("%s curve: %w", c.name, err)
		}
	}
	if lo, hi := e.Radius.bounds(); lo < 0 || hi > MaxBlurRadius {
		return fmt.Errorf("radius curve values must lie in [0, %v]: %w", MaxBlurRadius, ErrInvalidConfig)
	}
	switch e.Interpolator {
	case Linear, SmoothStep:
	default:
		return fmt.Errorf("unknown %v: %w", e.Interpolator, ErrInvalidConfig)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
