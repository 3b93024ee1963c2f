package shadow

import (
	"fmt"
	"math"
)

// Renderer renders shadows from a set of elevation curves.
//
// A Renderer holds only immutable configuration and is safe for concurrent
// use. Each call allocates and returns its own buffer.
type Renderer struct {
	elevation Elevation
	threshold int
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*Renderer)

// WithElevation replaces the default elevation curves. The curves should
// pass Elevation.Validate; Config.Renderer checks this for you.
func WithElevation(e Elevation) RendererOption {
	return func(r *Renderer) {
		r.elevation = e
	}
}

// WithTileThreshold sets the smallest side, in pixels, from which square
// shadows use the tiled blur. Negative values are treated as 0.
func WithTileThreshold(px int) RendererOption {
	return func(r *Renderer) {
		if px < 0 {
			px = 0
		}
		r.threshold = px
	}
}

// NewRenderer creates a renderer with the Material curves and
// DefaultTileThreshold, adjusted by opts.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		elevation: DefaultElevation(),
		threshold: DefaultTileThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Elevation returns the renderer's elevation curves.
func (r *Renderer) Elevation() Elevation {
	return r.elevation
}

// TileThreshold returns the renderer's tile threshold.
func (r *Renderer) TileThreshold() int {
	return r.threshold
}

// Render renders the shadow described by spec into a new pixmap of
// spec.Width × spec.Height.
//
// A zero width or height, or an elevation of 0, yields a fully transparent
// buffer. Square shadows are blurred with the size-adaptive tiled blur;
// circular and round shadows are always blurred whole.
func (r *Renderer) Render(spec Spec) (*Pixmap, error) {
	mask, params, err := r.mask(spec)
	if err != nil || params == nil {
		return mask, err
	}

	// Radii are whole pixels; the fractional part of the curve is dropped.
	radius := math.Trunc(params.Radius)
	opts := []BlurOption{WithBlurThreshold(r.threshold)}
	if spec.Shape != Square {
		opts = append(opts, WithWholeImage())
	}

	out, err := Blur(mask, radius, opts...)
	if err != nil {
		return nil, fmt.Errorf("render %v shadow: %w", spec.Shape, err)
	}

	Logger().Debug("shadow: render",
		"shape", spec.Shape.String(),
		"width", spec.Width,
		"height", spec.Height,
		"elevation", spec.Elevation,
		"opacity", params.Opacity,
		"radius", radius,
		"offset", params.Offset,
	)
	return out, nil
}

// RenderMask returns the silhouette Render would blur, before blurring.
func (r *Renderer) RenderMask(spec Spec) (*Pixmap, error) {
	mask, _, err := r.mask(spec)
	return mask, err
}

// mask validates spec and fills its silhouette. params is nil when the
// spec renders a transparent buffer.
func (r *Renderer) mask(spec Spec) (*Pixmap, *Params, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}

	pm, err := allocPixmap(spec.Width, spec.Height)
	if err != nil {
		return nil, nil, err
	}
	if spec.empty() {
		return pm, nil, nil
	}

	params, err := r.elevation.Evaluate(spec.Elevation)
	if err != nil {
		return nil, nil, err
	}

	if s, ok := silhouetteFor(spec, params.Offset); ok {
		fillSilhouette(pm, s, params.Opacity)
	}
	return pm, &params, nil
}

var defaultRenderer = NewRenderer()

// Render renders spec with the default Material curves.
// See Renderer.Render.
func Render(spec Spec) (*Pixmap, error) {
	return defaultRenderer.Render(spec)
}

// RenderMask returns the un-blurred silhouette of spec with the default
// Material curves. See Renderer.RenderMask.
func RenderMask(spec Spec) (*Pixmap, error) {
	return defaultRenderer.RenderMask(spec)
}
