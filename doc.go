// Package shadow renders Material Design elevation shadows.
//
// # Overview
//
// A shadow is a soft, semi-transparent silhouette drawn beneath a component
// to suggest that it floats above its background. The amount of elevation,
// a unitless level in [0, 5], drives the shadow's opacity, blur radius and
// vertical offset through three keyframe curves.
//
// Rendering is a pure function of a [Spec]: the renderer fills the
// silhouette (rounded rectangle, circle or ellipse) into a transparent
// [Pixmap], blurs it with an edge-reflecting separable Gaussian blur and
// returns the result. The caller owns the returned buffer.
//
// # Quick Start
//
//	import "github.com/gogpu/shadow"
//
//	pm, err := shadow.Render(shadow.Spec{
//	    Width:        320,
//	    Height:       200,
//	    CornerRadius: 8,
//	    Elevation:    shadow.ElevationDefault,
//	    Shape:        shadow.Square,
//	})
//	if err != nil {
//	    return err
//	}
//	// Composite pm beneath the component; pm implements image.Image.
//
// # Geometry
//
// Every shadow reserves a margin around its silhouette so the blur has room
// to spread without clipping: [OffsetTop], [OffsetLeft], [OffsetBottom] and
// [OffsetRight]. The component casting the shadow is expected to cover the
// rest of the buffer.
//
// # Tiled Blur
//
// Square shadows whose smaller side reaches the tile threshold (150 pixels
// by default) are not blurred as a whole. Only the four border strips that
// stay visible around the component are convolved, and the interior of the
// returned buffer is left transparent. Circular and round shadows are always
// blurred whole.
//
// # Caching
//
// Rendering keeps no state. Components that repaint while idle can wrap a
// [Renderer] in a [Cache] keyed by [Spec].
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug
// records about blur strategies and renders.
package shadow
