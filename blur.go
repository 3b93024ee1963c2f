package shadow

import (
	"fmt"

	"github.com/gogpu/shadow/internal/filter"
)

// MaxBlurRadius is the largest radius Blur accepts. Larger radii would need
// a kernel of more than 65536 taps and return ErrAllocation.
const MaxBlurRadius = filter.MaxRadius

// BlurOption configures Blur.
type BlurOption func(*blurOptions)

type blurOptions struct {
	whole     bool
	threshold int
}

// WithWholeImage blurs every pixel regardless of image size. Circular and
// round shadows use this, since tiling only suits rectangular silhouettes.
func WithWholeImage() BlurOption {
	return func(o *blurOptions) {
		o.whole = true
	}
}

// WithBlurThreshold overrides DefaultTileThreshold for a single call.
// A threshold of 0 tiles every image.
func WithBlurThreshold(px int) BlurOption {
	return func(o *blurOptions) {
		o.threshold = px
	}
}

// shadowInsets are the tiled blur strips derived from the shadow margins.
var shadowInsets = filter.Insets{
	Top:    OffsetTop,
	Left:   OffsetLeft,
	Bottom: OffsetBottom,
	Right:  OffsetRight,
}

// Blur applies a separable Gaussian blur with edge reflection to src and
// returns a new pixmap. src is not modified.
//
// The kernel has sigma = (radius+1)/3 and 2*ceil(radius+1)+1 taps. A radius
// of 0 returns an unchanged copy.
//
// Unless WithWholeImage is given, images whose width and height both reach
// the tile threshold are blurred strip by strip: only a 2*OffsetTop high top
// strip, a 2*OffsetBottom high bottom strip and 2*OffsetLeft / 2*OffsetRight
// wide side strips are convolved, and the interior of the result is left
// transparent. This matches what remains visible around the component that
// casts the shadow.
func Blur(src *Pixmap, radius float64, opts ...BlurOption) (*Pixmap, error) {
	if src == nil {
		return nil, fmt.Errorf("blur of nil pixmap: %w", ErrInvalidArgument)
	}
	if !finite(radius) || radius < 0 {
		return nil, fmt.Errorf("blur radius %v is not a non-negative number: %w", radius, ErrInvalidArgument)
	}
	if radius > MaxBlurRadius {
		return nil, fmt.Errorf("blur radius %v exceeds %v: %w", radius, MaxBlurRadius, ErrAllocation)
	}

	o := blurOptions{threshold: DefaultTileThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.threshold < 0 {
		return nil, fmt.Errorf("tile threshold %d is negative: %w", o.threshold, ErrInvalidArgument)
	}

	out, strategy := filter.Blur(src.nrgbaView(), radius, filter.Options{
		ForceWhole: o.whole,
		Threshold:  o.threshold,
		Insets:     shadowInsets,
	})

	Logger().Debug("shadow: blur",
		"width", src.width,
		"height", src.height,
		"radius", radius,
		"kernel", filter.KernelSize(radius),
		"strategy", strategy.String(),
	)

	return pixmapFromNRGBA(out), nil
}
