package filter

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Strategy identifies how Blur processed an image.
type Strategy int

const (
	// StrategyIdentity copies the image unchanged (zero radius).
	StrategyIdentity Strategy = iota
	// StrategyWhole convolves every pixel of the image.
	StrategyWhole
	// StrategyTiled convolves only the four border strips.
	StrategyTiled
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyIdentity:
		return "identity"
	case StrategyWhole:
		return "whole"
	case StrategyTiled:
		return "tiled"
	default:
		return "unknown"
	}
}

// Insets are the margins reserved around a shadow's shape. The tiled blur
// keeps strips twice as thick as each inset.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Options control Blur.
type Options struct {
	// ForceWhole disables tiling regardless of image size.
	ForceWhole bool

	// Threshold is the smallest dimension, in pixels, at which tiling kicks
	// in. Images with min(width, height) < Threshold are blurred whole.
	Threshold int

	// Insets define the strip thicknesses used when tiling.
	Insets Insets
}

// Choose returns the strategy Blur would use for an image of the given size.
func (o Options) Choose(width, height int, radius float64) Strategy {
	switch {
	case radius <= 0 || math.IsNaN(radius):
		return StrategyIdentity
	case o.ForceWhole, width < o.Threshold, height < o.Threshold:
		return StrategyWhole
	default:
		return StrategyTiled
	}
}

// Blur blurs src by radius and returns a freshly allocated image along with
// the strategy used. src is never modified.
func Blur(src *image.NRGBA, radius float64, opts Options) (*image.NRGBA, Strategy) {
	b := src.Bounds()
	strategy := opts.Choose(b.Dx(), b.Dy(), radius)

	switch strategy {
	case StrategyIdentity:
		dst := image.NewNRGBA(b)
		copyNRGBA(dst, src)
		return dst, strategy
	case StrategyWhole:
		return BlurSeparable(src, CachedGaussianKernel(radius)), strategy
	default:
		return BlurTiled(src, CachedGaussianKernel(radius), opts.Insets), strategy
	}
}

// Strips returns the regions of bounds that stay visible around a casting
// component: a top strip of height 2*Top, a bottom strip of height 2*Bottom,
// and left/right strips of width 2*Left and 2*Right spanning the rows in
// between. Empty regions are omitted.
func Strips(bounds image.Rectangle, in Insets) []image.Rectangle {
	midTop := bounds.Min.Y + 2*in.Top
	midBottom := bounds.Max.Y - 2*in.Bottom

	candidates := [...]image.Rectangle{
		{Min: bounds.Min, Max: image.Pt(bounds.Max.X, midTop)},
		{Min: image.Pt(bounds.Min.X, midBottom), Max: bounds.Max},
		{Min: image.Pt(bounds.Min.X, midTop), Max: image.Pt(bounds.Min.X+2*in.Left, midBottom)},
		{Min: image.Pt(bounds.Max.X-2*in.Right, midTop), Max: image.Pt(bounds.Max.X, midBottom)},
	}

	strips := make([]image.Rectangle, 0, len(candidates))
	for _, r := range candidates {
		// Rectangle literals are not canonicalized, so an inverted strip
		// reports Empty instead of flipping.
		r = r.Intersect(bounds)
		if !r.Empty() {
			strips = append(strips, r)
		}
	}
	return strips
}

// BlurTiled blurs each strip from Strips independently, reflecting at the
// strip edges, and pastes the results into a transparent image with the
// bounds of src. The interior is never read and stays transparent.
func BlurTiled(src *image.NRGBA, kernel []float32, in Insets) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())

	for _, r := range Strips(src.Bounds(), in) {
		strip := BlurSeparable(src.SubImage(r).(*image.NRGBA), kernel)
		xdraw.Draw(dst, r, strip, r.Min, xdraw.Src)
	}
	return dst
}
