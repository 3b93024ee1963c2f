package shadow

import "image/color"

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	// Black is opaque black.
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
	// Transparent is fully transparent black.
	Transparent = RGBA{R: 0, G: 0, B: 0, A: 0}
)

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.nrgba()
}

func (c RGBA) nrgba() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// FromColor converts a standard color.Color to straight RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fromNRGBA(n)
}

func fromNRGBA(n color.NRGBA) RGBA {
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// toByte converts a [0, 1] component to [0, 255], rounding to nearest.
func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
