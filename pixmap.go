package shadow

import (
	"fmt"
	"image"
	"image/color"
)

// maxPixmapPixels bounds the size of a single pixel buffer (1 GiB of RGBA).
const maxPixmapPixels = 1 << 28

// Pixmap is a rectangular buffer of straight-alpha RGBA pixels,
// 4 bytes per pixel in row-major order.
//
// Pixmap implements image.Image with the NRGBA color model so results can
// be handed directly to image/draw or an encoder.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// It panics if either dimension is negative; use [Render] or [Blur] for
// checked allocation.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// allocPixmap is the checked counterpart of NewPixmap.
func allocPixmap(width, height int) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("pixmap size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if height > 0 && width > maxPixmapPixels/height {
		return nil, fmt.Errorf("pixmap size %dx%d: %w", width, height, ErrAllocation)
	}
	return NewPixmap(width, height), nil
}

// pixmapFromNRGBA wraps img without copying when its layout matches a
// Pixmap, and copies otherwise. The caller must own img.
func pixmapFromNRGBA(img *image.NRGBA) *Pixmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if b.Min == (image.Point{}) && img.Stride == w*4 && len(img.Pix) == w*h*4 {
		return &Pixmap{width: w, height: h, data: img.Pix}
	}
	return copyFromNRGBA(img)
}

// copyFromNRGBA copies img into a new pixmap.
func copyFromNRGBA(img *image.NRGBA) *Pixmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pm := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pm.data[y*w*4:(y+1)*w*4], img.Pix[off:off+w*4])
	}
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (straight RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	n := c.nrgba()
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the pixmap return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return fromNRGBA(p.nrgbaAt(x, y))
}

// AlphaAt returns the 8-bit alpha of a single pixel, or 0 outside the pixmap.
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[(y*p.width+x)*4+3]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	n := c.nrgba()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = n.R
		p.data[i+1] = n.G
		p.data[i+2] = n.B
		p.data[i+3] = n.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := NewPixmap(p.width, p.height)
	copy(clone.data, p.data)
	return clone
}

// IsTransparent reports whether every pixel has zero alpha.
func (p *Pixmap) IsTransparent() bool {
	for i := 3; i < len(p.data); i += 4 {
		if p.data[i] != 0 {
			return false
		}
	}
	return true
}

// ToImage returns a copy of the pixmap as an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// nrgbaView returns an image.NRGBA sharing the pixmap's memory.
func (p *Pixmap) nrgbaView() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from an image, converting to straight alpha.
func FromImage(img image.Image) *Pixmap {
	if n, ok := img.(*image.NRGBA); ok {
		return copyFromNRGBA(n)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*width + x) * 4
			pm.data[i+0] = c.R
			pm.data[i+1] = c.G
			pm.data[i+2] = c.B
			pm.data[i+3] = c.A
		}
	}

	return pm
}

func (p *Pixmap) nrgbaAt(x, y int) color.NRGBA {
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	return p.nrgbaAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
