package shadow

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the control point distance, relative to the radius, for a cubic
// Bézier approximating a quarter circle.
const kappa = 0.5522847498307936

// silhouette is the area a shadow is cast from, in buffer coordinates.
type silhouette struct {
	x, y, w, h float64
	// radius rounds the corners of rectangles; ellipse ignores it.
	radius  float64
	ellipse bool
}

// silhouetteFor lays out the silhouette of spec for the given offset.
// ok is false when the margins leave no room for a shape.
func silhouetteFor(spec Spec, offset float64) (s silhouette, ok bool) {
	insetW := float64(spec.Width - OffsetLeft - OffsetRight)
	insetH := float64(spec.Height - OffsetTop - OffsetBottom)

	switch spec.Shape {
	case Circular:
		d := math.Min(insetW, insetH)
		s = silhouette{
			x:       (float64(spec.Width) - d) / 2,
			y:       (float64(spec.Height) - d) / 2,
			w:       d,
			h:       d,
			ellipse: true,
		}
	default:
		x := OffsetLeft + offset
		y := OffsetTop + offset
		s = silhouette{
			x:       x,
			y:       y,
			w:       float64(spec.Width-OffsetRight) - x,
			h:       float64(spec.Height-OffsetBottom) - y,
			radius:  float64(spec.CornerRadius),
			ellipse: spec.Shape == Round,
		}
	}
	return s, s.w > 0 && s.h > 0
}

// fillSilhouette rasterizes s into p as black with the given opacity.
// Edges are anti-aliased; coverage scales the alpha.
func fillSilhouette(p *Pixmap, s silhouette, opacity float64) {
	if opacity <= 0 || p.width == 0 || p.height == 0 {
		return
	}

	z := vector.NewRasterizer(p.width, p.height)
	z.DrawOp = draw.Src
	if s.ellipse {
		ellipsePath(z, s.x+s.w/2, s.y+s.h/2, s.w/2, s.h/2)
	} else {
		roundRectPath(z, s.x, s.y, s.w, s.h, s.radius)
	}

	coverage := image.NewAlpha(image.Rect(0, 0, p.width, p.height))
	z.Draw(coverage, coverage.Bounds(), image.Opaque, image.Point{})

	alpha := math.Min(opacity, 1)
	for i, c := range coverage.Pix {
		if c == 0 {
			continue
		}
		// Color channels stay black; only alpha carries the shadow.
		p.data[i*4+3] = uint8(float64(c)*alpha + 0.5)
	}
}

// roundRectPath adds a rectangle whose corners are quarter circles of
// radius r, clamped to half the shorter side.
func roundRectPath(z *vector.Rasterizer, x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		z.MoveTo(f32(x), f32(y))
		z.LineTo(f32(x+w), f32(y))
		z.LineTo(f32(x+w), f32(y+h))
		z.LineTo(f32(x), f32(y+h))
		z.ClosePath()
		return
	}

	k := r * kappa
	right, bottom := x+w, y+h

	z.MoveTo(f32(x+r), f32(y))
	z.LineTo(f32(right-r), f32(y))
	z.CubeTo(f32(right-r+k), f32(y), f32(right), f32(y+r-k), f32(right), f32(y+r))
	z.LineTo(f32(right), f32(bottom-r))
	z.CubeTo(f32(right), f32(bottom-r+k), f32(right-r+k), f32(bottom), f32(right-r), f32(bottom))
	z.LineTo(f32(x+r), f32(bottom))
	z.CubeTo(f32(x+r-k), f32(bottom), f32(x), f32(bottom-r+k), f32(x), f32(bottom-r))
	z.LineTo(f32(x), f32(y+r))
	z.CubeTo(f32(x), f32(y+r-k), f32(x+r-k), f32(y), f32(x+r), f32(y))
	z.ClosePath()
}

// ellipsePath adds an axis-aligned ellipse as four cubic arcs.
func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(f32(cx+rx), f32(cy))
	z.CubeTo(f32(cx+rx), f32(cy+ky), f32(cx+kx), f32(cy+ry), f32(cx), f32(cy+ry))
	z.CubeTo(f32(cx-kx), f32(cy+ry), f32(cx-rx), f32(cy+ky), f32(cx-rx), f32(cy))
	z.CubeTo(f32(cx-rx), f32(cy-ky), f32(cx-kx), f32(cy-ry), f32(cx), f32(cy-ry))
	z.CubeTo(f32(cx+kx), f32(cy-ry), f32(cx+rx), f32(cy-ky), f32(cx+rx), f32(cy))
	z.ClosePath()
}

func f32(v float64) float32 { return float32(v) }
