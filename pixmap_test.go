package shadow

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 || len(pm.Data()) != 4*3*4 {
		t.Fatalf("NewPixmap(4, 3) = %dx%d, %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}

	c := RGBA2(1, 0.5, 0, 0.25)
	pm.SetPixel(2, 1, c)

	got := pm.GetPixel(2, 1)
	if absf(got.R-1) > 1.0/255 || absf(got.G-0.5) > 1.0/255 || got.B != 0 || absf(got.A-0.25) > 1.0/255 {
		t.Errorf("GetPixel = %+v, want ~%+v", got, c)
	}
	if pm.AlphaAt(2, 1) != 64 {
		t.Errorf("AlphaAt = %d, want 64", pm.AlphaAt(2, 1))
	}

	// Out of bounds is ignored on write and transparent on read.
	pm.SetPixel(-1, 0, Black)
	pm.SetPixel(4, 0, Black)
	if pm.GetPixel(10, 10) != Transparent || pm.AlphaAt(-1, 2) != 0 {
		t.Error("out-of-bounds read is not transparent")
	}
}

func TestPixmapClearAndTransparent(t *testing.T) {
	pm := NewPixmap(5, 5)
	if !pm.IsTransparent() {
		t.Error("new pixmap is not transparent")
	}
	pm.Clear(Black)
	if pm.IsTransparent() {
		t.Error("cleared pixmap reports transparent")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if pm.AlphaAt(x, y) != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, pm.AlphaAt(x, y))
			}
		}
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.SetPixel(1, 1, Black)

	clone := pm.Clone()
	if !bytes.Equal(clone.Data(), pm.Data()) {
		t.Fatal("clone differs from original")
	}
	clone.SetPixel(0, 0, Black)
	if pm.AlphaAt(0, 0) != 0 {
		t.Error("modifying the clone changed the original")
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(6, 4)
	pm.SetPixel(3, 2, RGBA2(0, 0, 0, 0.5))

	var img image.Image = pm
	if img.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	if got := img.At(3, 2).(color.NRGBA); got.A != 128 {
		t.Errorf("At(3, 2) = %v, want alpha 128", got)
	}
	if got := img.At(-1, 0).(color.NRGBA); got.A != 0 {
		t.Errorf("At(-1, 0) = %v, want transparent", got)
	}

	// Composite onto an opaque white background, as a painter would.
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Over)
	if c := dst.RGBAAt(3, 2); c.R < 120 || c.R > 135 {
		t.Errorf("composited pixel = %v, want mid gray", c)
	}
}

func TestPixmapToImageFromImage(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, RGBA2(0.2, 0.4, 0.6, 0.8))

	img := pm.ToImage()
	if !bytes.Equal(img.Pix, pm.Data()) {
		t.Fatal("ToImage pixels differ")
	}
	img.Pix[0] = 99
	if pm.Data()[0] == 99 {
		t.Error("ToImage shares memory with the pixmap")
	}
	img.Pix[0] = 0

	back := FromImage(img)
	if !bytes.Equal(back.Data(), pm.Data()) {
		t.Error("FromImage(ToImage()) differs")
	}

	// Sub-images and other color models are converted.
	sub := img.SubImage(image.Rect(1, 1, 3, 3))
	if got := FromImage(sub); got.Width() != 2 || got.GetPixel(0, 1) != pm.GetPixel(1, 2) {
		t.Error("FromImage of a sub-image lost its offset")
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	if got := FromImage(gray); got.AlphaAt(1, 1) != 255 || got.Data()[(1*2+1)*4] != 200 {
		t.Errorf("FromImage(gray) pixel = %v", got.GetPixel(1, 1))
	}
}

func TestAllocPixmap(t *testing.T) {
	if _, err := allocPixmap(-1, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative width error = %v, want ErrInvalidArgument", err)
	}
	if _, err := allocPixmap(1<<16, 1<<13); !errors.Is(err, ErrAllocation) {
		t.Errorf("oversized error = %v, want ErrAllocation", err)
	}
	pm, err := allocPixmap(0, 7)
	if err != nil || pm.Width() != 0 || pm.Height() != 7 {
		t.Errorf("allocPixmap(0, 7) = %v, %v", pm, err)
	}
}

func TestPixmapFromNRGBAWrapsOwnedImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	pm := pixmapFromNRGBA(img)
	if &pm.Data()[0] != &img.Pix[0] {
		t.Error("matching layout should be wrapped without copying")
	}

	offset := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	offset.SetNRGBA(6, 6, color.NRGBA{A: 10})
	pm = pixmapFromNRGBA(offset)
	if pm.Width() != 3 || pm.Height() != 2 || pm.AlphaAt(1, 1) != 10 {
		t.Error("offset image was not copied to the origin")
	}
}
