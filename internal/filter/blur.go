package filter

import (
	"image"
	"sync"
)

// BlurSeparable convolves src with kernel horizontally, then vertically,
// and returns a new image with the same bounds as src.
//
// Samples that fall outside src are reflected back across the nearest edge
// (..., 2, 1, 0 | 0, 1, 2, ...), so a uniform image stays uniform right up
// to its borders. src may be a sub-image; only its bounds are read.
func BlurSeparable(src *image.NRGBA, kernel []float32) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)

	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return dst
	}
	if len(kernel) <= 1 {
		copyNRGBA(dst, src)
		return dst
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, width, height, kernel)
	blurVertical(temp, dst, width, height, kernel)

	return dst
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes premultiplied float values to temp.
func blurHorizontal(src *image.NRGBA, temp []float32, width, height int, kernel []float32) {
	halfKernel := KernelCenter(len(kernel))
	xs := reflectIndices(width, halfKernel)
	b := src.Bounds()

	for y := 0; y < height; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, bl, a float32

			for k, weight := range kernel {
				i := xs[x+k] * 4
				pa := float32(row[i+3])
				if pa == 0 {
					continue
				}
				wa := weight * pa / 255
				r += float32(row[i+0]) * wa
				g += float32(row[i+1]) * wa
				bl += float32(row[i+2]) * wa
				a += pa * weight
			}

			tempIdx := (y*width + x) * 4
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = bl
			temp[tempIdx+3] = a
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads premultiplied values from temp, writes straight alpha to dst.
func blurVertical(temp []float32, dst *image.NRGBA, width, height int, kernel []float32) {
	halfKernel := KernelCenter(len(kernel))
	ys := reflectIndices(height, halfKernel)
	b := dst.Bounds()

	for y := 0; y < height; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, b.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, bl, a float32

			for k, weight := range kernel {
				tempIdx := (ys[y+k]*width + x) * 4
				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				bl += temp[tempIdx+2] * weight
				a += temp[tempIdx+3] * weight
			}

			i := x * 4
			if a <= 0 {
				row[i+0], row[i+1], row[i+2], row[i+3] = 0, 0, 0, 0
				continue
			}
			unpremul := 255 / a
			row[i+0] = clampUint8(r * unpremul)
			row[i+1] = clampUint8(g * unpremul)
			row[i+2] = clampUint8(bl * unpremul)
			row[i+3] = clampUint8(a)
		}
	}
}

// reflectIndices returns a lookup table of length n+2*pad where entry i is
// the in-range index sampled for position i-pad. Out-of-range positions are
// mirrored across the edges, repeatedly if pad exceeds n.
func reflectIndices(n, pad int) []int {
	idx := make([]int, n+2*pad)
	for i := range idx {
		idx[i] = reflect(i-pad, n)
	}
	return idx
}

// reflect maps i onto [0, n) by symmetric reflection. n must be positive.
func reflect(i, n int) int {
	period := 2 * n
	m := i % period
	if m < 0 {
		m += period
	}
	if m >= n {
		m = period - 1 - m
	}
	return m
}

// copyNRGBA copies src into dst; both must have the same size.
func copyNRGBA(dst, src *image.NRGBA) {
	sb, db := src.Bounds(), dst.Bounds()
	rowBytes := sb.Dx() * 4
	for y := 0; y < sb.Dy(); y++ {
		s := src.PixOffset(sb.Min.X, sb.Min.Y+y)
		d := dst.PixOffset(db.Min.X, db.Min.Y+y)
		copy(dst.Pix[d:d+rowBytes], src.Pix[s:s+rowBytes])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for the intermediate horizontal pass.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer retrieves a temporary buffer of width*height*4 elements.
// Every element is overwritten by blurHorizontal, so it is not cleared.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers (64MB max).
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
