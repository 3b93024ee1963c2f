package filter

import (
	"math"

	"github.com/gogpu/shadow/internal/cache"
)

// MaxKernelTaps bounds the length of a Gaussian kernel.
const MaxKernelTaps = 1 << 16

// MaxRadius is the largest radius whose kernel fits in MaxKernelTaps.
// Larger radii are clamped to it.
const MaxRadius = float64(MaxKernelTaps/2 - 2)

// GaussianKernel generates a 1D Gaussian kernel for the given blur radius.
// The kernel is normalized so all values sum to 1.0.
//
// The radius is widened by one pixel before use: the kernel has
// 2*ceil(radius+1)+1 taps and sigma = (radius+1)/3, so the tails reach
// three standard deviations.
//
// Radii above MaxRadius are clamped.
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 || math.IsNaN(radius) {
		return []float32{1.0}
	}

	r := math.Min(radius, MaxRadius) + 1
	halfSize := int(math.Ceil(r))
	size := halfSize*2 + 1

	sigma := r / 3
	twoSigmaSq := 2 * sigma * sigma

	// Weights are summed in float64; the normalization constant of the
	// Gaussian cancels out when dividing by the sum.
	weights := make([]float64, size)
	sum := 0.0
	for i := range weights {
		x := float64(i - halfSize)
		weights[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += weights[i]
	}

	kernel := make([]float32, size)
	for i, w := range weights {
		kernel[i] = float32(w / sum)
	}
	return kernel
}

// KernelSize returns the number of taps GaussianKernel produces for radius.
func KernelSize(radius float64) int {
	if radius <= 0 || math.IsNaN(radius) {
		return 1
	}
	return int(math.Ceil(math.Min(radius, MaxRadius)+1))*2 + 1
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}

// kernelCacheSize bounds the number of distinct radii kept. Shadow radii
// come from a handful of elevation levels, so this is rarely reached.
const kernelCacheSize = 64

var kernels = cache.New[int, []float32](kernelCacheSize)

// CachedGaussianKernel returns a cached Gaussian kernel for the radius.
// Radii are quantized to 0.01 pixel and clamped to MaxRadius. The
// returned slice is shared and must not be modified.
func CachedGaussianKernel(radius float64) []float32 {
	if radius <= 0 || math.IsNaN(radius) {
		return GaussianKernel(0)
	}
	key := int(math.Round(math.Min(radius, MaxRadius) * 100))
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}
