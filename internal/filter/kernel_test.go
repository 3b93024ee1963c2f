package filter

import (
	"fmt"
	"math"
	"testing"
)

func TestGaussianKernelIdentity(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.5} {
		k := GaussianKernel(radius)
		if len(k) != 1 || k[0] != 1 {
			t.Errorf("GaussianKernel(%v) = %v, want [1]", radius, k)
		}
	}
}

func TestGaussianKernelSize(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{0, 1},
		{0.5, 5}, // ceil(1.5)=2
		{1, 5},   // ceil(2)=2
		{6, 15},  // ceil(7)=7
		{18, 39}, // ceil(19)=19
		{2.2, 9}, // ceil(3.2)=4
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("r=%v", tt.radius), func(t *testing.T) {
			k := GaussianKernel(tt.radius)
			if len(k) != tt.want {
				t.Errorf("len(GaussianKernel(%v)) = %d, want %d", tt.radius, len(k), tt.want)
			}
			if KernelSize(tt.radius) != tt.want {
				t.Errorf("KernelSize(%v) = %d, want %d", tt.radius, KernelSize(tt.radius), tt.want)
			}
			if len(k)%2 != 1 {
				t.Errorf("kernel length %d is not odd", len(k))
			}
		})
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, radius := range []float64{0, 0.3, 1, 2, 3, 6, 10, 18, 40} {
		k := GaussianKernel(radius)
		var sum float32
		for _, v := range k {
			sum += v
		}
		if absf32(sum-1) > 1e-5 {
			t.Errorf("GaussianKernel(%v) sums to %v, want 1", radius, sum)
		}
	}
}

func TestGaussianKernelShape(t *testing.T) {
	k := GaussianKernel(6)
	center := KernelCenter(len(k))

	for i := 0; i < center; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Errorf("kernel not symmetric at %d: %v vs %v", i, k[i], k[len(k)-1-i])
		}
		if k[i] > k[i+1] {
			t.Errorf("kernel not increasing toward center at %d", i)
		}
	}
	if k[center] <= k[center-1] {
		t.Error("kernel peak is not at the center")
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(6)
	b := CachedGaussianKernel(6)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel did not reuse the cached slice")
	}

	fresh := GaussianKernel(6)
	if len(a) != len(fresh) {
		t.Fatalf("cached kernel len %d, fresh len %d", len(a), len(fresh))
	}
	for i := range a {
		if a[i] != fresh[i] {
			t.Errorf("cached[%d] = %v, fresh = %v", i, a[i], fresh[i])
		}
	}

	if k := CachedGaussianKernel(0); len(k) != 1 {
		t.Errorf("CachedGaussianKernel(0) len = %d, want 1", len(k))
	}
}

func TestGaussianKernelClampsRadius(t *testing.T) {
	for _, r := range []float64{MaxRadius + 1, 1e15, 1e300, math.Inf(1)} {
		if got := KernelSize(r); got > MaxKernelTaps {
			t.Errorf("KernelSize(%v) = %d, exceeds %d", r, got, MaxKernelTaps)
		}
		if got, want := len(CachedGaussianKernel(r)), KernelSize(MaxRadius); got != want {
			t.Errorf("len(CachedGaussianKernel(%v)) = %d, want %d", r, got, want)
		}
	}
}

func BenchmarkGaussianKernel(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = GaussianKernel(18)
	}
}
