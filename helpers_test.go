package shadow

import "testing"

// Test helper functions shared across package tests.

// mustRender renders spec with the default renderer or fails the test.
func mustRender(t *testing.T, spec Spec) *Pixmap {
	t.Helper()
	pm, err := Render(spec)
	if err != nil {
		t.Fatalf("Render(%+v) error: %v", spec, err)
	}
	return pm
}

// mustMask renders the un-blurred silhouette of spec or fails the test.
func mustMask(t *testing.T, spec Spec) *Pixmap {
	t.Helper()
	pm, err := RenderMask(spec)
	if err != nil {
		t.Fatalf("RenderMask(%+v) error: %v", spec, err)
	}
	return pm
}

// alphaBounds returns the extent of pixels whose alpha is at least threshold.
func alphaBounds(pm *Pixmap, threshold uint8) (x0, y0, x1, y1 int) {
	x0, y0 = pm.Width(), pm.Height()
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.AlphaAt(x, y) < threshold {
				continue
			}
			if x < x0 {
				x0 = x
			}
			if y < y0 {
				y0 = y
			}
			if x+1 > x1 {
				x1 = x + 1
			}
			if y+1 > y1 {
				y1 = y + 1
			}
		}
	}
	return x0, y0, x1, y1
}

// coverageArea sums alpha over the pixmap in units of fully covered pixels
// at the given opacity.
func coverageArea(pm *Pixmap, opacity float64) float64 {
	var sum float64
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			sum += float64(pm.AlphaAt(x, y))
		}
	}
	return sum / (255 * opacity)
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
