// Package filter implements the blur engine behind Material shadows.
//
// The engine is a separable Gaussian blur over straight-alpha NRGBA images:
//   - Gaussian kernel with sigma = (radius+1)/3 spanning ceil(radius+1) taps
//     on each side, cached by radius
//   - horizontal pass then vertical pass, reflecting samples at the edges
//   - colour accumulated alpha-weighted so transparent pixels do not bleed
//
// Large square shadows are not blurred as a whole. Only the four border
// strips that remain visible around the casting component are convolved
// (see [BlurTiled]); the interior is left transparent.
//
// Everything in this package is synchronous. The only shared state is the
// kernel cache and the scratch buffer pool, both safe for concurrent use.
package filter
