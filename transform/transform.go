// Package transform provides the element-wise scale transforms commonly
// applied to cytometry channels before gating or display. Each constructor
// returns a func(float64) float64 suitable for Frame.ApplyTransform.
//
// Transforms are pure functions; range bookkeeping is handled by
// ApplyTransform itself. Inputs outside a transform's domain produce the
// usual IEEE results (log10 of a negative value is NaN, log10 of zero is
// -Inf), which ApplyTransform writes through but excludes from the
// recomputed channel range.
package transform

import "math"

// Linear returns the affine transform slope*x + intercept.
func Linear(slope, intercept float64) func(float64) float64 {
	return func(x float64) float64 {
		return slope*x + intercept
	}
}

// Log10 returns the base-10 logarithm transform.
//
// Values at or below zero produce -Inf or NaN respectively; use TruncLog10
// when low-end clipping is wanted instead.
func Log10() func(float64) float64 {
	return math.Log10
}

// TruncLog10 returns a base-10 logarithm transform that clips inputs below
// floor to floor before taking the logarithm. floor must be positive; the
// conventional choice is 1, mapping the clipped region to 0.
func TruncLog10(floor float64) func(float64) float64 {
	return func(x float64) float64 {
		if x < floor {
			x = floor
		}

		return math.Log10(x)
	}
}

// Arcsinh returns the inverse hyperbolic sine transform asinh(x/cofactor).
// It behaves linearly near zero and logarithmically for large magnitudes,
// which keeps negative compensated values meaningful. Typical cofactors are
// 150 for conventional flow data and 5 for mass cytometry.
func Arcsinh(cofactor float64) func(float64) float64 {
	return func(x float64) float64 {
		return math.Asinh(x / cofactor)
	}
}
