// Package numutil centralizes the rounding and clamping discipline used
// across the engine: timestamps round to 3 decimals, reported metrics to 2,
// always through Round so fixtures stay stable across platforms.
package numutil

import "math"

func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }
