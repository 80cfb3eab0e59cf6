package engine

import "math"

// Fast math functions for the per-particle animation hot path.
// These avoid float32->float64 conversions that Go's math package requires.

// normalizeAngle wraps angle to [-pi, pi] in constant time. The
// oscillator phase grows with session clock, so the reduction must not
// cost more for larger angles.
func normalizeAngle(a float32) float32 {
	if a >= -math.Pi && a <= math.Pi {
		return a
	}
	const twoPi = 2 * math.Pi
	x := float64(a)
	return float32(x - twoPi*math.Floor((x+math.Pi)/twoPi))
}

// fastSin approximates sin(x) using a polynomial. Accurate to ~0.001 for all x.
func fastSin(x float32) float32 {
	// Normalize to [-π, π]
	x = normalizeAngle(x)
	// Parabola approximation with correction factor
	const pi = math.Pi
	const pi2 = pi * pi
	ax := x
	if ax < 0 {
		ax = -ax
	}
	y := 4 * x * (pi - ax) / pi2
	// Correction: improves accuracy
	return 0.225*(y*absf(y)-y) + y
}

// fastCos approximates cos(x) using fastSin.
func fastCos(x float32) float32 {
	return fastSin(x + math.Pi/2)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
