package engine

import (
	"math"
	"testing"
)

func TestNormalizeAngleRange(t *testing.T) {
	angles := []float32{
		0, math.Pi, -math.Pi, 3.5, -3.5, 100, -100,
		5760,   // one hour of phase at the default oscillation speed
		-5760,
		172800, // one day
	}
	for _, a := range angles {
		got := normalizeAngle(a)
		if got < -math.Pi-1e-3 || got > math.Pi+1e-3 {
			t.Errorf("normalizeAngle(%v) = %v, outside [-pi, pi]", a, got)
		}
	}
}

func TestFastSinAccuracyAtLargePhase(t *testing.T) {
	// The phase passed to the oscillators is the session clock scaled,
	// so accuracy must hold far beyond one period, not just near zero.
	angles := []float32{0, 0.5, 1.7, -2.9, 3.1, 42, -42, 1000, 5760, -5760}
	for _, a := range angles {
		if got, want := fastSin(a), float32(math.Sin(float64(a))); absf(got-want) > 0.01 {
			t.Errorf("fastSin(%v) = %v, want ~%v", a, got, want)
		}
		if got, want := fastCos(a), float32(math.Cos(float64(a))); absf(got-want) > 0.01 {
			t.Errorf("fastCos(%v) = %v, want ~%v", a, got, want)
		}
	}
}
