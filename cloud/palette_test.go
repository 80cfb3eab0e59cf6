package cloud

import (
	"math"
	"testing"

	"github.com/pthm-cable/orrery/body"
)

func TestSample(t *testing.T) {
	pal := []body.RGB{{R: 0, G: 0, B: 0}, {R: 128, G: 128, B: 128}, {R: 255, G: 255, B: 255}}

	tests := []struct {
		name    string
		palette []body.RGB
		index   float32
		want    body.RGB
	}{
		{"empty palette", nil, 1, body.White},
		{"empty palette nan", nil, float32(math.NaN()), body.White},
		{"zero", pal, 0, pal[0]},
		{"fractional floors", pal, 1.9, pal[1]},
		{"clamp high", pal, 3, pal[2]},
		{"clamp very high", pal, 1e12, pal[2]},
		{"clamp negative", pal, -7.5, pal[0]},
		{"nan treated as zero", pal, float32(math.NaN()), pal[0]},
		{"+inf treated as zero", pal, float32(math.Inf(1)), pal[0]},
		{"-inf treated as zero", pal, float32(math.Inf(-1)), pal[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(tt.palette, tt.index)
			if got != tt.want {
				t.Errorf("Sample(%v) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestSampleMatchesClampFloor(t *testing.T) {
	pal := []body.RGB{{R: 1, G: 0, B: 0}, {R: 2, G: 0, B: 0}, {R: 3, G: 0, B: 0}, {R: 4, G: 0, B: 0}}
	for idx := float32(-3); idx < 8; idx += 0.25 {
		i := int(math.Floor(float64(idx)))
		if i < 0 {
			i = 0
		}
		if i >= len(pal) {
			i = len(pal) - 1
		}
		if got := Sample(pal, idx); got != pal[i] {
			t.Fatalf("Sample(%v) = %v, want pal[%d] = %v", idx, got, i, pal[i])
		}
	}
}

func TestSampleWrapped(t *testing.T) {
	pal := []body.RGB{{R: 1, G: 0, B: 0}, {R: 2, G: 0, B: 0}, {R: 3, G: 0, B: 0}}

	tests := []struct {
		index float32
		want  body.RGB
	}{
		{0, pal[0]},
		{1, pal[1]},
		{3, pal[0]},
		{7.2, pal[1]},
		{-1, pal[2]},
	}
	for _, tt := range tests {
		if got := sampleWrapped(pal, tt.index); got != tt.want {
			t.Errorf("sampleWrapped(%v) = %v, want %v", tt.index, got, tt.want)
		}
	}

	if got := sampleWrapped(nil, 2); got != body.White {
		t.Errorf("sampleWrapped(empty) = %v, want white", got)
	}
}

func TestNoise3Range(t *testing.T) {
	for x := float32(-10); x <= 10; x += 0.7 {
		for y := float32(-10); y <= 10; y += 0.9 {
			n := Noise3(x, y, x*0.3-y*0.6)
			if n < -1.5 || n > 1.5 {
				t.Fatalf("Noise3(%v, %v) = %v out of [-1.5, 1.5]", x, y, n)
			}
		}
	}
}

func TestNoise3Deterministic(t *testing.T) {
	if Noise3(1.2, -3.4, 5.6) != Noise3(1.2, -3.4, 5.6) {
		t.Error("Noise3 is not deterministic")
	}
}
