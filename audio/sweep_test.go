package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSweepProducesBoundedSamples(t *testing.T) {
	s := NewSweep(180, 720, 100*time.Millisecond, 0.5, beep.SampleRate(48000))

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := buf[i][ch]
				if math.IsNaN(v) || v < -0.5 || v > 0.5 {
					t.Fatalf("sample %d ch %d = %v outside volume bound", total+i, ch, v)
				}
			}
		}
		total += n
		if !ok {
			break
		}
	}

	want := beep.SampleRate(48000).N(100 * time.Millisecond)
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestSweepEnvelopeEdgesAreSilent(t *testing.T) {
	s := NewSweep(200, 400, 50*time.Millisecond, 1.0, beep.SampleRate(48000))
	buf := make([][2]float64, 1)

	s.Stream(buf)
	if math.Abs(buf[0][0]) > 1e-9 {
		t.Errorf("first sample = %v, want silent attack start", buf[0][0])
	}
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		progress float64
		want     float64
	}{
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.3, 1},
		{0.75, 0.5},
		{1.0, 0},
	}
	for _, tt := range tests {
		if got := envelope(tt.progress); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("envelope(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestCuesWithoutInitAreNoOps(t *testing.T) {
	c := NewCues(0.5)
	// Must not panic or block without an initialized speaker.
	c.Expand()
	c.Contract()
	c.Cleanup()
}
