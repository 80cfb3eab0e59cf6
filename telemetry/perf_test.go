package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorWindow(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 6; i++ {
		p.StartFrame()
		p.StartPhase(PhaseAnimate)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseDraw)
		time.Sleep(time.Millisecond)
		p.EndFrame()
	}

	s := p.Stats()
	if s.AvgFrameDuration < time.Millisecond {
		t.Errorf("avg frame = %v, want >= 1ms", s.AvgFrameDuration)
	}
	if s.MinFrameDuration > s.MaxFrameDuration {
		t.Errorf("min %v > max %v", s.MinFrameDuration, s.MaxFrameDuration)
	}
	if s.PhaseAvg[PhaseAnimate] <= 0 || s.PhaseAvg[PhaseDraw] <= 0 {
		t.Errorf("phase averages missing: %v", s.PhaseAvg)
	}
	if s.FPS <= 0 {
		t.Errorf("fps = %v, want > 0", s.FPS)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(8)
	s := p.Stats()
	if s.AvgFrameDuration != 0 || s.FPS != 0 {
		t.Errorf("empty collector stats = %+v, want zeros", s)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	p := NewPerfCollector(2)
	p.StartFrame()
	p.StartPhase(PhaseGesture)
	p.EndFrame()

	row := p.Stats().ToCSV(120)
	if row.WindowEnd != 120 {
		t.Errorf("window end = %d, want 120", row.WindowEnd)
	}
}
