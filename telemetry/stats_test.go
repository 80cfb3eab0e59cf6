package telemetry

import (
	"math"
	"testing"
)

func TestComputeExpansionStats(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	mean, p10, p50, p90 := ComputeExpansionStats(values)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}
	if p10 < 0.1 || p10 > 0.25 {
		t.Errorf("p10 = %v, want in [0.1, 0.25]", p10)
	}
	if p50 < 0.45 || p50 > 0.65 {
		t.Errorf("p50 = %v, want in [0.45, 0.65]", p50)
	}
	if p90 < 0.85 || p90 > 1.0 {
		t.Errorf("p90 = %v, want in [0.85, 1.0]", p90)
	}
}

func TestComputeExpansionStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := ComputeExpansionStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should return all zeros")
	}
}

func TestComputeExpansionStatsDoesNotMutateInput(t *testing.T) {
	values := []float64{0.9, 0.1, 0.5}
	ComputeExpansionStats(values)
	if values[0] != 0.9 || values[1] != 0.1 || values[2] != 0.5 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector()

	for i := 0; i < 10; i++ {
		c.RecordFrame(0.5)
	}
	c.RecordBodyChange()
	c.RecordExpandEdge()
	c.RecordExpandEdge()
	c.RecordContractEdge()
	c.RecordPhraseRequest()

	w := c.Flush(600, 10.0, "Saturn")

	if w.WindowEndFrame != 600 || w.Body != "Saturn" {
		t.Errorf("window identity: frame=%d body=%q", w.WindowEndFrame, w.Body)
	}
	if math.Abs(w.ExpansionMean-0.5) > 1e-9 {
		t.Errorf("expansion mean = %v, want 0.5", w.ExpansionMean)
	}
	if w.BodyChanges != 1 || w.ExpandEdges != 2 || w.ContractEdges != 1 || w.PhraseRequests != 1 {
		t.Errorf("event counts: %+v", w)
	}

	// Flush resets the window.
	w2 := c.Flush(1200, 20.0, "Saturn")
	if w2.BodyChanges != 0 || w2.ExpansionMean != 0 {
		t.Errorf("second window not reset: %+v", w2)
	}
}
