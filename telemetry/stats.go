package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats aggregates one stats window of the session.
type WindowStats struct {
	WindowEndFrame int64   `csv:"window_end_frame"`
	SessionTimeSec float64 `csv:"session_time"`
	Body           string  `csv:"body"`

	// Expansion signal distribution over the window
	ExpansionMean float64 `csv:"expansion_mean"`
	ExpansionP10  float64 `csv:"expansion_p10"`
	ExpansionP50  float64 `csv:"expansion_p50"`
	ExpansionP90  float64 `csv:"expansion_p90"`

	// Events during window
	BodyChanges    int `csv:"body_changes"`
	ExpandEdges    int `csv:"expand_edges"`
	ContractEdges  int `csv:"contract_edges"`
	PhraseRequests int `csv:"phrase_requests"`
}

// Collector accumulates per-frame samples and gesture events into
// window statistics.
type Collector struct {
	expansions []float64
	stats      WindowStats
}

// NewCollector creates an empty stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordFrame records one frame's expansion value.
func (c *Collector) RecordFrame(expansion float64) {
	c.expansions = append(c.expansions, expansion)
}

// RecordBodyChange notes a body switch during the window.
func (c *Collector) RecordBodyChange() { c.stats.BodyChanges++ }

// RecordExpandEdge notes a closed-to-open gesture transition.
func (c *Collector) RecordExpandEdge() { c.stats.ExpandEdges++ }

// RecordContractEdge notes an open-to-closed gesture transition.
func (c *Collector) RecordContractEdge() { c.stats.ContractEdges++ }

// RecordPhraseRequest notes a phrase request that passed the rate limit.
func (c *Collector) RecordPhraseRequest() { c.stats.PhraseRequests++ }

// Flush closes the current window and resets the collector.
func (c *Collector) Flush(frame int64, sessionTime float64, bodyName string) WindowStats {
	out := c.stats
	out.WindowEndFrame = frame
	out.SessionTimeSec = sessionTime
	out.Body = bodyName
	out.ExpansionMean, out.ExpansionP10, out.ExpansionP50, out.ExpansionP90 = ComputeExpansionStats(c.expansions)

	c.expansions = c.expansions[:0]
	c.stats = WindowStats{}
	return out
}

// ComputeExpansionStats returns the mean and p10/p50/p90 of the
// expansion samples. Empty input yields all zeros.
func ComputeExpansionStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogStats logs the window via slog.
func (w WindowStats) LogStats() {
	slog.Info("stats",
		"frame", w.WindowEndFrame,
		"session_time", w.SessionTimeSec,
		"body", w.Body,
		"expansion_mean", w.ExpansionMean,
		"expansion_p50", w.ExpansionP50,
		"body_changes", w.BodyChanges,
		"expand_edges", w.ExpandEdges,
		"contract_edges", w.ContractEdges,
		"phrase_requests", w.PhraseRequests,
	)
}
