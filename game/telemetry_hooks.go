package game

import "log/slog"

// maybeFlushStats closes the current stats window when it has run its
// configured length, logging and writing the aggregates.
func (g *Game) maybeFlushStats() {
	if g.clock-g.lastFlush < g.statsWin {
		return
	}
	g.lastFlush = g.clock

	window := g.stats.Flush(g.frame, g.clock, g.current.Name)
	perf := g.perf.Stats()

	if g.logStats {
		window.LogStats()
		perf.LogStats()
	}
	if err := g.output.WriteStats(window); err != nil {
		slog.Warn("could not write stats row", "error", err)
	}
	if err := g.output.WritePerf(perf.ToCSV(g.frame)); err != nil {
		slog.Warn("could not write perf row", "error", err)
	}
}
