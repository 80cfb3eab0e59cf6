package game

import "log/slog"

// queueNextBody picks a new body at random and queues the regeneration
// for the next frame boundary.
func (g *Game) queueNextBody() {
	next := g.catalog.Next(g.current.Name, g.rng)
	if next.Name == g.current.Name {
		return
	}
	g.pending = &next
	g.stats.RecordBodyChange()
	slog.Info("body change queued", "from", g.current.Name, "to", next.Name)
}

// onExpand fires on the closed-to-open gesture transition.
func (g *Game) onExpand() {
	g.stats.RecordExpandEdge()
	if g.audioOn {
		g.cues.Expand()
	}
}

// onContract fires on the open-to-closed gesture transition.
func (g *Game) onContract() {
	g.stats.RecordContractEdge()
	if g.audioOn {
		g.cues.Contract()
	}
}

// onPhraseRequest swaps in the next phrase. The cache never blocks, so
// this is safe on the frame path.
func (g *Game) onPhraseRequest() {
	g.currentPhrase = g.phrases.Next()
	g.stats.RecordPhraseRequest()
}
