package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/gesture"
	"github.com/pthm-cable/orrery/telemetry"
)

// Update runs one frame of the graphics-mode loop: input, gesture,
// pending body regeneration, then the animation step.
func (g *Game) Update() {
	g.perf.StartFrame()
	dt := rl.GetFrameTime()

	g.handleInput(dt)

	g.perf.StartPhase(telemetry.PhaseGesture)
	g.stepGesture(dt)

	g.perf.StartPhase(telemetry.PhaseRegen)
	g.applyPendingBody()

	g.perf.StartPhase(telemetry.PhaseAnimate)
	if !g.paused {
		g.driver.Step(dt, g.adapter.Influence())
		g.clock += float64(dt)
		g.frame++
	}
	g.stats.RecordFrame(float64(g.driver.Expansion()))

	g.maybeFlushStats()
}

// UpdateHeadless runs one frame at a fixed timestep with no raylib
// calls, for soak runs and telemetry capture.
func (g *Game) UpdateHeadless() {
	const dt = float32(1.0 / 60.0)
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseGesture)
	g.stepGesture(dt)

	g.perf.StartPhase(telemetry.PhaseRegen)
	g.applyPendingBody()

	g.perf.StartPhase(telemetry.PhaseAnimate)
	g.driver.Step(dt, g.adapter.Influence())
	g.clock += float64(dt)
	g.frame++
	g.stats.RecordFrame(float64(g.driver.Expansion()))

	g.perf.EndFrame()
	g.maybeFlushStats()
}

// stepGesture feeds the freshest tracker sample (or the keyboard
// simulation) to the adapter and pushes the smoothed expansion into
// the driver.
func (g *Game) stepGesture(dt float32) {
	if sample, ok := g.trackerSample(); ok {
		g.adapter.OnSample(sample)
	} else if !g.headless {
		g.adapter.OnSample(gesture.Sample{
			Open:     g.simOpen,
			Openness: openness(g.simOpen),
			Position: g.simPos,
		})
	}
	g.adapter.Tick(dt)

	if g.manualExpansion {
		g.driver.SetExpansion(g.manualValue)
	} else {
		g.driver.SetExpansion(g.adapter.Expansion())
	}
}

// trackerSample returns the latest sample from the websocket source.
func (g *Game) trackerSample() (gesture.Sample, bool) {
	if g.source == nil {
		return gesture.Sample{}, false
	}
	return g.source.Latest()
}

// applyPendingBody regenerates the target cloud when a body change is
// queued. The regenerated set shares the live array, so the swap is a
// retarget and never a visual reset.
func (g *Game) applyPendingBody() {
	if g.pending == nil {
		return
	}
	next := *g.pending
	g.pending = nil

	set := g.gen.Retarget(g.driver.Set(), next, g.catalog.Orbiting())
	g.driver.Swap(set, next.Category)
	g.current = next
}

func openness(open bool) float32 {
	if open {
		return 1
	}
	return 0
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
