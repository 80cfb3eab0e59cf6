package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/telemetry"
	"github.com/pthm-cable/orrery/ui"
)

// Draw renders one frame and closes out the perf sample.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw()
	g.cloudRenderer.Draw(g.driver.Set(), g.driver.Rotation(), g.cam)

	g.hud.Draw(ui.HUDState{
		BodyName:      g.current.Name,
		Phrase:        g.currentPhrase,
		Expansion:     g.driver.Expansion(),
		HandOpen:      g.adapter.Open(),
		TrackerOnline: g.source != nil,
		Paused:        g.paused,
	})

	if g.controls.IsVisible() {
		state := g.controls.Draw(ui.ControlsState{
			ManualExpansion: g.manualExpansion,
			Expansion:       g.manualValue,
			AudioEnabled:    g.audioOn,
		})
		g.manualExpansion = state.ManualExpansion
		g.manualValue = state.Expansion
		if state.NextBody {
			g.queueNextBody()
		}
		g.setAudioEnabled(state.AudioEnabled)
	}

	rl.EndDrawing()
	g.perf.EndFrame()
}

// setAudioEnabled toggles the audio cues, lazily initializing the
// speaker on first enable.
func (g *Game) setAudioEnabled(enabled bool) {
	if enabled == g.audioOn {
		return
	}
	g.audioOn = enabled
	if enabled {
		if err := g.cues.Initialize(); err != nil {
			g.audioOn = false
		}
	}
}
