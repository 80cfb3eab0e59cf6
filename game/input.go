package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	simHandSpeed   = 0.6  // normalized tracker units per second
	orbitDragScale = 0.01 // radians per pixel of mouse drag
	zoomWheelStep  = 0.9  // zoom factor per wheel notch
)

// handleInput processes keyboard and mouse input. SPACE and the arrow
// keys simulate a hand when no tracker is connected: holding SPACE is
// a closed hand, arrows move it across the tracker frame.
func (g *Game) handleInput(dt float32) {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.queueNextBody()
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Simulated hand, only meaningful when the tracker is offline.
	g.simOpen = !rl.IsKeyDown(rl.KeySpace)
	move := mgl32.Vec2{}
	if rl.IsKeyDown(rl.KeyLeft) {
		move[0] -= 1
	}
	if rl.IsKeyDown(rl.KeyRight) {
		move[0] += 1
	}
	if rl.IsKeyDown(rl.KeyUp) {
		move[1] -= 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		move[1] += 1
	}
	g.simPos = g.simPos.Add(move.Mul(simHandSpeed * dt))
	g.simPos[0] = clamp01(g.simPos[0])
	g.simPos[1] = clamp01(g.simPos[1])

	// Camera orbit and zoom.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		g.cam.Orbit(delta.X*orbitDragScale, delta.Y*orbitDragScale)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		factor := float32(1)
		for i := float32(0); i < wheel; i++ {
			factor *= zoomWheelStep
		}
		for i := float32(0); i > wheel; i-- {
			factor /= zoomWheelStep
		}
		g.cam.ZoomBy(factor)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset(g.cfg.Derived.Spread32)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
