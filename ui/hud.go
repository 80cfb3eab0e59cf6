// Package ui draws the session HUD and the manual controls panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD renders the session overlay: body identity, phrase line, and
// the expansion bar.
type HUD struct {
	screenW int32
	screenH int32
}

// NewHUD creates a HUD for the given screen size.
func NewHUD(screenW, screenH int32) *HUD {
	return &HUD{screenW: screenW, screenH: screenH}
}

// HUDState is the per-frame data the HUD displays.
type HUDState struct {
	BodyName       string
	Phrase         string
	Expansion      float32
	HandOpen       bool
	TrackerOnline  bool
	Paused         bool
}

// Draw renders the HUD. Must run outside the 3D pass.
func (h *HUD) Draw(s HUDState) {
	rl.DrawText(s.BodyName, 14, 12, 28, rl.White)

	hand := "hand: closed"
	if s.HandOpen {
		hand = "hand: open"
	}
	if !s.TrackerOnline {
		hand = "hand: no tracker (keys: SPACE hold, arrows move)"
	}
	rl.DrawText(hand, 14, 46, 16, rl.Gray)

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), h.screenW-90, 12, 16, rl.Gray)

	if s.Paused {
		rl.DrawText("PAUSED", 14, 68, 20, rl.Yellow)
	}

	// Expansion bar along the bottom: full = scattered.
	barW := h.screenW - 28
	barY := h.screenH - 26
	rl.DrawRectangleLines(14, barY, barW, 10, rl.DarkGray)
	rl.DrawRectangle(14, barY, int32(float32(barW)*s.Expansion), 10, rl.SkyBlue)

	// Phrase line centered above the bar.
	if s.Phrase != "" {
		w := rl.MeasureText(s.Phrase, 20)
		rl.DrawText(s.Phrase, (h.screenW-w)/2, barY-34, 20, rl.RayWhite)
	}
}
