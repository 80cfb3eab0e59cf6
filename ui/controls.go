package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// ControlsPanel renders the right-side manual controls: an expansion
// override slider and a next-body button for running without a hand
// tracker.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a controls panel anchored at x, y.
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool { return c.visible }

// ControlsState carries the adjustable values in and out of Draw.
type ControlsState struct {
	ManualExpansion bool
	Expansion       float32
	NextBody        bool // set by Draw when the button is pressed
	AudioEnabled    bool
}

// Draw renders the panel and returns the (possibly modified) state.
func (c *ControlsPanel) Draw(s ControlsState) ControlsState {
	if !c.visible {
		return s
	}

	const lineHeight = 28
	y := c.y

	rl.DrawRectangle(int32(c.x)-8, int32(c.y)-8, int32(c.width)+16, lineHeight*5+24, rl.Color{R: 20, G: 20, B: 28, A: 200})
	rl.DrawText("Controls", int32(c.x), int32(y), 16, rl.White)
	y += lineHeight

	s.ManualExpansion = gui.CheckBox(
		rl.Rectangle{X: c.x, Y: y, Width: 16, Height: 16},
		"manual expansion", s.ManualExpansion)
	y += lineHeight

	if s.ManualExpansion {
		s.Expansion = gui.SliderBar(
			rl.Rectangle{X: c.x, Y: y, Width: c.width - 60, Height: 18},
			"0", "1", s.Expansion, 0, 1)
	}
	y += lineHeight

	if gui.Button(rl.Rectangle{X: c.x, Y: y, Width: c.width - 60, Height: 22}, "next body") {
		s.NextBody = true
	}
	y += lineHeight

	s.AudioEnabled = gui.CheckBox(
		rl.Rectangle{X: c.x, Y: y, Width: 16, Height: 16},
		"audio cues", s.AudioEnabled)

	return s
}
