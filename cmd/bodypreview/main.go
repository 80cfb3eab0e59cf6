// Body preview tool - interactive particle shape visualization with sliders.
//
// Usage: go run ./cmd/bodypreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/body"
	"github.com/pthm-cable/orrery/cloud"
	"github.com/pthm-cable/orrery/config"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
	particleN    = 6000
)

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	catalog, err := body.CatalogFromConfig(cfg.Bodies)
	if err != nil {
		panic(err)
	}

	rl.InitWindow(windowWidth, windowHeight, "Body Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	gen := cloud.NewGenerator(particleN, cfg.Derived.Spread32, cfg.Derived.RingFrac32, rand.New(rand.NewSource(1)))
	base := gen.NewSet()

	bodyIndex := 0
	d := catalog.At(bodyIndex)
	set := gen.Retarget(base, d, catalog.Orbiting())
	needsRegen := false

	cam := rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: d.Radius * 1.5, Z: d.Radius * 4},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	var yaw float32

	for !rl.WindowShouldClose() {
		yaw += 0.3 * rl.GetFrameTime()

		if needsRegen {
			set = gen.Retarget(base, d, catalog.Orbiting())
			distance := d.Radius * 4
			if d.Category == body.CategoryStar {
				distance = cfg.Derived.Spread32 * 2.5
			}
			cam.Position = rl.Vector3{X: 0, Y: distance * 0.4, Z: distance}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		// 3D preview
		rl.BeginMode3D(cam)
		sinY := float32(math.Sin(float64(yaw)))
		cosY := float32(math.Cos(float64(yaw)))
		for i := range set.Target {
			p := set.Target[i]
			rc := set.Color[i]
			x := p[0]*cosY + p[2]*sinY
			z := -p[0]*sinY + p[2]*cosY
			rl.DrawPoint3D(rl.Vector3{X: x, Y: p[1], Z: z}, rl.Color{R: rc.R, G: rc.G, B: rc.B, A: 255})
		}
		rl.EndMode3D()
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Body Shape Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText(fmt.Sprintf("%s (%s, %s)", d.Name, d.Category, d.Texture), int32(panelX), int32(panelY), 16, rl.Gray)
		panelY += 25

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 24}, "next body") {
			bodyIndex = (bodyIndex + 1) % catalog.Len()
			d = catalog.At(bodyIndex)
			needsRegen = true
		}
		panelY += 40

		// Radius slider
		rl.DrawText("Radius", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.5", "20",
			d.Radius, 0.5, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1f", d.Radius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)
		if newRadius != d.Radius {
			d.Radius = newRadius
			needsRegen = true
		}
		panelY += 35

		// Band frequency slider
		rl.DrawText("Band frequency", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFreq := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "10",
			d.BandFrequency, 1, 10,
		)
		rl.DrawText(fmt.Sprintf("%.1f", d.BandFrequency), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)
		if newFreq != d.BandFrequency {
			d.BandFrequency = newFreq
			needsRegen = true
		}
		panelY += 35

		// Turbulence slider
		rl.DrawText("Turbulence", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newTurb := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "3",
			d.Turbulence, 0, 3,
		)
		rl.DrawText(fmt.Sprintf("%.2f", d.Turbulence), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)
		if newTurb != d.Turbulence {
			d.Turbulence = newTurb
			needsRegen = true
		}
		panelY += 35

		// Rings checkbox
		newRings := gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20}, "rings", d.HasRings)
		if newRings != d.HasRings {
			d.HasRings = newRings
			needsRegen = true
		}
		panelY += 35

		rl.DrawText(fmt.Sprintf("%d particles", particleN), int32(panelX), int32(panelY), 14, rl.DarkGray)

		rl.EndDrawing()
	}
}
