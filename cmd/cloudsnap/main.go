// Cloud snapshot tool - renders one body's assembled cloud to a PNG file.
//
// Usage: go run ./cmd/cloudsnap -body earth -out earth.png
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/body"
	"github.com/pthm-cable/orrery/cloud"
	"github.com/pthm-cable/orrery/config"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	bodyName := flag.String("body", "Earth", "Body name from the catalog")
	outPath := flag.String("out", "cloud.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 800, "Render height")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	catalog, err := body.CatalogFromConfig(cfg.Bodies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	d, ok := catalog.ByName(*bodyName)
	if !ok {
		// Allow case-insensitive names on the command line.
		for _, b := range catalog.Bodies() {
			if strings.EqualFold(b.Name, *bodyName) {
				d, ok = b, true
				break
			}
		}
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown body: %s\n", *bodyName)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Cloud Snapshot")
	defer rl.CloseWindow()

	gen := cloud.NewGenerator(cfg.Derived.Count, cfg.Derived.Spread32, cfg.Derived.RingFrac32, rand.New(rand.NewSource(*seed)))
	set := gen.Retarget(gen.NewSet(), d, catalog.Orbiting())

	distance := d.Radius * 4
	if d.Category == body.CategoryStar {
		distance = cfg.Derived.Spread32 * 2.5
	}
	cam := rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: distance * 0.4, Z: distance},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	// Render the assembled target positions to a texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(cam)
	for i := range set.Target {
		p := set.Target[i]
		c := set.Color[i]
		rl.DrawPoint3D(rl.Vector3{X: p[0], Y: p[1], Z: p[2]}, rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	}
	rl.EndMode3D()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Cloud rendered to: %s (%dx%d)\n", *outPath, *width, *height)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
