package renderer

import (
	"image"
	"image/color"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// BackgroundRenderer draws a static nebula/starfield texture behind
// the cloud: large-scale simplex noise for the nebula haze plus a
// sparse sprinkle of star pixels.
type BackgroundRenderer struct {
	texture     rl.Texture2D
	width       int
	height      int
	initialized bool
}

// NewBackgroundRenderer creates a background for the given screen size.
func NewBackgroundRenderer(width, height int) *BackgroundRenderer {
	return &BackgroundRenderer{width: width, height: height}
}

// Init generates the texture (must be called after the raylib window
// is created).
func (b *BackgroundRenderer) Init(seed int64) {
	if b.initialized {
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	noise := opensimplex.NewNormalized(seed)
	rng := rand.New(rand.NewSource(seed))

	const scale = 0.004
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			// Two noise octaves tinted toward deep blue/purple.
			n := noise.Eval2(float64(x)*scale, float64(y)*scale)
			d := noise.Eval2(float64(x)*scale*4+100, float64(y)*scale*4+100)
			v := 0.7*n + 0.3*d

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(8 + v*22),
				G: uint8(6 + v*14),
				B: uint8(16 + v*38),
				A: 255,
			})
		}
	}

	// Star sprinkle, a few per thousand pixels.
	stars := b.width * b.height / 1200
	for i := 0; i < stars; i++ {
		x := rng.Intn(b.width)
		y := rng.Intn(b.height)
		brightness := uint8(120 + rng.Intn(136))
		img.SetRGBA(x, y, color.RGBA{R: brightness, G: brightness, B: brightness, A: 255})
	}

	rlImg := rl.NewImageFromImage(img)
	b.texture = rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	b.initialized = true
}

// Draw blits the background texture.
func (b *BackgroundRenderer) Draw() {
	if !b.initialized {
		return
	}
	rl.DrawTexture(b.texture, 0, 0, rl.White)
}

// Unload releases the texture.
func (b *BackgroundRenderer) Unload() {
	if !b.initialized {
		return
	}
	rl.UnloadTexture(b.texture)
	b.initialized = false
}
