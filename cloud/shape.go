package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
)

// Ring annulus geometry relative to body radius, and the forced-dark
// gap band in normalized radial position.
const (
	ringInnerScale    = 1.3
	ringOuterScale    = 2.2
	ringHalfThickness = 0.05
	ringGapLo         = 0.62
	ringGapHi         = 0.70
)

// ringGapColor is the cosmetic dark band inside the ring annulus.
var ringGapColor = body.RGB{R: 24, G: 20, B: 16}

// Retarget builds a fresh target/color pair for the given body and
// returns a new ParticleSet sharing the session's origin, seed, and
// live arrays. The previous set is never mutated, so a renderer holding
// it keeps seeing a consistent snapshot until the swap.
//
// orbiting lists the catalog's non-star bodies; the composite star
// layout uses them for orbit guides and mini representations.
func (g *Generator) Retarget(prev *ParticleSet, d body.Descriptor, orbiting []body.Descriptor) *ParticleSet {
	next := &ParticleSet{
		Origin: prev.Origin,
		Seed:   prev.Seed,
		Live:   prev.Live,
		Target: make([]mgl32.Vec3, g.n),
		Color:  make([]body.RGB, g.n),
	}

	if d.Category == body.CategoryStar {
		g.systemLayout(next.Target, next.Color, d, orbiting)
	} else {
		g.singleBody(next.Target, next.Color, d)
	}
	return next
}

// singleBody fills target/color for a sphere body, with an annulus
// allocation when the body has rings.
func (g *Generator) singleBody(target []mgl32.Vec3, color []body.RGB, d body.Descriptor) {
	n := len(target)
	nRing := 0
	// A ring flag without ring colors skips the annulus entirely; the
	// catalog warns about the record at load time.
	if d.HasRings && len(d.RingPalette) > 0 {
		nRing = int(float32(n) * g.ringFrac)
	}
	nBody := n - nRing

	for i := 0; i < nBody; i++ {
		pos, theta, phi := g.spherePoint(d.Radius)
		if d.Biome {
			// The biome path may displace cloud-layer points outward,
			// so it owns the final position as well as the color.
			target[i], color[i] = g.biomePoint(pos, phi, d)
			continue
		}
		target[i] = pos
		color[i] = g.surfaceColor(pos, theta, phi, d)
	}
	for i := nBody; i < n; i++ {
		target[i], color[i] = g.ringPoint(d)
	}
}

// surfaceColor picks a palette color for a sphere-surface point
// according to the body's texture mode.
func (g *Generator) surfaceColor(pos mgl32.Vec3, theta, phi float64, d body.Descriptor) body.RGB {
	switch d.Texture {
	case body.TextureBanded:
		return g.bandedColor(theta, phi, d)
	case body.TextureSolid:
		return Sample(d.Palette, 0)
	default: // noisy
		n := Noise3(pos.X(), pos.Y(), pos.Z())
		idx := (n + 1.5) / 3 * float32(len(d.Palette))
		return Sample(d.Palette, idx)
	}
}

// bandedColor shades by latitude bands, with a longitude-dependent
// turbulence wobble so bands don't read as ruled lines.
func (g *Generator) bandedColor(theta, phi float64, d body.Descriptor) body.RGB {
	lat := phi / math.Pi // [0,1] pole to pole
	turb := float64(d.Turbulence) * 0.04 * math.Sin(theta*3+lat*7)
	band := math.Cos((lat + turb) * float64(d.BandFrequency) * math.Pi)
	idx := float32((band + 1) / 2 * float64(len(d.Palette)))
	return Sample(d.Palette, idx)
}

// ringPoint samples one ring particle: a thin annulus between the
// inner and outer scale of the body radius with slight vertical
// jitter. The color index deliberately over-scans the ring palette by
// 3x and wraps, producing the tri-banded look; the gap window is
// forced dark regardless of palette.
func (g *Generator) ringPoint(d body.Descriptor) (mgl32.Vec3, body.RGB) {
	rNorm := g.rng.Float32()
	radius := d.Radius * (ringInnerScale + rNorm*(ringOuterScale-ringInnerScale))
	angle := g.rng.Float64() * 2 * math.Pi
	y := (g.rng.Float32()*2 - 1) * ringHalfThickness

	pos := mgl32.Vec3{
		radius * float32(math.Cos(angle)),
		y,
		radius * float32(math.Sin(angle)),
	}

	if rNorm >= ringGapLo && rNorm <= ringGapHi {
		return pos, ringGapColor
	}
	idx := rNorm * float32(len(d.RingPalette)) * 3
	return pos, sampleWrapped(d.RingPalette, idx)
}
