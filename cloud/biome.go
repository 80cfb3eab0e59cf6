package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
)

// Biome palette slots. Bodies opting into the biome path lay their
// palette out in this order; shorter palettes degrade via the clamping
// sampler rather than failing.
const (
	biomeDeepOcean = iota
	biomeOcean
	biomeShallows
	biomeVegetation
	biomeGrassland
	biomeDesert
	biomeMountain
	biomeIce
	biomeCloud
)

// Biome classification thresholds. Heights come from the two-octave
// noise field, so they are calibrated to its [-1.5, 1.5] span.
const (
	seaLevel         = 0.10
	oceanMidDepth    = 0.25
	oceanDeepDepth   = 0.55
	polarLatitude    = 0.78
	mountainHeight   = 0.95
	moistureWet      = 0.15
	moistureArid     = -0.20
	cloudThreshold   = 0.80
	cloudPassRate    = 0.8
	cloudLayerScale  = 1.06
	continentFreq    = 0.22
	detailFreq       = 1.45
	moistureFreq     = 0.5
	cloudFreq        = 0.7
)

// Independent offsets decorrelating the moisture and cloud fields from
// the height field.
var (
	moistureOffset = mgl32.Vec3{37.2, 11.8, 73.5}
	cloudOffset    = mgl32.Vec3{-54.1, 88.3, 23.9}
)

// biomePoint classifies one sphere-surface point into an Earth-like
// biome color, possibly lifting it onto the cloud layer. phi is the
// polar angle from spherePoint.
func (g *Generator) biomePoint(pos mgl32.Vec3, phi float64, d body.Descriptor) (mgl32.Vec3, body.RGB) {
	// Cloud cover is decided first: cloud particles hide whatever is
	// underneath and sit slightly above the surface for parallax. The
	// random pass rate keeps the cloud edge soft.
	cp := pos.Mul(cloudFreq).Add(cloudOffset)
	if Noise3(cp.X(), cp.Y(), cp.Z()) > cloudThreshold && g.rng.Float32() < cloudPassRate {
		return pos.Mul(cloudLayerScale), Sample(d.Palette, biomeCloud)
	}

	continent := Noise3(pos.X()*continentFreq, pos.Y()*continentFreq, pos.Z()*continentFreq)
	detail := Noise3(pos.X()*detailFreq, pos.Y()*detailFreq, pos.Z()*detailFreq)
	height := continent + 0.35*detail

	if height < seaLevel {
		depth := seaLevel - height
		switch {
		case depth > oceanDeepDepth:
			return pos, Sample(d.Palette, biomeDeepOcean)
		case depth > oceanMidDepth:
			return pos, Sample(d.Palette, biomeOcean)
		default:
			return pos, Sample(d.Palette, biomeShallows)
		}
	}

	// Land. Polar ice wins over everything; the noise nudge keeps the
	// ice cap edge from being a perfect circle.
	lat := math.Abs(phi/math.Pi-0.5) * 2
	if lat > polarLatitude+float64(detail)*0.04 {
		return pos, Sample(d.Palette, biomeIce)
	}

	if height+0.5*detail > mountainHeight {
		return pos, Sample(d.Palette, biomeMountain)
	}

	mp := pos.Mul(moistureFreq).Add(moistureOffset)
	moisture := Noise3(mp.X(), mp.Y(), mp.Z())
	switch {
	case moisture > moistureWet:
		if detail > 0.3 {
			return pos, Sample(d.Palette, biomeVegetation)
		}
		return pos, Sample(d.Palette, biomeGrassland)
	case moisture < moistureArid:
		return pos, Sample(d.Palette, biomeDesert)
	default:
		// Boundary zone: blend grassland and desert stochastically so
		// the arid edge dithers instead of cutting hard.
		t := (moisture - moistureArid) / (moistureWet - moistureArid)
		if g.rng.Float32() < t {
			return pos, Sample(d.Palette, biomeGrassland)
		}
		return pos, Sample(d.Palette, biomeDesert)
	}
}
