package cloud

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
)

// Composite layout tunables. Orbit radii and angular placements are
// fixed lookup tables indexed by body order modulo table length, so a
// catalog larger than the tables wraps instead of indexing out of
// range.
var (
	orbitRadii  = []float32{24, 29, 34, 39, 45, 51, 57, 64}
	orbitAngles = []float32{0.0, 2.4, 0.9, 4.4, 1.7, 5.6, 3.2, 0.4}
)

const (
	orbitGuideJitter = 0.12 // vertical half-thickness of guide circles
	orbitGuideDim    = 0.35 // brightness factor for guide particles
	beltInnerIndex   = 3    // debris belt sits between these two orbits
	beltOuterIndex   = 4
	beltMargin       = 1.5
	beltJitter       = 0.4
	miniScale        = 0.18
	coreTurbulence   = 0.08 // core radial noise displacement fraction
	coreBrightChance = 0.06
)

var (
	beltColors    = []body.RGB{{R: 120, G: 110, B: 100}, {R: 90, G: 84, B: 78}, {R: 150, G: 140, B: 128}}
	leftoverColor = body.RGB{R: 10, G: 10, B: 12}
)

// orbitRadius returns the orbit radius for body order k, wrapping on
// the table length.
func orbitRadius(k int) float32 {
	return orbitRadii[k%len(orbitRadii)]
}

// orbitAngle returns the angular placement for body order k, wrapping
// on the table length.
func orbitAngle(k int) float32 {
	return orbitAngles[k%len(orbitAngles)]
}

// systemLayout fills target/color with the composite solar-system
// arrangement: turbulent core, orbit guide circles, a debris belt, and
// mini representations of every orbiting body. N is partitioned into
// five equal groups (core, guides, belt, and two groups of minis);
// integer-division leftovers are parked at the origin.
func (g *Generator) systemLayout(target []mgl32.Vec3, color []body.RGB, d body.Descriptor, orbiting []body.Descriptor) {
	n := len(target)
	group := n / 5

	coreEnd := group
	guideEnd := 2 * group
	beltEnd := 3 * group
	miniEnd := 5 * group

	for i := 0; i < coreEnd; i++ {
		target[i], color[i] = g.corePoint(d)
	}

	if len(orbiting) == 0 {
		// Nothing to orbit: the guide and mini allocations fall back to
		// more core, keeping every index defined.
		for i := coreEnd; i < miniEnd; i++ {
			target[i], color[i] = g.corePoint(d)
		}
	} else {
		g.orbitGuides(target[coreEnd:guideEnd], color[coreEnd:guideEnd], orbiting)
		g.miniBodies(target[beltEnd:miniEnd], color[beltEnd:miniEnd], orbiting)
	}

	for i := guideEnd; i < beltEnd && i < miniEnd; i++ {
		target[i], color[i] = g.beltPoint()
	}

	for i := miniEnd; i < n; i++ {
		target[i] = mgl32.Vec3{}
		color[i] = leftoverColor
	}
}

// corePoint samples the star's turbulent core: a sphere surface
// displaced radially by noise, shaded from the star palette with
// occasional brightened points.
func (g *Generator) corePoint(d body.Descriptor) (mgl32.Vec3, body.RGB) {
	pos, _, _ := g.spherePoint(d.Radius)
	n := Noise3(pos.X(), pos.Y(), pos.Z())
	pos = pos.Mul(1 + coreTurbulence*n)

	idx := (n + 1.5) / 3 * float32(len(d.Palette))
	c := Sample(d.Palette, idx)
	if g.rng.Float32() < coreBrightChance {
		c = brighten(c)
	}
	return pos, c
}

// orbitGuides distributes particles evenly across one thin, faded
// circle per orbiting body.
func (g *Generator) orbitGuides(target []mgl32.Vec3, color []body.RGB, orbiting []body.Descriptor) {
	per := len(target) / len(orbiting)
	for k := range orbiting {
		r := orbitRadius(k)
		c := dim(Sample(orbiting[k].Palette, 0), orbitGuideDim)
		start := k * per
		end := start + per
		if k == len(orbiting)-1 {
			end = len(target) // last circle absorbs the division remainder
		}
		for i := start; i < end; i++ {
			angle := g.rng.Float64() * 2 * math.Pi
			target[i] = mgl32.Vec3{
				r * float32(math.Cos(angle)),
				(g.rng.Float32()*2 - 1) * orbitGuideJitter,
				r * float32(math.Sin(angle)),
			}
			color[i] = c
		}
	}
}

// beltPoint samples the flat debris annulus between two fixed orbits.
func (g *Generator) beltPoint() (mgl32.Vec3, body.RGB) {
	lo := orbitRadius(beltInnerIndex) + beltMargin
	hi := orbitRadius(beltOuterIndex) - beltMargin
	r := lo + g.rng.Float32()*(hi-lo)
	angle := g.rng.Float64() * 2 * math.Pi
	pos := mgl32.Vec3{
		r * float32(math.Cos(angle)),
		(g.rng.Float32()*2 - 1) * beltJitter,
		r * float32(math.Sin(angle)),
	}
	return pos, beltColors[g.rng.Intn(len(beltColors))]
}

// miniBodies places a reduced-scale representation of every orbiting
// body at its fixed angular offset along its orbit. Each mini reuses
// the single-body surface and ring rules.
func (g *Generator) miniBodies(target []mgl32.Vec3, color []body.RGB, orbiting []body.Descriptor) {
	per := len(target) / len(orbiting)
	for k := range orbiting {
		start := k * per
		end := start + per
		if k == len(orbiting)-1 {
			end = len(target)
		}
		if end <= start {
			continue
		}

		mini := orbiting[k]
		mini.Radius *= miniScale

		g.singleBody(target[start:end], color[start:end], mini)

		r := orbitRadius(k)
		angle := float64(orbitAngle(k))
		center := mgl32.Vec3{
			r * float32(math.Cos(angle)),
			0,
			r * float32(math.Sin(angle)),
		}
		for i := start; i < end; i++ {
			target[i] = target[i].Add(center)
		}
	}
}

// dim scales a color toward black.
func dim(c body.RGB, f float32) body.RGB {
	return body.RGB{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
	}
}

// brighten pushes a color halfway to white.
func brighten(c body.RGB) body.RGB {
	return body.RGB{
		R: uint8(int(c.R) + (255-int(c.R))/2),
		G: uint8(int(c.G) + (255-int(c.G))/2),
		B: uint8(int(c.B) + (255-int(c.B))/2),
	}
}
