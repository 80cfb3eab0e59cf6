package cloud

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
)

// Generator builds particle sets. The random source is injected so
// tests can seed it; in the app it is intentionally unseeded per run,
// so every regeneration is a fresh realization of the same texture.
type Generator struct {
	n        int
	spread   float32
	ringFrac float32
	rng      *rand.Rand
}

// NewGenerator creates a generator for n particles with the given
// origin-cloud spread radius and ring allocation fraction.
func NewGenerator(n int, spread, ringFrac float32, rng *rand.Rand) *Generator {
	if n < 1 {
		n = 1
	}
	if ringFrac < 0 {
		ringFrac = 0
	}
	if ringFrac > 1 {
		ringFrac = 1
	}
	return &Generator{n: n, spread: spread, ringFrac: ringFrac, rng: rng}
}

// Count returns the fixed particle count N.
func (g *Generator) Count() int { return g.n }

// NewSet builds the session's initial particle set: the scattered
// origin cloud, the per-particle oscillation seeds, and live positions
// starting at the origin cloud. Target and Color stay zeroed until the
// first Retarget.
func (g *Generator) NewSet() *ParticleSet {
	s := &ParticleSet{
		Origin: make([]mgl32.Vec3, g.n),
		Target: make([]mgl32.Vec3, g.n),
		Color:  make([]body.RGB, g.n),
		Seed:   make([]mgl32.Vec3, g.n),
		Live:   make([]mgl32.Vec3, g.n),
	}
	for i := 0; i < g.n; i++ {
		s.Origin[i] = g.scatterPoint()
		s.Seed[i] = mgl32.Vec3{g.rng.Float32(), g.rng.Float32(), g.rng.Float32()}
		s.Live[i] = s.Origin[i]
	}
	return s
}

// scatterPoint samples a uniform-volume position inside the spread
// sphere. The cube-root radial draw gives uniform density by volume,
// not by radius, which is what makes the debris cloud read as a cloud
// rather than a dense core.
func (g *Generator) scatterPoint() mgl32.Vec3 {
	r := g.spread * float32(math.Cbrt(g.rng.Float64()))
	theta := g.rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*g.rng.Float64() - 1)
	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		r * float32(sinPhi*math.Cos(theta)),
		r * float32(math.Cos(phi)),
		r * float32(sinPhi*math.Sin(theta)),
	}
}

// spherePoint samples a uniform position on a sphere surface of the
// given radius (theta uniform, phi by arccos for uniform area density).
// Returns the position plus the spherical angles for texture math.
func (g *Generator) spherePoint(radius float32) (pos mgl32.Vec3, theta, phi float64) {
	theta = g.rng.Float64() * 2 * math.Pi
	phi = math.Acos(2*g.rng.Float64() - 1)
	sinPhi := math.Sin(phi)
	pos = mgl32.Vec3{
		radius * float32(sinPhi*math.Cos(theta)),
		radius * float32(math.Cos(phi)),
		radius * float32(sinPhi*math.Sin(theta)),
	}
	return pos, theta, phi
}
