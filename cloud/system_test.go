package cloud

import (
	"math"
	"testing"

	"github.com/pthm-cable/orrery/body"
)

func testOrbiting() []body.Descriptor {
	return []body.Descriptor{
		{Name: "P1", Category: body.CategoryPlanet, Radius: 4, Palette: []body.RGB{{R: 100, G: 100, B: 100}}, Texture: body.TextureNoisy},
		{Name: "P2", Category: body.CategoryPlanet, Radius: 9, Palette: []body.RGB{{R: 200, G: 180, B: 150}}, HasRings: true,
			RingPalette: []body.RGB{{R: 217, G: 201, B: 163}}, Texture: body.TextureBanded, BandFrequency: 8},
		{Name: "M1", Category: body.CategoryMoon, Radius: 3, Palette: []body.RGB{{R: 220, G: 220, B: 220}}, Texture: body.TextureNoisy},
	}
}

func starDescriptor() body.Descriptor {
	return body.Descriptor{
		Name:     "Sol",
		Category: body.CategoryStar,
		Radius:   16,
		Palette:  []body.RGB{{R: 255, G: 244, B: 214}, {R: 255, G: 210, B: 125}, {R: 255, G: 167, B: 38}},
		Texture:  body.TextureNoisy,
	}
}

func TestSystemLayoutPartition(t *testing.T) {
	n := 5003 // deliberately not divisible by 5
	g := newTestGenerator(n, 10)
	s := g.Retarget(g.NewSet(), starDescriptor(), testOrbiting())

	if len(s.Target) != n {
		t.Fatalf("target len = %d, want %d", len(s.Target), n)
	}

	group := n / 5
	star := starDescriptor()

	// Core group: near the star sphere, allowing the turbulent displacement.
	maxCore := float64(star.Radius) * (1 + coreTurbulence*1.5)
	minCore := float64(star.Radius) * (1 - coreTurbulence*1.5)
	for i := 0; i < group; i++ {
		r := float64(s.Target[i].Len())
		if r < minCore-1e-3 || r > maxCore+1e-3 {
			t.Fatalf("core target[%d] radius %v outside [%v, %v]", i, r, minCore, maxCore)
		}
	}

	// Leftover particles are parked at the origin.
	for i := 5 * group; i < n; i++ {
		if s.Target[i].Len() != 0 {
			t.Fatalf("leftover target[%d] = %v, want origin", i, s.Target[i])
		}
		if s.Color[i] != leftoverColor {
			t.Fatalf("leftover color[%d] = %v, want %v", i, s.Color[i], leftoverColor)
		}
	}
}

func TestSystemLayoutOrbitGuides(t *testing.T) {
	n := 5000
	g := newTestGenerator(n, 11)
	orbiting := testOrbiting()
	s := g.Retarget(g.NewSet(), starDescriptor(), orbiting)

	group := n / 5
	// Guides are thin circles on the orbit radii.
	radii := make([]float64, len(orbiting))
	for k := range orbiting {
		radii[k] = float64(orbitRadius(k))
	}
	for i := group; i < 2*group; i++ {
		p := s.Target[i]
		radial := math.Hypot(float64(p.X()), float64(p.Z()))
		onOrbit := false
		for _, r := range radii {
			if math.Abs(radial-r) < 1e-3 {
				onOrbit = true
				break
			}
		}
		if !onOrbit {
			t.Fatalf("guide target[%d] radial %v not on any orbit %v", i, radial, radii)
		}
		if math.Abs(float64(p.Y())) > orbitGuideJitter+1e-6 {
			t.Fatalf("guide target[%d] vertical %v exceeds jitter", i, p.Y())
		}
	}
}

func TestSystemLayoutDebrisBelt(t *testing.T) {
	n := 5000
	g := newTestGenerator(n, 12)
	s := g.Retarget(g.NewSet(), starDescriptor(), testOrbiting())

	group := n / 5
	lo := float64(orbitRadius(beltInnerIndex) + beltMargin)
	hi := float64(orbitRadius(beltOuterIndex) - beltMargin)
	for i := 2 * group; i < 3*group; i++ {
		p := s.Target[i]
		radial := math.Hypot(float64(p.X()), float64(p.Z()))
		if radial < lo-1e-3 || radial > hi+1e-3 {
			t.Fatalf("belt target[%d] radial %v outside [%v, %v]", i, radial, lo, hi)
		}
		if math.Abs(float64(p.Y())) > beltJitter+1e-6 {
			t.Fatalf("belt target[%d] vertical %v exceeds jitter", i, p.Y())
		}
	}
}

func TestSystemLayoutMiniBodiesNearOrbits(t *testing.T) {
	n := 5000
	g := newTestGenerator(n, 13)
	orbiting := testOrbiting()
	s := g.Retarget(g.NewSet(), starDescriptor(), orbiting)

	group := n / 5
	per := (2 * group) / len(orbiting)
	for k := range orbiting {
		r := float64(orbitRadius(k))
		angle := float64(orbitAngle(k))
		cx := r * math.Cos(angle)
		cz := r * math.Sin(angle)

		// Mini extent: ring outer scale of the reduced radius bounds it.
		maxDist := float64(orbiting[k].Radius*miniScale)*ringOuterScale + 0.5

		start := 3*group + k*per
		end := start + per
		if k == len(orbiting)-1 {
			end = 5 * group
		}
		for i := start; i < end; i++ {
			p := s.Target[i]
			dx := float64(p.X()) - cx
			dz := float64(p.Z()) - cz
			dist := math.Sqrt(dx*dx + dz*dz + float64(p.Y()*p.Y()))
			if dist > maxDist+1e-3 {
				t.Fatalf("mini %d target[%d] is %v from its orbit slot, max %v", k, i, dist, maxDist)
			}
		}
	}
}

func TestOrbitTablesWrap(t *testing.T) {
	// Indices beyond table length must wrap, never panic or repeat out
	// of range.
	for k := 0; k < 40; k++ {
		r := orbitRadius(k)
		if r != orbitRadii[k%len(orbitRadii)] {
			t.Fatalf("orbitRadius(%d) = %v, want wrapped table value", k, r)
		}
		a := orbitAngle(k)
		if a != orbitAngles[k%len(orbitAngles)] {
			t.Fatalf("orbitAngle(%d) = %v, want wrapped table value", k, a)
		}
	}
}

func TestSystemLayoutNoOrbitingBodies(t *testing.T) {
	n := 1000
	g := newTestGenerator(n, 14)
	s := g.Retarget(g.NewSet(), starDescriptor(), nil)

	// Guide and mini allocations fall back to core points; everything
	// below 5*(n/5) must be defined and finite.
	group := n / 5
	for i := 0; i < 5*group; i++ {
		r := s.Target[i].Len()
		if math.IsNaN(float64(r)) {
			t.Fatalf("target[%d] is NaN", i)
		}
	}
}
