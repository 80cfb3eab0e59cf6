package body

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/orrery/config"
)

// Catalog is the read-only set of bodies the visualization can display.
type Catalog struct {
	bodies []Descriptor
}

// CatalogFromConfig builds and validates a catalog from config records.
func CatalogFromConfig(cfgs []config.BodyConfig) (*Catalog, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("body catalog is empty")
	}

	bodies := make([]Descriptor, 0, len(cfgs))
	seen := make(map[string]struct{}, len(cfgs))
	for i := range cfgs {
		d, err := descriptorFromConfig(&cfgs[i])
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, cfgs[i].Name, err)
		}
		// Name is body identity; a duplicate would make selection spin
		// looking for a distinct body that does not exist.
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("body %d: duplicate name %q", i, d.Name)
		}
		seen[d.Name] = struct{}{}
		bodies = append(bodies, d)
	}

	if len(bodies) < 2 {
		// Selection still works (single-element passthrough) but the
		// close-hand gesture becomes a no-op, which is worth flagging.
		slog.Warn("body catalog has fewer than 2 entries; body switching disabled", "count", len(bodies))
	}

	return &Catalog{bodies: bodies}, nil
}

func descriptorFromConfig(c *config.BodyConfig) (Descriptor, error) {
	if c.Name == "" {
		return Descriptor{}, fmt.Errorf("missing name")
	}
	if c.Radius <= 0 {
		return Descriptor{}, fmt.Errorf("radius must be > 0, got %v", c.Radius)
	}

	cat, err := ParseCategory(c.Category)
	if err != nil {
		return Descriptor{}, err
	}
	tex, err := ParseTexture(c.Texture)
	if err != nil {
		return Descriptor{}, err
	}

	palette, err := parsePalette(c.Palette)
	if err != nil {
		return Descriptor{}, err
	}
	if len(palette) == 0 {
		return Descriptor{}, fmt.Errorf("palette must have at least 1 color")
	}

	// An empty ring palette with rings enabled is tolerated: the shape
	// generator skips the ring allocation rather than failing.
	ringPalette, err := parsePalette(c.RingPalette)
	if err != nil {
		return Descriptor{}, err
	}
	if c.Rings && len(ringPalette) == 0 {
		slog.Warn("body has rings but no ring palette; ring allocation skipped", "body", c.Name)
	}

	return Descriptor{
		Name:          c.Name,
		Category:      cat,
		Radius:        float32(c.Radius),
		Palette:       palette,
		HasRings:      c.Rings,
		RingPalette:   ringPalette,
		Texture:       tex,
		BandFrequency: float32(c.BandFrequency),
		Turbulence:    float32(c.Turbulence),
		Biome:         c.Biome,
	}, nil
}

func parsePalette(hexes []string) ([]RGB, error) {
	if len(hexes) == 0 {
		return nil, nil
	}
	out := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Len returns the number of bodies in the catalog.
func (c *Catalog) Len() int { return len(c.bodies) }

// Bodies returns all bodies in catalog order.
func (c *Catalog) Bodies() []Descriptor { return c.bodies }

// At returns the body at index i.
func (c *Catalog) At(i int) Descriptor { return c.bodies[i] }

// ByName looks up a body by identity.
func (c *Catalog) ByName(name string) (Descriptor, bool) {
	for i := range c.bodies {
		if c.bodies[i].Name == name {
			return c.bodies[i], true
		}
	}
	return Descriptor{}, false
}

// Orbiting returns the non-star bodies in catalog order. The composite
// star layout uses these for orbit guides and mini representations.
func (c *Catalog) Orbiting() []Descriptor {
	out := make([]Descriptor, 0, len(c.bodies))
	for i := range c.bodies {
		if c.bodies[i].Category != CategoryStar {
			out = append(out, c.bodies[i])
		}
	}
	return out
}

// Next picks a uniform-random body distinct from current by name.
// A single-entry catalog returns its only body (passthrough), so the
// redraw loop is bounded.
func (c *Catalog) Next(current string, rng *rand.Rand) Descriptor {
	if len(c.bodies) == 1 {
		return c.bodies[0]
	}
	for {
		d := c.bodies[rng.Intn(len(c.bodies))]
		if d.Name != current {
			return d
		}
	}
}
