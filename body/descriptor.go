// Package body defines the celestial body catalog and descriptors.
package body

import (
	"fmt"
	"strconv"
	"strings"
)

// Category classifies a body for layout and animation purposes.
// A star descriptor selects the composite solar-system layout and the
// slower base spin; planets and moons use the single-body layout.
type Category int

const (
	CategoryPlanet Category = iota
	CategoryMoon
	CategoryStar
)

// String returns the category name as used in config files.
func (c Category) String() string {
	switch c {
	case CategoryStar:
		return "star"
	case CategoryMoon:
		return "moon"
	default:
		return "planet"
	}
}

// ParseCategory parses a config category string.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "star":
		return CategoryStar, nil
	case "planet":
		return CategoryPlanet, nil
	case "moon":
		return CategoryMoon, nil
	}
	return CategoryPlanet, fmt.Errorf("unknown body category %q", s)
}

// TextureMode selects the per-point coloring algorithm.
type TextureMode int

const (
	TextureNoisy TextureMode = iota
	TextureBanded
	TextureSolid
)

// String returns the texture mode name as used in config files.
func (t TextureMode) String() string {
	switch t {
	case TextureBanded:
		return "banded"
	case TextureSolid:
		return "solid"
	default:
		return "noisy"
	}
}

// ParseTexture parses a config texture mode string.
func ParseTexture(s string) (TextureMode, error) {
	switch strings.ToLower(s) {
	case "noisy", "":
		return TextureNoisy, nil
	case "banded":
		return TextureBanded, nil
	case "solid":
		return TextureSolid, nil
	}
	return TextureNoisy, fmt.Errorf("unknown texture mode %q", s)
}

// RGB is a renderer-independent color triple.
type RGB struct {
	R, G, B uint8
}

// White is the degenerate-input fallback color.
var White = RGB{255, 255, 255}

// ParseHex parses a "#RRGGBB" color string.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Descriptor identifies one renderable celestial body. Identity is Name.
// Descriptors are immutable once built from config.
type Descriptor struct {
	Name          string
	Category      Category
	Radius        float32
	Palette       []RGB
	HasRings      bool
	RingPalette   []RGB
	Texture       TextureMode
	BandFrequency float32 // banded mode band count multiplier
	Turbulence    float32 // banded mode longitude perturbation amplitude
	Biome         bool    // use the biome classification path
}
