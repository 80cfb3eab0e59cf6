package body

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/orrery/config"
)

func testConfigs() []config.BodyConfig {
	return []config.BodyConfig{
		{Name: "Sol", Category: "star", Radius: 16, Palette: []string{"#FFD27D"}, Texture: "noisy"},
		{Name: "Terra", Category: "planet", Radius: 6.5, Palette: []string{"#0D47A1", "#2E7D32"}, Texture: "noisy", Biome: true},
		{Name: "Cronus", Category: "planet", Radius: 9.5, Palette: []string{"#F5E6C8"}, Rings: true, RingPalette: []string{"#D9C9A3"}, Texture: "banded", BandFrequency: 8},
		{Name: "Luna", Category: "moon", Radius: 3, Palette: []string{"#E0E0E0"}, Texture: "noisy"},
	}
}

func TestCatalogFromConfig(t *testing.T) {
	cat, err := CatalogFromConfig(testConfigs())
	if err != nil {
		t.Fatalf("CatalogFromConfig: %v", err)
	}
	if cat.Len() != 4 {
		t.Errorf("Len = %d, want 4", cat.Len())
	}

	d, ok := cat.ByName("Cronus")
	if !ok {
		t.Fatal("ByName(Cronus) not found")
	}
	if !d.HasRings || len(d.RingPalette) != 1 {
		t.Errorf("Cronus rings = %v palette len %d, want ringed with 1 color", d.HasRings, len(d.RingPalette))
	}
	if d.Texture != TextureBanded {
		t.Errorf("Cronus texture = %v, want banded", d.Texture)
	}

	orbiting := cat.Orbiting()
	if len(orbiting) != 3 {
		t.Errorf("Orbiting len = %d, want 3 (star excluded)", len(orbiting))
	}
}

func TestCatalogFromConfigRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.BodyConfig
	}{
		{"missing name", config.BodyConfig{Category: "planet", Radius: 1, Palette: []string{"#FFFFFF"}}},
		{"zero radius", config.BodyConfig{Name: "X", Category: "planet", Radius: 0, Palette: []string{"#FFFFFF"}}},
		{"empty palette", config.BodyConfig{Name: "X", Category: "planet", Radius: 1}},
		{"bad category", config.BodyConfig{Name: "X", Category: "asteroid", Radius: 1, Palette: []string{"#FFFFFF"}}},
		{"bad texture", config.BodyConfig{Name: "X", Category: "planet", Radius: 1, Palette: []string{"#FFFFFF"}, Texture: "plaid"}},
		{"bad color", config.BodyConfig{Name: "X", Category: "planet", Radius: 1, Palette: []string{"notacolor"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CatalogFromConfig([]config.BodyConfig{tt.cfg}); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCatalogFromConfigRejectsDuplicateNames(t *testing.T) {
	// Selection redraws until it finds a name distinct from the current
	// body; two entries sharing a name would make that loop endless, so
	// the duplicate must be rejected at load.
	cfgs := []config.BodyConfig{
		{Name: "Twin", Category: "planet", Radius: 2, Palette: []string{"#FFFFFF"}},
		{Name: "Twin", Category: "planet", Radius: 3, Palette: []string{"#000000"}},
	}
	if _, err := CatalogFromConfig(cfgs); err == nil {
		t.Error("expected error for duplicate body name, got nil")
	}
}

func TestNextNeverReturnsCurrent(t *testing.T) {
	cat, err := CatalogFromConfig(testConfigs())
	if err != nil {
		t.Fatalf("CatalogFromConfig: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		d := cat.Next("Terra", rng)
		if d.Name == "Terra" {
			t.Fatal("Next returned the current body")
		}
	}
}

func TestNextSingleEntryPassthrough(t *testing.T) {
	cat, err := CatalogFromConfig(testConfigs()[:1])
	if err != nil {
		t.Fatalf("CatalogFromConfig: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	d := cat.Next("Sol", rng)
	if d.Name != "Sol" {
		t.Errorf("single-entry Next = %q, want Sol", d.Name)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#FFFFFF", RGB{255, 255, 255}, false},
		{"#000000", RGB{0, 0, 0}, false},
		{"#FF7043", RGB{255, 112, 67}, false},
		{"0D47A1", RGB{13, 71, 161}, false},
		{"#FFF", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
