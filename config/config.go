// Package config provides configuration loading and access for the visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualization configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Particles ParticlesConfig `yaml:"particles"`
	Animation AnimationConfig `yaml:"animation"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Phrase    PhraseConfig    `yaml:"phrase"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Bodies    []BodyConfig    `yaml:"bodies"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ParticlesConfig holds particle cloud parameters.
// Count is fixed for the session so renderer buffers never reallocate
// across body changes.
type ParticlesConfig struct {
	Count        int     `yaml:"count"`         // Total particles N
	SpreadRadius float64 `yaml:"spread_radius"` // Origin cloud sphere radius
	RingFraction float64 `yaml:"ring_fraction"` // Fraction of N allocated to rings when a body has them
}

// AnimationConfig holds per-frame animation tunables.
type AnimationConfig struct {
	ApproachRate     float64 `yaml:"approach_rate"`      // Live position low-pass rate (per second)
	SpinRate         float64 `yaml:"spin_rate"`          // Base yaw rate for planets/moons (rad/s)
	SpinRateStar     float64 `yaml:"spin_rate_star"`     // Base yaw rate for the star composite (rad/s)
	InfluenceGain    float64 `yaml:"influence_gain"`     // Rotation influence scale (rad/s at full deflection)
	OscSpeed         float64 `yaml:"osc_speed"`          // Oscillation time rate
	OscPhaseScale    float64 `yaml:"osc_phase_scale"`    // Per-particle seed phase decorrelation
	OscFloor         float64 `yaml:"osc_floor"`          // Minimum oscillation amplitude
	OscExpansionGain float64 `yaml:"osc_expansion_gain"` // Extra amplitude at full expansion
	OscStarFloor     float64 `yaml:"osc_star_floor"`     // Amplitude floor for star bodies near full contraction
}

// GestureConfig holds gesture adapter parameters.
type GestureConfig struct {
	SmoothingRate  float64 `yaml:"smoothing_rate"`  // Expansion target approach rate (per second)
	PhraseCooldown float64 `yaml:"phrase_cooldown"` // Minimum seconds between phrase requests
	ListenAddr     string  `yaml:"listen_addr"`     // Websocket ingest address ("" = disabled)
}

// PhraseConfig holds phrase service parameters.
type PhraseConfig struct {
	URL          string  `yaml:"url"`           // Phrase service endpoint ("" = fallback only)
	TimeoutSec   float64 `yaml:"timeout_sec"`   // Request timeout
	LowWater     int     `yaml:"low_water"`     // Top up cache when this many phrases remain
	RequestCount int     `yaml:"request_count"` // Phrases per top-up request
}

// AudioConfig holds audio cue settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds per stats logging window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames averaged by the perf collector
}

// BodyConfig defines one celestial body in the catalog.
// Palettes are hex strings ("#RRGGBB") parsed by the body package.
type BodyConfig struct {
	Name          string   `yaml:"name"`
	Category      string   `yaml:"category"` // star, planet, moon
	Radius        float64  `yaml:"radius"`
	Palette       []string `yaml:"palette"`
	Rings         bool     `yaml:"rings"`
	RingPalette   []string `yaml:"ring_palette"`
	Texture       string   `yaml:"texture"`        // banded, noisy, solid
	BandFrequency float64  `yaml:"band_frequency"` // banded mode: latitude band count multiplier
	Turbulence    float64  `yaml:"turbulence"`     // banded mode: longitude perturbation amplitude
	Biome         bool     `yaml:"biome"`          // opt into the biome texture path
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Count      int     // Particles.Count, floored at 1
	Spread32   float32 // Particles.SpreadRadius as float32
	RingFrac32 float32 // Particles.RingFraction as float32
	BodyIndex  map[string]int
	ScreenW32  float32
	ScreenH32  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Count = c.Particles.Count
	if c.Derived.Count < 1 {
		c.Derived.Count = 1
	}
	c.Derived.Spread32 = float32(c.Particles.SpreadRadius)
	c.Derived.RingFrac32 = float32(c.Particles.RingFraction)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.BodyIndex = make(map[string]int, len(c.Bodies))
	for i := range c.Bodies {
		c.Derived.BodyIndex[c.Bodies[i].Name] = i
	}
}

// WriteYAML saves the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
