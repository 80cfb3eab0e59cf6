// Package main provides CMA-ES optimization for animation parameters
// that settle quickly without a twitchy assembled cloud.
package main

import (
	"github.com/pthm-cable/orrery/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Position low-pass
			{Name: "approach_rate", Path: "animation.approach_rate", Min: 1.0, Max: 12.0, Default: 4.5},
			// Gesture smoothing (phrase_cooldown locked at 3.0)
			{Name: "smoothing_rate", Path: "gesture.smoothing_rate", Min: 0.5, Max: 8.0, Default: 3.0},
			// Oscillation
			{Name: "osc_speed", Path: "animation.osc_speed", Min: 0.2, Max: 3.0, Default: 1.6},
			{Name: "osc_floor", Path: "animation.osc_floor", Min: 0.0, Max: 0.1, Default: 0.015},
			{Name: "osc_expansion_gain", Path: "animation.osc_expansion_gain", Min: 0.05, Max: 0.8, Default: 0.35},
			{Name: "osc_star_floor", Path: "animation.osc_star_floor", Min: 0.0, Max: 0.2, Default: 0.05},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	i := 0
	cfg.Animation.ApproachRate = clamped[i]
	i++
	cfg.Gesture.SmoothingRate = clamped[i]
	i++
	// phrase_cooldown locked
	cfg.Gesture.PhraseCooldown = 3.0
	cfg.Animation.OscSpeed = clamped[i]
	i++
	cfg.Animation.OscFloor = clamped[i]
	i++
	cfg.Animation.OscExpansionGain = clamped[i]
	i++
	cfg.Animation.OscStarFloor = clamped[i]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Animation.ApproachRate,
		cfg.Gesture.SmoothingRate,
		cfg.Animation.OscSpeed,
		cfg.Animation.OscFloor,
		cfg.Animation.OscExpansionGain,
		cfg.Animation.OscStarFloor,
	}
}
