// Package engine advances the particle cloud every frame, blending the
// scattered origin configuration and the shaped target configuration
// according to the expansion signal.
package engine

import (
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
	"github.com/pthm-cable/orrery/cloud"
	"github.com/pthm-cable/orrery/config"
)

// State is the session-wide animation state. A single instance lives
// for the whole session and is mutated once per frame by the driver.
type State struct {
	Expansion float32    // 0 = assembled into the body, 1 = fully scattered
	Rotation  mgl32.Vec2 // accumulated yaw (X) and pitch (Y)
	Clock     float32    // monotonic animation time in seconds
}

// Driver owns the live particle positions and the active ParticleSet
// reference. The set pointer is swapped atomically on body change so a
// renderer never observes a half-written target array.
type Driver struct {
	set      atomic.Pointer[cloud.ParticleSet]
	category atomic.Int32

	state State

	approachRate     float32
	spinRate         float32
	spinRateStar     float32
	influenceGain    float32
	oscSpeed         float32
	oscPhaseScale    float32
	oscFloor         float32
	oscExpansionGain float32
	oscStarFloor     float32
}

// NewDriver creates a driver over the initial particle set.
func NewDriver(cfg config.AnimationConfig, set *cloud.ParticleSet, category body.Category) *Driver {
	d := &Driver{
		approachRate:     float32(cfg.ApproachRate),
		spinRate:         float32(cfg.SpinRate),
		spinRateStar:     float32(cfg.SpinRateStar),
		influenceGain:    float32(cfg.InfluenceGain),
		oscSpeed:         float32(cfg.OscSpeed),
		oscPhaseScale:    float32(cfg.OscPhaseScale),
		oscFloor:         float32(cfg.OscFloor),
		oscExpansionGain: float32(cfg.OscExpansionGain),
		oscStarFloor:     float32(cfg.OscStarFloor),
	}
	d.state.Expansion = 1 // session starts scattered
	d.set.Store(set)
	d.category.Store(int32(category))
	return d
}

// Set returns the active particle set snapshot.
func (d *Driver) Set() *cloud.ParticleSet {
	return d.set.Load()
}

// Swap installs a freshly regenerated particle set for a new body.
// The live array is shared between old and new sets, so the animation
// continues from the particles' current positions.
func (d *Driver) Swap(set *cloud.ParticleSet, category body.Category) {
	d.set.Store(set)
	d.category.Store(int32(category))
}

// SetExpansion sets the expansion signal, clamped to [0, 1]. The
// gesture adapter smooths before calling, so no smoothing happens here.
func (d *Driver) SetExpansion(e float32) {
	if e < 0 {
		e = 0
	}
	if e > 1 {
		e = 1
	}
	d.state.Expansion = e
}

// Expansion returns the current expansion signal.
func (d *Driver) Expansion() float32 { return d.state.Expansion }

// Rotation returns the accumulated whole-cloud rotation.
func (d *Driver) Rotation() mgl32.Vec2 { return d.state.Rotation }

// Clock returns the monotonic animation time.
func (d *Driver) Clock() float32 { return d.state.Clock }

// Step advances the animation by dt seconds. influence is the external
// 2-axis rotation signal in [-1, 1] per axis.
func (d *Driver) Step(dt float32, influence mgl32.Vec2) {
	s := d.set.Load()
	cat := body.Category(d.category.Load())

	d.state.Clock += dt
	t := d.state.Clock * d.oscSpeed
	e := d.state.Expansion

	// Oscillation grows with expansion so the scattered cloud churns
	// while the assembled body holds almost still. Stars keep a floor
	// even when fully contracted.
	intensity := d.oscFloor + d.oscExpansionGain*e
	if cat == body.CategoryStar && e < 0.2 && intensity < d.oscStarFloor {
		intensity = d.oscStarFloor
	}

	// Frame-rate independent exponential approach.
	step := 1 - float32(math.Exp(float64(-d.approachRate*dt)))

	for i := range s.Live {
		origin := s.Origin[i]
		target := s.Target[i]
		seed := s.Seed[i]

		blend := mgl32.Vec3{
			e*origin[0] + (1-e)*target[0],
			e*origin[1] + (1-e)*target[1],
			e*origin[2] + (1-e)*target[2],
		}

		ox := fastSin(t+seed[0]*d.oscPhaseScale) * intensity
		oy := fastCos(t*1.3+seed[1]*d.oscPhaseScale) * intensity
		oz := fastSin(t*0.8+seed[2]*d.oscPhaseScale+1.7) * intensity

		live := s.Live[i]
		live[0] += (blend[0] + ox - live[0]) * step
		live[1] += (blend[1] + oy - live[1]) * step
		live[2] += (blend[2] + oz - live[2]) * step
		s.Live[i] = live
	}

	// Whole-cloud rotation: base spin plus the external influence,
	// both frame-rate independent.
	base := d.spinRate
	if cat == body.CategoryStar {
		base = d.spinRateStar
	}
	d.state.Rotation[0] += (base + influence[0]*d.influenceGain) * dt
	d.state.Rotation[1] += influence[1] * d.influenceGain * dt
}
