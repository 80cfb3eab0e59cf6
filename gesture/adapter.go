// Package gesture converts the external hand-pose signal into the
// expansion target, rotation influence, and discrete open/close
// transition events.
package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/config"
)

// Sample is one hand-pose observation from the external tracker.
// Position is normalized to [0,1]^2 in tracker image coordinates.
type Sample struct {
	Open     bool
	Openness float32
	Position mgl32.Vec2
}

// defaultSample is the idle state used when no tracker is connected:
// hand open and centered, so the cloud rests scattered with no drift.
var defaultSample = Sample{Open: true, Openness: 1, Position: mgl32.Vec2{0.5, 0.5}}

// Events are the callbacks fired on gesture transitions. Any nil
// callback is skipped. All callbacks must return quickly; the phrase
// and audio collaborators are fire-and-forget on their side.
type Events struct {
	OnExpand      func() // closed -> open transition
	OnContract    func() // open -> closed transition
	RequestPhrase func() // rate-limited, on open transitions
	NextBody      func() // on close transitions
}

// Adapter smooths the gesture signal into the expansion control and
// detects open/close edges. It is single-goroutine: OnSample and Tick
// are called from the frame loop.
type Adapter struct {
	smoothingRate  float32
	phraseCooldown float64

	events Events

	expansion  float32
	target     float32
	influence  mgl32.Vec2
	wasOpen    bool
	clock      float64
	lastPhrase float64
	havePhrase bool // a phrase request has fired at least once
}

// NewAdapter creates an adapter in the idle default state.
func NewAdapter(cfg config.GestureConfig, events Events) *Adapter {
	a := &Adapter{
		smoothingRate:  float32(cfg.SmoothingRate),
		phraseCooldown: cfg.PhraseCooldown,
		events:         events,
	}
	a.apply(defaultSample)
	a.expansion = a.target
	a.wasOpen = defaultSample.Open
	return a
}

// OnSample consumes one tracker observation. Latest value wins; there
// is no queue, so the tracker may sample at any cadence.
func (a *Adapter) OnSample(s Sample) {
	if s.Open && !a.wasOpen {
		// Rising edge: expand cue, and a phrase request unless inside
		// the cooldown window. Suppressed requests are dropped, never
		// queued.
		if a.events.OnExpand != nil {
			a.events.OnExpand()
		}
		if a.events.RequestPhrase != nil {
			if !a.havePhrase || a.clock-a.lastPhrase >= a.phraseCooldown {
				a.lastPhrase = a.clock
				a.havePhrase = true
				a.events.RequestPhrase()
			}
		}
	}
	if !s.Open && a.wasOpen {
		if a.events.OnContract != nil {
			a.events.OnContract()
		}
		if a.events.NextBody != nil {
			a.events.NextBody()
		}
	}
	a.wasOpen = s.Open
	a.apply(s)
}

// apply maps a sample onto the expansion target and influence vector.
func (a *Adapter) apply(s Sample) {
	if s.Open {
		a.target = 1
	} else {
		a.target = 0
	}
	a.influence = mgl32.Vec2{
		(0.5 - s.Position[0]) * 2,
		(s.Position[1] - 0.5) * 2,
	}
}

// Tick advances the adapter clock and smooths expansion toward its
// target with the same exponential step the animation driver uses,
// on an independently tuned rate.
func (a *Adapter) Tick(dt float32) {
	a.clock += float64(dt)
	step := 1 - float32(math.Exp(float64(-a.smoothingRate*dt)))
	a.expansion += (a.target - a.expansion) * step
}

// Expansion returns the smoothed expansion signal in [0,1].
func (a *Adapter) Expansion() float32 { return a.expansion }

// Influence returns the rotation influence vector, each axis in [-1,1].
func (a *Adapter) Influence() mgl32.Vec2 { return a.influence }

// Open reports the last observed hand state.
func (a *Adapter) Open() bool { return a.wasOpen }
