// Package cloud generates the particle configurations the animation
// engine interpolates between: a body-independent scattered origin
// cloud and a shaped target cloud encoding the selected body's surface.
package cloud

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
)

// ParticleSet holds the parallel per-particle arrays. The length is
// fixed for the session so renderer bindings never reallocate across
// body changes.
//
// Origin, Seed: built once, shared by every set for the session.
// Target, Color: rebuilt wholesale on each body change.
// Live: the only mutable field, owned by the animation driver. It is
// carried across body changes so transitions start from the particles'
// current places instead of teleporting.
type ParticleSet struct {
	Origin []mgl32.Vec3
	Target []mgl32.Vec3
	Color  []body.RGB
	Seed   []mgl32.Vec3
	Live   []mgl32.Vec3
}

// Len returns the particle count N.
func (s *ParticleSet) Len() int { return len(s.Origin) }
