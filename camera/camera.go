// Package camera provides the orbit camera for viewing the particle cloud.
package camera

import "math"

// Camera orbits the world origin at a distance, with yaw/pitch control
// and zoom constraints. The cloud itself carries the gesture-driven
// rotation; this camera is the user's viewpoint on top of it.
type Camera struct {
	// Orbit angles in radians
	Yaw, Pitch float32

	// Distance from the origin
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32
}

const pitchLimit = float32(math.Pi/2) - 0.05

// New creates a camera at a comfortable default orbit for the given
// cloud spread radius.
func New(spread float32) *Camera {
	return &Camera{
		Yaw:         0.6,
		Pitch:       0.35,
		Distance:    spread * 2.2,
		MinDistance: spread * 0.3,
		MaxDistance: spread * 5,
	}
}

// Position returns the camera's world position.
func (c *Camera) Position() (x, y, z float32) {
	cosPitch := float32(math.Cos(float64(c.Pitch)))
	x = c.Distance * cosPitch * float32(math.Cos(float64(c.Yaw)))
	y = c.Distance * float32(math.Sin(float64(c.Pitch)))
	z = c.Distance * cosPitch * float32(math.Sin(float64(c.Yaw)))
	return x, y, z
}

// Orbit adjusts yaw and pitch by the given deltas, clamping pitch away
// from the poles to avoid gimbal flip.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, -pitchLimit, pitchLimit)
}

// ZoomBy scales the orbit distance by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.Distance = clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// Reset returns the camera to its default orbit.
func (c *Camera) Reset(spread float32) {
	c.Yaw = 0.6
	c.Pitch = 0.35
	c.Distance = spread * 2.2
}

func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
