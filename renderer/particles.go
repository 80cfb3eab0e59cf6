// Package renderer draws the particle cloud and background. It owns
// the draw call and camera; the animation buffers it receives are
// read-only snapshots.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orrery/camera"
	"github.com/pthm-cable/orrery/cloud"
)

// CloudRenderer renders the live particle buffer.
type CloudRenderer struct {
	fovY float32
}

// NewCloudRenderer creates a new cloud renderer.
func NewCloudRenderer() *CloudRenderer {
	return &CloudRenderer{fovY: 45}
}

// Draw renders all particles inside a 3D pass, applying the
// accumulated whole-cloud rotation (yaw around Y, pitch around X).
func (r *CloudRenderer) Draw(set *cloud.ParticleSet, rotation mgl32.Vec2, cam *camera.Camera) {
	cx, cy, cz := cam.Position()
	rlCam := rl.Camera3D{
		Position:   rl.Vector3{X: cx, Y: cy, Z: cz},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       r.fovY,
		Projection: rl.CameraPerspective,
	}

	rot := mgl32.Rotate3DY(rotation[0]).Mul3(mgl32.Rotate3DX(rotation[1]))

	rl.BeginMode3D(rlCam)
	for i := range set.Live {
		p := rot.Mul3x1(set.Live[i])
		c := set.Color[i]
		rl.DrawPoint3D(
			rl.Vector3{X: p[0], Y: p[1], Z: p[2]},
			rl.Color{R: c.R, G: c.G, B: c.B, A: 255},
		)
	}
	rl.EndMode3D()
}
