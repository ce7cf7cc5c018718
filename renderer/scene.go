// Package renderer draws the particle scene with raylib's immediate 3D mode.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/camera"
)

// Scene owns the per-frame 3D pass: clear, project, draw, end.
type Scene struct {
	background color.RGBA
	near, far  float64
}

// NewScene creates a scene cleared to background.
func NewScene(background color.RGBA, near, far float64) *Scene {
	return &Scene{background: background, near: near, far: far}
}

// Begin starts the frame and enters 3D mode for cam.
// Must be paired with End.
func (s *Scene) Begin(cam *camera.Camera) {
	rl.BeginDrawing()
	rl.ClearBackground(s.background)

	// Clip planes are read when the projection is built in BeginMode3D
	rl.SetClipPlanes(s.near, s.far)
	rl.BeginMode3D(Camera3D(cam))
}

// End leaves 3D mode. 2D overlays drawn after End and before Present sit
// on top of the scene.
func (s *Scene) End() {
	rl.EndMode3D()
}

// Present finishes the frame.
func (s *Scene) Present() {
	rl.EndDrawing()
}

// Camera3D converts the eased camera into a raylib perspective camera.
// The aspect ratio comes from the current framebuffer.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	return rl.NewCamera3D(
		vec3(cam.Position),
		vec3(cam.LookAt),
		rl.NewVector3(0, 1, 0),
		float32(cam.FOV),
		rl.CameraPerspective,
	)
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
