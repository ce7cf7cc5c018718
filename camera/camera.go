// Package camera provides the pointer-following perspective camera and
// viewport bookkeeping.
package camera

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/config"
)

// Viewport tracks the window size and its half extents.
type Viewport struct {
	Width, Height         float64
	HalfWidth, HalfHeight float64
}

// NewViewport creates a viewport of the given size.
func NewViewport(w, h float64) Viewport {
	var v Viewport
	v.Resize(w, h)
	return v
}

// Resize updates the size and derived half extents.
// Returns false if nothing changed.
func (v *Viewport) Resize(w, h float64) bool {
	if w == v.Width && h == v.Height {
		return false
	}
	v.Width = w
	v.Height = h
	v.HalfWidth = w / 2
	v.HalfHeight = h / 2
	return true
}

// Aspect returns width over height (1 for a degenerate viewport).
func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// Camera eases toward a pointer-driven target while looking at a fixed point.
// Position is never snapped; it moves Ease of the remaining distance per tick.
type Camera struct {
	// Position is the current eye point
	Position r3.Vec

	// Target is where the eye is heading, set from the pointer
	Target r3.Vec

	// LookAt is the fixed focus point
	LookAt r3.Vec

	// Projection
	FOV, Near, Far float64
	Aspect         float64

	// Ease is the fraction of remaining distance covered per Step
	Ease float64

	// PointerFactor scales pointer offset into target offset
	PointerFactor float64
}

// New creates a camera at (0, 0, distance) looking at the origin.
func New(cfg config.CameraConfig, vp Viewport) *Camera {
	start := r3.Vec{X: 0, Y: 0, Z: cfg.Distance}
	return &Camera{
		Position:      start,
		Target:        start,
		FOV:           cfg.FOV,
		Near:          cfg.Near,
		Far:           cfg.Far,
		Aspect:        vp.Aspect(),
		Ease:          cfg.Ease,
		PointerFactor: cfg.PointerFactor,
	}
}

// PointerMoved sets the target from a pointer position in window pixels.
// The horizontal axis is mirrored; the vertical axis follows the pointer
// down the window, which tilts the view up.
func (c *Camera) PointerMoved(px, py float64, vp Viewport) {
	mx := px - vp.HalfWidth
	my := py - vp.HalfHeight
	c.Target.X = -mx * c.PointerFactor
	c.Target.Y = my * c.PointerFactor
}

// Step eases the position toward the target.
func (c *Camera) Step() {
	c.Position = r3.Add(c.Position, r3.Scale(c.Ease, r3.Sub(c.Target, c.Position)))
}

// Resize updates the projection aspect.
func (c *Camera) Resize(vp Viewport) {
	c.Aspect = vp.Aspect()
}
