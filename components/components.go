// Package components defines ECS components for particles and the backdrop.
package components

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Position is an entity's current point in scene space.
type Position struct {
	r3.Vec
}

// Target is the point a particle eases toward each tick.
type Target struct {
	r3.Vec
}

// Spin holds Euler rotation (X then Y) and the fixed per-tick velocities.
type Spin struct {
	RotX, RotY float64 // radians
	VelX, VelY float64 // radians per tick, set at creation
}

// Shape is a particle's own low-poly mesh, in local space.
// Vertices are jittered per instance; Indices are triangle triples.
type Shape struct {
	Vertices []r3.Vec
	Indices  []uint16
}

// Tint holds the particle's palette color and its pool index.
type Tint struct {
	Color color.RGBA
	Index int
}

// Backdrop marks a static decorative sphere.
type Backdrop struct {
	Radius   float64
	Segments int
	Color    color.RGBA
}
