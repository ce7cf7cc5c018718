package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/inkfield/components"
)

// BackdropRenderer draws the static background spheres.
type BackdropRenderer struct {
	filter *ecs.Filter2[components.Position, components.Backdrop]
}

// NewBackdropRenderer creates a renderer over world.
func NewBackdropRenderer(world *ecs.World) *BackdropRenderer {
	return &BackdropRenderer{
		filter: ecs.NewFilter2[components.Position, components.Backdrop](world),
	}
}

// Draw renders all backdrop spheres. Must be called inside 3D mode.
func (r *BackdropRenderer) Draw() {
	query := r.filter.Query()
	for query.Next() {
		pos, bd := query.Get()
		seg := int32(bd.Segments)
		rl.DrawSphereEx(vec3(pos.Vec), float32(bd.Radius), seg, seg, bd.Color)
	}
}
