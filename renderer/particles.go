package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/components"
	"github.com/pthm-cable/inkfield/systems"
)

// ParticleRenderer draws every particle as its rotated low-poly shape.
type ParticleRenderer struct {
	filter   *ecs.Filter4[components.Position, components.Spin, components.Shape, components.Tint]
	lighting *systems.Lighting // nil = unlit

	// Scratch buffer for transformed vertices
	verts []r3.Vec
}

// NewParticleRenderer creates a renderer over world. Pass nil lighting for
// flat, unshaded faces.
func NewParticleRenderer(world *ecs.World, lighting *systems.Lighting) *ParticleRenderer {
	return &ParticleRenderer{
		filter:   ecs.NewFilter4[components.Position, components.Spin, components.Shape, components.Tint](world),
		lighting: lighting,
	}
}

// Draw renders all particles. Must be called inside 3D mode.
func (r *ParticleRenderer) Draw() int {
	n := 0
	query := r.filter.Query()
	for query.Next() {
		pos, spin, shape, tint := query.Get()

		r.verts = r.verts[:0]
		for _, v := range shape.Vertices {
			r.verts = append(r.verts, r3.Add(pos.Vec, systems.Rotate(v, spin.RotX, spin.RotY)))
		}

		for i := 0; i+2 < len(shape.Indices); i += 3 {
			a := r.verts[shape.Indices[i]]
			b := r.verts[shape.Indices[i+1]]
			c := r.verts[shape.Indices[i+2]]

			col := tint.Color
			if r.lighting != nil {
				col = r.lighting.Shade(col, systems.FaceNormal(a, b, c))
			}
			rl.DrawTriangle3D(vec3(a), vec3(b), vec3(c), col)
		}
		n++
	}
	return n
}
