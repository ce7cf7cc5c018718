package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/components"
	"github.com/pthm-cable/inkfield/config"
)

// SpawnBackdrop places the static decorative spheres behind the particles.
// They are positioned once from the startup viewport and never move.
func SpawnBackdrop(world *ecs.World, cfg *config.Config, viewportW, viewportH float64, rng *rand.Rand) []ecs.Entity {
	bc := cfg.Backdrop
	mapper := ecs.NewMap2[components.Position, components.Backdrop](world)

	entities := make([]ecs.Entity, 0, bc.Count)
	for i := 0; i < bc.Count; i++ {
		pos := components.Position{Vec: r3.Vec{
			X: rng.Float64()*viewportW*2 - viewportW,
			Y: rng.Float64()*viewportH*2 - viewportH,
			Z: -rng.Float64()*bc.DepthSpan - bc.DepthMin,
		}}
		bd := components.Backdrop{
			Radius:   bc.Radius,
			Segments: bc.Segments,
			Color:    cfg.Derived.BackdropColor,
		}
		entities = append(entities, mapper.NewEntity(&pos, &bd))
	}
	return entities
}
