package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/components"
)

// Lerp moves from a toward b by fraction t of the remaining distance.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// MotionSystem advances particle rotation and eases positions toward targets.
type MotionSystem struct {
	filter *ecs.Filter3[components.Position, components.Target, components.Spin]
	ease   float64
}

// NewMotionSystem creates a motion system over world.
func NewMotionSystem(world *ecs.World, ease float64) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter3[components.Position, components.Target, components.Spin](world),
		ease:   ease,
	}
}

// Update runs one tick and returns the number of particles stepped.
func (s *MotionSystem) Update() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		pos, target, spin := query.Get()
		spin.RotX += spin.VelX
		spin.RotY += spin.VelY
		pos.Vec = Lerp(pos.Vec, target.Vec, s.ease)
		n++
	}
	return n
}
