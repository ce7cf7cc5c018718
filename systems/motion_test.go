package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/components"
)

func TestLerp(t *testing.T) {
	got := Lerp(r3.Vec{X: 0, Y: 0, Z: 800}, r3.Vec{X: -50, Y: 30, Z: 800}, 0.2)
	want := r3.Vec{X: -10, Y: 6, Z: 800}
	if r3.Norm(r3.Sub(got, want)) > 1e-9 {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
}

func TestMotionEasesTowardTarget(t *testing.T) {
	world := ecs.NewWorld()
	builder := ecs.NewMap3[components.Position, components.Target, components.Spin](world)

	pos := components.Position{Vec: r3.Vec{X: 100, Y: 0, Z: 0}}
	target := components.Target{Vec: r3.Vec{X: 0, Y: 0, Z: 0}}
	spin := components.Spin{VelX: 0.01, VelY: 0.02}
	e := builder.NewEntity(&pos, &target, &spin)

	motion := NewMotionSystem(world, 0.1)
	if n := motion.Update(); n != 1 {
		t.Fatalf("expected 1 particle stepped, got %d", n)
	}

	p, _, s := builder.Get(e)
	if math.Abs(p.X-90) > 1e-9 {
		t.Errorf("after one tick x = %v, want 90", p.X)
	}
	if math.Abs(s.RotX-0.01) > 1e-12 || math.Abs(s.RotY-0.02) > 1e-12 {
		t.Errorf("rotation = (%v, %v), want (0.01, 0.02)", s.RotX, s.RotY)
	}

	// Remaining distance shrinks geometrically and never overshoots.
	for i := 0; i < 50; i++ {
		motion.Update()
	}
	p, _, _ = builder.Get(e)
	want := 100 * math.Pow(0.9, 51)
	if math.Abs(p.X-want) > 1e-6 || p.X < 0 {
		t.Errorf("after 51 ticks x = %v, want %v", p.X, want)
	}
}

func TestMotionIgnoresBackdrop(t *testing.T) {
	world := ecs.NewWorld()
	bd := ecs.NewMap2[components.Position, components.Backdrop](world)
	pos := components.Position{Vec: r3.Vec{Z: -500}}
	bd.NewEntity(&pos, &components.Backdrop{Radius: 10})

	if n := NewMotionSystem(world, 0.1).Update(); n != 0 {
		t.Errorf("backdrop spheres must not move, stepped %d", n)
	}
}
