package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/inkfield/config"
)

func defaultMapper() PositionMapper {
	return NewPositionMapper(config.Defaults())
}

func TestMapperDefaults(t *testing.T) {
	m := defaultMapper()
	if m.OffsetX != 120 || m.OffsetY != 60 || m.Scale != 3 {
		t.Errorf("mapper = %+v, want offsets (120, 60) and scale 3", m)
	}
}

func TestMapWithinBounds(t *testing.T) {
	m := defaultMapper()
	rng := rand.New(rand.NewSource(1))
	s := Sample{X: 100, Y: 100}

	lo, hi := m.Bounds(s)
	// (100-120-6)*3 .. (100-120-2)*3 and (100-60-6)*3 .. (100-60-2)*3
	if lo.X != -78 || hi.X != -66 || lo.Y != 102 || hi.Y != 114 || lo.Z != 20 || hi.Z != 40 {
		t.Fatalf("unexpected bounds lo=%v hi=%v", lo, hi)
	}

	for i := 0; i < 1000; i++ {
		p := m.Map(s, rng)
		if p.X < lo.X || p.X > hi.X || p.Y < lo.Y || p.Y > hi.Y || p.Z < lo.Z || p.Z > hi.Z {
			t.Fatalf("Map(%v) = %v outside [%v, %v]", s, p, lo, hi)
		}
		// Depth never reaches the lower end exactly
		if p.Z <= lo.Z {
			t.Fatalf("depth %v should be strictly above %v", p.Z, lo.Z)
		}
	}
}

func TestMapIsNoisy(t *testing.T) {
	m := defaultMapper()
	rng := rand.New(rand.NewSource(2))
	s := Sample{X: 50, Y: 80}

	a := m.Map(s, rng)
	b := m.Map(s, rng)
	if a == b {
		t.Errorf("two calls with the same sample returned the same point %v", a)
	}
}

func TestMapAxesJitterIndependently(t *testing.T) {
	m := defaultMapper()
	rng := rand.New(rand.NewSource(9))
	s := Sample{X: 120, Y: 60}

	// With the offsets cancelled, x and y are -(jitter)*scale for their own draw.
	same := 0
	for i := 0; i < 100; i++ {
		p := m.Map(s, rng)
		if p.X == p.Y {
			same++
		}
	}
	if same > 0 {
		t.Errorf("x and y jitter matched %d times; expected independent draws", same)
	}
}
