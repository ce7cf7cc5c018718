package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/config"
)

// PositionMapper converts a canvas Sample into a scene-space target.
// Every call draws fresh jitter, so the same sample maps to a different
// point each time.
type PositionMapper struct {
	OffsetX, OffsetY float64
	Scale            float64
	JitterSpan       float64
	JitterBias       float64
	DepthMin         float64
	DepthSpan        float64
}

// NewPositionMapper builds a mapper centred on the configured canvas.
func NewPositionMapper(cfg *config.Config) PositionMapper {
	return PositionMapper{
		OffsetX:    cfg.Derived.CanvasOffsetX,
		OffsetY:    cfg.Derived.CanvasOffsetY,
		Scale:      cfg.Mapper.Scale,
		JitterSpan: cfg.Mapper.JitterSpan,
		JitterBias: cfg.Mapper.JitterBias,
		DepthMin:   cfg.Mapper.DepthMin,
		DepthSpan:  cfg.Mapper.DepthSpan,
	}
}

// Map returns a noisy target for s.
// x' = (x - offX - (rand*span + bias)) * scale, likewise for y;
// z' lies in (DepthMin, DepthMin+DepthSpan].
func (m PositionMapper) Map(s Sample, rng *rand.Rand) r3.Vec {
	jx := rng.Float64()*m.JitterSpan + m.JitterBias
	jy := rng.Float64()*m.JitterSpan + m.JitterBias
	return r3.Vec{
		X: (float64(s.X) - m.OffsetX - jx) * m.Scale,
		Y: (float64(s.Y) - m.OffsetY - jy) * m.Scale,
		Z: m.DepthMin + m.DepthSpan*(1-rng.Float64()),
	}
}

// Bounds returns the box every Map(s, ·) result falls inside.
func (m PositionMapper) Bounds(s Sample) (lo, hi r3.Vec) {
	lo = r3.Vec{
		X: (float64(s.X) - m.OffsetX - m.JitterBias - m.JitterSpan) * m.Scale,
		Y: (float64(s.Y) - m.OffsetY - m.JitterBias - m.JitterSpan) * m.Scale,
		Z: m.DepthMin,
	}
	hi = r3.Vec{
		X: (float64(s.X) - m.OffsetX - m.JitterBias) * m.Scale,
		Y: (float64(s.Y) - m.OffsetY - m.JitterBias) * m.Scale,
		Z: m.DepthMin + m.DepthSpan,
	}
	return lo, hi
}
