package systems

import (
	"image/color"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/components"
	"github.com/pthm-cable/inkfield/config"
)

// ReconcileResult summarises one Reconcile pass.
type ReconcileResult struct {
	Samples   int // M
	Updated   int // existing particles given a new sample target
	Created   int // particles allocated this pass
	Scattered int // particles without a sample, sent out of frame
	Size      int // pool size after the pass
}

// ParticleOptions holds the per-particle creation parameters.
type ParticleOptions struct {
	Radius         float64
	WidthSegments  int
	HeightSegments int
	ShapeJitter    float64
	MaxSpin        float64
	Palette        []color.RGBA
}

// ParticleOptionsFromConfig reads creation parameters from the config.
func ParticleOptionsFromConfig(cfg *config.Config) ParticleOptions {
	return ParticleOptions{
		Radius:         cfg.Particles.Radius,
		WidthSegments:  cfg.Particles.WidthSegments,
		HeightSegments: cfg.Particles.HeightSegments,
		ShapeJitter:    cfg.Particles.ShapeJitter,
		MaxSpin:        cfg.Particles.MaxSpin,
		Palette:        cfg.Derived.Palette,
	}
}

// Pool is the ordered, grow-only particle collection.
// Index i always refers to the same entity once allocated; particles are
// retargeted rather than removed.
type Pool struct {
	world *ecs.World

	builder *ecs.Map5[
		components.Position,
		components.Target,
		components.Spin,
		components.Shape,
		components.Tint,
	]
	posMap    *ecs.Map[components.Position]
	targetMap *ecs.Map[components.Target]

	entities  []ecs.Entity
	mapper    PositionMapper
	opts      ParticleOptions
	rng       *rand.Rand
	viewportW float64
}

// NewPool creates an empty pool whose particles live in world.
func NewPool(world *ecs.World, mapper PositionMapper, opts ParticleOptions, rng *rand.Rand, viewportW float64) *Pool {
	return &Pool{
		world: world,
		builder: ecs.NewMap5[
			components.Position,
			components.Target,
			components.Spin,
			components.Shape,
			components.Tint,
		](world),
		posMap:    ecs.NewMap[components.Position](world),
		targetMap: ecs.NewMap[components.Target](world),
		mapper:    mapper,
		opts:      opts,
		rng:       rng,
		viewportW: viewportW,
	}
}

// SetViewportWidth updates the width used for scatter radii.
func (p *Pool) SetViewportWidth(w float64) {
	p.viewportW = w
}

// Len returns the pool size (the high-water mark of samples).
func (p *Pool) Len() int {
	return len(p.entities)
}

// Target returns the target of particle i.
func (p *Pool) Target(i int) r3.Vec {
	return p.targetMap.Get(p.entities[i]).Vec
}

// Position returns the current position of particle i.
func (p *Pool) Position(i int) r3.Vec {
	return p.posMap.Get(p.entities[i]).Vec
}

// Reconcile retargets the pool onto a new sample set.
//
// Particles below len(samples) get a freshly mapped target, keeping their
// current position so they glide over. Missing particles are created.
// Particles past len(samples) are sent out of frame. The pool never shrinks.
func (p *Pool) Reconcile(samples []Sample) ReconcileResult {
	res := ReconcileResult{Samples: len(samples)}

	for i, s := range samples {
		if i < len(p.entities) {
			p.targetMap.Get(p.entities[i]).Vec = p.mapper.Map(s, p.rng)
			res.Updated++
			continue
		}
		p.entities = append(p.entities, p.spawn(i, s))
		res.Created++
	}

	for i := len(samples); i < len(p.entities); i++ {
		p.targetMap.Get(p.entities[i]).Vec = p.scatter(OutOfFrame)
		res.Scattered++
	}

	res.Size = len(p.entities)
	return res
}

// ScatterAll retargets every particle to a scattered point.
func (p *Pool) ScatterAll(mode ScatterMode) {
	for _, e := range p.entities {
		p.targetMap.Get(e).Vec = p.scatter(mode)
	}
}

func (p *Pool) spawn(index int, s Sample) ecs.Entity {
	shape := LowPolySphere(p.opts.Radius, p.opts.WidthSegments, p.opts.HeightSegments)
	JitterShape(&shape, p.opts.ShapeJitter, p.rng)

	pos := components.Position{Vec: p.scatter(InFrame)}
	target := components.Target{Vec: p.mapper.Map(s, p.rng)}
	spin := components.Spin{
		VelX: p.rng.Float64() * p.opts.MaxSpin,
		VelY: p.rng.Float64() * p.opts.MaxSpin,
	}
	tint := components.Tint{
		Color: p.opts.Palette[index%len(p.opts.Palette)],
		Index: index,
	}

	return p.builder.NewEntity(&pos, &target, &spin, &shape, &tint)
}

func (p *Pool) scatter(mode ScatterMode) r3.Vec {
	return Scatter(mode, p.viewportW, p.rng.Float64)
}
