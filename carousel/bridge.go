package carousel

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/pthm-cable/inkfield/systems"
)

// Source is an indexed, read-only image collection.
type Source interface {
	Len() int
	At(i int) image.Image
}

// BridgeOptions configures the selection-to-particles bridge.
type BridgeOptions struct {
	SettleDelay   time.Duration
	CancelPending bool
}

// Bridge reacts to carousel selection by resampling the selected image,
// scattering the current targets, and reconciling the pool after the
// settle delay.
type Bridge struct {
	images  Source
	sampler *systems.ImageSampler
	pool    *systems.Pool
	sched   *Scheduler
	opts    BridgeOptions

	current int
	samples []systems.Sample
	pending *Task

	onReconcile []func(index int, res systems.ReconcileResult)
}

// NewBridge wires a bridge to carousel c.
func NewBridge(c *Carousel, images Source, sampler *systems.ImageSampler, pool *systems.Pool, sched *Scheduler, opts BridgeOptions) *Bridge {
	b := &Bridge{
		images:  images,
		sampler: sampler,
		pool:    pool,
		sched:   sched,
		opts:    opts,
		current: c.Selected(),
	}
	c.OnSelect(b.handleSelect)
	return b
}

// OnReconcile subscribes fn to completed reconcile passes.
func (b *Bridge) OnReconcile(fn func(index int, res systems.ReconcileResult)) {
	b.onReconcile = append(b.onReconcile, fn)
}

// Current returns the most recently selected index.
func (b *Bridge) Current() int { return b.current }

// Samples returns the most recent sample set.
func (b *Bridge) Samples() []systems.Sample { return b.samples }

// Pending reports whether a reconcile is waiting for the settle delay.
func (b *Bridge) Pending() bool { return b.pending.Pending() }

// Refresh resamples the current slide as if it had just been selected.
func (b *Bridge) Refresh() {
	b.handleSelect(b.current)
}

func (b *Bridge) handleSelect(index int) {
	if index < 0 || index >= b.images.Len() {
		panic(fmt.Sprintf("carousel: no image for slide %d (have %d)", index, b.images.Len()))
	}
	b.current = index
	b.samples = b.sampler.Sample(b.images.At(index))
	b.pool.ScatterAll(systems.InFrame)

	slog.Info("slide selected", "index", index, "samples", len(b.samples), "pool", b.pool.Len())

	if b.opts.CancelPending && b.pending.Cancel() {
		slog.Debug("cancelled pending reconcile", "index", index)
	}
	b.pending = b.sched.Schedule(b.opts.SettleDelay, b.reconcile)
}

// reconcile applies whatever sample set is current when the delay expires.
func (b *Bridge) reconcile() {
	res := b.pool.Reconcile(b.samples)
	slog.Info("particles reconciled",
		"index", b.current,
		"samples", res.Samples,
		"updated", res.Updated,
		"created", res.Created,
		"scattered", res.Scattered,
		"pool", res.Size,
	)
	for _, fn := range b.onReconcile {
		fn(b.current, res)
	}
}
