package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/inkfield/camera"
	"github.com/pthm-cable/inkfield/carousel"
	"github.com/pthm-cable/inkfield/config"
	"github.com/pthm-cable/inkfield/images"
	"github.com/pthm-cable/inkfield/renderer"
	"github.com/pthm-cable/inkfield/systems"
	"github.com/pthm-cable/inkfield/telemetry"
	"github.com/pthm-cable/inkfield/ui"
)

// DT is the simulated frame time for headless runs.
const DT = time.Second / 60

// Options configures a Game.
type Options struct {
	Seed      int64
	ImagesDir string // overrides images.dir when set
	Watch     bool   // hot-reload images from the directory
	OutputDir string
	Headless  bool
}

// Game holds the complete application state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Scene state
	viewport camera.Viewport
	camera   *camera.Camera
	sampler  *systems.ImageSampler
	pool     *systems.Pool
	motion   *systems.MotionSystem
	backdrop []ecs.Entity

	// Slides
	images    *images.Collection
	carousel  *carousel.Carousel
	scheduler *carousel.Scheduler
	bridge    *carousel.Bridge
	watcher   *images.Watcher

	// Rendering (nil when headless)
	scene            *renderer.Scene
	particleRenderer *renderer.ParticleRenderer
	backdropRenderer *renderer.BackdropRenderer
	hud              *ui.HUD
	controls         *ui.CarouselControls

	// Telemetry
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	headless bool
	tick     int64
	start    time.Time
	now      time.Time // simulated clock, headless only
}

// NewGame bootstraps the scene: images, particle pool, backdrop, camera,
// carousel and the bridge between them. The first slide is sampled
// immediately. In graphical mode the raylib window must already exist.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		world:    ecs.NewWorld(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		headless: opts.Headless,
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
	}
	g.start = time.Now()
	g.now = g.start

	// Image source
	dir := cfg.Images.Dir
	if opts.ImagesDir != "" {
		dir = opts.ImagesDir
	}
	if dir != "" {
		coll, err := images.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("loading images: %w", err)
		}
		g.images = coll
	} else {
		g.images = images.Builtin(cfg.Canvas.Width, cfg.Canvas.Height)
	}

	if dir != "" && (opts.Watch || cfg.Images.Watch) {
		w, err := images.Watch(dir)
		if err != nil {
			return nil, fmt.Errorf("starting image watcher: %w", err)
		}
		g.watcher = w
	}

	// Viewport and camera
	if g.headless {
		g.viewport = camera.NewViewport(float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	} else {
		g.viewport = camera.NewViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}
	g.camera = camera.New(cfg.Camera, g.viewport)

	// Particles
	g.sampler = systems.NewImageSampler(cfg.Canvas.Width, cfg.Canvas.Height)
	g.pool = systems.NewPool(
		g.world,
		systems.NewPositionMapper(cfg),
		systems.ParticleOptionsFromConfig(cfg),
		g.rng,
		g.viewport.Width,
	)
	g.motion = systems.NewMotionSystem(g.world, cfg.Particles.Ease)
	g.backdrop = systems.SpawnBackdrop(g.world, cfg, g.viewport.Width, g.viewport.Height, g.rng)

	// Carousel
	g.scheduler = carousel.NewScheduler(g.clock)
	g.carousel = carousel.New(g.images.Len(), cfg.Carousel.WrapAround, cfg.Carousel.Autoplay)
	g.bridge = carousel.NewBridge(g.carousel, g.images, g.sampler, g.pool, g.scheduler, carousel.BridgeOptions{
		SettleDelay:   cfg.Carousel.SettleDelay,
		CancelPending: cfg.Carousel.CancelPending,
	})
	g.bridge.OnReconcile(g.recordReconcile)

	// Output
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if !g.headless {
		g.initRendering(cfg)
	}

	slog.Info("scene ready",
		"images", g.images.Len(),
		"viewport_w", g.viewport.Width,
		"viewport_h", g.viewport.Height,
		"backdrop", len(g.backdrop),
		"watch", g.watcher != nil,
	)

	g.bridge.Refresh()
	return g, nil
}

func (g *Game) initRendering(cfg *config.Config) {
	var lighting *systems.Lighting
	if cfg.Scene.Shaded {
		lighting = systems.NewLighting(cfg.Scene.Lights)
	}
	g.scene = renderer.NewScene(cfg.Derived.Background, cfg.Camera.Near, cfg.Camera.Far)
	g.particleRenderer = renderer.NewParticleRenderer(g.world, lighting)
	g.backdropRenderer = renderer.NewBackdropRenderer(g.world)
	g.hud = ui.NewHUD()
	g.controls = ui.NewCarouselControls()
}

// clock is the time source for settle delays. Headless runs use a
// simulated clock that advances DT per tick.
func (g *Game) clock() time.Time {
	if g.headless {
		return g.now
	}
	return time.Now()
}

// Tick returns the number of frames run.
func (g *Game) Tick() int64 {
	return g.tick
}

// Pool returns the particle pool.
func (g *Game) Pool() *systems.Pool {
	return g.pool
}

// Bridge returns the carousel bridge.
func (g *Game) Bridge() *carousel.Bridge {
	return g.bridge
}

// Unload releases the watcher and flushes output files.
func (g *Game) Unload() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			slog.Warn("closing image watcher", "error", err)
		}
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
