package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/inkfield/images"
	"github.com/pthm-cable/inkfield/telemetry"
)

// Update handles input and advances one frame. Draw finishes the frame.
func (g *Game) Update() {
	g.perf.StartTick()
	g.handleInput()

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	g.step(dt)
}

// UpdateHeadless advances one frame on the simulated clock without drawing.
func (g *Game) UpdateHeadless() {
	g.perf.StartTick()
	g.now = g.now.Add(DT)
	g.step(DT)
	g.perf.EndTick()
	g.flushPerf()
}

// step runs one tick of the animation loop. There is no catch-up: a slow
// frame is simply a longer dt for autoplay and settle timers.
func (g *Game) step(dt time.Duration) {
	g.perf.StartPhase(telemetry.PhaseCarousel)
	g.scheduler.Poll()
	g.drainWatcher()
	g.carousel.Advance(dt)

	g.perf.StartPhase(telemetry.PhaseParticles)
	g.motion.Update()

	g.perf.StartPhase(telemetry.PhaseCamera)
	g.camera.Step()

	g.tick++
}

// drainWatcher applies any image reloads without blocking.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case u, ok := <-g.watcher.Updates():
			if !ok {
				g.watcher = nil
				return
			}
			g.applyImageUpdate(u)
		case err := <-g.watcher.Errors():
			slog.Warn("image watcher error", "error", err)
		default:
			return
		}
	}
}

func (g *Game) applyImageUpdate(u images.Update) {
	if u.Err != nil {
		// Editors often write in several steps; the next event retries
		slog.Warn("image reload failed", "image", u.Name, "error", u.Err)
		return
	}
	idx := g.images.IndexOf(u.Name)
	if idx < 0 {
		slog.Info("ignoring new image, restart to add slides", "image", u.Name)
		return
	}
	g.images.Replace(idx, u.Image)
	slog.Info("image reloaded", "image", u.Name, "index", idx)

	if idx == g.carousel.Selected() {
		g.carousel.Select(idx)
	}
}
