package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/inkfield/config"
	"github.com/pthm-cable/inkfield/telemetry"
	"github.com/pthm-cable/inkfield/ui"
)

const controlsLegend = "[<-/->] slide  [H] hud  [F11] fullscreen"

// Draw renders the frame and closes the perf tick opened by Update.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	g.scene.Begin(g.camera)
	g.backdropRenderer.Draw()
	g.particleRenderer.Draw()
	g.scene.End()

	sw, sh := int32(g.viewport.Width), int32(g.viewport.Height)
	action := g.controls.Draw(sw, sh, g.carousel.Len(), g.carousel.Selected(), g.images.Name(g.carousel.Selected()))
	g.hud.Draw(g.hudData())
	g.hud.DrawControls(sh, controlsLegend)

	g.scene.Present()
	g.perf.EndTick()
	g.flushPerf()

	// Selection runs outside the drawing pass
	switch action {
	case ui.ActionPrev:
		g.carousel.Prev()
	case ui.ActionNext:
		g.carousel.Next()
	case ui.ActionSelect:
		g.carousel.Select(g.controls.Picked)
	}
}

func (g *Game) hudData() ui.HUDData {
	stats := g.perf.Stats()
	idx := g.carousel.Selected()
	return ui.HUDData{
		Title:      config.Cfg().Screen.Title,
		Slide:      idx,
		SlideCount: g.carousel.Len(),
		ImageName:  g.images.Name(idx),
		Samples:    len(g.bridge.Samples()),
		PoolSize:   g.pool.Len(),
		Pending:    g.bridge.Pending(),
		Tick:       g.tick,
		FPS:        rl.GetFPS(),
		MeanFrame:  stats.MeanTick,
		P95Frame:   stats.P95Tick,
	}
}

