package game

import (
	"log/slog"

	"github.com/pthm-cable/inkfield/config"
	"github.com/pthm-cable/inkfield/systems"
	"github.com/pthm-cable/inkfield/telemetry"
)

// recordReconcile writes a completed reconcile pass to reconcile.csv.
func (g *Game) recordReconcile(index int, res systems.ReconcileResult) {
	ev := telemetry.NewReconcileEvent(g.tick, g.clock().Sub(g.start), index, g.images.Name(index), res)
	if err := g.output.WriteReconcile(ev); err != nil {
		slog.Error("failed to write reconcile event", "error", err)
	}
}

// flushPerf logs and records frame statistics every log interval.
func (g *Game) flushPerf() {
	interval := int64(config.Cfg().Telemetry.LogInterval)
	if interval <= 0 || g.tick%interval != 0 {
		return
	}

	stats := g.perf.Stats()
	slog.Info("perf", "tick", g.tick, "stats", stats)
	if err := g.output.WritePerf(stats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
