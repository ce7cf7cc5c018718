package telemetry

import (
	"log/slog"
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseParticles)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseRender)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.Samples != 5 {
		t.Errorf("expected 5 samples, got %d", stats.Samples)
	}
	if stats.MeanTick <= 0 {
		t.Error("expected positive mean tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseParticles]; !ok {
		t.Error("expected particles phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseRender]; !ok {
		t.Error("expected render phase to be tracked")
	}
	if stats.PhaseAvg[PhaseRender] < stats.PhaseAvg[PhaseParticles] {
		t.Errorf("render (%v) should take longer than particles (%v)",
			stats.PhaseAvg[PhaseRender], stats.PhaseAvg[PhaseParticles])
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseCamera)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.Samples != 5 {
		t.Errorf("expected window capped at 5 samples, got %d", stats.Samples)
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_Quantiles(t *testing.T) {
	pc := NewPerfCollector(100)
	for i := 1; i <= 100; i++ {
		pc.record(PerfSample{TickDuration: time.Duration(i) * time.Millisecond})
	}

	stats := pc.Stats()
	if stats.MeanTick != 50500*time.Microsecond {
		t.Errorf("mean = %v, want 50.5ms", stats.MeanTick)
	}
	if stats.P50Tick != 50*time.Millisecond {
		t.Errorf("p50 = %v, want 50ms", stats.P50Tick)
	}
	if stats.P95Tick != 95*time.Millisecond {
		t.Errorf("p95 = %v, want 95ms", stats.P95Tick)
	}
	if stats.MaxTick != 100*time.Millisecond {
		t.Errorf("max = %v, want 100ms", stats.MaxTick)
	}
	if stats.StdTick <= 0 {
		t.Error("expected positive standard deviation")
	}
}

func TestPerfCollector_Empty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.Samples != 0 || stats.MeanTick != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected initialized phase maps")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		MeanTick: 1500 * time.Microsecond,
		PhasePct: map[string]float64{PhaseRender: 60, PhaseParticles: 30},
	}
	row := stats.ToCSV(42)
	if row.Tick != 42 || row.MeanTickUS != 1500 || row.RenderPct != 60 || row.ParticlesPct != 30 {
		t.Errorf("unexpected CSV row %+v", row)
	}
}

func TestPerfStats_LogValue(t *testing.T) {
	stats := PerfStats{Samples: 3, PhasePct: map[string]float64{PhaseRender: 80}}
	v := stats.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("expected group value, got %v", v.Kind())
	}
	found := false
	for _, a := range v.Group() {
		if a.Key == "render_pct" {
			found = true
		}
	}
	if !found {
		t.Error("expected render_pct attribute")
	}
}
