package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseCarousel  = "carousel"
	PhaseParticles = "particles"
	PhaseCamera    = "camera"
	PhaseRender    = "render"
)

// Phases lists the frame phases in execution order.
var Phases = []string{PhaseCarousel, PhaseParticles, PhaseCamera, PhaseRender}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to aggregate over.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new frame.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current frame and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.record(PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	})
}

func (p *PerfCollector) record(s PerfSample) {
	p.samples[p.writeIndex] = s
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	Samples int

	MeanTick time.Duration
	StdTick  time.Duration
	P50Tick  time.Duration
	P95Tick  time.Duration
	MaxTick  time.Duration

	// Average duration and share of the frame per phase
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Samples:  p.sampleCount,
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.sampleCount == 0 {
		return s
	}

	ticks := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		sample := p.samples[i]
		ticks[i] = float64(sample.TickDuration)
		for phase, dur := range sample.Phases {
			phaseSum[phase] += dur
		}
	}
	sort.Float64s(ticks)

	mean := stat.Mean(ticks, nil)
	s.MeanTick = time.Duration(mean)
	if len(ticks) > 1 {
		s.StdTick = time.Duration(stat.StdDev(ticks, nil))
	}
	s.P50Tick = time.Duration(stat.Quantile(0.5, stat.Empirical, ticks, nil))
	s.P95Tick = time.Duration(stat.Quantile(0.95, stat.Empirical, ticks, nil))
	s.MaxTick = time.Duration(ticks[len(ticks)-1])

	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.sampleCount)
		s.PhaseAvg[phase] = avg
		if mean > 0 {
			s.PhasePct[phase] = float64(avg) / mean * 100
		}
	}
	if mean > 0 {
		s.TicksPerSecond = float64(time.Second) / mean
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("samples", s.Samples),
		slog.Int64("mean_tick_us", s.MeanTick.Microseconds()),
		slog.Int64("p95_tick_us", s.P95Tick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Tick         int64   `csv:"tick"`
	MeanTickUS   int64   `csv:"mean_tick_us"`
	StdTickUS    int64   `csv:"std_tick_us"`
	P50TickUS    int64   `csv:"p50_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	CarouselPct  float64 `csv:"carousel_pct"`
	ParticlesPct float64 `csv:"particles_pct"`
	CameraPct    float64 `csv:"camera_pct"`
	RenderPct    float64 `csv:"render_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(tick int64) PerfStatsCSV {
	return PerfStatsCSV{
		Tick:         tick,
		MeanTickUS:   s.MeanTick.Microseconds(),
		StdTickUS:    s.StdTick.Microseconds(),
		P50TickUS:    s.P50Tick.Microseconds(),
		P95TickUS:    s.P95Tick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		CarouselPct:  s.PhasePct[PhaseCarousel],
		ParticlesPct: s.PhasePct[PhaseParticles],
		CameraPct:    s.PhasePct[PhaseCamera],
		RenderPct:    s.PhasePct[PhaseRender],
	}
}
