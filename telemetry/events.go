package telemetry

import (
	"time"

	"github.com/pthm-cable/inkfield/systems"
)

// ReconcileEvent is one row of reconcile.csv.
type ReconcileEvent struct {
	Tick      int64   `csv:"tick"`
	ElapsedMS int64   `csv:"elapsed_ms"`
	Slide     int     `csv:"slide"`
	Image     string  `csv:"image"`
	Samples   int     `csv:"samples"`
	Updated   int     `csv:"updated"`
	Created   int     `csv:"created"`
	Scattered int     `csv:"scattered"`
	PoolSize  int     `csv:"pool_size"`
	Occupancy float64 `csv:"occupancy"` // samples / pool size
}

// NewReconcileEvent flattens a reconcile result.
func NewReconcileEvent(tick int64, elapsed time.Duration, slide int, image string, res systems.ReconcileResult) ReconcileEvent {
	var occ float64
	if res.Size > 0 {
		occ = float64(res.Samples) / float64(res.Size)
	}
	return ReconcileEvent{
		Tick:      tick,
		ElapsedMS: elapsed.Milliseconds(),
		Slide:     slide,
		Image:     image,
		Samples:   res.Samples,
		Updated:   res.Updated,
		Created:   res.Created,
		Scattered: res.Scattered,
		PoolSize:  res.Size,
		Occupancy: occ,
	}
}
