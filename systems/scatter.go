package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ScatterMode selects where a scattered point may land.
type ScatterMode uint8

const (
	// InFrame keeps the point within the viewport-width radius.
	InFrame ScatterMode = iota
	// OutOfFrame pushes the point beyond the viewport-width radius.
	OutOfFrame
)

func (m ScatterMode) String() string {
	if m == OutOfFrame {
		return "out_of_frame"
	}
	return "in_frame"
}

// InFrameRadius is the radius that separates the two scatter modes.
func InFrameRadius(viewportW float64) float64 {
	return viewportW
}

// Scatter returns a random point around the origin using the uniform
// source u (values in [0, 1)).
//
// The radius is r = W + span*u() with span = +2W (out of frame) or -2W
// (in frame). Drawing r linearly over the span, instead of taking a
// square root, weights the distribution towards the outer edge, so
// p(r) grows with r rather than staying constant over the area.
// Out of frame gives |r| in [W, 3W); in frame gives r in (-W, W].
// Depth is uniform in [0, W).
func Scatter(mode ScatterMode, viewportW float64, u func() float64) r3.Vec {
	span := -2 * viewportW
	if mode == OutOfFrame {
		span = 2 * viewportW
	}

	r := viewportW + span*u()
	angle := u() * 2 * math.Pi

	return r3.Vec{
		X: r * math.Cos(angle),
		Y: r * math.Sin(angle),
		Z: u() * viewportW,
	}
}
