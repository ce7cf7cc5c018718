package images

import (
	"image"
	"image/color"
	"math"
)

// shapeFunc reports whether normalised point (u, v) in [-1, 1]² is ink.
type shapeFunc func(u, v float64) bool

var builtinShapes = []struct {
	name string
	fn   shapeFunc
}{
	{"ring", func(u, v float64) bool {
		r := math.Hypot(u, v)
		return r > 0.45 && r < 0.7
	}},
	{"cross", func(u, v float64) bool {
		return (math.Abs(u) < 0.15 && math.Abs(v) < 0.7) || (math.Abs(v) < 0.15 && math.Abs(u) < 0.7)
	}},
	{"diamond", func(u, v float64) bool {
		d := math.Abs(u) + math.Abs(v)
		return d > 0.4 && d < 0.75
	}},
	{"wave", func(u, v float64) bool {
		return math.Abs(u) < 0.8 && math.Abs(v-0.3*math.Sin(u*2*math.Pi)) < 0.1
	}},
}

// Builtin renders the procedural ink images used when no directory is
// configured: black shapes on an opaque white ground.
func Builtin(w, h int) *Collection {
	names := make([]string, len(builtinShapes))
	imgs := make([]image.Image, len(builtinShapes))
	for i, s := range builtinShapes {
		names[i] = s.name
		imgs[i] = render(w, h, s.fn)
	}
	return NewCollection(names, imgs)
}

func render(w, h int, fn shapeFunc) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := 1 - 2*(float64(y)+0.5)/float64(h)
		for x := 0; x < w; x++ {
			u := 2*(float64(x)+0.5)/float64(w) - 1
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if fn(u, v) {
				c = color.NRGBA{A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
