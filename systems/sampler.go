package systems

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Sample is a 2D ink coordinate in y-up canvas space.
type Sample struct {
	X, Y int
}

// ImageSampler draws images onto a fixed offscreen canvas and extracts
// the ink coordinates used as particle targets.
type ImageSampler struct {
	width, height int
	canvas        *image.NRGBA
}

// NewImageSampler creates a sampler with a w×h canvas.
func NewImageSampler(w, h int) *ImageSampler {
	return &ImageSampler{
		width:  w,
		height: h,
		canvas: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

// Size returns the canvas dimensions.
func (s *ImageSampler) Size() (w, h int) {
	return s.width, s.height
}

// Canvas returns the current canvas contents.
func (s *ImageSampler) Canvas() *image.NRGBA {
	return s.canvas
}

// Reset clears the canvas to transparent.
func (s *ImageSampler) Reset() {
	clear(s.canvas.Pix)
}

// Sample draws img scaled to fill the canvas and returns its ink coordinates.
//
// The canvas is not cleared first: transparent regions of img keep whatever
// the previous image left behind. A pixel is ink when its red channel is 0.
// Only coordinates with both x and y even and non-zero are kept, which halves
// the resolution on each axis. Coordinates come out in reverse scan order.
func (s *ImageSampler) Sample(img image.Image) []Sample {
	if img == nil {
		panic("systems: ImageSampler.Sample called with nil image")
	}
	s.draw(img)
	return s.scan()
}

func (s *ImageSampler) draw(img image.Image) {
	src := img.Bounds()
	dst := s.canvas.Bounds()
	if src.Dx() == dst.Dx() && src.Dy() == dst.Dy() {
		xdraw.Copy(s.canvas, dst.Min, img, src, xdraw.Over, nil)
		return
	}
	xdraw.BiLinear.Scale(s.canvas, dst, img, src, xdraw.Over, nil)
}

func (s *ImageSampler) scan() []Sample {
	pix := s.canvas.Pix
	stride := s.canvas.Stride
	var out []Sample

	for p := s.width*s.height - 1; p >= 0; p-- {
		row := p / s.width
		col := p % s.width
		if pix[row*stride+col*4] != 0 {
			continue
		}

		x := col
		y := s.height - row
		if x != 0 && x%2 == 0 && y != 0 && y%2 == 0 {
			out = append(out, Sample{X: x, Y: y})
		}
	}
	return out
}
