package systems

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/config"
)

// Rotate applies an XYZ Euler rotation with no Z component: the Y rotation
// is applied first, then X.
func Rotate(v r3.Vec, rotX, rotY float64) r3.Vec {
	sy, cy := math.Sincos(rotY)
	v = r3.Vec{
		X: v.X*cy + v.Z*sy,
		Y: v.Y,
		Z: -v.X*sy + v.Z*cy,
	}
	sx, cx := math.Sincos(rotX)
	return r3.Vec{
		X: v.X,
		Y: v.Y*cx - v.Z*sx,
		Z: v.Y*sx + v.Z*cx,
	}
}

// FaceNormal returns the unit normal of a counter-clockwise triangle.
// Degenerate triangles yield the zero vector.
func FaceNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// DirectionalLight shines along -Direction (Direction points at the light).
type DirectionalLight struct {
	Direction r3.Vec
	Intensity float64
}

// Lighting is a set of directional lights evaluated per face.
type Lighting struct {
	Lights []DirectionalLight
}

// NewLighting builds unit-direction lights from the scene config.
func NewLighting(lights []config.LightConfig) *Lighting {
	l := &Lighting{}
	for _, lc := range lights {
		dir := r3.Vec{X: lc.X, Y: lc.Y, Z: lc.Z}
		n := r3.Norm(dir)
		if n == 0 {
			continue
		}
		l.Lights = append(l.Lights, DirectionalLight{
			Direction: r3.Scale(1/n, dir),
			Intensity: lc.Intensity,
		})
	}
	return l
}

// Irradiance sums the Lambert term of every light for normal n.
func (l *Lighting) Irradiance(n r3.Vec) float64 {
	var sum float64
	for _, light := range l.Lights {
		if d := r3.Dot(n, light.Direction); d > 0 {
			sum += d * light.Intensity
		}
	}
	return sum
}

// Shade scales c by the irradiance at n, saturating each channel.
// A nil Lighting leaves the color unlit.
func (l *Lighting) Shade(c color.RGBA, n r3.Vec) color.RGBA {
	if l == nil {
		return c
	}
	k := l.Irradiance(n)
	return color.RGBA{
		R: scaleChannel(c.R, k),
		G: scaleChannel(c.G, k),
		B: scaleChannel(c.B, k),
		A: c.A,
	}
}

func scaleChannel(v uint8, k float64) uint8 {
	s := float64(v) * k
	if s >= 255 {
		return 255
	}
	return uint8(s)
}
