package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/inkfield/components"
)

// LowPolySphere builds a UV sphere with the usual (ws+1)*(hs+1) vertex grid.
// Seam and pole vertices are duplicated, so jittering them independently
// opens small cracks; that irregularity is part of the look.
func LowPolySphere(radius float64, widthSegments, heightSegments int) components.Shape {
	ws := max(widthSegments, 3)
	hs := max(heightSegments, 2)

	verts := make([]r3.Vec, 0, (ws+1)*(hs+1))
	for iy := 0; iy <= hs; iy++ {
		v := float64(iy) / float64(hs)
		theta := v * math.Pi
		for ix := 0; ix <= ws; ix++ {
			u := float64(ix) / float64(ws)
			phi := u * 2 * math.Pi
			verts = append(verts, r3.Vec{
				X: -radius * math.Cos(phi) * math.Sin(theta),
				Y: radius * math.Cos(theta),
				Z: radius * math.Sin(phi) * math.Sin(theta),
			})
		}
	}

	row := ws + 1
	var idx []uint16
	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := uint16(iy*row + ix + 1)
			b := uint16(iy*row + ix)
			c := uint16((iy+1)*row + ix)
			d := uint16((iy+1)*row + ix + 1)
			if iy != 0 {
				idx = append(idx, a, b, d)
			}
			if iy != hs-1 {
				idx = append(idx, b, c, d)
			}
		}
	}

	return components.Shape{Vertices: verts, Indices: idx}
}

// JitterShape offsets every vertex by an independent value in [-amount, amount) per axis.
func JitterShape(shape *components.Shape, amount float64, rng *rand.Rand) {
	for i := range shape.Vertices {
		v := &shape.Vertices[i]
		v.X += rng.Float64()*2*amount - amount
		v.Y += rng.Float64()*2*amount - amount
		v.Z += rng.Float64()*2*amount - amount
	}
}
