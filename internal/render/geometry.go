package render

import (
	"image/color"
	"math"
)

// Point is a canvas coordinate in pixels.
type Point struct {
	X, Y float64
}

// HexagonPoints returns the six vertices of a regular hexagon with the given
// center and circumradius. Vertex i sits at angle i·60°−90°, so vertex 0
// points straight up.
func HexagonPoints(cx, cy, r float64) [6]Point {
	var pts [6]Point
	for i := range pts {
		angle := float64(i)*math.Pi/3 - math.Pi/2
		pts[i] = Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

// Lerp interpolates channel-wise between two colors; t=0 yields from, t=1
// yields to. t is clamped to [0,1].
func Lerp(from, to color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
