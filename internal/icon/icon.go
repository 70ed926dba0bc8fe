// Package icon renders the extension's brand artwork: a shaded disc carrying
// a hexagon with work-item bars, sprint dots, a chart line and an
// integration badge.
package icon

import (
	"image"

	"github.com/nimbusworks/iconforge/internal/render"
	"github.com/nimbusworks/iconforge/internal/render/layout"
)

const (
	discRadius = 58
	hexRadius  = 25
	hexLiftPx  = 5 // the hexagon center sits this far above the canvas center
	lineWidth  = 2

	// A 1px edge border on a regular hexagon corresponds to 1/cos(30°) of
	// circumradius.
	hexBorderInset = 1.1547
)

// Draw renders the full motif onto a fresh transparent canvas at the native
// size (render.CanvasSize, 128px).
func Draw() *image.RGBA {
	c := render.NewCanvas(render.CanvasSize)
	center := float64(render.CanvasSize) / 2

	// Shaded disc and its outline.
	c.FillRadialGradient(center, center, discRadius, render.DarkBlue, render.PrimaryBlue)
	c.StrokeRing(center, center, discRadius, lineWidth, render.DarkBlue)

	// Hexagon: blue fill under a white fill inset by the border width.
	hexCy := center - hexLiftPx
	outer := render.HexagonPoints(center, hexCy, hexRadius)
	c.FillPolygon(outer[:], render.PrimaryBlue)
	inner := render.HexagonPoints(center, hexCy, hexRadius-hexBorderInset)
	c.FillPolygon(inner[:], render.White)

	drawWorkItemBars(c)
	drawSprintDots(c, center)
	drawChartLine(c, center)
	drawBadge(c)

	return c.Image()
}

// Sized returns the motif scaled to size×size. The native geometry is always
// rendered first so variants stay consistent with the 128px original.
func Sized(size int) *image.RGBA {
	img := Draw()
	if size <= 0 {
		return img
	}
	return render.Scale(img, size)
}

// Three 2px-tall bars of decreasing width stacked above center.
func drawWorkItemBars(c *render.Canvas) {
	mid := render.CanvasSize / 2
	top := mid - 20
	for i, width := range []int{32, 24, 28} {
		y := top + i*6
		c.FillRect(image.Rect(mid-16, y, mid-16+width, y+2), render.PrimaryBlue)
	}
}

// Three 4px dots below the bars, one sprint iteration each.
func drawSprintDots(c *render.Canvas, center float64) {
	for _, off := range []float64{-8, 0, 8} {
		c.FillDisc(center+off, center+5, 2, render.PrimaryBlue)
	}
}

func drawChartLine(c *render.Canvas, center float64) {
	pts := []render.Point{
		{X: center - 12, Y: center + 18},
		{X: center - 6, Y: center + 15},
		{X: center, Y: center + 20},
		{X: center + 6, Y: center + 12},
		{X: center + 12, Y: center + 16},
	}
	c.StrokePolyline(pts, lineWidth, render.PrimaryBlue)
}

// The integration badge: an 8px accent square with a 1px-inset white square
// on top, giving a bordered-square appearance.
func drawBadge(c *render.Canvas) {
	mid := render.CanvasSize / 2
	badge := image.Rect(mid+25, mid+25, mid+33, mid+33)
	c.FillRect(badge, render.AccentBlue)
	c.FillRect(layout.Inset(badge, 1), render.White)
}
