package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas is a square RGBA pixel buffer the drawing primitives mutate in
// place. It starts fully transparent.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Image returns the underlying buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// FillRadialGradient fills a disc centered at (cx,cy) with a per-pixel
// radial gradient: inner at the center, outer at the rim. The interior is
// fully opaque; the rim gets a one-pixel anti-aliased edge.
func (c *Canvas) FillRadialGradient(cx, cy, r float64, inner, outer color.RGBA) {
	c.eachDiscPixel(cx, cy, r, func(x, y int, dist, coverage float64) {
		c.setCovered(x, y, Lerp(inner, outer, dist/r), coverage)
	})
}

// FillDisc fills a solid disc.
func (c *Canvas) FillDisc(cx, cy, r float64, col color.RGBA) {
	c.eachDiscPixel(cx, cy, r, func(x, y int, _, coverage float64) {
		c.setCovered(x, y, col, coverage)
	})
}

// StrokeRing draws a circular outline whose outer edge sits at radius r and
// whose band is width pixels deep.
func (c *Canvas) StrokeRing(cx, cy, r, width float64, col color.RGBA) {
	c.eachDiscPixel(cx, cy, r, func(x, y int, dist, coverage float64) {
		cov := coverage * clamp01(dist-(r-width)+0.5)
		if cov <= 0 {
			return
		}
		c.setCovered(x, y, col, cov)
	})
}

// FillRect fills an axis-aligned rectangle, clipped to the canvas.
func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// FillPolygon fills the closed polygon described by pts, anti-aliased via
// the x/image vector rasterizer.
func (c *Canvas) FillPolygon(pts []Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	bounds := c.img.Bounds()
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
	ras.Draw(c.img, bounds, image.NewUniform(col), image.Point{})
}

// StrokePolyline draws each segment as a width-wide quad, with small discs
// at interior joints so adjacent segments meet without notches.
func (c *Canvas) StrokePolyline(pts []Point, width float64, col color.RGBA) {
	half := width / 2
	for i := 0; i+1 < len(pts); i++ {
		c.strokeSegment(pts[i], pts[i+1], half, col)
	}
	for i := 1; i+1 < len(pts); i++ {
		c.FillDisc(pts[i].X, pts[i].Y, half, col)
	}
}

func (c *Canvas) strokeSegment(p0, p1 Point, half float64, col color.RGBA) {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	c.FillPolygon([]Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p0.X - nx, Y: p0.Y - ny},
	}, col)
}

// eachDiscPixel visits every pixel of the disc's bounding box that has
// non-zero coverage, passing the distance from the disc center (measured at
// the pixel center) and the rim coverage in (0,1].
func (c *Canvas) eachDiscPixel(cx, cy, r float64, visit func(x, y int, dist, coverage float64)) {
	bounds := c.img.Bounds()
	x0 := max(bounds.Min.X, int(math.Floor(cx-r)))
	x1 := min(bounds.Max.X-1, int(math.Ceil(cx+r)))
	y0 := max(bounds.Min.Y, int(math.Floor(cy-r)))
	y1 := min(bounds.Max.Y-1, int(math.Ceil(cy+r)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dist := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			coverage := clamp01(r - dist + 0.5)
			if coverage <= 0 {
				continue
			}
			visit(x, y, dist, coverage)
		}
	}
}

// setCovered composites col over the pixel with the given coverage in [0,1].
func (c *Canvas) setCovered(x, y int, col color.RGBA, coverage float64) {
	if coverage >= 1 {
		c.img.SetRGBA(x, y, col)
		return
	}
	// image.RGBA stores premultiplied alpha, so scaling every channel by the
	// coverage is the premultiplied form of (col, α·coverage).
	src := color.RGBA{
		R: uint8(float64(col.R)*coverage + 0.5),
		G: uint8(float64(col.G)*coverage + 0.5),
		B: uint8(float64(col.B)*coverage + 0.5),
		A: uint8(float64(col.A)*coverage + 0.5),
	}
	c.img.SetRGBA(x, y, compositeOver(c.img.RGBAAt(x, y), src))
}

func compositeOver(dst, src color.RGBA) color.RGBA {
	inv := 255 - uint32(src.A)
	return color.RGBA{
		R: uint8(uint32(src.R) + uint32(dst.R)*inv/255),
		G: uint8(uint32(src.G) + uint32(dst.G)*inv/255),
		B: uint8(uint32(src.B) + uint32(dst.B)*inv/255),
		A: uint8(uint32(src.A) + uint32(dst.A)*inv/255),
	}
}

// Scale resamples src into a size×size RGBA image with Catmull-Rom
// filtering. A source already at the target size is returned as is.
func Scale(src *image.RGBA, size int) *image.RGBA {
	if b := src.Bounds(); b.Dx() == size && b.Dy() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
