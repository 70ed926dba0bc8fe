package icon

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/nimbusworks/iconforge/internal/render"
	"github.com/nimbusworks/iconforge/internal/render/layout"
)

// Banner dimensions for the wordmark asset.
const (
	WordmarkWidth  = 384
	WordmarkHeight = 128

	labelFontSize = 32
	iconMarginPx  = 8
)

// LoadFace parses a TTF file into a face for the wordmark label. An empty
// path selects the built-in bitmap face.
func LoadFace(path string) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    labelFontSize,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	return face, nil
}

// Wordmark renders a transparent banner with the icon in the left square
// and the label centered in the remaining space.
func Wordmark(label string, face font.Face) *image.RGBA {
	banner := image.NewRGBA(image.Rect(0, 0, WordmarkWidth, WordmarkHeight))

	iconArea, textArea := layout.SplitVertical(banner.Bounds(), WordmarkHeight)
	iconRect := layout.FitSquare(layout.Inset(iconArea, iconMarginPx))
	scaled := render.Scale(Draw(), iconRect.Dx())
	draw.Draw(banner, iconRect, scaled, scaled.Bounds().Min, draw.Over)

	drawer := &font.Drawer{
		Dst:  banner,
		Src:  image.NewUniform(render.DarkBlue),
		Face: face,
	}
	textWidth := drawer.MeasureString(label).Ceil()
	metrics := face.Metrics()
	x := textArea.Min.X + (textArea.Dx()-textWidth)/2
	baseline := textArea.Min.Y + (textArea.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(label)

	return banner
}
