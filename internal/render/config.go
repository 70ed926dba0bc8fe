package render

import "image/color"

// Global render configuration: the brand palette and logical canvas.
var (
	// Palette per the extension brand colors.
	PrimaryBlue = color.RGBA{R: 0x00, G: 0x78, B: 0xD4, A: 0xFF} // #0078d4
	DarkBlue    = color.RGBA{R: 0x00, G: 0x5A, B: 0x9E, A: 0xFF} // #005a9e
	White       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	AccentBlue  = color.RGBA{R: 0x00, G: 0x7A, B: 0xCC, A: 0xFF} // #007acc

	// Logical canvas size; sized variants are scaled from this.
	CanvasSize = 128
)
