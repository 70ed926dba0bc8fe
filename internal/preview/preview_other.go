//go:build !linux || !cgo

package preview

import (
	"context"
	"errors"
	"image"
)

// Show needs /dev/fb0; there is nothing to blit to on other platforms.
func Show(ctx context.Context, img image.Image, log Logger) error {
	return errors.New("framebuffer preview is only available on linux")
}
