//go:build linux && cgo

package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	fb "github.com/gonutz/framebuffer"
	"golang.org/x/sys/unix"

	"github.com/nimbusworks/iconforge/internal/render/layout"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Show displays img centered on /dev/fb0 until ctx is done. The console is
// switched to KD_GRAPHICS for the duration, with the cursor hidden, and
// restored to text mode on return.
func Show(ctx context.Context, img image.Image, log Logger) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return fmt.Errorf("open framebuffer: %w", err)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	log.Infof("preview", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if err := setConsoleMode(kdGraphics); err != nil {
		log.Errorf("preview", "KD_GRAPHICS failed: %v", err)
	}
	_ = writeVT("\x1b[?25l")
	defer func() {
		_ = writeVT("\x1b[?25h")
		if err := setConsoleMode(kdText); err != nil {
			log.Errorf("preview", "KD_TEXT failed: %v", err)
		}
	}()

	blit(dev, img)
	log.Infof("preview", "icon on framebuffer, holding until done")
	<-ctx.Done()
	return nil
}

// blit clears the framebuffer and nearest-neighbor scales img into a
// centered square covering 3/4 of the shorter side. The framebuffer has no
// alpha, so transparent source pixels land on the cleared background.
func blit(dev *fb.Device, img image.Image) {
	bounds := dev.Bounds()
	black := color.RGBA{A: 0xFF}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dev.Set(x, y, black)
		}
	}

	side := min(bounds.Dx(), bounds.Dy()) * 3 / 4
	if side <= 0 {
		return
	}
	dst := layout.Centered(bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/2, side, side)
	src := img.Bounds()
	for y := 0; y < dst.Dy(); y++ {
		sy := src.Min.Y + y*src.Dy()/dst.Dy()
		for x := 0; x < dst.Dx(); x++ {
			sx := src.Min.X + x*src.Dx()/dst.Dx()
			r, g, b, _ := img.At(sx, sy).RGBA()
			dev.Set(dst.Min.X+x, dst.Min.Y+y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
		}
	}
}

func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}
