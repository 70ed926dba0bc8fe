// Package app runs the asset pipeline: render the motif, write the
// requested PNGs, optionally hold a framebuffer preview.
package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nimbusworks/iconforge/internal/icon"
	"github.com/nimbusworks/iconforge/internal/preview"
	"github.com/nimbusworks/iconforge/internal/render"
)

// App holds one run's output options. Zero-value fields disable the
// corresponding optional asset.
type App struct {
	OutPath string // icon PNG destination
	Size    int    // output edge length in pixels

	WordmarkPath string // empty disables the banner asset
	Label        string
	FontPath     string // optional TTF for the label

	QRPath string // empty disables the QR asset
	QRURL  string

	Preview bool

	Logger Logger
}

func New() *App {
	return &App{OutPath: "icon.png", Size: render.CanvasSize, Logger: NoopLogger{}}
}

// Run renders and writes every requested asset in sequence. A failed asset
// leaves no partial file behind: images are written to a temp file in the
// destination directory and renamed into place.
func (app *App) Run(ctx context.Context) error {
	img := icon.Sized(app.Size)
	if err := writePNG(app.OutPath, img); err != nil {
		return err
	}
	app.Logger.Infof("app", "icon written: %s (%dx%d)", app.OutPath, app.Size, app.Size)

	if app.WordmarkPath != "" {
		face, err := icon.LoadFace(app.FontPath)
		if err != nil {
			// Degrade the way the renderer degrades fonts: log and fall back
			// to the built-in bitmap face.
			app.Logger.Errorf("app", "font load failed, using built-in face: %v", err)
			face, _ = icon.LoadFace("")
		}
		if err := writePNG(app.WordmarkPath, icon.Wordmark(app.Label, face)); err != nil {
			return err
		}
		app.Logger.Infof("app", "wordmark written: %s", app.WordmarkPath)
	}

	if app.QRPath != "" {
		code, err := render.QRImage(app.QRURL, 0)
		if err != nil {
			return fmt.Errorf("qr encode: %w", err)
		}
		if code != nil {
			if err := writePNG(app.QRPath, code); err != nil {
				return err
			}
			app.Logger.Infof("app", "qr written: %s", app.QRPath)
		}
	}

	if app.Preview {
		if err := preview.Show(ctx, img, app.Logger); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".iconforge-*.png")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
