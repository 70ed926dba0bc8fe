// iconforge procedurally renders the extension's brand assets: the 128×128
// icon PNG, plus optional sized variants, a wordmark banner, a marketplace
// QR code and a framebuffer preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/nimbusworks/iconforge/internal/app"
	"github.com/nimbusworks/iconforge/internal/render"
)

const defaultMarketplaceURL = "https://marketplace.visualstudio.com/vscode"

func main() {
	out := flag.String("out", "icon.png", "icon PNG output path")
	size := flag.Int("size", render.CanvasSize, "icon output size in pixels")
	wordmark := flag.String("wordmark", "", "also write a wordmark banner PNG to this path")
	label := flag.String("label", "Azure DevOps", "wordmark label text")
	fontPath := flag.String("font", "", "TTF font for the wordmark label (built-in bitmap face when empty)")
	qrOut := flag.String("qr", "", "also write a marketplace QR PNG to this path")
	qrURL := flag.String("qr-url", defaultMarketplaceURL, "URL encoded into the QR asset")
	showPreview := flag.Bool("preview", false, "blit the icon to /dev/fb0 (linux only)")
	previewFor := flag.Duration("preview-for", 5*time.Second, "how long to hold the framebuffer preview")
	debug := flag.Bool("debug", false, "enable debug logging to ./iconforge-debug.log")
	flag.Parse()

	if *size <= 0 {
		*size = render.CanvasSize
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./iconforge-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if *showPreview {
		var cancelHold context.CancelFunc
		ctx, cancelHold = context.WithTimeout(ctx, *previewFor)
		defer cancelHold()
	}

	a := app.New()
	a.OutPath = *out
	a.Size = *size
	a.WordmarkPath = *wordmark
	a.Label = *label
	a.FontPath = *fontPath
	a.QRPath = *qrOut
	a.QRURL = *qrURL
	a.Preview = *showPreview
	a.Logger = logger

	if err := a.Run(ctx); err != nil {
		fmt.Printf("❌ Error generating icon: %v\n", err)
		fmt.Println("📝 Alternative: Open create-icon.html in a browser and click 'Download Icon'")
		os.Exit(1)
	}
	fmt.Printf("✅ Icon generated successfully: %s\n", *out)
	fmt.Printf("📏 Size: %dx%d pixels\n", *size, *size)
	fmt.Println("🎨 Format: PNG with transparency")
}
