package render

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSizePx = 256

// QRImage returns a QR code raster for the given URL payload.
// An empty payload yields (nil, nil) so callers can treat the asset as
// optional without a sentinel error.
func QRImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRSizePx
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return code.Image(sizePx), nil
}
