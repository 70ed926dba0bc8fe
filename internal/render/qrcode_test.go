package render

import "testing"

func TestQRImageEmptyPayload(t *testing.T) {
	img, err := QRImage("", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img != nil {
		t.Error("expected nil image for empty payload")
	}
}

func TestQRImageDefaultSize(t *testing.T) {
	img, err := QRImage("https://marketplace.visualstudio.com/vscode", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.Bounds().Dx(); got != defaultQRSizePx {
		t.Errorf("width = %d, want %d", got, defaultQRSizePx)
	}
}

func TestQRImageExplicitSize(t *testing.T) {
	img, err := QRImage("https://example.com", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 128 {
		t.Errorf("width = %d, want 128", got)
	}
}
