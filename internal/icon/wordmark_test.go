package icon

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceDefault(t *testing.T) {
	face, err := LoadFace("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if face != basicfont.Face7x13 {
		t.Error("empty path should select the built-in bitmap face")
	}
}

func TestLoadFaceMissingFile(t *testing.T) {
	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing font file")
	}
}

func TestLoadFaceInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.ttf")
	os.WriteFile(path, []byte("not a font"), 0644)
	if _, err := LoadFace(path); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestWordmarkDimensions(t *testing.T) {
	banner := Wordmark("Azure DevOps", basicfont.Face7x13)
	b := banner.Bounds()
	if b.Dx() != WordmarkWidth || b.Dy() != WordmarkHeight {
		t.Fatalf("bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), WordmarkWidth, WordmarkHeight)
	}
}

func TestWordmarkCarriesIconAndLabel(t *testing.T) {
	banner := Wordmark("Azure DevOps", basicfont.Face7x13)

	// Icon disc center lands in the left square.
	if a := banner.RGBAAt(64, 64).A; a < 200 {
		t.Errorf("icon area alpha = %d, want opaque", a)
	}

	// The label leaves ink somewhere in the text area.
	var inked bool
	for y := 0; y < WordmarkHeight && !inked; y++ {
		for x := WordmarkHeight; x < WordmarkWidth; x++ {
			if banner.RGBAAt(x, y).A != 0 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("no label pixels drawn in the text area")
	}

	// Banner corners stay transparent.
	if a := banner.RGBAAt(WordmarkWidth-1, 0).A; a != 0 {
		t.Errorf("banner corner alpha = %d, want 0", a)
	}
}
