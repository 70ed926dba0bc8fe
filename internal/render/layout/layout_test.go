package layout

import (
	"image"
	"testing"
)

func TestNormalizeSwapped(t *testing.T) {
	got := Normalize(image.Rectangle{Min: image.Pt(10, 12), Max: image.Pt(2, 4)})
	want := image.Rect(2, 4, 10, 12)
	if got != want {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestInset(t *testing.T) {
	got := Inset(image.Rect(0, 0, 10, 10), 2)
	if want := image.Rect(2, 2, 8, 8); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
}

func TestInsetNonPositive(t *testing.T) {
	r := image.Rect(1, 1, 5, 5)
	if got := Inset(r, 0); got != r {
		t.Errorf("Inset(0) = %v, want %v", got, r)
	}
	if got := Inset(r, -3); got != r {
		t.Errorf("Inset(-3) = %v, want %v", got, r)
	}
}

func TestInsetCollapses(t *testing.T) {
	got := Inset(image.Rect(0, 0, 4, 4), 3)
	if got.Dx() < 0 || got.Dy() < 0 {
		t.Errorf("Inset produced negative size: %v", got)
	}
}

func TestSplitVertical(t *testing.T) {
	left, right := SplitVertical(image.Rect(0, 0, 10, 4), 3)
	if want := image.Rect(0, 0, 3, 4); left != want {
		t.Errorf("left = %v, want %v", left, want)
	}
	if want := image.Rect(3, 0, 10, 4); right != want {
		t.Errorf("right = %v, want %v", right, want)
	}
}

func TestSplitVerticalClamps(t *testing.T) {
	left, right := SplitVertical(image.Rect(0, 0, 10, 4), 99)
	if left.Dx() != 10 {
		t.Errorf("left width = %d, want 10", left.Dx())
	}
	if right.Dx() != 0 {
		t.Errorf("right width = %d, want 0", right.Dx())
	}
}

func TestFitSquareWide(t *testing.T) {
	got := FitSquare(image.Rect(2, 2, 12, 6))
	if want := image.Rect(2, 2, 6, 6); got != want {
		t.Errorf("FitSquare = %v, want %v", got, want)
	}
}

func TestCentered(t *testing.T) {
	got := Centered(10, 10, 4, 6)
	if want := image.Rect(8, 7, 12, 13); got != want {
		t.Errorf("Centered = %v, want %v", got, want)
	}
}
