package pixels

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var cyan = color.NRGBA{R: 0, G: 255, B: 255, A: 255}

func TestColorKey(t *testing.T) {
	img := Disc(20, color.NRGBA{R: 255, A: 255}, cyan)
	keyed := ColorKey(img, cyan)

	if a := keyed.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if c := keyed.NRGBAAt(10, 10); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("centre = %v, want opaque red", c)
	}
	if a := img.NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("source modified: corner alpha = %d", a)
	}
}

func TestStretch(t *testing.T) {
	src := Checkerboard(4, 4, 2, color.Black, color.White)
	out := Stretch(src, 8, 12)

	if got := out.Bounds(); got != image.Rect(0, 0, 8, 12) {
		t.Fatalf("Bounds() = %v, want 8x12", got)
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("top-left = %v, want black", got)
	}
	if got := out.NRGBAAt(7, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("top-right = %v, want white", got)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, Checkerboard(6, 3, 3, color.Black, color.White)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Errorf("Bounds() = %v, want 6x3", got)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.bmp")); err == nil {
		t.Error("Open() on a missing file returned nil error")
	}
}

func TestArrowPointsRight(t *testing.T) {
	img := Arrow(30, 12, color.White)
	if a := img.NRGBAAt(0, 6).A; a == 0 {
		t.Error("shaft start is transparent")
	}
	if a := img.NRGBAAt(29, 0).A; a != 0 {
		t.Error("top-right corner is filled")
	}
}
