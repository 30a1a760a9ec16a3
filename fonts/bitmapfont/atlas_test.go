package bitmapfont

import (
	"image"
	"image/color"
	"testing"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	paper = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	ink   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// newSheet returns a 160x160 sheet (10x10 cells) filled with paper.
func newSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 160, 160))
	for y := 0; y < 160; y++ {
		for x := 0; x < 160; x++ {
			img.Set(x, y, paper)
		}
	}
	return img
}

// fillCell inks the cell-relative block [x0,x1]x[y0,y1] of glyph r.
func fillCell(img *image.NRGBA, r rune, x0, y0, x1, y1 int) {
	cx := int(r) % GridSize * 10
	cy := int(r) / GridSize * 10
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.Set(cx+x, cy+y, ink)
		}
	}
}

func TestBuildMetrics(t *testing.T) {
	img := newSheet()
	fillCell(img, 'A', 3, 2, 6, 8)
	fillCell(img, 'b', 2, 1, 4, 8)
	fillCell(img, 'g', 1, 4, 5, 9)

	a := Build(img)

	if a.CellWidth != 10 || a.CellHeight != 10 {
		t.Fatalf("cell size = %dx%d, want 10x10", a.CellWidth, a.CellHeight)
	}
	if a.Space != 5 {
		t.Errorf("Space = %d, want 5", a.Space)
	}
	// baseline of 'A' (8) minus the highest ink row of any glyph (1)
	if a.LineHeight != 7 {
		t.Errorf("LineHeight = %d, want 7", a.LineHeight)
	}

	tests := []struct {
		r    rune
		want image.Rectangle
	}{
		{'A', image.Rect(13, 41, 17, 50)},
		{'b', image.Rect(22, 61, 25, 70)},
		{'g', image.Rect(71, 61, 76, 70)},
		{0, image.Rect(0, 1, 10, 10)},
		{255, image.Rect(150, 151, 160, 160)},
	}
	for _, tt := range tests {
		if got, _ := a.Glyph(tt.r); got != tt.want {
			t.Errorf("Glyph(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestBuildGlyphsStayInsideCells(t *testing.T) {
	img := newSheet()
	fillCell(img, 'A', 0, 0, 9, 9)
	fillCell(img, 'x', 4, 4, 4, 4)
	fillCell(img, 200, 9, 0, 9, 9)

	a := Build(img)
	if len(a.Glyphs) != GridSize*GridSize {
		t.Fatalf("len(Glyphs) = %d, want %d", len(a.Glyphs), GridSize*GridSize)
	}
	for r, rect := range a.Glyphs {
		x0, y0 := int(r)%GridSize*10, int(r)/GridSize*10
		cell := image.Rect(x0, y0, x0+10, y0+10)
		if !rect.In(cell) {
			t.Errorf("glyph %d = %v, outside its cell %v", r, rect, cell)
		}
	}
}

func TestBuildBlankSheet(t *testing.T) {
	a := Build(newSheet())

	// No ink anywhere: widths stay full, the top line never moves above the
	// cell bottom and the reference glyph gives no baseline.
	if got := a.Glyphs['A']; got.Dx() != 10 {
		t.Errorf("blank glyph width = %d, want 10", got.Dx())
	}
	if a.LineHeight != 0 {
		t.Errorf("LineHeight = %d, want 0", a.LineHeight)
	}
}

func TestBuildSamplesBackgroundFromCorner(t *testing.T) {
	img := newSheet()
	fillCell(img, 'A', 3, 2, 6, 8)
	img.Set(0, 0, color.NRGBA{R: 1, A: 255})

	a := Build(img)

	// Every paper pixel now reads as ink, so glyph 'A' spans its whole cell.
	if got := a.Glyphs['A']; got.Dx() != 10 {
		t.Errorf("glyph width = %d, want 10 with an unrepresentative corner pixel", got.Dx())
	}
}

func TestBuildRespectsImageOrigin(t *testing.T) {
	img := newSheet()
	fillCell(img, 'A', 3, 2, 6, 8)

	shifted := image.NewNRGBA(image.Rect(100, 100, 260, 260))
	for y := 0; y < 160; y++ {
		for x := 0; x < 160; x++ {
			shifted.Set(100+x, 100+y, img.At(x, y))
		}
	}

	want := Build(img).Glyphs['A'].Add(image.Pt(100, 100))
	if got := Build(shifted).Glyphs['A']; got != want {
		t.Errorf("glyph on shifted sheet = %v, want %v", got, want)
	}
}

func TestRasterizedFaceRoundTrip(t *testing.T) {
	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("truetype.Parse() error = %v", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{Size: 12, DPI: 72})
	defer face.Close()

	sheet := Rasterize(face, 16, 16, paper, ink)
	if got := sheet.Bounds(); got != image.Rect(0, 0, 256, 256) {
		t.Fatalf("sheet bounds = %v, want 256x256", got)
	}

	a := Build(sheet)

	if a.LineHeight <= 0 {
		t.Errorf("LineHeight = %d, want positive", a.LineHeight)
	}
	for r, rect := range a.Glyphs {
		col, row := int(r)%GridSize, int(r)/GridSize
		cell := image.Rect(col*16, row*16, col*16+16, row*16+16)
		if !rect.In(cell) {
			t.Errorf("glyph %q = %v, outside %v", r, rect, cell)
		}
	}

	// 'i' is narrower than 'W' in any proportional face.
	if a.Glyphs['i'].Dx() >= a.Glyphs['W'].Dx() {
		t.Errorf("'i' width %d >= 'W' width %d", a.Glyphs['i'].Dx(), a.Glyphs['W'].Dx())
	}
	// Control characters are never drawn and keep the full cell width.
	if a.Glyphs['\t'].Dx() != 16 {
		t.Errorf("'\\t' width = %d, want 16", a.Glyphs['\t'].Dx())
	}
}
