package fonts

import (
	"fmt"
	"image/color"

	"github.com/automoto/blitkit/fonts/bitmapfont"
	"github.com/automoto/blitkit/shared/pixels"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// BitmapFont draws text from a glyph sheet.
type BitmapFont struct {
	Atlas *bitmapfont.Atlas
	sheet *ebiten.Image
	op    ebiten.DrawImageOptions
}

// NewBitmapFont uploads sheet and scans it into an atlas. sheet keeps its
// original colours; the background must be transparent or colour keyed
// before the font is drawn over other content.
func NewBitmapFont(sheet *ebiten.Image, atlas *bitmapfont.Atlas) *BitmapFont {
	return &BitmapFont{Atlas: atlas, sheet: sheet}
}

// NewBitmapFontFromTTF rasterizes a TrueType face into a glyph sheet and
// builds a bitmap font from it. The sheet's background becomes transparent.
func NewBitmapFontFromTTF(ttf []byte, size float64, cellW, cellH int, ink color.Color) (*BitmapFont, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()

	sheet := bitmapfont.Rasterize(face, cellW, cellH, color.Transparent, ink)
	atlas := bitmapfont.Build(sheet)
	return NewBitmapFont(ebiten.NewImageFromImage(sheet), atlas), nil
}

// LoadBitmapFont reads a glyph sheet from disk. The atlas is scanned on the
// original pixels, then the background colour is keyed out for drawing.
func LoadBitmapFont(path string) (*BitmapFont, error) {
	img, err := pixels.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load bitmap font %s: %w", path, err)
	}
	atlas := bitmapfont.Build(img)
	bg := img.At(img.Bounds().Min.X, img.Bounds().Min.Y)
	return NewBitmapFont(ebiten.NewImageFromImage(pixels.ColorKey(img, bg)), atlas), nil
}

// Draw renders text with its first line's top-left corner at (x, y).
func (f *BitmapFont) Draw(dst *ebiten.Image, text string, x, y int) {
	f.DrawColor(dst, text, x, y, nil)
}

// DrawColor is Draw with the glyph colours multiplied by clr.
func (f *BitmapFont) DrawColor(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	for _, p := range f.Atlas.Layout(text, x, y) {
		f.op.GeoM.Reset()
		f.op.GeoM.Translate(float64(p.X), float64(p.Y))
		f.op.ColorScale.Reset()
		if clr != nil {
			f.op.ColorScale.ScaleWithColor(clr)
		}
		dst.DrawImage(f.sheet.SubImage(p.Src).(*ebiten.Image), &f.op)
	}
}

// Deallocate frees the glyph sheet.
func (f *BitmapFont) Deallocate() {
	f.sheet.Deallocate()
}
