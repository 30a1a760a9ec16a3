package bitmapfont

import (
	"image"
	"image/color"
	"image/draw"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Rasterize renders runes 0..255 of face into a GridSize x GridSize sheet,
// one rune per cell in linear order, horizontally centred on the cell and
// sitting on the face's ascent. Each glyph is clipped to its own cell.
func Rasterize(face font.Face, cellW, cellH int, bg, ink color.Color) *image.NRGBA {
	sheet := image.NewNRGBA(image.Rect(0, 0, cellW*GridSize, cellH*GridSize))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent
	src := image.NewUniform(ink)

	for i := 0; i < GridSize*GridSize; i++ {
		r := rune(i)
		if r == ' ' || !unicode.IsPrint(r) {
			continue
		}
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}

		col, row := i%GridSize, i/GridSize
		cell := image.Rect(col*cellW, row*cellH, (col+1)*cellW, (row+1)*cellH)

		d := &font.Drawer{
			Dst:  sheet.SubImage(cell).(*image.NRGBA),
			Src:  src,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(cell.Min.X + (cellW-advance.Round())/2),
				Y: fixed.I(cell.Min.Y) + ascent,
			},
		}
		d.DrawString(string(r))
	}

	return sheet
}
