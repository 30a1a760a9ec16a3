// Package bitmapfont builds glyph atlases from 16x16 grid font sheets and
// lays out text over them.
package bitmapfont

import (
	"image"
	"image/color"
)

// GridSize is the number of cells per row and per column of a font sheet.
const GridSize = 16

// referenceGlyph is the glyph whose lowest ink row defines the baseline.
const referenceGlyph = 'A'

// Atlas maps runes to their tight source rectangles inside the font sheet.
// Rectangles use the sheet's own coordinate space.
type Atlas struct {
	Glyphs     map[rune]image.Rectangle
	Space      int // advance for ' '
	LineHeight int // advance for '\n'
	CellWidth  int
	CellHeight int
}

// Build scans the 256 grid cells of src. The colour of the sheet's top-left
// pixel is treated as background; everything else is ink.
//
// Sheets that are not evenly divisible into 16x16 cells are not rejected,
// the cell geometry is simply whatever the integer division yields.
func Build(src image.Image) *Atlas {
	b := src.Bounds()
	cellW := b.Dx() / GridSize
	cellH := b.Dy() / GridSize

	s := sampler{src: src, bg: rgbaOf(src.At(b.Min.X, b.Min.Y))}

	cells := make([]image.Rectangle, 0, GridSize*GridSize)
	top := cellH
	base := cellH
	index := rune(0)

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			cx := b.Min.X + cellW*col
			cy := b.Min.Y + cellH*row
			x, w := s.scanColumns(cx, cy, cellW, cellH)

			if t, ok := s.firstInkRow(cx, cy, cellW, cellH); ok && t < top {
				top = t
			}
			if index == referenceGlyph {
				if r, ok := s.lastInkRow(cx, cy, cellW, cellH); ok {
					base = r
				}
			}

			cells = append(cells, image.Rect(x, cy, x+w, cy+cellH))
			index++
		}
	}

	a := &Atlas{
		Glyphs:     make(map[rune]image.Rectangle, len(cells)),
		Space:      cellW / 2,
		LineHeight: base - top,
		CellWidth:  cellW,
		CellHeight: cellH,
	}
	for i, c := range cells {
		c.Min.Y += top
		a.Glyphs[rune(i)] = c
	}
	return a
}

// Glyph returns the source rectangle for r.
func (a *Atlas) Glyph(r rune) (image.Rectangle, bool) {
	rect, ok := a.Glyphs[r]
	return rect, ok
}

type sampler struct {
	src image.Image
	bg  [4]uint32
}

func rgbaOf(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func (s sampler) ink(x, y int) bool {
	return rgbaOf(s.src.At(x, y)) != s.bg
}

// scanColumns narrows the cell horizontally. A cell without ink keeps its
// full width.
func (s sampler) scanColumns(cx, cy, cellW, cellH int) (x, w int) {
	x, w = cx, cellW

left:
	for pc := 0; pc < cellW; pc++ {
		for pr := 0; pr < cellH; pr++ {
			if s.ink(cx+pc, cy+pr) {
				x = cx + pc
				break left
			}
		}
	}

right:
	for pc := cellW - 1; pc >= 0; pc-- {
		for pr := 0; pr < cellH; pr++ {
			if s.ink(cx+pc, cy+pr) {
				w = cx + pc - x + 1
				break right
			}
		}
	}

	return x, w
}

// firstInkRow returns the topmost ink row relative to the cell.
func (s sampler) firstInkRow(cx, cy, cellW, cellH int) (int, bool) {
	for pr := 0; pr < cellH; pr++ {
		for pc := 0; pc < cellW; pc++ {
			if s.ink(cx+pc, cy+pr) {
				return pr, true
			}
		}
	}
	return 0, false
}

// lastInkRow returns the bottommost ink row relative to the cell.
func (s sampler) lastInkRow(cx, cy, cellW, cellH int) (int, bool) {
	for pr := cellH - 1; pr >= 0; pr-- {
		for pc := 0; pc < cellW; pc++ {
			if s.ink(cx+pc, cy+pr) {
				return pr, true
			}
		}
	}
	return 0, false
}
