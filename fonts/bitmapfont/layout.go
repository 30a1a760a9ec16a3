package bitmapfont

import "image"

// Placement is one glyph draw: copy Src from the sheet to (X, Y).
type Placement struct {
	Src  image.Rectangle
	X, Y int
}

// Layout walks text with a cursor starting at (x, y). Spaces advance by
// Space, newlines return to x and move down by LineHeight, every other
// glyph advances by its width plus one pixel. Runes missing from the atlas
// are skipped without moving the cursor.
func (a *Atlas) Layout(text string, x, y int) []Placement {
	placements := make([]Placement, 0, len(text))
	curX, curY := x, y

	for _, r := range text {
		switch r {
		case ' ':
			curX += a.Space
		case '\n':
			curX = x
			curY += a.LineHeight
		default:
			src, ok := a.Glyphs[r]
			if !ok {
				continue
			}
			placements = append(placements, Placement{Src: src, X: curX, Y: curY})
			curX += src.Dx() + 1
		}
	}

	return placements
}

// Measure returns the extent the cursor covers while laying out text.
func (a *Atlas) Measure(text string) (width, height int) {
	curX := 0
	height = a.LineHeight
	for _, r := range text {
		switch r {
		case ' ':
			curX += a.Space
		case '\n':
			curX = 0
			height += a.LineHeight
		default:
			if src, ok := a.Glyphs[r]; ok {
				curX += src.Dx() + 1
			}
		}
		width = max(width, curX)
	}
	return width, height
}
