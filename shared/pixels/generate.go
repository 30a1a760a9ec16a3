package pixels

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Checkerboard returns a w x h image of alternating size x size squares.
func Checkerboard(w, h, size int, a, b color.Color) *image.NRGBA {
	img := imaging.New(w, h, a)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/size+y/size)%2 == 1 {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

// Disc returns a size x size image of a filled circle on a key-coloured
// background, ready for ColorKey.
func Disc(size int, fill, key color.Color) *image.NRGBA {
	img := imaging.New(size, size, key)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}

// Arrow returns a w x h right-pointing arrow on a transparent background.
func Arrow(w, h int, fill color.Color) *image.NRGBA {
	img := imaging.New(w, h, color.Transparent)
	shaft := h / 4
	headStart := w * 2 / 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inShaft := x < headStart && y >= h/2-shaft/2 && y < h/2+shaft/2+shaft%2
			// triangle head narrowing towards the tip
			half := float64(h) / 2 * float64(w-x) / float64(w-headStart)
			inHead := x >= headStart && float64(y)+0.5 >= float64(h)/2-half && float64(y)+0.5 <= float64(h)/2+half
			if inShaft || inHead {
				img.Set(x, y, fill)
			}
		}
	}
	return img
}
