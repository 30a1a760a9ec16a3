// Package pixels holds the CPU-side image work: decoding, colour keying,
// stretching and the generated stand-ins for demo art.
package pixels

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Open decodes an image file. Formats registered by imaging (png, jpeg, gif,
// bmp, tiff) are accepted.
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load image %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts img to a tightly packed NRGBA copy with origin (0,0).
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ColorKey returns a copy of img in which every pixel whose RGB matches key
// is fully transparent.
func ColorKey(img image.Image, key color.Color) *image.NRGBA {
	out := imaging.Clone(img)
	k := color.NRGBAModel.Convert(key).(color.NRGBA)

	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i] == k.R && out.Pix[i+1] == k.G && out.Pix[i+2] == k.B {
			out.Pix[i+3] = 0
		}
	}
	return out
}

// Stretch scales img to exactly w x h with nearest-neighbour sampling.
func Stretch(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}
