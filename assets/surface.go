package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/automoto/blitkit/shared/pixels"
	"github.com/hajimehoshi/ebiten/v2"
)

// SurfaceFlags select optional surface capabilities.
type SurfaceFlags int

const (
	// Lockable keeps a CPU copy of the pixels that can be edited between
	// Lock and Unlock.
	Lockable SurfaceFlags = 1 << iota
)

// Surface is the single drawable type used by every scene. It always has a
// GPU image; lockable surfaces also keep their pixels on the CPU.
type Surface struct {
	Image *ebiten.Image
	Flags SurfaceFlags

	pixels *image.NRGBA
	locked bool
}

// NewSurface uploads src.
func NewSurface(src image.Image, flags SurfaceFlags) *Surface {
	s := &Surface{
		Image: ebiten.NewImageFromImage(src),
		Flags: flags,
	}
	if flags&Lockable != 0 {
		s.pixels = pixels.ToNRGBA(src)
	}
	return s
}

// LoadSurface opens an image file from disk, applies a colour key when one
// is given and uploads it.
func LoadSurface(path string, key color.Color, flags SurfaceFlags) (*Surface, error) {
	img, err := pixels.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load surface %s: %w", path, err)
	}
	if key != nil {
		img = pixels.ColorKey(img, key)
	}
	return NewSurface(img, flags), nil
}

// LoadSurfaceOr is LoadSurface with a generated fallback. A failed load is
// logged and the fallback is keyed and uploaded instead, so callers never
// hold a nil image.
func LoadSurfaceOr(path string, key color.Color, flags SurfaceFlags, fallback func() image.Image) *Surface {
	if path != "" {
		s, err := LoadSurface(path, key, flags)
		if err == nil {
			return s
		}
		log.Printf("Warning: %v", err)
	}
	img := fallback()
	if key != nil {
		img = pixels.ColorKey(img, key)
	}
	return NewSurface(img, flags)
}

func (s *Surface) Width() int  { return s.Image.Bounds().Dx() }
func (s *Surface) Height() int { return s.Image.Bounds().Dy() }

// Lock exposes the CPU pixels for editing. It returns nil for surfaces
// created without Lockable.
func (s *Surface) Lock() *image.NRGBA {
	if s.pixels == nil {
		return nil
	}
	s.locked = true
	return s.pixels
}

// Unlock uploads edits made since Lock.
func (s *Surface) Unlock() {
	if !s.locked {
		return
	}
	s.locked = false
	// ebiten expects premultiplied alpha
	rgba := image.NewRGBA(s.pixels.Bounds())
	draw.Draw(rgba, rgba.Bounds(), s.pixels, s.pixels.Bounds().Min, draw.Src)
	s.Image.WritePixels(rgba.Pix)
}

// Deallocate frees the GPU image. The surface must not be used afterwards.
func (s *Surface) Deallocate() {
	if s.Image != nil {
		s.Image.Deallocate()
	}
	s.pixels = nil
}
