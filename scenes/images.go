package scenes

import (
	"image"
	"log"

	"github.com/automoto/blitkit/assets"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/fonts"
	"github.com/automoto/blitkit/shared/pixels"
	"github.com/automoto/blitkit/systems"
	"github.com/automoto/blitkit/systems/factory"
	"golang.org/x/image/font/gofont/goregular"
)

// setupStretch loads an image and stretches it over the whole window.
func setupStretch(ds *DemoScene) {
	var img image.Image
	if loaded, err := pixels.Open(cfg.C.StretchImage); err == nil {
		img = loaded
	} else {
		log.Printf("Warning: %v, using a generated image", err)
		img = pixels.Checkerboard(64, 48, 8, cfg.DarkBlue, cfg.LightBlue)
	}

	surface := assets.NewSurface(pixels.Stretch(img, cfg.C.Width, cfg.C.Height), assets.Lockable)
	ds.onLeave(surface.Deallocate)
	factory.CreateStretch(ds.ecs, surface)

	ds.ecs.AddSystem(systems.UpdateStretch)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawStretch)
	ds.hint("image stretched to the window, Enter inverts it")
}

// setupBitmapFont draws sample text from a glyph sheet on disk, or from one
// rasterized from the embedded Go font.
func setupBitmapFont(ds *DemoScene) {
	font, err := fonts.LoadBitmapFont(cfg.BitmapFont.SheetPath)
	if err != nil {
		log.Printf("Warning: %v, rasterizing goregular", err)
		font, err = fonts.NewBitmapFontFromTTF(goregular.TTF, cfg.BitmapFont.Size, cfg.BitmapFont.CellWidth, cfg.BitmapFont.CellHeight, cfg.White)
	}
	if err != nil {
		log.Printf("Warning: Could not build bitmap font: %v", err)
		ds.hint("no font available")
		return
	}
	ds.onLeave(font.Deallocate)

	w, h := font.Atlas.Measure(cfg.BitmapFont.SampleText)
	factory.CreateText(ds.ecs, font, cfg.BitmapFont.SampleText, (cfg.C.Width-w)/2, (cfg.C.Height-h)/2)

	ds.ecs.AddRenderer(cfg.Default, systems.DrawText)
	ds.hint("text drawn from a glyph atlas")
}
