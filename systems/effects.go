package systems

import (
	"log"

	"github.com/automoto/blitkit/assets"
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/pixels"
	"github.com/automoto/blitkit/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	particleImage    *ebiten.Image
	particleShaderOp = &ebiten.DrawRectShaderOptions{}
	particleTint     = make([]float32, 4)
)

// UpdateParticles ages every particle and replaces the dead ones around the
// emitter's current position.
func UpdateParticles(ecs *ecs.ECS) {
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		emitter := components.Emitter.Get(e)
		x, y := emitterOrigin(e)

		for _, p := range emitter.Particles {
			p.Life.Update()
			p.Alpha, _ = p.Fade.Update(1)
			if p.Life.Done() {
				factory.ResetParticle(p, x, y)
			}
		}
	})
}

func emitterOrigin(e *donburi.Entry) (float64, float64) {
	if !e.HasComponent(components.Body) {
		return 0, 0
	}
	body := components.Body.Get(e)
	return body.X, body.Y
}

// DrawParticles draws each particle tinted with its colour, plus a white
// shimmer on alternate frames.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	if particleImage == nil {
		if err := assets.LoadShaders(); err != nil {
			log.Printf("Warning: Could not compile shaders: %v", err)
		}
		size := int(cfg.Particles.Size)
		particleImage = ebiten.NewImageFromImage(pixels.ColorKey(pixels.Disc(size, cfg.White, cfg.Black), cfg.Black))
	}

	camX, camY := cameraOffset(ecs)
	size := cfg.Particles.Size
	shimmer := float32(cfg.Particles.ShimmerSize)

	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		for _, p := range components.Emitter.Get(e).Particles {
			x, y := p.X-camX, p.Y-camY
			drawTinted(screen, particleImage, x, y, p.Color.R, p.Color.G, p.Color.B, p.Alpha)

			if p.ShimmerVisible(cfg.Particles.ShimmerEvery) {
				offset := (float32(size) - shimmer) / 2
				vector.FillRect(screen, float32(x)+offset, float32(y)+offset, shimmer, shimmer, cfg.White, false)
			}
		}
	})
}

// drawTinted recolours img with the tint shader, falling back to a colour
// scale when the shader is unavailable.
func drawTinted(dst, img *ebiten.Image, x, y float64, r, g, b uint8, alpha float32) {
	if assets.TintShader == nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x, y)
		drawOp.ColorScale.Scale(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		drawOp.ColorScale.ScaleAlpha(alpha)
		dst.DrawImage(img, drawOp)
		return
	}

	particleTint[0] = float32(r) / 255
	particleTint[1] = float32(g) / 255
	particleTint[2] = float32(b) / 255
	particleTint[3] = alpha

	bounds := img.Bounds()
	particleShaderOp.GeoM.Reset()
	particleShaderOp.GeoM.Translate(x, y)
	particleShaderOp.Images[0] = img
	particleShaderOp.Uniforms = map[string]any{"TintColor": particleTint}
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), assets.TintShader, particleShaderOp)
}
