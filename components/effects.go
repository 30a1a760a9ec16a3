package components

import (
	"image/color"

	"github.com/automoto/blitkit/assets/animations"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is one particle of a trail. It is replaced once Life is done.
type ParticleData struct {
	X, Y  float64
	Color color.RGBA
	Life  *animations.Animation
	Fade  *gween.Tween
	Alpha float32
}

// ShimmerVisible reports whether the shimmer overlay is drawn this frame.
func (p *ParticleData) ShimmerVisible(every int) bool {
	return every > 0 && p.Life.Frame()%every == 0
}

// EmitterData owns the particles trailing an entity.
type EmitterData struct {
	Particles []*ParticleData
}

var Emitter = donburi.NewComponentType[EmitterData]()
