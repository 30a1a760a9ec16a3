package factory

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/blitkit/assets/animations"
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

var particleColors = []color.RGBA{cfg.Red, cfg.Green, cfg.Blue}

// AttachEmitter gives entry a full set of particles around (x, y).
func AttachEmitter(entry *donburi.Entry, x, y float64) {
	emitter := &components.EmitterData{
		Particles: make([]*components.ParticleData, cfg.Particles.Count),
	}
	for i := range emitter.Particles {
		emitter.Particles[i] = NewParticle(x, y)
	}
	entry.AddComponent(components.Emitter)
	components.Emitter.Set(entry, emitter)
}

// NewParticle places a particle at a random offset from (x, y) with a random
// colour and a fresh lifetime.
func NewParticle(x, y float64) *components.ParticleData {
	p := &components.ParticleData{}
	ResetParticle(p, x, y)
	return p
}

// ResetParticle reuses p as a new particle around (x, y).
func ResetParticle(p *components.ParticleData, x, y float64) {
	p.X = x - cfg.Particles.Offset + rand.Float64()*cfg.Particles.Spread
	p.Y = y - cfg.Particles.Offset + rand.Float64()*cfg.Particles.Spread
	p.Color = particleColors[rand.IntN(len(particleColors))]
	p.Alpha = 1
	lifetime := cfg.Particles.Lifetime
	if p.Life == nil {
		p.Life = animations.NewAnimation(0, lifetime, 1, 1, false)
	} else {
		p.Life.Restart()
	}
	p.Fade = gween.New(1, 0, float32(lifetime), ease.InQuad)
}
