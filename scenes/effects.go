package scenes

import (
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/automoto/blitkit/systems"
	"github.com/automoto/blitkit/systems/factory"
)

// setupParticles trails a cloud of fading particles behind the dot.
func setupParticles(ds *DemoScene) {
	factory.CreateWorld(ds.ecs, cfg.C.Width, cfg.C.Height, cfg.Walls.CellSize, cfg.Walls.CellSize)

	sprite := factory.NewDotSurface()
	ds.onLeave(sprite.Deallocate)

	dot := factory.CreatePlayerDot(ds.ecs, 0, 0, collision.BoxCollider{W: cfg.Dot.Width, H: cfg.Dot.Height}, sprite)
	factory.AttachEmitter(dot, 0, 0)

	ds.ecs.AddSystem(systems.UpdateVelocity)
	ds.ecs.AddSystem(systems.UpdateMovement)
	ds.ecs.AddSystem(systems.UpdateParticles)

	ds.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ds.hint("arrows move the dot")
}
