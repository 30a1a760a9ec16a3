package scenes

import (
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/automoto/blitkit/systems"
	"github.com/automoto/blitkit/systems/factory"
)

// setupTiles walks the dot around a tile level larger than the window
// with the camera following it.
func setupTiles(ds *DemoScene) {
	level := components.Level.Get(factory.CreateLevel(ds.ecs, cfg.Tiles.LevelPath, cfg.Walls.CellSize)).Level
	ds.onLeave(level.Deallocate)
	factory.CreateCamera(ds.ecs)

	sprite := factory.NewDotSurface()
	ds.onLeave(sprite.Deallocate)
	box := collision.BoxCollider{W: cfg.Dot.Width, H: cfg.Dot.Height}
	factory.CreatePlayerDot(ds.ecs, float64(level.Spawn.X), float64(level.Spawn.Y), box, sprite)

	ds.ecs.AddSystem(systems.UpdateVelocity)
	ds.ecs.AddSystem(systems.UpdateMovement)
	ds.ecs.AddSystem(systems.UpdateCamera)
	ds.ecs.AddSystem(systems.UpdateDebug)

	ds.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ds.hint("arrows move the dot, F1 shows shapes")
}
