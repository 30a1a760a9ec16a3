package scenes

import (
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/systems"
	"github.com/automoto/blitkit/systems/factory"
	"github.com/automoto/blitkit/tags"
)

// setupDotWorld creates a screen-sized collision world with the wall and
// the systems that move the player dot through it.
func setupDotWorld(ds *DemoScene) {
	factory.CreateWorld(ds.ecs, cfg.C.Width, cfg.C.Height, cfg.Walls.CellSize, cfg.Walls.CellSize)
	factory.CreateWall(ds.ecs, cfg.Walls.X, cfg.Walls.Y, cfg.Walls.W, cfg.Walls.H)

	ds.ecs.AddSystem(systems.UpdateVelocity)
	ds.ecs.AddSystem(systems.UpdateMovement)
	ds.ecs.AddSystem(systems.UpdateDebug)
}

func addDotRenderers(ds *DemoScene) {
	ds.ecs.AddRenderer(cfg.Default, systems.DrawWalls)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}

// setupCollision moves a box dot against a wall and a second dot.
func setupCollision(ds *DemoScene) {
	setupDotWorld(ds)

	sprite := factory.NewDotSurface()
	ds.onLeave(sprite.Deallocate)

	box := collision.BoxCollider{W: cfg.Dot.Width, H: cfg.Dot.Height}
	factory.CreatePlayerDot(ds.ecs, 0, 0, box, sprite)
	factory.CreateDot(ds.ecs, float64(cfg.C.Width)/4, float64(cfg.C.Height)/4, box, sprite)

	addDotRenderers(ds)
	ds.hint("arrows move the dot, F1 shows shapes")
}

// setupPixelCollision is the collision demo with the dot's row profile
// instead of its bounding box, so corners can slide past each other.
func setupPixelCollision(ds *DemoScene) {
	setupDotWorld(ds)

	sprite := factory.NewDotSurface()
	ds.onLeave(sprite.Deallocate)

	rows := collision.PixelCollider{Width: cfg.Dot.Width, Rows: collision.DotRows}
	factory.CreatePlayerDot(ds.ecs, 0, 0, rows, sprite)
	factory.CreateDot(ds.ecs, float64(cfg.C.Width)/4, float64(cfg.C.Height)/4, rows, sprite)

	addDotRenderers(ds)
	ds.hint("arrows move the dot, F1 shows shapes")
}

// setupCircles moves a circle dot against a circle and the wall.
func setupCircles(ds *DemoScene) {
	setupDotWorld(ds)
	factory.CreateObstacle(ds.ecs, gamemath.Circle{X: cfg.Walls.CircleX, Y: cfg.Walls.CircleY, R: cfg.Walls.CircleR}, tags.ResolvWall)

	sprite := factory.NewDotSurface()
	ds.onLeave(sprite.Deallocate)

	circle := collision.CircleCollider{R: cfg.Dot.Radius}
	factory.CreatePlayerDot(ds.ecs, cfg.Dot.Radius, cfg.Dot.Radius, circle, sprite)

	addDotRenderers(ds)
	ds.hint("arrows move the dot, F1 shows shapes")
}
