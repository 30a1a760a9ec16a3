package factory

import (
	"image"

	"github.com/automoto/blitkit/archetypes"
	"github.com/automoto/blitkit/assets"
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/automoto/blitkit/shared/pixels"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dotKey is the colour keyed out of dot sprites.
var dotKey = cfg.Cyan

// NewDotSurface loads the dot sprite, or generates a round one, with the
// key colour made transparent. The caller owns the surface.
func NewDotSurface() *assets.Surface {
	return assets.LoadSurfaceOr(cfg.Dot.Image, dotKey, 0, func() image.Image {
		return pixels.Disc(int(cfg.Dot.Width), cfg.White, dotKey)
	})
}

// CreatePlayerDot spawns the input-driven dot.
func CreatePlayerDot(ecs *ecs.ECS, x, y float64, c collision.Collider, sprite *assets.Surface) *donburi.Entry {
	dot := archetypes.Player.Spawn(ecs)
	setBody(ecs, dot, x, y, c)
	components.Sprite.SetValue(dot, components.SpriteData{
		Surface:  sprite,
		Centered: isCircle(c),
	})
	return dot
}

// CreateDot spawns a stationary dot that other dots collide with.
func CreateDot(ecs *ecs.ECS, x, y float64, c collision.Collider, sprite *assets.Surface) *donburi.Entry {
	dot := archetypes.Dot.Spawn(ecs)
	setBody(ecs, dot, x, y, c)
	components.Sprite.SetValue(dot, components.SpriteData{
		Surface:  sprite,
		Centered: isCircle(c),
	})
	return dot
}

func setBody(ecs *ecs.ECS, entry *donburi.Entry, x, y float64, c collision.Collider) {
	world := GetWorld(ecs)
	if world == nil {
		panic("factory: dot created before the collision world")
	}
	body := world.AddBody(x, y, c, tags.ResolvDot)
	components.Body.SetValue(entry, components.BodyData{Body: body})
}

func isCircle(c collision.Collider) bool {
	_, ok := c.(collision.CircleCollider)
	return ok
}
