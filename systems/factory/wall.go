package factory

import (
	"github.com/automoto/blitkit/archetypes"
	"github.com/automoto/blitkit/components"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall registers a static rectangle with the collision world.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return CreateObstacle(ecs, gamemath.Rect{X: x, Y: y, W: w, H: h}, tags.ResolvWall)
}

// CreateObstacle registers any static shape with the collision world.
func CreateObstacle(ecs *ecs.ECS, shape gamemath.Shape, resolvTags ...string) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Without a world the shape is only drawn, never collided with.
	obstacle := &collision.Obstacle{Shape: shape}
	if world := GetWorld(ecs); world != nil {
		obstacle = world.AddObstacle(shape, resolvTags...)
	}
	components.Obstacle.SetValue(wall, components.ObstacleData{Obstacle: obstacle})

	return wall
}
