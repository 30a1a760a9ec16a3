package components

import (
	"github.com/automoto/blitkit/shared/collision"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its moving body in the collision world.
type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()

// ObstacleData links an entity to a static collision shape.
type ObstacleData struct {
	*collision.Obstacle
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// WorldData is the scene's collision world (singleton component).
type WorldData struct {
	*collision.World
}

var World = donburi.NewComponentType[WorldData]()
