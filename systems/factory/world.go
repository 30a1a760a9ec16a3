package factory

import (
	"github.com/automoto/blitkit/archetypes"
	"github.com/automoto/blitkit/components"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWorld(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{
		World: collision.NewWorld(width, height, cellWidth, cellHeight),
	})
	return world
}

// GetWorld returns the scene's collision world, or nil before CreateWorld.
func GetWorld(ecs *ecs.ECS) *collision.World {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil
	}
	return components.World.Get(entry).World
}
