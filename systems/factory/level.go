package factory

import (
	"github.com/automoto/blitkit/archetypes"
	"github.com/automoto/blitkit/assets"
	"github.com/automoto/blitkit/components"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads a tile level, sizes the collision world to it and
// registers every wall tile as an obstacle.
func CreateLevel(ecs *ecs.ECS, levelPath string, cellSize int) *donburi.Entry {
	tileLevel := assets.MustLoadTileLevel(levelPath)

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Level: tileLevel})

	CreateWorld(ecs, tileLevel.Width, tileLevel.Height, cellSize, cellSize)
	for _, t := range tileLevel.Tiles {
		if !t.Wall {
			continue
		}
		wall := CreateObstacle(ecs, gamemath.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}, tags.ResolvWall, tags.ResolvTile)
		wall.AddComponent(tags.Tile)
	}

	return level
}
