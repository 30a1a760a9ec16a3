package factory

import (
	"github.com/automoto/blitkit/archetypes"
	"github.com/automoto/blitkit/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
