package systems

import (
	"github.com/automoto/blitkit/components"
	"github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the player dot and keeps it inside the
// level so the view never shows anything past the level edges.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	bounds := body.Shape().Bounds()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	targetX := bounds.X + bounds.W/2 - screenWidth/2
	targetY := bounds.Y + bounds.H/2 - screenHeight/2

	camera.Position.X = gamemath.ClampFloat(targetX, 0, float64(level.Width)-screenWidth)
	camera.Position.Y = gamemath.ClampFloat(targetY, 0, float64(level.Height)-screenHeight)
}
