package systems

import (
	"github.com/automoto/blitkit/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the tiles that intersect the camera view.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	if level == nil {
		return
	}

	camX, camY := cameraOffset(ecs)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, t := range level.Tiles {
		x, y := t.X-camX, t.Y-camY
		if x+t.Width <= 0 || x >= width || y+t.Height <= 0 || y >= height {
			continue
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(level.TileSource(t), drawOp)
	}
}
