package systems

import (
	"image/color"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraOffset returns the world position drawn at the screen's top-left
// corner. Scenes without a camera draw in world coordinates.
func cameraOffset(ecs *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y
}

// DrawSprites draws every dot at its body position.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Dot.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Surface == nil {
			return
		}

		x, y := body.X, body.Y
		if sprite.Centered {
			x -= float64(sprite.Surface.Width()) / 2
			y -= float64(sprite.Surface.Height()) / 2
		}
		x -= camX
		y -= camY

		// Viewport culling
		if x+float64(sprite.Surface.Width()) < 0 || x > width || y+float64(sprite.Surface.Height()) < 0 || y > height {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(sprite.Surface.Image, drawOp)
	})
}

// DrawWalls fills every non-tile obstacle.
func DrawWalls(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Tile) {
			return
		}
		obstacle := components.Obstacle.Get(e)
		if obstacle.Obstacle == nil {
			return
		}
		fillShape(screen, obstacle.Shape, camX, camY, cfg.Gray)
	})
}

func fillShape(screen *ebiten.Image, shape gamemath.Shape, camX, camY float64, clr color.Color) {
	switch s := shape.(type) {
	case gamemath.Rect:
		vector.FillRect(screen, float32(s.X-camX), float32(s.Y-camY), float32(s.W), float32(s.H), clr, false)
	case gamemath.Circle:
		vector.FillCircle(screen, float32(s.X-camX), float32(s.Y-camY), float32(s.R), clr, true)
	case gamemath.Boxes:
		for _, r := range s {
			vector.FillRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), clr, false)
		}
	}
}

// DrawStretch draws full-screen sprites scaled to the screen size.
func DrawStretch(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Stretch.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Surface == nil {
			return
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(width/float64(sprite.Surface.Width()), height/float64(sprite.Surface.Height()))
		screen.DrawImage(sprite.Surface.Image, drawOp)
	})
}

// DrawText draws every bitmap-font text block.
func DrawText(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Text.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Text.Get(e)
		if t.Font == nil {
			return
		}
		t.Font.Draw(screen, t.Text, t.X, t.Y)
	})
}
