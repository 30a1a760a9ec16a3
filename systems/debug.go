package systems

import (
	"image/color"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/collision"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/systems/factory"
	"github.com/automoto/blitkit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var showShapes = cfg.Debug.ShowShapes

// UpdateDebug toggles collision shape outlines with F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		showShapes = !showShapes
	}
}

// DrawDebug outlines the exact collision shapes of all obstacles and dots.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !showShapes {
		return
	}
	camX, camY := cameraOffset(ecs)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		if o := components.Obstacle.Get(e); o.Obstacle != nil {
			strokeShape(screen, o.Shape, camX, camY, color.RGBA{100, 100, 100, 255})
		}
	})
	tags.Dot.Each(ecs.World, func(e *donburi.Entry) {
		c := color.RGBA{0, 255, 0, 255}
		if e.HasComponent(tags.Player) {
			c = color.RGBA{0, 0, 255, 255}
		}
		strokeShape(screen, components.Body.Get(e).Shape(), camX, camY, c)
	})

	drawHovered(ecs, screen, camX, camY)
}

// drawHovered highlights whatever lies under the mouse cursor.
func drawHovered(ecs *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	world := factory.GetWorld(ecs)
	if world == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	cursor := gamemath.Circle{X: float64(mx) + camX, Y: float64(my) + camY, R: 1}

	for _, found := range world.Overlapping(cursor) {
		switch o := found.(type) {
		case *collision.Obstacle:
			strokeShape(screen, o.Shape, camX, camY, cfg.Yellow)
		case *collision.Body:
			strokeShape(screen, o.Shape(), camX, camY, cfg.Yellow)
		}
	}
}

func strokeShape(screen *ebiten.Image, shape gamemath.Shape, camX, camY float64, c color.Color) {
	switch s := shape.(type) {
	case gamemath.Rect:
		vector.StrokeRect(screen, float32(s.X-camX), float32(s.Y-camY), float32(s.W), float32(s.H), 1, c, false)
	case gamemath.Circle:
		vector.StrokeCircle(screen, float32(s.X-camX), float32(s.Y-camY), float32(s.R), 1, c, true)
	case gamemath.Boxes:
		for _, r := range s {
			vector.StrokeRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), 1, c, false)
		}
	}
}
