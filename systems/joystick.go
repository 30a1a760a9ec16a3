package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/automoto/blitkit/shared/pixels"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	arrowImage *ebiten.Image
	gamepadIDs []ebiten.GamepadID
)

// UpdateGamepad tracks the first connected gamepad, turns its left stick
// into an angle and rumbles it on a button press.
func UpdateGamepad(ecs *ecs.ECS) {
	entry, ok := components.Gamepad.First(ecs.World)
	if !ok {
		return
	}
	gp := components.Gamepad.Get(entry)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	if len(gamepadIDs) == 0 {
		if gp.Connected {
			log.Printf("Gamepad %d disconnected", gp.ID)
		}
		*gp = components.GamepadData{Rumbles: gp.Rumbles}
		return
	}

	id := gamepadIDs[0]
	if !gp.Connected || gp.ID != id {
		gp.ID = id
		gp.Connected = true
		gp.Name = ebiten.GamepadName(id)
		gp.Standard = ebiten.IsStandardGamepadLayoutAvailable(id)
		log.Printf("Gamepad %d connected: %s", id, gp.Name)
	}

	if gp.Standard {
		gp.X = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		gp.Y = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	} else if ebiten.GamepadAxisCount(id) >= 2 {
		gp.X = ebiten.GamepadAxisValue(id, 0)
		gp.Y = ebiten.GamepadAxisValue(id, 1)
	}
	gp.X = gamemath.ApplyDeadzone(gp.X, cfg.Joystick.DeadZone)
	gp.Y = gamemath.ApplyDeadzone(gp.Y, cfg.Joystick.DeadZone)
	gp.Angle = stickAngle(gp.X, gp.Y)

	if GetAction(ecs, cfg.ActionRumble).JustPressed {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        cfg.Joystick.RumbleDuration,
			StrongMagnitude: cfg.Joystick.RumbleStrength,
			WeakMagnitude:   cfg.Joystick.RumbleStrength,
		})
		gp.Rumbles++
	}
}

// stickAngle returns the stick direction in degrees, 0 pointing right and
// increasing clockwise. A centred stick points right.
func stickAngle(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return math.Atan2(y, x) * 180 / math.Pi
}

// DrawGamepad draws an arrow in the stick's direction at the screen centre.
func DrawGamepad(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Gamepad.First(ecs.World)
	if !ok {
		return
	}
	gp := components.Gamepad.Get(entry)

	lastInput := "Last input: " + getOrCreateInput(ecs).LastInputMethod.String()
	if !gp.Connected {
		drawLines(screen, []string{"No gamepad connected", lastInput}, 40, 40, cfg.White)
		return
	}

	if arrowImage == nil {
		arrowImage = ebiten.NewImageFromImage(pixels.Arrow(cfg.Joystick.ArrowWidth, cfg.Joystick.ArrowHeight, cfg.Yellow))
	}

	w, h := float64(cfg.Joystick.ArrowWidth), float64(cfg.Joystick.ArrowHeight)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-w/2, -h/2)
	drawOp.GeoM.Rotate(gp.Angle * math.Pi / 180)
	drawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2)
	screen.DrawImage(arrowImage, drawOp)

	layout := "non-standard layout"
	if gp.Standard {
		layout = "standard layout"
	}
	drawLines(screen, []string{
		fmt.Sprintf("%s (%s)", gp.Name, layout),
		fmt.Sprintf("X: %.2f  Y: %.2f  Angle: %.0f", gp.X, gp.Y, gp.Angle),
		fmt.Sprintf("Rumbles: %d", gp.Rumbles),
		lastInput,
	}, 40, 40, cfg.White)
}
