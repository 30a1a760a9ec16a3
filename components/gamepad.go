package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// GamepadData tracks the first connected gamepad for the joystick demo
type GamepadData struct {
	ID        ebiten.GamepadID
	Connected bool
	Name      string
	Standard  bool    // Standard layout, so axes and buttons are mapped
	X, Y      float64 // Left stick after the dead zone
	Angle     float64 // Degrees, 0 = right, clockwise
	Rumbles   int     // Rumble requests sent
}

var Gamepad = donburi.NewComponentType[GamepadData]()
