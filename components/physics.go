package components

import "github.com/yohamta/donburi"

// VelocityData is the per-frame displacement of a body. Key presses add to
// it and key releases take the same amount back off.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
