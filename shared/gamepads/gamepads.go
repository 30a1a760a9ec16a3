// Package gamepads interprets raw gamepad readings: which controller family
// a device name belongs to and which way an analog stick is pushed.
package gamepads

import (
	"strings"

	"github.com/automoto/blitkit/shared/gamemath"
)

// Family is the controller family used to pick button prompts.
type Family int

const (
	FamilyXbox Family = iota
	FamilyPlayStation
)

var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// Classify guesses the family from the name the driver reports. Anything
// unrecognised is treated as an Xbox-style pad.
func Classify(name string) Family {
	name = strings.ToLower(name)
	for _, keyword := range playStationNames {
		if strings.Contains(name, keyword) {
			return FamilyPlayStation
		}
	}
	return FamilyXbox
}

// Direction is a set of stick directions.
type Direction uint8

const (
	Left Direction = 1 << iota
	Right
	Up
	Down
)

// Has reports whether every direction in want is set.
func (d Direction) Has(want Direction) bool {
	return want != 0 && d&want == want
}

// StickDirection returns the directions a stick at (x, y) is pushed past
// deadzone. Y grows downwards.
func StickDirection(x, y, deadzone float64) Direction {
	var d Direction
	switch x = gamemath.ApplyDeadzone(x, deadzone); {
	case x < 0:
		d |= Left
	case x > 0:
		d |= Right
	}
	switch y = gamemath.ApplyDeadzone(y, deadzone); {
	case y < 0:
		d |= Up
	case y > 0:
		d |= Down
	}
	return d
}
