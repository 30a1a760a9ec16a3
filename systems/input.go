package systems

import (
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/gamepads"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type actionSet = [cfg.ActionCount]bool

// stickBindings maps each left-stick direction to the actions it holds.
var stickBindings = []struct {
	dir     gamepads.Direction
	actions []cfg.ActionID
}{
	{gamepads.Left, []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMenuLeft}},
	{gamepads.Right, []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionMenuRight}},
	{gamepads.Up, []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMenuUp}},
	{gamepads.Down, []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMenuDown}},
}

var (
	connectedPads []ebiten.GamepadID
	padMethods    = map[ebiten.GamepadID]components.InputMethod{}
)

// UpdateInput turns this frame's keys, buttons and stick into actions.
// Add it before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous, input.Current = input.Current, actionSet{}

	connectedPads = ebiten.AppendGamepadIDs(connectedPads[:0])

	keyboard := pollKeys(&input.Current)
	pad, padUsed := pollButtons(&input.Current)
	if id, ok := pollSticks(&input.Current); ok {
		pad, padUsed = id, true
	}

	// a pad wins over the keyboard within the same frame
	switch {
	case padUsed:
		input.LastInputMethod = padMethod(pad)
	case keyboard:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeys(current *actionSet) bool {
	used := false
	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[id] = true
				used = true
			}
		}
	}
	return used
}

// pollButtons returns the last pad with a bound button held.
func pollButtons(current *actionSet) (pad ebiten.GamepadID, used bool) {
	for _, id := range connectedPads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for action, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					current[action] = true
					pad, used = id, true
				}
			}
		}
	}
	return pad, used
}

// pollSticks returns the last pad whose left stick left the deadzone.
func pollSticks(current *actionSet) (pad ebiten.GamepadID, used bool) {
	for _, id := range connectedPads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		dir := gamepads.StickDirection(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			cfg.Input.AnalogDeadzone,
		)
		if dir == 0 {
			continue
		}
		for _, b := range stickBindings {
			if !dir.Has(b.dir) {
				continue
			}
			for _, action := range b.actions {
				current[action] = true
			}
		}
		pad, used = id, true
	}
	return pad, used
}

// padMethod classifies a pad once by name and remembers the answer.
func padMethod(id ebiten.GamepadID) components.InputMethod {
	if m, ok := padMethods[id]; ok {
		return m
	}
	m := components.InputXbox
	if gamepads.Classify(ebiten.GamepadName(id)) == gamepads.FamilyPlayStation {
		m = components.InputPlayStation
	}
	padMethods[id] = m
	return m
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	return getOrCreateInput(ecs).Action(id)
}
