package components

import (
	cfg "github.com/automoto/blitkit/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

func (m InputMethod) String() string {
	switch m {
	case InputXbox:
		return "Xbox"
	case InputPlayStation:
		return "PlayStation"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

// Action returns the temporal state of id.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
