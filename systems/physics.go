package systems

import (
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/systems/factory"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVelocity turns direction presses into velocity deltas. A press adds
// the dot velocity on its axis and the matching release takes it back off,
// so opposite keys held together cancel out.
func UpdateVelocity(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	step := cfg.Dot.Velocity

	var dx, dy float64
	for _, a := range []struct {
		id     cfg.ActionID
		dx, dy float64
	}{
		{cfg.ActionMoveLeft, -step, 0},
		{cfg.ActionMoveRight, step, 0},
		{cfg.ActionMoveUp, 0, -step},
		{cfg.ActionMoveDown, 0, step},
	} {
		state := input.Action(a.id)
		if state.JustPressed {
			dx += a.dx
			dy += a.dy
		}
		if state.JustReleased {
			dx -= a.dx
			dy -= a.dy
		}
	}
	if dx == 0 && dy == 0 {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		v := components.Velocity.Get(e)
		v.X += dx
		v.Y += dy
	})
}

// UpdateMovement moves every player dot by its velocity, one axis at a
// time; an axis that would end in a wall, another dot or outside the world
// is undone.
func UpdateMovement(ecs *ecs.ECS) {
	world := factory.GetWorld(ecs)
	if world == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		v := components.Velocity.Get(e)
		if v.X == 0 && v.Y == 0 {
			return
		}
		body := components.Body.Get(e)
		world.Move(body.Body, v.X, v.Y)
	})
}
