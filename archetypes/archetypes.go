package archetypes

import (
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Dot = newArchetype(
		tags.Dot,
		components.Body,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Dot,
		tags.Player,
		components.Body,
		components.Velocity,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Obstacle,
	)
	World = newArchetype(
		components.World,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Stretch = newArchetype(
		tags.Stretch,
		components.Sprite,
	)
	Text = newArchetype(
		components.Text,
	)
	SaveSlots = newArchetype(
		components.SaveSlots,
	)
	Recorder = newArchetype(
		components.Recorder,
	)
	Gamepad = newArchetype(
		components.Gamepad,
	)
	Displays = newArchetype(
		components.Displays,
	)
	Threads = newArchetype(
		components.Threads,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
