package factory

import (
	"github.com/automoto/blitkit/archetypes"
	"github.com/automoto/blitkit/assets"
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/fonts"
	"github.com/automoto/blitkit/shared/recording"
	"github.com/automoto/blitkit/shared/workers"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStretch spawns a full-screen sprite.
func CreateStretch(ecs *ecs.ECS, surface *assets.Surface) *donburi.Entry {
	entry := archetypes.Stretch.Spawn(ecs)
	components.Sprite.SetValue(entry, components.SpriteData{Surface: surface})
	return entry
}

func CreateText(ecs *ecs.ECS, font *fonts.BitmapFont, text string, x, y int) *donburi.Entry {
	entry := archetypes.Text.Spawn(ecs)
	components.Text.SetValue(entry, components.TextData{Font: font, Text: text, X: x, Y: y})
	return entry
}

func CreateSaveSlots(ecs *ecs.ECS, values []int32) *donburi.Entry {
	entry := archetypes.SaveSlots.Spawn(ecs)
	components.SaveSlots.SetValue(entry, components.SaveSlotsData{Values: values})
	return entry
}

func CreateRecorder(ecs *ecs.ECS, devices []recording.Device) *donburi.Entry {
	entry := archetypes.Recorder.Spawn(ecs)
	format := recording.Format{
		SampleRate:     cfg.Audio.SampleRate,
		Channels:       cfg.Recording.Channels,
		BytesPerSample: cfg.Recording.BytesPerSample,
	}
	components.Recorder.SetValue(entry, components.RecorderData{
		Recorder: recording.NewRecorder(devices, format, cfg.Recording.MaxSeconds),
	})
	return entry
}

func CreateGamepad(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Gamepad.Spawn(ecs)
	components.Gamepad.SetValue(entry, components.GamepadData{})
	return entry
}

func CreateDisplays(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Displays.Spawn(ecs)
	components.Displays.SetValue(entry, components.DisplaysData{
		ResolutionIndex: cfg.Displays.DefaultResolutionIndex,
	})
	return entry
}

func CreateThreads(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Threads.Spawn(ecs)
	components.Threads.SetValue(entry, components.ThreadsData{
		Log: workers.NewLog(cfg.Threads.MaxLogLines),
	})
	return entry
}
