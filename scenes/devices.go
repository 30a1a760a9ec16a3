package scenes

import (
	"log"
	"os"

	"github.com/automoto/blitkit/assets"
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/recording"
	"github.com/automoto/blitkit/systems"
	"github.com/automoto/blitkit/systems/factory"
)

// setupSaveData edits the stored integers. Changes are written on select
// and when the scene is left.
func setupSaveData(ds *DemoScene) {
	values, err := systems.LoadSaveSlots()
	slots := components.SaveSlots.Get(factory.CreateSaveSlots(ds.ecs, values))
	if err != nil {
		slots.Status = "Load failed: " + err.Error()
	} else {
		slots.Status = "Loaded"
	}
	ds.onLeave(func() { systems.FlushSaveSlots(ds.ecs) })

	ds.ecs.AddSystem(systems.UpdateSaveSlots)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawSaveSlots)
	ds.hint("up/down select, left/right change, Enter saves")
}

// setupRecording records from a capture device and plays it back.
func setupRecording(ds *DemoScene) {
	devices := make([]recording.Device, 0, len(cfg.Recording.DeviceNames)+len(cfg.Recording.DeviceFiles))
	for i, name := range cfg.Recording.DeviceNames {
		devices = append(devices, recording.ToneDevice{
			Label:     name,
			Frequency: cfg.Recording.Frequencies[i],
			Volume:    cfg.Recording.ToneVolume,
			Realtime:  true,
		})
	}
	for _, path := range cfg.Recording.DeviceFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		log.Printf("Using %s as a capture device", path)
		devices = append(devices, assets.FileDevice{Path: path, SampleRate: cfg.Audio.SampleRate})
	}

	factory.CreateRecorder(ds.ecs, devices)
	ds.onLeave(func() { systems.CloseRecorder(ds.ecs) })

	ds.ecs.AddSystem(systems.UpdateRecording)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawRecording)
	ds.hint("1-9 device, R record, P play, Backspace reset")
}

// setupJoystick shows the left stick direction and rumbles on a button.
func setupJoystick(ds *DemoScene) {
	factory.CreateGamepad(ds.ecs)

	ds.ecs.AddSystem(systems.UpdateGamepad)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawGamepad)
	ds.hint("left stick aims, face buttons or Space rumble")
}

// setupDisplays lists the monitors and moves the window between them.
func setupDisplays(ds *DemoScene) {
	displays := components.Displays.Get(factory.CreateDisplays(ds.ecs))
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Displays.Resolutions) {
			displays.ResolutionIndex = saved.ResolutionIndex
		}
	}

	ds.ecs.AddSystem(systems.UpdateDisplays)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDisplays)
	ds.hint("1-9 move window, left/right size, F fullscreen")
}

// setupThreads runs the worker demos and prints what they report.
func setupThreads(ds *DemoScene) {
	factory.CreateThreads(ds.ecs)

	ds.ecs.AddSystem(systems.UpdateThreads)
	ds.onLeave(func() { systems.WaitThreads(ds.ecs) })
	ds.ecs.AddRenderer(cfg.Default, systems.DrawThreads)
	ds.hint("1 producer/consumer, 2 semaphore, 3 atomic")
}
