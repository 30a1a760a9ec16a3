package systems

import (
	"fmt"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDisplays refreshes the monitor list. Number keys move the window
// to that monitor, left/right cycle the window size and F toggles
// fullscreen. Changes are persisted.
func UpdateDisplays(ecs *ecs.ECS) {
	entry, ok := components.Displays.First(ecs.World)
	if !ok {
		return
	}
	d := components.Displays.Get(entry)

	d.Monitors = ebiten.AppendMonitors(d.Monitors[:0])
	current := ebiten.Monitor()
	for i, m := range d.Monitors {
		if m == current {
			d.Current = i
		}
	}
	d.Fullscreen = ebiten.IsFullscreen()

	changed := false
	for i, key := range deviceKeys {
		if i >= len(d.Monitors) || i >= cfg.Displays.MaxListed {
			break
		}
		if inpututil.IsKeyJustPressed(key) && i != d.Current {
			ebiten.SetMonitor(d.Monitors[i])
			d.Current = i
			changed = true
		}
	}

	resolutions := cfg.Displays.Resolutions
	if GetAction(ecs, cfg.ActionMenuRight).JustPressed {
		d.ResolutionIndex = (d.ResolutionIndex + 1) % len(resolutions)
		changed = true
	}
	if GetAction(ecs, cfg.ActionMenuLeft).JustPressed {
		d.ResolutionIndex = (d.ResolutionIndex - 1 + len(resolutions)) % len(resolutions)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		d.Fullscreen = !d.Fullscreen
		ebiten.SetFullscreen(d.Fullscreen)
		changed = true
	}

	if !changed {
		return
	}
	if !d.Fullscreen {
		res := resolutions[d.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	settings := &SavedSettings{
		Fullscreen:      d.Fullscreen,
		ResolutionIndex: d.ResolutionIndex,
	}
	if d.Current < len(d.Monitors) {
		settings.Monitor = d.Monitors[d.Current].Name()
	}
	_ = SaveSettings(settings)
}

// DrawDisplays lists the monitors with the current one highlighted.
func DrawDisplays(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Displays.First(ecs.World)
	if !ok {
		return
	}
	d := components.Displays.Get(entry)

	drawLines(screen, []string{fmt.Sprintf("%d display(s) found", len(d.Monitors))}, 40, 24, cfg.White)
	for i, m := range d.Monitors {
		if i >= cfg.Displays.MaxListed {
			break
		}
		w, h := m.Size()
		clr := cfg.DarkBlue
		if i == d.Current {
			clr = cfg.LightBlue
		}
		line := fmt.Sprintf("%d. %s  %dx%d @%.1fx", i+1, m.Name(), w, h, m.DeviceScaleFactor())
		drawLines(screen, []string{line}, 40, 52+i*22, clr)
	}

	mode := "Window: " + cfg.Displays.Resolutions[d.ResolutionIndex].Label
	if d.Fullscreen {
		mode = "Fullscreen"
	}
	drawLines(screen, []string{mode}, 40, 52+min(len(d.Monitors), cfg.Displays.MaxListed)*22+12, cfg.Yellow)
}
