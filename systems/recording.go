package systems

import (
	"fmt"
	"log"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/recording"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var deviceKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// UpdateRecording drives the recorder from input: number keys pick a
// device, Record captures, Play plays back, Backspace starts over.
func UpdateRecording(ecs *ecs.ECS) {
	entry, ok := components.Recorder.First(ecs.World)
	if !ok {
		return
	}
	data := components.Recorder.Get(entry)
	rec := data.Recorder

	// Release the player once the reader has run dry
	if data.Player != nil && rec.State() != recording.Playback && !data.Player.IsPlaying() {
		stopPlayer(data.Player)
		data.Player = nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		stopPlayer(data.Player)
		data.Player = nil
		rec.Reset()
		return
	}

	switch rec.State() {
	case recording.SelectingDevice:
		for i, key := range deviceKeys {
			if i >= len(rec.Devices()) {
				break
			}
			if inpututil.IsKeyJustPressed(key) {
				if err := rec.SelectDevice(i); err != nil {
					log.Printf("Warning: Could not select device %d: %v", i, err)
				}
				return
			}
		}

	case recording.Stopped, recording.Recorded:
		if GetAction(ecs, cfg.ActionRecord).JustPressed {
			if err := rec.StartRecording(); err != nil {
				log.Printf("Warning: Could not start recording: %v", err)
			}
			return
		}
		if rec.State() == recording.Recorded && GetAction(ecs, cfg.ActionPlay).JustPressed {
			src, err := rec.StartPlayback()
			if err != nil {
				log.Printf("Warning: Could not start playback: %v", err)
				return
			}
			player, err := playStream(src)
			if err != nil {
				log.Printf("Warning: %v", err)
				rec.Reset()
				return
			}
			data.Player = player
		}
	}
}

// CloseRecorder stops playback and capture when the scene is left.
func CloseRecorder(ecs *ecs.ECS) {
	entry, ok := components.Recorder.First(ecs.World)
	if !ok {
		return
	}
	data := components.Recorder.Get(entry)
	stopPlayer(data.Player)
	data.Player = nil
	_ = data.Recorder.Close()
}

// DrawRecording shows the device list or the current state with a
// progress bar.
func DrawRecording(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Recorder.First(ecs.World)
	if !ok {
		return
	}
	rec := components.Recorder.Get(entry).Recorder
	state := rec.State()

	lines := []string{"State: " + state.String()}
	switch state {
	case recording.SelectingDevice:
		lines = append(lines, "Select a capture device:")
		for i, d := range rec.Devices() {
			if i >= len(deviceKeys) {
				break
			}
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, d.Name()))
		}
	case recording.Stopped:
		lines = append(lines, "Device: "+rec.Device().Name(), "Press R to record")
	case recording.Recording:
		lines = append(lines, fmt.Sprintf("Recording %d seconds...", cfg.Recording.MaxSeconds))
	case recording.Recorded:
		lines = append(lines, "Press P to play back, R to record again")
	case recording.Playback:
		lines = append(lines, "Playing back...")
	case recording.Error:
		lines = append(lines, fmt.Sprintf("Error: %v", rec.Err()), "Press Backspace to start over")
	}
	drawLines(screen, lines, 40, 40, cfg.White)

	if state == recording.Recording || state == recording.Playback || state == recording.Recorded {
		barColor := cfg.Red
		if state != recording.Recording {
			barColor = cfg.Green
		}
		x, y := float32(40), float32(cfg.C.Height/2)
		w, h := float32(cfg.C.Width-80), float32(20)
		vector.FillRect(screen, x, y, w*float32(rec.Progress()), h, barColor, false)
		vector.StrokeRect(screen, x, y, w, h, 2, cfg.White, false)
	}
}
