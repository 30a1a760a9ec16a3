package systems

import (
	"fmt"
	"io"
	"sync"

	cfg "github.com/automoto/blitkit/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - ebiten allows one context per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// AudioContext returns the shared audio context, creating it on first use.
func AudioContext() *audio.Context {
	initGlobalAudio()
	return globalAudioContext
}

// playStream starts a player over 16-bit stereo PCM at the context rate.
func playStream(src io.Reader) (*audio.Player, error) {
	player, err := AudioContext().NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	player.SetVolume(cfg.Audio.Volume)
	player.Play()
	return player, nil
}

// stopPlayer closes p if it is non-nil.
func stopPlayer(p *audio.Player) {
	if p == nil {
		return
	}
	p.Pause()
	_ = p.Close()
}
