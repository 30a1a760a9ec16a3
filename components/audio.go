package components

import (
	"github.com/automoto/blitkit/shared/recording"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// RecorderData holds the recording demo state (singleton component)
type RecorderData struct {
	Recorder *recording.Recorder
	Player   *audio.Player // Non-nil while a recording plays back
}

var Recorder = donburi.NewComponentType[RecorderData]()
