package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// DisplaysData holds the monitor list for the displays demo
type DisplaysData struct {
	Monitors        []*ebiten.MonitorType
	Current         int
	ResolutionIndex int
	Fullscreen      bool
}

var Displays = donburi.NewComponentType[DisplaysData]()
