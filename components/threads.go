package components

import (
	"github.com/automoto/blitkit/shared/workers"
	"github.com/yohamta/donburi"
)

// ThreadsData is the threads demo state (singleton component)
type ThreadsData struct {
	Log *workers.Log
}

var Threads = donburi.NewComponentType[ThreadsData]()
