package components

import (
	"github.com/automoto/blitkit/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *assets.TileLevel
}

var Level = donburi.NewComponentType[LevelData]()
