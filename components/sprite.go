package components

import (
	"github.com/automoto/blitkit/assets"
	"github.com/yohamta/donburi"
)

// SpriteData draws a surface at the entity's body or obstacle position.
// Circle bodies are drawn centred on their position.
type SpriteData struct {
	Surface  *assets.Surface
	Centered bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
