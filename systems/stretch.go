package systems

import (
	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStretch inverts the colours of lockable full-screen sprites on
// select, editing their CPU pixels and uploading the result.
func UpdateStretch(ecs *ecs.ECS) {
	if !GetAction(ecs, cfg.ActionMenuSelect).JustPressed {
		return
	}

	tags.Stretch.Each(ecs.World, func(e *donburi.Entry) {
		surface := components.Sprite.Get(e).Surface
		if surface == nil {
			return
		}
		img := surface.Lock()
		if img == nil {
			return
		}
		for i := 0; i+3 < len(img.Pix); i += 4 {
			img.Pix[i] = 255 - img.Pix[i]
			img.Pix[i+1] = 255 - img.Pix[i+1]
			img.Pix[i+2] = 255 - img.Pix[i+2]
		}
		surface.Unlock()
	})
}
