package systems

import (
	"image/color"
	"strings"

	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
)

// NewDrawHint returns a renderer that prints hint lines along the bottom of
// the screen on a dark strip.
func NewDrawHint(hint string) func(*ecs.ECS, *ebiten.Image) {
	lines := strings.Split(hint, "\n")
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()
		top := height - hudMargin - len(lines)*hudLineHeight

		vector.FillRect(screen, 0, float32(top-hudMargin/2), float32(width), float32(height-top+hudMargin/2), cfg.BlackOverlay, false)
		for i, line := range lines {
			text.Draw(screen, line, fonts.Small.Get(), hudMargin, top+(i+1)*hudLineHeight-3, cfg.LightGray)
		}
	}
}

// drawLines prints lines with the regular font starting at (x, y).
func drawLines(screen *ebiten.Image, lines []string, x, y int, clr color.Color) {
	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+(i+1)*lineHeight, clr)
	}
}
