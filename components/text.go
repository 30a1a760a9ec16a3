package components

import (
	"github.com/automoto/blitkit/fonts"
	"github.com/yohamta/donburi"
)

// TextData is a block of bitmap-font text drawn in screen space.
type TextData struct {
	Font *fonts.BitmapFont
	Text string
	X, Y int
}

var Text = donburi.NewComponentType[TextData]()
