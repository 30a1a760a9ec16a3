package assets

import (
	"embed"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader recolours a sprite while keeping its alpha mask
	TintShader *ebiten.Shader

	shaderOnce sync.Once
	shaderErr  error
)

// LoadShaders compiles and caches all shaders. Later calls return the
// result of the first one.
func LoadShaders() error {
	shaderOnce.Do(func() {
		tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
		if err != nil {
			shaderErr = err
			return
		}
		TintShader, shaderErr = ebiten.NewShader(tintSrc)
	})
	return shaderErr
}
