package main

import (
	"image"
	"log"

	"github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/fonts"
	"github.com/automoto/blitkit/scenes"
	"github.com/automoto/blitkit/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Leave()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11)

	g := &Game{
		bounds: image.Rectangle{},
	}

	start := config.ScenePicker
	if config.Debug.StartScene != "" {
		id, ok := config.ParseScene(config.Debug.StartScene)
		if !ok {
			log.Printf("Warning: Unknown scene %q, opening the picker", config.Debug.StartScene)
		}
		start = id
	}
	g.scene = scenes.NewScene(start, g).(Scene)

	return g
}

func (g *Game) Update() error {
	// Flush the scene's state before the window goes away
	if ebiten.IsWindowBeingClosed() {
		g.scene.Leave()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
