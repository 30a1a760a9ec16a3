package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/scenes/lifecycle"
	"github.com/automoto/blitkit/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// demoSetups builds the systems and entities of each demo.
var demoSetups = map[cfg.SceneID]func(ds *DemoScene){
	cfg.SceneStretch:        setupStretch,
	cfg.SceneCollision:      setupCollision,
	cfg.ScenePixelCollision: setupPixelCollision,
	cfg.SceneCircles:        setupCircles,
	cfg.SceneParticles:      setupParticles,
	cfg.SceneTiles:          setupTiles,
	cfg.SceneBitmapFont:     setupBitmapFont,
	cfg.SceneSaveData:       setupSaveData,
	cfg.SceneRecording:      setupRecording,
	cfg.SceneJoystick:       setupJoystick,
	cfg.SceneDisplays:       setupDisplays,
	cfg.SceneThreads:        setupThreads,
}

// NewScene returns the scene for id. Unknown IDs open the picker.
func NewScene(id cfg.SceneID, sc SceneChanger) interface{} {
	setup, ok := demoSetups[id]
	if !ok {
		return NewPickerScene(sc)
	}
	return &DemoScene{id: id, sceneChanger: sc, setup: setup}
}

// DemoScene runs one demo in its own ECS world. Pressing back releases
// everything the demo registered with onLeave and returns to the picker.
type DemoScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	id      cfg.SceneID
	setup   func(ds *DemoScene)
	cleanup lifecycle.Cleanup
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.GetAction(ds.ecs, cfg.ActionBack).JustPressed {
		ds.Leave()
		ds.sceneChanger.ChangeScene(NewPickerScene(ds.sceneChanger))
	}
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DemoScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	// Input runs first so every demo system sees this frame's actions
	ds.ecs.AddSystem(systems.UpdateInput)
	ds.setup(ds)
}

// onLeave registers f to run when the scene is left, in reverse order.
func (ds *DemoScene) onLeave(f func()) {
	ds.cleanup.Add(f)
}

// Leave releases the demo's resources. It is safe to call more than once.
func (ds *DemoScene) Leave() {
	ds.cleanup.Run()
}

// hint adds the bottom help strip. Call it last so it draws on top.
func (ds *DemoScene) hint(text string) {
	ds.ecs.AddRenderer(cfg.Default, systems.NewDrawHint(cfg.SceneTitles[ds.id]+": "+text+"  [Esc] back"))
}
