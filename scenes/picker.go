package scenes

import (
	"sync"

	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/systems"
	"github.com/automoto/blitkit/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PickerScene lists every demo
type PickerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	pickerUI     *ui.PickerUI
	once         sync.Once
	next         cfg.SceneID
}

func NewPickerScene(sc SceneChanger) *PickerScene {
	return &PickerScene{sceneChanger: sc, next: cfg.ScenePicker}
}

func (ps *PickerScene) Update() {
	ps.once.Do(ps.configure)

	ps.ecs.Update()
	ps.pickerUI.Update()

	switch {
	case systems.GetAction(ps.ecs, cfg.ActionMenuUp).JustPressed:
		ps.pickerUI.Move(0, -1)
	case systems.GetAction(ps.ecs, cfg.ActionMenuDown).JustPressed:
		ps.pickerUI.Move(0, 1)
	case systems.GetAction(ps.ecs, cfg.ActionMenuLeft).JustPressed:
		ps.pickerUI.Move(-1, 0)
	case systems.GetAction(ps.ecs, cfg.ActionMenuRight).JustPressed:
		ps.pickerUI.Move(1, 0)
	case systems.GetAction(ps.ecs, cfg.ActionMenuSelect).JustPressed:
		ps.pickerUI.Select()
	}

	// Switch after the UI has finished handling its own events
	if ps.next != cfg.ScenePicker {
		ps.sceneChanger.ChangeScene(NewScene(ps.next, ps.sceneChanger))
	}
}

// Leave is a no-op: the picker holds nothing that outlives the frame.
func (ps *PickerScene) Leave() {}

func (ps *PickerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}

	ps.pickerUI.UI.Draw(screen)
}

func (ps *PickerScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())
	ps.ecs.AddSystem(systems.UpdateInput)

	demos := make([]cfg.SceneID, 0, cfg.SceneCount-1)
	for id := cfg.ScenePicker + 1; id < cfg.SceneCount; id++ {
		demos = append(demos, id)
	}
	ps.pickerUI = ui.NewPickerUI(demos, func(scene cfg.SceneID) {
		ps.next = scene
	})
}
