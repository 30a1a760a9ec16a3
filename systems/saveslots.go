package systems

import (
	"fmt"
	"log"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/savedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// LoadSaveSlots reads the stored values, creating a zeroed file if none
// exists yet.
func LoadSaveSlots() ([]int32, error) {
	values, err := savedata.Load(SaveStore(), cfg.SaveData.ItemKey, cfg.SaveData.Count)
	if err != nil {
		log.Printf("Warning: Could not load save data: %v", err)
		return make([]int32, cfg.SaveData.Count), err
	}
	return values, nil
}

// SaveSaveSlots writes the values back to the store.
func SaveSaveSlots(values []int32) error {
	if err := savedata.Save(SaveStore(), cfg.SaveData.ItemKey, values); err != nil {
		log.Printf("Warning: Could not save data: %v", err)
		return err
	}
	return nil
}

// UpdateSaveSlots moves the selection with up/down and edits the selected
// value with left/right. Select writes the file immediately.
func UpdateSaveSlots(ecs *ecs.ECS) {
	entry, ok := components.SaveSlots.First(ecs.World)
	if !ok {
		return
	}
	slots := components.SaveSlots.Get(entry)
	if len(slots.Values) == 0 {
		return
	}

	if GetAction(ecs, cfg.ActionMenuUp).JustPressed {
		slots.SelectedIndex--
		if slots.SelectedIndex < 0 {
			slots.SelectedIndex = len(slots.Values) - 1
		}
	}
	if GetAction(ecs, cfg.ActionMenuDown).JustPressed {
		slots.SelectedIndex = (slots.SelectedIndex + 1) % len(slots.Values)
	}

	value := &slots.Values[slots.SelectedIndex]
	if GetAction(ecs, cfg.ActionMenuLeft).JustPressed && *value > cfg.SaveData.MinValue {
		*value -= cfg.SaveData.Step
		slots.Dirty = true
	}
	if GetAction(ecs, cfg.ActionMenuRight).JustPressed && *value < cfg.SaveData.MaxValue {
		*value += cfg.SaveData.Step
		slots.Dirty = true
	}

	if GetAction(ecs, cfg.ActionMenuSelect).JustPressed {
		FlushSaveSlots(ecs)
	}
}

// FlushSaveSlots saves the values if they changed. Scenes call it on exit.
func FlushSaveSlots(ecs *ecs.ECS) {
	entry, ok := components.SaveSlots.First(ecs.World)
	if !ok {
		return
	}
	slots := components.SaveSlots.Get(entry)
	if !slots.Dirty {
		return
	}
	if err := SaveSaveSlots(slots.Values); err != nil {
		slots.Status = "Save failed: " + err.Error()
		return
	}
	slots.Dirty = false
	slots.Status = "Saved"
}

// DrawSaveSlots lists the values with the selection highlighted.
func DrawSaveSlots(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.SaveSlots.First(ecs.World)
	if !ok {
		return
	}
	slots := components.SaveSlots.Get(entry)

	drawLines(screen, []string{"Stored values:"}, 40, 24, cfg.White)
	for i, v := range slots.Values {
		clr := cfg.DarkBlue
		prefix := "  "
		if i == slots.SelectedIndex {
			clr = cfg.LightBlue
			prefix = "> "
		}
		drawLines(screen, []string{fmt.Sprintf("%s%d: %d", prefix, i, v)}, 40, 48+i*22, clr)
	}

	status := slots.Status
	if slots.Dirty {
		status = "Unsaved changes"
	}
	if status != "" {
		drawLines(screen, []string{status}, 40, 48+len(slots.Values)*22+12, cfg.Yellow)
	}
}
