package config

import "strings"

// SceneID identifies one demo scene
type SceneID int

const (
	ScenePicker SceneID = iota
	SceneStretch
	SceneCollision
	ScenePixelCollision
	SceneCircles
	SceneParticles
	SceneTiles
	SceneBitmapFont
	SceneSaveData
	SceneRecording
	SceneJoystick
	SceneDisplays
	SceneThreads
	SceneCount
)

var sceneNames = [SceneCount]string{
	ScenePicker:         "picker",
	SceneStretch:        "stretch",
	SceneCollision:      "collision",
	ScenePixelCollision: "pixel-collision",
	SceneCircles:        "circles",
	SceneParticles:      "particles",
	SceneTiles:          "tiles",
	SceneBitmapFont:     "bitmap-font",
	SceneSaveData:       "save-data",
	SceneRecording:      "recording",
	SceneJoystick:       "joystick",
	SceneDisplays:       "displays",
	SceneThreads:        "threads",
}

// SceneTitles are the labels shown in the picker.
var SceneTitles = [SceneCount]string{
	ScenePicker:         "Demos",
	SceneStretch:        "Stretched Image",
	SceneCollision:      "Box Collision",
	ScenePixelCollision: "Per-Pixel Collision",
	SceneCircles:        "Circle Collision",
	SceneParticles:      "Particles",
	SceneTiles:          "Tile Level",
	SceneBitmapFont:     "Bitmap Font",
	SceneSaveData:       "Save Data",
	SceneRecording:      "Audio Recording",
	SceneJoystick:       "Joystick & Haptics",
	SceneDisplays:       "Multiple Displays",
	SceneThreads:        "Threads",
}

func (s SceneID) String() string {
	if s < 0 || s >= SceneCount {
		return "unknown"
	}
	return sceneNames[s]
}

// ParseScene maps a scene name to its ID; unknown names yield the picker.
func ParseScene(name string) (SceneID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range sceneNames {
		if n == name {
			return SceneID(id), true
		}
	}
	return ScenePicker, false
}
