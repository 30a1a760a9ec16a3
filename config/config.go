package config

import (
	"image/color"
	"os"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer every scene draws on.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	Title  string

	// Image stretched over the whole window; a checkerboard is used when missing
	StretchImage string
}

// DotConfig holds the movable dot shared by the collision demos.
type DotConfig struct {
	Image    string // Sprite file keyed on cyan; a disc is drawn when missing
	Width    float64
	Height   float64
	Radius   float64
	Velocity float64 // Applied per key press, removed on release
}

// WallConfig describes the static obstacles in the collision demos.
type WallConfig struct {
	X, Y, W, H float64
	// Circle obstacle used by the circle demo
	CircleX, CircleY, CircleR float64
	// Grid cell size for the broadphase
	CellSize int
}

// ParticleConfig controls the particle trail.
type ParticleConfig struct {
	Count        int     // Live particles per emitter
	Spread       float64 // Random offset range around the emitter (-5..Spread-5)
	Offset       float64
	Lifetime     int     // Frames before a particle is replaced
	Size         float64 // Particle sprite size
	ShimmerSize  float64
	ShimmerEvery int // A particle shimmers on frames divisible by this
}

// TileConfig describes the tile level.
type TileConfig struct {
	LevelPath   string
	TileWidth   int
	TileHeight  int
	LevelWidth  int
	LevelHeight int
	WallProp    string // Tileset property marking a tile as a wall
}

// BitmapFontConfig controls the generated glyph sheet.
type BitmapFontConfig struct {
	SheetPath  string // 16x16 glyph grid; rasterized from goregular when missing
	CellWidth  int
	CellHeight int
	Size       float64
	SampleText string
}

// SaveDataConfig controls the flat integer save file.
type SaveDataConfig struct {
	AppName  string
	ItemKey  string
	Count    int
	MinValue int32
	MaxValue int32
	Step     int32
}

// JoystickConfig holds gamepad thresholds and haptic settings.
type JoystickConfig struct {
	DeadZone       float64 // Fraction of full axis deflection ignored
	RumbleStrength float64
	RumbleDuration time.Duration
	ArrowWidth     int
	ArrowHeight    int
}

// ThreadsConfig controls the concurrency demos.
type ThreadsConfig struct {
	HandoffItems     int
	HandoffDelay     time.Duration
	CounterWorkers   int
	CounterRounds    int
	CounterMaxDelay  time.Duration
	AtomicWorkers    int
	AtomicIterations int
	MaxLogLines      int
}

// DebugConfig holds debug settings.
type DebugConfig struct {
	StartScene string // Scene name to open instead of the picker
	ShowShapes bool   // Outline collision shapes
}

var C *Config
var Dot DotConfig
var Walls WallConfig
var Particles ParticleConfig
var Tiles TileConfig
var BitmapFont BitmapFontConfig
var SaveData SaveDataConfig
var Joystick JoystickConfig
var Threads ThreadsConfig
var Debug DebugConfig

// Colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Background   = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected items
)

func init() {
	C = &Config{
		Width:        640,
		Height:       480,
		Title:        "blitkit",
		StretchImage: "stretch.bmp",
	}

	Dot = DotConfig{
		Image:    "dot.bmp",
		Width:    20,
		Height:   20,
		Radius:   10,
		Velocity: 10,
	}

	Walls = WallConfig{
		X: 300, Y: 40, W: 40, H: 400,
		CircleX: 100, CircleY: 100, CircleR: 10,
		CellSize: 32,
	}

	Particles = ParticleConfig{
		Count:        20,
		Spread:       25,
		Offset:       5,
		Lifetime:     10,
		Size:         6,
		ShimmerSize:  4,
		ShimmerEvery: 2,
	}

	Tiles = TileConfig{
		LevelPath:   "levels/tiles.tmx",
		TileWidth:   80,
		TileHeight:  80,
		LevelWidth:  1280,
		LevelHeight: 960,
		WallProp:    "wall",
	}

	BitmapFont = BitmapFontConfig{
		SheetPath:  "lazyfont.png",
		CellWidth:  24,
		CellHeight: 24,
		Size:       16,
		SampleText: "Bitmap Font:\nABCDEFGHIJKLMNOPQRSTUVWXYZ\nabcdefghijklmnopqrstuvwxyz\n0123456789",
	}

	SaveData = SaveDataConfig{
		AppName:  "blitkit",
		ItemKey:  "nums.bin",
		Count:    10,
		MinValue: -99,
		MaxValue: 99,
		Step:     1,
	}

	Joystick = JoystickConfig{
		DeadZone:       8000.0 / 32767.0,
		RumbleStrength: 0.75,
		RumbleDuration: 500 * time.Millisecond,
		ArrowWidth:     120,
		ArrowHeight:    40,
	}

	Threads = ThreadsConfig{
		HandoffItems:     5,
		HandoffDelay:     200 * time.Millisecond,
		CounterWorkers:   2,
		CounterRounds:    5,
		CounterMaxDelay:  100 * time.Millisecond,
		AtomicWorkers:    4,
		AtomicIterations: 1000,
		MaxLogLines:      18,
	}

	Debug = DebugConfig{
		StartScene: os.Getenv("BLITKIT_SCENE"),
		ShowShapes: os.Getenv("BLITKIT_SHAPES") != "",
	}
}
