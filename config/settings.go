package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DisplaysConfig contains the multi-display demo configuration
type DisplaysConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	MaxListed              int // Monitors reachable by number keys
}

// Displays is the global displays demo configuration
var Displays DisplaysConfig

func init() {
	Displays = DisplaysConfig{
		Resolutions: []Resolution{
			{Width: 640, Height: 480, Label: "640 x 480"},
			{Width: 960, Height: 720, Label: "960 x 720"},
			{Width: 1280, Height: 960, Label: "1280 x 960"},
		},
		DefaultResolutionIndex: 0,
		MaxListed:              9,
	}
}
