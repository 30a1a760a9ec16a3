package config

// AudioConfig holds audio system settings
type AudioConfig struct {
	SampleRate int
	Volume     float64
}

// RecordingConfig controls the recorder demo.
type RecordingConfig struct {
	MaxSeconds     int // Length of a recording
	Channels       int
	BytesPerSample int
	// Synthetic capture devices, one per entry
	DeviceNames []string
	Frequencies []float64
	ToneVolume  float64
	// Audio files offered as extra devices when present
	DeviceFiles []string
}

var Audio AudioConfig
var Recording RecordingConfig

func init() {
	// ebiten's audio players expect 16-bit stereo at the context rate.
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     1.0,
	}

	Recording = RecordingConfig{
		MaxSeconds:     5,
		Channels:       2,
		BytesPerSample: 2,
		DeviceNames:    []string{"Tone A4", "Tone C5", "Tone E5"},
		Frequencies:    []float64{440, 523.25, 659.25},
		ToneVolume:     0.3,
		DeviceFiles:    []string{"recording.wav", "recording.ogg"},
	}
}
