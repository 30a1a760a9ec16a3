// Package recording implements the record-then-play-back flow: pick a
// capture device, record up to a fixed number of seconds into a memory
// buffer, then stream the buffer back out.
package recording

// State is a step of the recording flow.
type State int

const (
	SelectingDevice State = iota
	Stopped
	Recording
	Recorded
	Playback
	Error
)

func (s State) String() string {
	switch s {
	case SelectingDevice:
		return "selecting device"
	case Stopped:
		return "stopped"
	case Recording:
		return "recording"
	case Recorded:
		return "recorded"
	case Playback:
		return "playback"
	case Error:
		return "error"
	}
	return "unknown"
}

// Format describes interleaved little-endian PCM.
type Format struct {
	SampleRate     int
	Channels       int
	BytesPerSample int
}

func (f Format) BytesPerSecond() int {
	return f.SampleRate * f.Channels * f.BytesPerSample
}

func (f Format) frameSize() int {
	return f.Channels * f.BytesPerSample
}
