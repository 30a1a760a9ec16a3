package recording

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"
)

var errDeviceClosed = errors.New("recording: device closed")

// ToneDevice is a synthetic capture device producing a sine wave. With
// Realtime set, reads are paced to the format's byte rate like a real
// microphone.
type ToneDevice struct {
	Label     string
	Frequency float64
	Volume    float64 // 0..1
	Realtime  bool
}

func (d ToneDevice) Name() string {
	if d.Label != "" {
		return d.Label
	}
	return fmt.Sprintf("Tone %.0f Hz", d.Frequency)
}

func (d ToneDevice) Open(f Format) (io.ReadCloser, error) {
	if f.BytesPerSample != 2 {
		return nil, fmt.Errorf("recording: tone device supports 16-bit samples only, got %d bytes", f.BytesPerSample)
	}
	return &toneStream{device: d, format: f, closed: make(chan struct{})}, nil
}

type toneStream struct {
	device    ToneDevice
	format    Format
	frame     int
	closeOnce sync.Once
	closed    chan struct{}
}

func (s *toneStream) Read(p []byte) (int, error) {
	select {
	case <-s.closed:
		return 0, errDeviceClosed
	default:
	}

	frameSize := s.format.frameSize()
	frames := len(p) / frameSize
	if frames == 0 {
		return 0, nil
	}

	if s.device.Realtime {
		wait := time.Duration(frames) * time.Second / time.Duration(s.format.SampleRate)
		select {
		case <-time.After(wait):
		case <-s.closed:
			return 0, errDeviceClosed
		}
	}

	amplitude := s.device.Volume * math.MaxInt16
	for i := 0; i < frames; i++ {
		t := float64(s.frame) / float64(s.format.SampleRate)
		sample := int16(amplitude * math.Sin(2*math.Pi*s.device.Frequency*t))
		for c := 0; c < s.format.Channels; c++ {
			off := i*frameSize + c*2
			binary.LittleEndian.PutUint16(p[off:], uint16(sample))
		}
		s.frame++
	}
	return frames * frameSize, nil
}

func (s *toneStream) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}
