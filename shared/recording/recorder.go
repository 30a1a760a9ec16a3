package recording

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

// ErrInvalidState is returned when an operation is not allowed in the
// recorder's current state.
var ErrInvalidState = errors.New("recording: invalid state")

// captureChunk is how many bytes the capture goroutine pulls per read.
const captureChunk = 4096

// Device is an audio capture source.
type Device interface {
	Name() string
	// Open starts capturing PCM in the given format.
	Open(f Format) (io.ReadCloser, error)
}

// Recorder owns the capture buffer. The capture goroutine and the audio
// playback goroutine both touch the buffer, so every access goes through mu.
type Recorder struct {
	mu      sync.Mutex
	state   State
	err     error
	format  Format
	devices []Device
	device  Device

	buffer   []byte
	pos      int
	stopAt   int
	recorded int

	stream  io.ReadCloser
	capture sync.WaitGroup
}

// NewRecorder sizes the buffer for maxSeconds of audio plus one second of
// slack for the final capture chunk.
func NewRecorder(devices []Device, f Format, maxSeconds int) *Recorder {
	bytesPerSecond := f.BytesPerSecond()
	return &Recorder{
		state:   SelectingDevice,
		format:  f,
		devices: devices,
		buffer:  make([]byte, (maxSeconds+1)*bytesPerSecond),
		stopAt:  maxSeconds * bytesPerSecond,
	}
}

func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Err returns the failure that moved the recorder into Error.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Recorder) Devices() []Device {
	return r.devices
}

// Device returns the selected device, or nil.
func (r *Recorder) Device() Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.device
}

// Progress reports how far recording or playback has advanced, in [0, 1].
func (r *Recorder) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case Recording:
		return min(float64(r.pos)/float64(r.stopAt), 1)
	case Playback:
		if r.recorded == 0 {
			return 1
		}
		return float64(r.pos) / float64(r.recorded)
	case Recorded:
		return 1
	}
	return 0
}

// SelectDevice picks the capture device at index. An index outside the
// device list or a device that fails to open moves the recorder to Error.
func (r *Recorder) SelectDevice(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != SelectingDevice {
		return fmt.Errorf("%w: select device while %s", ErrInvalidState, r.state)
	}
	if index < 0 || index >= len(r.devices) {
		return r.failLocked(fmt.Errorf("recording: no device %d", index))
	}

	r.device = r.devices[index]
	r.state = Stopped
	return nil
}

// StartRecording clears the buffer and starts capturing from the selected
// device. Capture stops by itself once the buffer holds maxSeconds.
func (r *Recorder) StartRecording() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Stopped && r.state != Recorded {
		return fmt.Errorf("%w: record while %s", ErrInvalidState, r.state)
	}

	stream, err := r.device.Open(r.format)
	if err != nil {
		return r.failLocked(fmt.Errorf("recording: open %s: %w", r.device.Name(), err))
	}

	clear(r.buffer)
	r.pos = 0
	r.recorded = 0
	r.stream = stream
	r.state = Recording

	r.capture.Add(1)
	go r.captureLoop(stream)
	return nil
}

func (r *Recorder) captureLoop(stream io.ReadCloser) {
	defer r.capture.Done()
	defer stream.Close()

	chunk := make([]byte, captureChunk)
	for {
		n, err := io.ReadFull(stream, chunk)

		r.mu.Lock()
		if r.state != Recording {
			r.mu.Unlock()
			return
		}
		r.pos += copy(r.buffer[r.pos:], chunk[:n])
		if r.pos > r.stopAt || r.pos == len(r.buffer) {
			r.finishRecordingLocked()
			r.mu.Unlock()
			return
		}
		// a finite device running dry ends the recording early
		if (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) && r.pos > 0 {
			r.finishRecordingLocked()
			r.mu.Unlock()
			return
		}
		if err != nil {
			r.failLocked(fmt.Errorf("recording: capture: %w", err))
			r.mu.Unlock()
			return
		}
		r.mu.Unlock()
	}
}

func (r *Recorder) finishRecordingLocked() {
	// keep whole frames only so playback stays channel-aligned
	r.recorded = r.pos - r.pos%r.format.frameSize()
	r.stream = nil
	r.state = Recorded
}

// StartPlayback rewinds to the start of the recording. The returned reader
// streams the recorded PCM and moves the recorder back to Recorded when it
// runs out.
func (r *Recorder) StartPlayback() (io.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Recorded {
		return nil, fmt.Errorf("%w: play back while %s", ErrInvalidState, r.state)
	}
	r.pos = 0
	r.state = Playback
	return &playbackReader{r: r}, nil
}

type playbackReader struct {
	r *Recorder
}

func (p *playbackReader) Read(b []byte) (int, error) {
	r := p.r
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Playback {
		return 0, io.EOF
	}
	n := copy(b, r.buffer[r.pos:r.recorded])
	r.pos += n
	if r.pos >= r.recorded {
		r.state = Recorded
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n, nil
}

// Reset abandons any recording and returns to device selection.
func (r *Recorder) Reset() {
	r.mu.Lock()
	stream := r.stream
	r.stream = nil
	r.state = SelectingDevice
	r.device = nil
	r.err = nil
	r.pos = 0
	r.recorded = 0
	r.mu.Unlock()

	if stream != nil {
		_ = stream.Close()
	}
	r.capture.Wait()
}

// Close stops capture and waits for the capture goroutine.
func (r *Recorder) Close() error {
	r.Reset()
	return nil
}

func (r *Recorder) failLocked(err error) error {
	log.Printf("Warning: %v", err)
	r.err = err
	r.state = Error
	return err
}
