package recording

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

var testFormat = Format{SampleRate: 8000, Channels: 2, BytesPerSample: 2}

type brokenDevice struct{}

func (brokenDevice) Name() string                       { return "broken" }
func (brokenDevice) Open(Format) (io.ReadCloser, error) { return nil, errors.New("no such device") }

// bufferDevice captures a fixed amount of PCM and then runs dry.
type bufferDevice struct {
	data []byte
}

func (bufferDevice) Name() string { return "buffer" }
func (d bufferDevice) Open(Format) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(d.data)), nil
}

func waitForState(t *testing.T, r *Recorder, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("state = %s, want %s", r.State(), want)
}

func TestRecordAndPlayBack(t *testing.T) {
	r := NewRecorder([]Device{ToneDevice{Frequency: 440, Volume: 0.5}}, testFormat, 1)
	defer r.Close()

	if got := r.State(); got != SelectingDevice {
		t.Fatalf("initial state = %s, want %s", got, SelectingDevice)
	}
	if err := r.SelectDevice(0); err != nil {
		t.Fatalf("SelectDevice() error = %v", err)
	}
	if got := r.State(); got != Stopped {
		t.Fatalf("state = %s, want %s", got, Stopped)
	}

	if err := r.StartRecording(); err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}
	waitForState(t, r, Recorded)

	player, err := r.StartPlayback()
	if err != nil {
		t.Fatalf("StartPlayback() error = %v", err)
	}
	if got := r.State(); got != Playback {
		t.Fatalf("state = %s, want %s", got, Playback)
	}

	data, err := io.ReadAll(player)
	if err != nil {
		t.Fatalf("reading playback: %v", err)
	}
	bytesPerSecond := testFormat.BytesPerSecond()
	if len(data) <= bytesPerSecond || len(data) > 2*bytesPerSecond {
		t.Errorf("played %d bytes, want between %d and %d", len(data), bytesPerSecond, 2*bytesPerSecond)
	}
	if len(data)%4 != 0 {
		t.Errorf("played %d bytes, not frame aligned", len(data))
	}
	if got := r.State(); got != Recorded {
		t.Errorf("state after playback = %s, want %s", got, Recorded)
	}

	// Recording again from Recorded is allowed.
	if err := r.StartRecording(); err != nil {
		t.Fatalf("second StartRecording() error = %v", err)
	}
	waitForState(t, r, Recorded)
}

func TestInvalidTransitions(t *testing.T) {
	r := NewRecorder([]Device{ToneDevice{Frequency: 440}}, testFormat, 1)
	defer r.Close()

	if err := r.StartRecording(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("StartRecording() before selecting = %v, want ErrInvalidState", err)
	}
	if _, err := r.StartPlayback(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("StartPlayback() before recording = %v, want ErrInvalidState", err)
	}
	if err := r.SelectDevice(0); err != nil {
		t.Fatalf("SelectDevice() error = %v", err)
	}
	if err := r.SelectDevice(0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second SelectDevice() = %v, want ErrInvalidState", err)
	}
}

func TestSelectMissingDevice(t *testing.T) {
	r := NewRecorder(nil, testFormat, 1)
	if err := r.SelectDevice(3); err == nil {
		t.Fatal("SelectDevice() on empty list returned nil error")
	}
	if got := r.State(); got != Error {
		t.Errorf("state = %s, want %s", got, Error)
	}
	if r.Err() == nil {
		t.Error("Err() = nil after failure")
	}

	r.Reset()
	if got := r.State(); got != SelectingDevice {
		t.Errorf("state after Reset() = %s, want %s", got, SelectingDevice)
	}
}

func TestOpenFailure(t *testing.T) {
	r := NewRecorder([]Device{brokenDevice{}}, testFormat, 1)
	if err := r.SelectDevice(0); err != nil {
		t.Fatalf("SelectDevice() error = %v", err)
	}
	if err := r.StartRecording(); err == nil {
		t.Fatal("StartRecording() on broken device returned nil error")
	}
	if got := r.State(); got != Error {
		t.Errorf("state = %s, want %s", got, Error)
	}
}

func TestResetStopsRealtimeCapture(t *testing.T) {
	r := NewRecorder([]Device{ToneDevice{Frequency: 440, Realtime: true}}, testFormat, 5)
	if err := r.SelectDevice(0); err != nil {
		t.Fatalf("SelectDevice() error = %v", err)
	}
	if err := r.StartRecording(); err != nil {
		t.Fatalf("StartRecording() error = %v", err)
	}

	done := make(chan struct{})
	go func() {
		r.Reset()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Reset() did not stop the capture goroutine")
	}
	if got := r.State(); got != SelectingDevice {
		t.Errorf("state = %s, want %s", got, SelectingDevice)
	}
}

func TestFiniteDevice(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		wantState State
		wantBytes int
	}{
		{"partial chunk", 10002, Recorded, 10000},
		{"whole chunks", 2 * captureChunk, Recorded, 2 * captureChunk},
		{"empty", 0, Error, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder([]Device{bufferDevice{data: make([]byte, tt.size)}}, testFormat, 5)
			defer r.Close()

			if err := r.SelectDevice(0); err != nil {
				t.Fatalf("SelectDevice() error = %v", err)
			}
			if err := r.StartRecording(); err != nil {
				t.Fatalf("StartRecording() error = %v", err)
			}
			waitForState(t, r, tt.wantState)
			if tt.wantState != Recorded {
				return
			}

			player, err := r.StartPlayback()
			if err != nil {
				t.Fatalf("StartPlayback() error = %v", err)
			}
			data, err := io.ReadAll(player)
			if err != nil {
				t.Fatalf("reading playback: %v", err)
			}
			if len(data) != tt.wantBytes {
				t.Errorf("played %d bytes, want %d", len(data), tt.wantBytes)
			}
		})
	}
}

func TestToneDeviceRejectsNon16Bit(t *testing.T) {
	_, err := ToneDevice{Frequency: 440}.Open(Format{SampleRate: 8000, Channels: 1, BytesPerSample: 4})
	if err == nil {
		t.Error("Open() with 32-bit samples returned nil error")
	}
}
