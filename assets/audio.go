package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/blitkit/shared/recording"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// FileDevice is a capture device that replays a decoded audio file, for
// machines where the synthetic tones are not enough. The decoded stream is
// 16-bit stereo at SampleRate, the format ebiten's decoders produce.
type FileDevice struct {
	Path       string
	SampleRate int
}

func (d FileDevice) Name() string {
	return "File " + filepath.Base(d.Path)
}

func (d FileDevice) Open(f recording.Format) (io.ReadCloser, error) {
	if f.SampleRate != d.SampleRate || f.Channels != 2 || f.BytesPerSample != 2 {
		return nil, fmt.Errorf("file device %s: unsupported format %+v", d.Path, f)
	}

	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", d.Path, err)
	}

	decoded, err := decodeAudio(d.Path, data, d.SampleRate)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(decoded)), nil
}

// decodeAudio decodes wav or ogg data to 16-bit stereo PCM.
func decodeAudio(path string, data []byte, sampleRate int) ([]byte, error) {
	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
