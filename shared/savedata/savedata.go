// Package savedata reads and writes flat arrays of fixed-size integers:
// little-endian int32 records with no header and no versioning.
package savedata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// RecordSize is the encoded size of one value.
const RecordSize = 4

// ErrShortData is returned when stored data holds fewer records than asked for.
var ErrShortData = errors.New("savedata: short data")

// ErrBadCount is returned when a negative number of records is asked for.
var ErrBadCount = errors.New("savedata: negative record count")

// Store persists opaque items by key. A missing item loads as nil data and
// a nil error, matching gdata.Manager.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Encode packs values as consecutive little-endian int32 records.
func Encode(values []int32) []byte {
	var buf bytes.Buffer
	buf.Grow(len(values) * RecordSize)
	_ = binary.Write(&buf, binary.LittleEndian, values)
	return buf.Bytes()
}

// Decode unpacks exactly count records from data. Trailing bytes are ignored.
func Decode(data []byte, count int) ([]int32, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	if len(data) < count*RecordSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortData, len(data), count*RecordSize)
	}
	values := make([]int32, count)
	if err := binary.Read(bytes.NewReader(data[:count*RecordSize]), binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("savedata: decode: %w", err)
	}
	return values, nil
}

// Load reads count values stored under key. When nothing is stored yet a
// zero-filled slice is created and written back immediately.
func Load(s Store, key string, count int) ([]int32, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	data, err := s.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("savedata: load %s: %w", key, err)
	}
	if len(data) == 0 {
		log.Printf("No saved data under %q, initializing %d values", key, count)
		values := make([]int32, count)
		if err := Save(s, key, values); err != nil {
			return values, err
		}
		return values, nil
	}
	return Decode(data, count)
}

// Save writes values under key.
func Save(s Store, key string, values []int32) error {
	if err := s.SaveItem(key, Encode(values)); err != nil {
		return fmt.Errorf("savedata: save %s: %w", key, err)
	}
	return nil
}

// FileStore keeps every item as a file named after its key inside Dir.
type FileStore struct {
	Dir string
}

func (s FileStore) path(key string) string {
	return filepath.Join(s.Dir, key)
}

func (s FileStore) LoadItem(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (s FileStore) SaveItem(key string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}
