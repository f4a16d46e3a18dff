package save

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

var (
	// ErrNoSave means storage holds no document yet.
	ErrNoSave = errors.New("no save")
	// ErrUnavailable wraps read and write failures of the backing storage.
	ErrUnavailable = errors.New("persistence unavailable")
	// ErrMalformed means the stored document could not be parsed at all.
	ErrMalformed = errors.New("malformed save data")
)

// Store reads and replaces a single document.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStore keeps the document in one file. Writes go to a temporary file
// that is renamed over the target, so readers see the old or the new
// document and never a partial one.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The parent directory is created on
// the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file location.
func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Read() ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return b, nil
}

func (f *FileStore) Write(data []byte) error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// MemoryStore is an in-process store for headless runs and tests.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	// Fail makes every operation return ErrUnavailable.
	Fail bool
}

func (m *MemoryStore) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return nil, ErrUnavailable
	}
	if m.data == nil {
		return nil, ErrNoSave
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStore) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return ErrUnavailable
	}
	m.data = append([]byte(nil), data...)
	return nil
}
