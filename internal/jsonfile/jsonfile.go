// Package jsonfile stores a single JSON document in a flat file and
// serializes read-modify-write cycles on it.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
)

// File is a JSON document of type T kept at a fixed path.
// All access through one File is serialized; the file itself is not locked
// against other processes.
type File[T any] struct {
	mu    sync.Mutex
	path  string
	empty func() T
}

// New returns a File at path. empty builds the value used when the file is
// missing or cannot be decoded.
func New[T any](path string, empty func() T) *File[T] {
	return &File[T]{path: path, empty: empty}
}

// Path returns the location of the backing file.
func (f *File[T]) Path() string {
	return f.path
}

// Init creates the backing file with the empty value if it does not exist.
func (f *File[T]) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", f.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(f.path), err)
	}

	logger.Log.Infow("creating store file", "path", f.path)
	return f.save(f.empty())
}

// Load reads the whole document. A missing, unreadable or malformed file
// yields the empty value and no error.
func (f *File[T]) Load() T {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.load()
}

// Update loads the document, passes it to fn and writes back whatever fn
// returns. Nothing is written when fn fails.
func (f *File[T]) Update(fn func(T) (T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := fn(f.load())
	if err != nil {
		return err
	}

	return f.save(next)
}

func (f *File[T]) load() T {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Log.Warnw("store file unreadable, using empty value", "path", f.path, "error", err)
		}
		return f.empty()
	}

	v := f.empty()
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Log.Warnw("store file malformed, using empty value", "path", f.path, "error", err)
		return f.empty()
	}

	return v
}

func (f *File[T]) save(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	return nil
}
