// Package storage provides the durable key-value slot the position store
// persists into. A slot holds opaque blobs; callers own the encoding.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get when nothing has been written under a key.
var ErrNotFound = errors.New("storage: key not found")

// Slot reads and overwrites whole values by key.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FileSlot keeps one file per key inside a directory.
type FileSlot struct {
	dir string
}

// NewFileSlot creates the directory if needed.
func NewFileSlot(dir string) (*FileSlot, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure %s: %w", dir, err)
	}
	return &FileSlot{dir: dir}, nil
}

// Path returns the file backing key.
func (s *FileSlot) Path(key string) string {
	return filepath.Join(s.dir, fileName(key))
}

// Get returns the stored bytes for key.
func (s *FileSlot) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the value for key. The file is swapped in with a rename so a
// crash mid-write never leaves a half-written collection behind.
func (s *FileSlot) Set(_ context.Context, key string, value []byte) error {
	path := s.Path(key)
	tmp, err := os.CreateTemp(s.dir, "."+fileName(key)+".*")
	if err != nil {
		return fmt.Errorf("storage: create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: replace %s: %w", key, err)
	}
	return nil
}

// fileName maps a key onto a safe file name.
func fileName(key string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(key) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), ".")
	if name == "" {
		name = "default"
	}
	return name + ".json"
}

// MemorySlot is an in-process slot, used by tests and dry runs.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemorySlot returns an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: map[string][]byte{}}
}

func (s *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Keys lists the keys written so far.
func (s *MemorySlot) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
