// Package jsonfile keeps the whole record state in one JSON document, the
// layout the first version of the platform used for its storage file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"agrofund/internal/core/domain"
)

// Store implements port.RecordStore on a single file. Saves write a
// temporary file next to the target and rename it into place, so a reader
// never sees a half written document.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore opens (and if needed initialises) the file at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("json store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = s.write(domain.NewSnapshot()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat storage file: %w", err)
	}
	return s, nil
}

func (s *Store) Load(_ context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) Save(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.read()
	if err != nil {
		return err
	}
	if current.Version != snap.Version {
		return domain.ErrStaleSnapshot
	}
	snap.Version++
	return s.write(snap)
}

func (s *Store) Close() error { return nil }

func (s *Store) read() (domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read storage file: %w", err)
	}
	var snap domain.Snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode storage file: %w", err)
	}
	snap.Normalize()
	return snap, nil
}

func (s *Store) write(snap domain.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
