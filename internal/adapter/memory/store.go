package memory

import (
	"context"
	"sync"

	"agrofund/internal/core/domain"
)

// Store is an in-process port.RecordStore. It is safe for concurrent use and
// hands out deep copies, so callers never share state with it.
type Store struct {
	mu   sync.RWMutex
	snap domain.Snapshot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{snap: domain.NewSnapshot()}
}

// NewStoreFrom returns a store seeded with snap.
func NewStoreFrom(snap domain.Snapshot) *Store {
	snap.Normalize()
	return &Store{snap: snap.Clone()}
}

func (s *Store) Load(_ context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone(), nil
}

func (s *Store) Save(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Version != s.snap.Version {
		return domain.ErrStaleSnapshot
	}
	next := snap.Clone()
	next.Version = snap.Version + 1
	s.snap = next
	return nil
}

func (s *Store) Close() error { return nil }
