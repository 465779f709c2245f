package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
	"agrofund/internal/metrics"
)

// Records is the single mutation point over a RecordStore. Every
// load-modify-save cycle runs under one writer lock, and the version carried
// by the snapshot lets the backend reject writes from other processes that
// raced on the same state.
//
// Ledger calls must never run inside Update: callers read with View, talk to
// the ledger, then persist the outcome with Update and re-check the record
// there. Lock serialises whole operations on a single record id.
type Records struct {
	store port.RecordStore

	mu sync.Mutex

	keysMu sync.Mutex
	keys   map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewRecords wraps store.
func NewRecords(store port.RecordStore) *Records {
	return &Records{store: store, keys: make(map[string]*keyLock)}
}

// View returns a private copy of the current state.
func (r *Records) View(ctx context.Context) (domain.Snapshot, error) {
	snap, err := r.store.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load records: %w", err)
	}
	return snap, nil
}

// Update loads the state, applies fn and saves the result. When fn returns
// an error nothing is saved. The returned snapshot reflects the saved state.
func (r *Records) Update(ctx context.Context, fn func(*domain.Snapshot) error) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.store.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load records: %w", err)
	}
	if err = fn(&snap); err != nil {
		return domain.Snapshot{}, err
	}
	if err = r.store.Save(ctx, snap); err != nil {
		if errors.Is(err, domain.ErrStaleSnapshot) {
			metrics.StaleSnapshots.Inc()
		}
		return domain.Snapshot{}, fmt.Errorf("save records: %w", err)
	}
	snap.Version++
	return snap, nil
}

// Lock blocks until no other operation holds key and returns the release
// function.
func (r *Records) Lock(key string) (unlock func()) {
	r.keysMu.Lock()
	kl, ok := r.keys[key]
	if !ok {
		kl = &keyLock{}
		r.keys[key] = kl
	}
	kl.refs++
	r.keysMu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		r.keysMu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(r.keys, key)
		}
		r.keysMu.Unlock()
	}
}

func campaignKey(id int64) string  { return fmt.Sprintf("campaign:%d", id) }
func microloanKey(id int64) string { return fmt.Sprintf("microloan:%d", id) }
