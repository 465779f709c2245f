package port

import (
	"context"

	"agrofund/internal/core/domain"
)

// RecordStore persists the full state as one snapshot. It is an outbound
// port in hexagonal architecture; memory, JSON file, SQLite, PostgreSQL and
// Redis backends implement it.
type RecordStore interface {
	// Load returns the current snapshot. An empty store yields
	// domain.NewSnapshot().
	Load(ctx context.Context) (domain.Snapshot, error)
	// Save atomically replaces the stored state with snap. It fails with
	// domain.ErrStaleSnapshot when snap.Version differs from the stored
	// version; on success the stored version becomes snap.Version+1.
	Save(ctx context.Context, snap domain.Snapshot) error
	// Close releases backend resources.
	Close() error
}
