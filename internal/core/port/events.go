package port

import (
	"context"

	"agrofund/internal/core/domain"
)

// EventPublisher delivers domain events after state has been persisted.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
