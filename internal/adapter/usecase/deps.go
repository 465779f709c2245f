package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
	"agrofund/internal/metrics"
)

// Deps are the collaborators shared by all use cases. Vault and Events are
// optional: without a vault seeds are stored as given, without a publisher
// no events are emitted.
type Deps struct {
	Records *Records
	Ledger  port.Ledger
	Vault   port.SeedVault
	Events  port.EventPublisher
	Logger  *slog.Logger
	Now     func() time.Time
}

type base struct {
	records *Records
	ledger  port.Ledger
	vault   port.SeedVault
	events  port.EventPublisher
	logger  *slog.Logger
	nowFn   func() time.Time
}

func newBase(d Deps) base {
	b := base{
		records: d.Records,
		ledger:  d.Ledger,
		vault:   d.Vault,
		events:  d.Events,
		logger:  d.Logger,
		nowFn:   d.Now,
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.nowFn == nil {
		b.nowFn = time.Now
	}
	return b
}

func (b base) now() time.Time {
	return b.nowFn().UTC()
}

func (b base) sealSeed(seed string) (string, error) {
	if b.vault == nil {
		return seed, nil
	}
	sealed, err := b.vault.Seal(seed)
	if err != nil {
		return "", fmt.Errorf("seal seed: %w", err)
	}
	return sealed, nil
}

func (b base) openSeed(stored string) (string, error) {
	if b.vault == nil {
		return stored, nil
	}
	seed, err := b.vault.Open(stored)
	if err != nil {
		return "", fmt.Errorf("open seed: %w", err)
	}
	return seed, nil
}

// publish emits an event for state that is already persisted. Failures are
// logged only; the state change stands.
func (b base) publish(ctx context.Context, eventType, aggregateID string, payload any) {
	if b.events == nil {
		return
	}
	ev := domain.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  b.now(),
		Payload:     payload,
	}
	if err := b.events.Publish(ctx, ev); err != nil {
		metrics.EventPublishErrors.Inc()
		b.logger.Warn("publish event failed",
			slog.String("event_type", eventType),
			slog.String("aggregate_id", aggregateID),
			slog.Any("error", err))
	}
}
