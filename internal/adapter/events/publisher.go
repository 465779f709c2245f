package events

import (
	"context"
	"log/slog"

	"agrofund/internal/core/domain"
)

// LoggingPublisher writes events to the application log. It is used when no
// broker is configured.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.logger.InfoContext(ctx, "event published",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.String("aggregate_id", event.AggregateID),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}

func (p *LoggingPublisher) Close() error { return nil }
