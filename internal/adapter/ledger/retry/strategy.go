// Package retry re-runs read-only ledger queries that failed for transient
// network reasons. Submissions are never retried: a timed out submission may
// still have been applied.
package retry

import (
	"context"
	"log/slog"

	"agrofund/internal/config/configs"
)

// Strategy defines the interface for retry strategies
type Strategy interface {
	// Execute runs the operation with the configured retry logic
	Execute(ctx context.Context, name string, operation Operation) error

	// Name returns the name of the strategy for logging
	Name() string
}

// Operation is a function that can be retried
type Operation func() error

// NewStrategy creates a retry strategy based on configuration. A single
// attempt disables retrying.
func NewStrategy(cfg configs.Retry, logger *slog.Logger) Strategy {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts <= 1 {
		logger.Info("ledger retry disabled")
		return NewNoRetryStrategy()
	}

	logger.Info("ledger retry enabled",
		slog.Int("max_attempts", cfg.MaxAttempts),
		slog.Duration("initial_delay", cfg.InitialDelay),
		slog.Duration("max_delay", cfg.MaxDelay))

	return NewExponentialBackoffStrategy(cfg.MaxAttempts-1, cfg.InitialDelay, cfg.MaxDelay, cfg.Multiplier, logger)
}
