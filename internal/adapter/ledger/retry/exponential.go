package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"syscall"
	"time"
)

// ExponentialBackoffStrategy implements retry with exponential backoff
type ExponentialBackoffStrategy struct {
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	logger       *slog.Logger
}

// NewExponentialBackoffStrategy creates a new ExponentialBackoffStrategy. A
// multiplier below 1 falls back to doubling.
func NewExponentialBackoffStrategy(maxRetries int, initialDelay, maxDelay time.Duration, multiplier float64, logger *slog.Logger) *ExponentialBackoffStrategy {
	if multiplier < 1 {
		multiplier = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExponentialBackoffStrategy{
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		multiplier:   multiplier,
		logger:       logger,
	}
}

// Execute runs the operation with exponential backoff retry logic
func (s *ExponentialBackoffStrategy) Execute(ctx context.Context, name string, operation Operation) error {
	var lastErr error
	delay := s.initialDelay

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		err := operation()
		if err == nil {
			if attempt > 0 {
				s.logger.Info("ledger call succeeded after retry",
					slog.String("op", name),
					slog.Int("attempt", attempt+1))
			}
			return nil
		}

		lastErr = err

		if !IsRecoverable(err) {
			return err
		}

		if attempt >= s.maxRetries {
			break
		}

		s.logger.Warn("ledger call failed, retrying",
			slog.String("op", name),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", s.maxRetries+1),
			slog.Duration("retry_in", delay),
			slog.Any("error", err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		case <-timer.C:
			delay = time.Duration(float64(delay) * s.multiplier)
			if delay > s.maxDelay {
				delay = s.maxDelay
			}
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", name, s.maxRetries+1, lastErr)
}

// Name returns the strategy name
func (s *ExponentialBackoffStrategy) Name() string {
	return "ExponentialBackoff"
}

// Retryable lets gateway errors state whether a repeat may succeed, e.g. a
// rate limited or unavailable ledger server.
type Retryable interface {
	Retryable() bool
}

// IsRecoverable determines if an error is transient and worth retrying.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var r Retryable
	if errors.As(err, &r) {
		return r.Retryable()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	recoverablePatterns := []string{
		"connection reset by peer",
		"connection refused",
		"timeout",
		"temporary failure",
		"network is unreachable",
		"broken pipe",
		"eof",
		"no such host",
		"connection timed out",
	}
	for _, pattern := range recoverablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}
