package stellar

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/stellar/go/clients/horizonclient"
)

// HorizonError is a Horizon problem response reduced to what callers and
// logs need.
type HorizonError struct {
	Op     string
	Status int
	Codes  string
	Err    error
}

func (e *HorizonError) Error() string {
	if e.Codes != "" {
		return fmt.Sprintf("horizon %s: status %d: %s", e.Op, e.Status, e.Codes)
	}
	return fmt.Sprintf("horizon %s: status %d: %v", e.Op, e.Status, e.Err)
}

func (e *HorizonError) Unwrap() error { return e.Err }

// Retryable reports rate limiting and server side unavailability.
func (e *HorizonError) Retryable() bool {
	switch e.Status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func wrapHorizon(op string, err error) error {
	if err == nil {
		return nil
	}
	herr := horizonclient.GetError(err)
	if herr == nil {
		return fmt.Errorf("horizon %s: %w", op, err)
	}
	out := &HorizonError{Op: op, Status: herr.Problem.Status, Err: err}
	if codes, cerr := herr.ResultCodes(); cerr == nil && codes != nil {
		parts := append([]string{codes.TransactionCode}, codes.OperationCodes...)
		out.Codes = strings.Join(parts, ",")
	}
	return out
}
