package domain

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Operation specific errors below wrap one of them so callers
// can match either the precise failure or its class with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidState   = errors.New("invalid state")
	ErrGatewayFailure = errors.New("ledger gateway failure")
	ErrWalletCreation = errors.New("wallet creation failed")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStaleSnapshot  = errors.New("record store snapshot is stale")
)

var (
	ErrCampaignNotApproved  = fmt.Errorf("%w: campaign not approved", ErrInvalidState)
	ErrMicroloanTerminal    = fmt.Errorf("%w: microloan not active", ErrInvalidState)
	ErrTransferFailed       = fmt.Errorf("%w: value transfer failed", ErrGatewayFailure)
	ErrIssuerSetupFailed    = fmt.Errorf("%w: issuer configuration failed", ErrGatewayFailure)
	ErrEscrowCreationFailed = fmt.Errorf("%w: escrow creation failed", ErrGatewayFailure)
	ErrEscrowFinishFailed   = fmt.Errorf("%w: escrow finish failed", ErrGatewayFailure)
	ErrEscrowCancelFailed   = fmt.Errorf("%w: escrow cancel failed", ErrGatewayFailure)
)

// GatewayError wraps a failure reported by the ledger for one operation.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

// Unwrap lets errors.Is and errors.As reach the underlying ledger error.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is makes every GatewayError match ErrGatewayFailure.
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayFailure
}

// NewGatewayError wraps err for the named ledger operation. A nil err stays nil.
func NewGatewayError(op string, err error) error {
	if err == nil {
		return nil
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return err
	}
	return &GatewayError{Op: op, Err: err}
}
