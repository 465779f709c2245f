package domain

import (
	"time"
)

// MicroloanStatus is the lifecycle state of a Microloan. Completed and
// cancelled are both terminal.
type MicroloanStatus string

const (
	MicroloanActive    MicroloanStatus = "active"
	MicroloanCompleted MicroloanStatus = "completed"
	MicroloanCancelled MicroloanStatus = "cancelled"
)

// Microloan is an escrow-backed loan from an investor to a farmer.
// LoanAmount is in whole base-currency units.
type Microloan struct {
	ID              int64           `json:"id"`
	FarmerAddress   string          `json:"farmer_address"`
	InvestorAddress string          `json:"investor_address"`
	LoanAmount      int64           `json:"loan_amount"`
	RepaymentDays   int             `json:"repayment_days"`
	EscrowSequence  string          `json:"escrow_sequence"`
	Condition       string          `json:"condition,omitempty"` // PREIMAGE-SHA-256 condition, empty for time-only escrows
	Status          MicroloanStatus `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
}

// IsActive reports whether the loan can still be finished or cancelled.
func (m Microloan) IsActive() bool {
	return m.Status == MicroloanActive
}

// IsConditional reports whether finishing the escrow needs a fulfillment.
func (m Microloan) IsConditional() bool {
	return m.Condition != ""
}

// Complete marks the loan as finished by the farmer.
func (m *Microloan) Complete(at time.Time) error {
	if !m.IsActive() {
		return ErrMicroloanTerminal
	}
	m.Status = MicroloanCompleted
	m.CompletedAt = &at
	return nil
}

// Cancel marks the loan as reclaimed by the investor.
func (m *Microloan) Cancel(at time.Time) error {
	if !m.IsActive() {
		return ErrMicroloanTerminal
	}
	m.Status = MicroloanCancelled
	m.CancelledAt = &at
	return nil
}

// AbbreviateAddress shortens a wallet address for list views.
func AbbreviateAddress(address string) string {
	const keep = 10
	if len(address) <= keep {
		return address
	}
	return address[:keep] + "..."
}
