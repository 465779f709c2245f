package port

import (
	"context"
	"time"
)

// Ledger is the outbound port to the external settlement network. Every call
// blocks until the ledger returned a definitive result; a failed submission
// is reported as an error. Amounts are whole base-currency units unless the
// field says otherwise.
type Ledger interface {
	// CreateAccount generates and funds a new wallet.
	CreateAccount(ctx context.Context) (Wallet, error)
	// LoadAccount derives the wallet identified by seed.
	LoadAccount(ctx context.Context, seed string) (Wallet, error)
	// GetBalance returns the base-currency balance of address.
	GetBalance(ctx context.Context, address string) (Balance, error)
	// TransferValue pays amount base currency from the seed's wallet to
	// destination.
	TransferValue(ctx context.Context, seed string, amount int64, destination string) (Receipt, error)
	// ConfigureIssuer allows (or forbids) the seed's wallet to issue tokens
	// freely.
	ConfigureIssuer(ctx context.Context, seed string, enable bool) (Receipt, error)
	// EstablishTrustLine authorizes the holder to receive currency issued by
	// issuer up to limit.
	EstablishTrustLine(ctx context.Context, holderSeed, issuer, currency string, limit int64) (Receipt, error)
	// TransferToken sends amount tokens of currency from the issuer to
	// destination.
	TransferToken(ctx context.Context, issuerSeed, destination, currency string, amount int64) (Receipt, error)
	// CreateEscrow locks funds for the destination. Receipt.Sequence
	// identifies the escrow in later finish and cancel calls.
	CreateEscrow(ctx context.Context, req EscrowRequest) (Receipt, error)
	// FinishEscrow releases the escrow to its destination. fulfillment is
	// empty for time-only escrows.
	FinishEscrow(ctx context.Context, finisherSeed, owner, sequence, fulfillment string) (Receipt, error)
	// CancelEscrow returns the escrow to its owner.
	CancelEscrow(ctx context.Context, cancellerSeed, owner, sequence string) (Receipt, error)
	// ListEscrows returns the escrows where address is owner or destination.
	ListEscrows(ctx context.Context, address string) ([]EscrowObject, error)
	// TokenBalances returns the issued-token balances held by address.
	TokenBalances(ctx context.Context, address string) ([]Balance, error)
	// GetTransaction looks up a submitted transaction by hash.
	GetTransaction(ctx context.Context, hash string) (Transaction, error)
}

// Wallet is a ledger account and the secret that controls it.
type Wallet struct {
	Address string
	Seed    string
}

// Receipt acknowledges a successful submission.
type Receipt struct {
	Hash     string
	Ledger   int64
	Sequence string // set by CreateEscrow
}

// EscrowRequest describes a time bounded (and optionally condition bounded)
// escrow. The offsets are relative; the ledger anchors them at submission.
type EscrowRequest struct {
	SenderSeed  string
	Subunits    int64
	Destination string
	FinishAfter time.Duration
	CancelAfter time.Duration
	Condition   string
}

// EscrowObject is an escrow as reported by the ledger.
type EscrowObject struct {
	Sequence    string    `json:"sequence"`
	Owner       string    `json:"owner"`
	Destination string    `json:"destination"`
	Subunits    int64     `json:"subunits"`
	FinishAfter time.Time `json:"finish_after"`
	CancelAfter time.Time `json:"cancel_after"`
	Condition   string    `json:"condition,omitempty"`
}

// Balance is one currency position of a wallet. Amount is the decimal
// string reported by the ledger; Issuer is empty for the base currency.
type Balance struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer,omitempty"`
	Amount   string `json:"amount"`
	Limit    string `json:"limit,omitempty"`
}

// Transaction is a ledger transaction as returned by GetTransaction.
type Transaction struct {
	Hash       string    `json:"hash"`
	Ledger     int64     `json:"ledger"`
	Account    string    `json:"account"`
	Successful bool      `json:"successful"`
	Fee        int64     `json:"fee"`
	Operations int       `json:"operations"`
	ClosedAt   time.Time `json:"closed_at"`
}
