// Package instrumented records prometheus metrics for every ledger call.
package instrumented

import (
	"context"
	"time"

	"agrofund/internal/core/port"
	"agrofund/internal/metrics"
)

// Ledger decorates a port.Ledger with call counters and latency histograms.
type Ledger struct {
	next port.Ledger
}

// Wrap instruments next.
func Wrap(next port.Ledger) *Ledger {
	return &Ledger{next: next}
}

var _ port.Ledger = (*Ledger)(nil)

func observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.LedgerCalls.WithLabelValues(op, outcome).Inc()
	metrics.LedgerCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (l *Ledger) CreateAccount(ctx context.Context) (w port.Wallet, err error) {
	defer func(start time.Time) { observe("create_account", start, err) }(time.Now())
	return l.next.CreateAccount(ctx)
}

func (l *Ledger) LoadAccount(ctx context.Context, seed string) (w port.Wallet, err error) {
	defer func(start time.Time) { observe("load_account", start, err) }(time.Now())
	return l.next.LoadAccount(ctx, seed)
}

func (l *Ledger) GetBalance(ctx context.Context, address string) (b port.Balance, err error) {
	defer func(start time.Time) { observe("get_balance", start, err) }(time.Now())
	return l.next.GetBalance(ctx, address)
}

func (l *Ledger) TransferValue(ctx context.Context, seed string, amount int64, destination string) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("transfer_value", start, err) }(time.Now())
	return l.next.TransferValue(ctx, seed, amount, destination)
}

func (l *Ledger) ConfigureIssuer(ctx context.Context, seed string, enable bool) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("configure_issuer", start, err) }(time.Now())
	return l.next.ConfigureIssuer(ctx, seed, enable)
}

func (l *Ledger) EstablishTrustLine(ctx context.Context, holderSeed, issuer, currency string, limit int64) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("establish_trust_line", start, err) }(time.Now())
	return l.next.EstablishTrustLine(ctx, holderSeed, issuer, currency, limit)
}

func (l *Ledger) TransferToken(ctx context.Context, issuerSeed, destination, currency string, amount int64) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("transfer_token", start, err) }(time.Now())
	return l.next.TransferToken(ctx, issuerSeed, destination, currency, amount)
}

func (l *Ledger) CreateEscrow(ctx context.Context, req port.EscrowRequest) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("create_escrow", start, err) }(time.Now())
	return l.next.CreateEscrow(ctx, req)
}

func (l *Ledger) FinishEscrow(ctx context.Context, finisherSeed, owner, sequence, fulfillment string) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("finish_escrow", start, err) }(time.Now())
	return l.next.FinishEscrow(ctx, finisherSeed, owner, sequence, fulfillment)
}

func (l *Ledger) CancelEscrow(ctx context.Context, cancellerSeed, owner, sequence string) (r port.Receipt, err error) {
	defer func(start time.Time) { observe("cancel_escrow", start, err) }(time.Now())
	return l.next.CancelEscrow(ctx, cancellerSeed, owner, sequence)
}

func (l *Ledger) ListEscrows(ctx context.Context, address string) (out []port.EscrowObject, err error) {
	defer func(start time.Time) { observe("list_escrows", start, err) }(time.Now())
	return l.next.ListEscrows(ctx, address)
}

func (l *Ledger) TokenBalances(ctx context.Context, address string) (out []port.Balance, err error) {
	defer func(start time.Time) { observe("token_balances", start, err) }(time.Now())
	return l.next.TokenBalances(ctx, address)
}

func (l *Ledger) GetTransaction(ctx context.Context, hash string) (tx port.Transaction, err error) {
	defer func(start time.Time) { observe("get_transaction", start, err) }(time.Now())
	return l.next.GetTransaction(ctx, hash)
}
