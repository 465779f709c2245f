package retry

import (
	"context"

	"agrofund/internal/core/port"
)

// Ledger decorates a port.Ledger so that queries are retried with the
// strategy. Submitting calls pass straight through.
type Ledger struct {
	port.Ledger
	strategy Strategy
}

// WrapLedger returns next with read-only calls retried by strategy.
func WrapLedger(next port.Ledger, strategy Strategy) *Ledger {
	return &Ledger{Ledger: next, strategy: strategy}
}

var _ port.Ledger = (*Ledger)(nil)

func (l *Ledger) LoadAccount(ctx context.Context, seed string) (w port.Wallet, err error) {
	err = l.strategy.Execute(ctx, "load_account", func() (opErr error) {
		w, opErr = l.Ledger.LoadAccount(ctx, seed)
		return opErr
	})
	return w, err
}

func (l *Ledger) GetBalance(ctx context.Context, address string) (b port.Balance, err error) {
	err = l.strategy.Execute(ctx, "get_balance", func() (opErr error) {
		b, opErr = l.Ledger.GetBalance(ctx, address)
		return opErr
	})
	return b, err
}

func (l *Ledger) ListEscrows(ctx context.Context, address string) (out []port.EscrowObject, err error) {
	err = l.strategy.Execute(ctx, "list_escrows", func() (opErr error) {
		out, opErr = l.Ledger.ListEscrows(ctx, address)
		return opErr
	})
	return out, err
}

func (l *Ledger) TokenBalances(ctx context.Context, address string) (out []port.Balance, err error) {
	err = l.strategy.Execute(ctx, "token_balances", func() (opErr error) {
		out, opErr = l.Ledger.TokenBalances(ctx, address)
		return opErr
	})
	return out, err
}

func (l *Ledger) GetTransaction(ctx context.Context, hash string) (tx port.Transaction, err error) {
	err = l.strategy.Execute(ctx, "get_transaction", func() (opErr error) {
		tx, opErr = l.Ledger.GetTransaction(ctx, hash)
		return opErr
	})
	return tx, err
}
