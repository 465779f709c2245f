package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/stellar/go/amount"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

// BalanceUseCase implements port.BalanceUseCase. It never mutates records.
type BalanceUseCase struct {
	base
}

// NewBalanceUseCase creates the balance inspector.
func NewBalanceUseCase(d Deps) *BalanceUseCase {
	return &BalanceUseCase{base: newBase(d)}
}

var _ port.BalanceUseCase = (*BalanceUseCase)(nil)

// NewWallet creates a funded wallet for a new investor.
func (u *BalanceUseCase) NewWallet(ctx context.Context) (port.Wallet, error) {
	w, err := u.ledger.CreateAccount(ctx)
	if err != nil {
		return port.Wallet{}, fmt.Errorf("%w: %w", domain.ErrWalletCreation, domain.NewGatewayError("create account", err))
	}
	return w, nil
}

// CheckBalances reads the base currency and token balances of the wallet
// controlled by seed.
func (u *BalanceUseCase) CheckBalances(ctx context.Context, seed string) (*port.WalletBalances, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, fmt.Errorf("%w: wallet seed is required", domain.ErrInvalidInput)
	}
	w, err := u.ledger.LoadAccount(ctx, seed)
	if err != nil {
		return nil, domain.NewGatewayError("load account", err)
	}
	native, err := u.ledger.GetBalance(ctx, w.Address)
	if err != nil {
		return nil, domain.NewGatewayError("get balance", err)
	}
	tokens, err := u.ledger.TokenBalances(ctx, w.Address)
	if err != nil {
		return nil, domain.NewGatewayError("token balances", err)
	}
	if tokens == nil {
		tokens = []port.Balance{}
	}
	return &port.WalletBalances{Address: w.Address, Base: native, Tokens: tokens}, nil
}

// ReconcileInvestor compares the tokens recorded as owed to an investor in
// one campaign with the balance the ledger reports. A positive shortfall
// means at least one investment was paid but not fully tokenized.
func (u *BalanceUseCase) ReconcileInvestor(ctx context.Context, campaignID int64, investorAddress string) (*port.Reconciliation, error) {
	investorAddress = strings.TrimSpace(investorAddress)
	if investorAddress == "" {
		return nil, fmt.Errorf("%w: investor address is required", domain.ErrInvalidInput)
	}
	snap, err := u.records.View(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := snap.Campaign(campaignID)
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	if !c.IsApproved() {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrCampaignNotApproved)
	}

	rec := &port.Reconciliation{
		CampaignID:      campaignID,
		InvestorAddress: investorAddress,
		Currency:        c.Currency(),
	}
	for _, inv := range snap.InvestmentsFor(campaignID) {
		if inv.InvestorAddress != investorAddress {
			continue
		}
		rec.Recorded += inv.TokenAmount()
		if inv.Degraded() {
			rec.Degraded++
		}
	}

	balances, err := u.ledger.TokenBalances(ctx, investorAddress)
	if err != nil {
		return nil, domain.NewGatewayError("token balances", err)
	}
	for _, b := range balances {
		if b.Currency != rec.Currency || b.Issuer != c.FarmerAddress {
			continue
		}
		held, err := wholeUnits(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("parse %s balance %q: %w", b.Currency, b.Amount, err)
		}
		rec.Held += held
	}
	rec.Shortfall = max(rec.Recorded-rec.Held, 0)
	return rec, nil
}

// LookupTransaction fetches a ledger transaction by hash.
func (u *BalanceUseCase) LookupTransaction(ctx context.Context, hash string) (port.Transaction, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return port.Transaction{}, fmt.Errorf("%w: transaction hash is required", domain.ErrInvalidInput)
	}
	tx, err := u.ledger.GetTransaction(ctx, hash)
	if err != nil {
		return port.Transaction{}, domain.NewGatewayError("get transaction", err)
	}
	return tx, nil
}

// ledgerAmountsPerUnit is the number of 7 decimal ledger amount steps in one
// whole unit.
const ledgerAmountsPerUnit = domain.SubunitFactor * domain.LedgerAmountScale

// wholeUnits truncates a decimal ledger amount such as "100.0000000".
func wholeUnits(s string) (int64, error) {
	v, err := amount.ParseInt64(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative ledger amount %q", domain.ErrInvalidInput, s)
	}
	return v / ledgerAmountsPerUnit, nil
}
