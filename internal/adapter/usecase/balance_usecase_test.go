package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

func TestNewWallet_Failure(t *testing.T) {
	e := newEnv(t)
	uc := NewBalanceUseCase(e.deps)

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{}, errors.New("friendbot"))

	_, err := uc.NewWallet(context.Background())
	assert.ErrorIs(t, err, domain.ErrWalletCreation)
}

func TestCheckBalances(t *testing.T) {
	e := newEnv(t)
	uc := NewBalanceUseCase(e.deps)

	e.ledger.EXPECT().LoadAccount(mock.Anything, "SINV").Return(port.Wallet{Address: "GINV"}, nil)
	e.ledger.EXPECT().GetBalance(mock.Anything, "GINV").Return(port.Balance{Currency: "XLM", Amount: "999.9999900"}, nil)
	e.ledger.EXPECT().TokenBalances(mock.Anything, "GINV").Return(nil, nil)

	b, err := uc.CheckBalances(context.Background(), "SINV")
	require.NoError(t, err)
	assert.Equal(t, "GINV", b.Address)
	assert.Equal(t, "999.9999900", b.Base.Amount)
	assert.NotNil(t, b.Tokens)
	assert.Empty(t, b.Tokens)

	_, err = uc.CheckBalances(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReconcileInvestor(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{
		Campaigns: []domain.Campaign{approvedCampaign(1, "Cacao Farm", "CAC")},
		Investments: []domain.Investment{
			{ID: 1, CampaignID: 1, InvestorAddress: "GINV", Amount: 60, TrustLineEstablished: true, TokensDelivered: true},
			{ID: 2, CampaignID: 1, InvestorAddress: "GINV", Amount: 40, TrustLineEstablished: true},
			{ID: 3, CampaignID: 1, InvestorAddress: "GOTHER", Amount: 500, TrustLineEstablished: true, TokensDelivered: true},
		},
	})
	uc := NewBalanceUseCase(e.deps)

	e.ledger.EXPECT().TokenBalances(mock.Anything, "GINV").Return([]port.Balance{
		{Currency: "CAC", Issuer: "GFARMER", Amount: "60.0000000"},
		{Currency: "CAC", Issuer: "GSOMEONE", Amount: "900.0000000"},
	}, nil)

	rec, err := uc.ReconcileInvestor(context.Background(), 1, "GINV")
	require.NoError(t, err)
	assert.Equal(t, "CAC", rec.Currency)
	assert.Equal(t, int64(100), rec.Recorded)
	assert.Equal(t, int64(60), rec.Held)
	assert.Equal(t, int64(40), rec.Shortfall)
	assert.Equal(t, 1, rec.Degraded)
}

func TestReconcileInvestor_PendingCampaign(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{{ID: 1, Status: domain.CampaignPending}}})
	uc := NewBalanceUseCase(e.deps)

	_, err := uc.ReconcileInvestor(context.Background(), 1, "GINV")
	assert.ErrorIs(t, err, domain.ErrCampaignNotApproved)
}

func TestLookupTransaction(t *testing.T) {
	e := newEnv(t)
	uc := NewBalanceUseCase(e.deps)

	e.ledger.EXPECT().GetTransaction(mock.Anything, "MISSING").Return(port.Transaction{}, domain.ErrNotFound)

	_, err := uc.LookupTransaction(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrGatewayFailure)
}

func TestWholeUnits(t *testing.T) {
	tests := map[string]int64{
		"100.0000000":  100,
		"0.5":          0,
		"42":           42,
		"1049.9999900": 1049,
		" 7.0000000 ":  7,
	}
	for in, want := range tests {
		got, err := wholeUnits(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"abc", "", "1.00000001"} {
		_, err := wholeUnits(in)
		assert.Error(t, err, in)
	}

	_, err := wholeUnits("-5.0000000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
