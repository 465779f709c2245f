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

func TestInvest(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{approvedCampaign(1, "Cacao Farm", "CAC")}})
	uc := NewInvestmentUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().LoadAccount(mock.Anything, "SINV").Return(port.Wallet{Address: "GINV", Seed: "SINV"}, nil)
	e.ledger.EXPECT().TransferValue(mock.Anything, "SINV", int64(100), "GFARMER").Return(port.Receipt{Hash: "PAY"}, nil)
	e.ledger.EXPECT().EstablishTrustLine(mock.Anything, "SINV", "GFARMER", "CAC", int64(1000)).Return(port.Receipt{}, nil)
	e.ledger.EXPECT().TransferToken(mock.Anything, "SFARMER", "GINV", "CAC", int64(100)).Return(port.Receipt{}, nil)

	receipt, err := uc.Invest(ctx, port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 100})
	require.NoError(t, err)
	assert.False(t, receipt.Degraded())
	assert.Equal(t, "CAC", receipt.TokenCurrency)

	inv := receipt.Investment
	assert.Equal(t, int64(1), inv.ID)
	assert.Equal(t, "GINV", inv.InvestorAddress)
	assert.Equal(t, "PAY", inv.TransferTxHash)
	assert.NotEmpty(t, inv.Reference)
	assert.True(t, inv.TrustLineEstablished)
	assert.True(t, inv.TokensDelivered)

	list, err := uc.ListInvestments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInvest_PendingCampaignTouchesNoLedger(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{{ID: 1, ProjectTitle: "Cacao", Status: domain.CampaignPending}}})
	uc := NewInvestmentUseCase(e.deps)

	_, err := uc.Invest(context.Background(), port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 100})
	assert.ErrorIs(t, err, domain.ErrCampaignNotApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestInvest_UnknownCampaign(t *testing.T) {
	e := newEnv(t)
	uc := NewInvestmentUseCase(e.deps)

	_, err := uc.Invest(context.Background(), port.InvestReq{CampaignID: 7, InvestorSeed: "SINV", Amount: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvest_InvalidInput(t *testing.T) {
	e := newEnv(t)
	uc := NewInvestmentUseCase(e.deps)

	_, err := uc.Invest(context.Background(), port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Invest(context.Background(), port.InvestReq{CampaignID: 1, Amount: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Invest(context.Background(), port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: domain.MaxUnits + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Invest(context.Background(), port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 18446744073710})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvest_TransferFailureRecordsNothing(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{approvedCampaign(1, "Cacao Farm", "CAC")}})
	uc := NewInvestmentUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().LoadAccount(mock.Anything, "SINV").Return(port.Wallet{Address: "GINV"}, nil)
	e.ledger.EXPECT().TransferValue(mock.Anything, "SINV", int64(100), "GFARMER").Return(port.Receipt{}, errors.New("op_underfunded"))

	_, err := uc.Invest(ctx, port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 100})
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	list, err := uc.ListInvestments(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInvest_TokenFailuresStillRecord(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{approvedCampaign(1, "Cacao Farm", "CAC")}})
	uc := NewInvestmentUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().LoadAccount(mock.Anything, "SINV").Return(port.Wallet{Address: "GINV"}, nil)
	e.ledger.EXPECT().TransferValue(mock.Anything, "SINV", int64(100), "GFARMER").Return(port.Receipt{Hash: "PAY"}, nil)
	e.ledger.EXPECT().EstablishTrustLine(mock.Anything, "SINV", "GFARMER", "CAC", int64(1000)).Return(port.Receipt{}, errors.New("op_low_reserve"))
	e.ledger.EXPECT().TransferToken(mock.Anything, "SFARMER", "GINV", "CAC", int64(100)).Return(port.Receipt{}, errors.New("op_no_trust"))

	receipt, err := uc.Invest(ctx, port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 100})
	require.NoError(t, err)
	assert.True(t, receipt.Degraded())
	assert.ErrorIs(t, receipt.TrustLineErr, domain.ErrGatewayFailure)
	assert.ErrorIs(t, receipt.TokenTransferErr, domain.ErrGatewayFailure)
	assert.False(t, receipt.Investment.TrustLineEstablished)
	assert.False(t, receipt.Investment.TokensDelivered)

	list, err := uc.ListInvestments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Degraded())
}

func TestInvest_SealedFarmerSeed(t *testing.T) {
	e := newEnv(t)
	c := approvedCampaign(1, "Cacao Farm", "CAC")
	c.FarmerWalletSeed = "sealed:v1:xyz"
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{c}})
	e.deps.Vault = fakeVault{}
	uc := NewInvestmentUseCase(e.deps)

	e.ledger.EXPECT().LoadAccount(mock.Anything, "SINV").Return(port.Wallet{Address: "GINV"}, nil)
	e.ledger.EXPECT().TransferValue(mock.Anything, "SINV", int64(5), "GFARMER").Return(port.Receipt{Hash: "PAY"}, nil)
	e.ledger.EXPECT().EstablishTrustLine(mock.Anything, "SINV", "GFARMER", "CAC", int64(50)).Return(port.Receipt{}, nil)
	e.ledger.EXPECT().TransferToken(mock.Anything, "opened:sealed:v1:xyz", "GINV", "CAC", int64(5)).Return(port.Receipt{}, nil)

	_, err := uc.Invest(context.Background(), port.InvestReq{CampaignID: 1, InvestorSeed: "SINV", Amount: 5})
	require.NoError(t, err)
}

type fakeVault struct{}

func (fakeVault) Seal(seed string) (string, error)   { return "sealed:" + seed, nil }
func (fakeVault) Open(sealed string) (string, error) { return "opened:" + sealed, nil }
