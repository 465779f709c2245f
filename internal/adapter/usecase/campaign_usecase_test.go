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
	"agrofund/internal/core/port/mocks"
)

func TestCreateCampaign(t *testing.T) {
	e := newEnv(t)
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{Address: "GFARMER", Seed: "SFARMER"}, nil).Once()

	c, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{
		FarmerName: " Ana ", ProjectTitle: "Cacao Farm", Description: "fine cacao", FundingGoal: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Ana", c.FarmerName)
	assert.Equal(t, "SFARMER", c.FarmerWalletSeed)
	assert.Equal(t, domain.CampaignPending, c.Status)
	assert.Nil(t, c.TokenCurrency)
	assert.Equal(t, fixedNow, c.CreatedAt)

	stored, err := uc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "GFARMER", stored.FarmerAddress)
	assert.False(t, stored.IsApproved())
}

func TestCreateCampaign_InvalidInput(t *testing.T) {
	e := newEnv(t)
	uc := NewCampaignUseCase(e.deps)

	tests := []port.CreateCampaignReq{
		{FarmerName: "", ProjectTitle: "Cacao", FundingGoal: 1},
		{FarmerName: "Ana", ProjectTitle: "  ", FundingGoal: 1},
		{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 0},
	}
	for _, req := range tests {
		_, err := uc.CreateCampaign(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateCampaign_WalletFailureStoresNothing(t *testing.T) {
	e := newEnv(t)
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{}, errors.New("friendbot unavailable"))

	_, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
	require.ErrorIs(t, err, domain.ErrWalletCreation)
	assert.ErrorIs(t, err, domain.ErrGatewayFailure)

	list, err := uc.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateCampaign_SealsStoredSeed(t *testing.T) {
	e := newEnv(t)
	vault := mocks.NewMockSeedVault(t)
	e.deps.Vault = vault
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{Address: "GFARMER", Seed: "SFARMER"}, nil)
	vault.EXPECT().Seal("SFARMER").Return("sealed:v1:abc", nil)

	c, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
	require.NoError(t, err)
	assert.Equal(t, "SFARMER", c.FarmerWalletSeed)

	snap, err := e.store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Campaigns, 1)
	assert.Equal(t, "sealed:v1:abc", snap.Campaigns[0].FarmerWalletSeed)
}

func TestCreateCampaign_PublishesEvent(t *testing.T) {
	e := newEnv(t)
	pub := mocks.NewMockEventPublisher(t)
	e.deps.Events = pub
	uc := NewCampaignUseCase(e.deps)

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{Address: "GFARMER", Seed: "SFARMER"}, nil)
	pub.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(ev domain.Event) bool {
		payload, ok := ev.Payload.(domain.CampaignPayload)
		return ev.Type == domain.EventCampaignCreated && ev.AggregateID == "1" && ok && payload.FarmerAddress == "GFARMER"
	})).Return(errors.New("broker down"))

	_, err := uc.CreateCampaign(context.Background(), port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
	assert.NoError(t, err)
}

func TestCreateCampaign_StaleSnapshot(t *testing.T) {
	e := newEnv(t)
	store := mocks.NewMockRecordStore(t)
	e.deps.Records = NewRecords(store)
	uc := NewCampaignUseCase(e.deps)

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{Address: "GFARMER", Seed: "SFARMER"}, nil)
	store.EXPECT().Load(mock.Anything).Return(domain.NewSnapshot(), nil)
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrStaleSnapshot)

	_, err := uc.CreateCampaign(context.Background(), port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
	assert.ErrorIs(t, err, domain.ErrStaleSnapshot)
}

func TestCreateCampaign_IDsIncrease(t *testing.T) {
	e := newEnv(t)
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{Address: "GFARMER", Seed: "SFARMER"}, nil)

	var last int64
	for range 3 {
		c, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
		require.NoError(t, err)
		assert.Greater(t, c.ID, last)
		last = c.ID
	}

	list, err := uc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].ID)
}

func TestApproveCampaign(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{{
		ID: 1, FarmerName: "Ana", ProjectTitle: "Cacao Farm", FundingGoal: 5000,
		FarmerWalletSeed: "SFARMER", FarmerAddress: "GFARMER", Status: domain.CampaignPending, CreatedAt: fixedNow,
	}}})
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().ConfigureIssuer(mock.Anything, "SFARMER", true).Return(port.Receipt{Hash: "H"}, nil).Once()

	c, err := uc.ApproveCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignApproved, c.Status)
	require.NotNil(t, c.TokenCurrency)
	assert.Equal(t, "CAC", *c.TokenCurrency)

	_, err = uc.ApproveCampaign(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestApproveCampaign_IssuerFailureKeepsPending(t *testing.T) {
	e := newEnv(t)
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{{
		ID: 1, ProjectTitle: "Cacao", FarmerWalletSeed: "SFARMER", Status: domain.CampaignPending,
	}}})
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().ConfigureIssuer(mock.Anything, "SFARMER", true).Return(port.Receipt{}, errors.New("tx_failed"))

	_, err := uc.ApproveCampaign(ctx, 1)
	require.ErrorIs(t, err, domain.ErrIssuerSetupFailed)

	c, err := uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPending, c.Status)
	assert.Nil(t, c.TokenCurrency)
}

func TestApproveCampaign_NotFound(t *testing.T) {
	e := newEnv(t)
	pending := approvedCampaign(1, "Cacao Farm", "CAC")
	pending.Status = domain.CampaignPending
	pending.TokenCurrency = nil
	e.seed(t, domain.Snapshot{Campaigns: []domain.Campaign{pending}, Version: 3})
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	before, err := e.store.Load(ctx)
	require.NoError(t, err)

	_, err = uc.ApproveCampaign(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	after, err := e.store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, uint64(3), after.Version)
	require.Len(t, after.Campaigns, 1)
	assert.Equal(t, domain.CampaignPending, after.Campaigns[0].Status)
}

func TestResetRecords_KeepsCounters(t *testing.T) {
	e := newEnv(t)
	uc := NewCampaignUseCase(e.deps)
	ctx := context.Background()

	e.ledger.EXPECT().CreateAccount(mock.Anything).Return(port.Wallet{Address: "GFARMER", Seed: "SFARMER"}, nil)

	_, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
	require.NoError(t, err)
	require.NoError(t, uc.ResetRecords(ctx))

	list, err := uc.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	c, err := uc.CreateCampaign(ctx, port.CreateCampaignReq{FarmerName: "Ana", ProjectTitle: "Cacao", FundingGoal: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)
}
