package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrofund/internal/adapter/ledger/simulated"
	"agrofund/internal/adapter/memory"
	"agrofund/internal/adapter/usecase"
	"agrofund/internal/core/domain"
)

func newDemo() Demo {
	deps := usecase.Deps{
		Records: usecase.NewRecords(memory.NewStore()),
		Ledger:  simulated.New(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return Demo{
		Campaigns:   usecase.NewCampaignUseCase(deps),
		Investments: usecase.NewInvestmentUseCase(deps),
		Microloans:  usecase.NewMicroloanUseCase(deps),
		Balances:    usecase.NewBalanceUseCase(deps),
	}
}

func TestSeed(t *testing.T) {
	demo := newDemo()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Seed(ctx, demo, logger))

	campaigns, err := demo.Campaigns.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, len(demoProjects))
	var approved int
	for _, c := range campaigns {
		if c.Status == domain.CampaignApproved {
			approved++
		}
	}
	assert.Equal(t, len(demoProjects)-1, approved)

	investments, err := demo.Investments.ListInvestments(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, investments, len(demoProjects)-1)

	loans, err := demo.Microloans.ListMicroloans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 1)

	require.NoError(t, Seed(ctx, demo, logger))
	campaigns, err = demo.Campaigns.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, len(demoProjects))
}
