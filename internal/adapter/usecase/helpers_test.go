package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"agrofund/internal/adapter/memory"
	"agrofund/internal/core/domain"
	"agrofund/internal/core/port/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	ledger *mocks.MockLedger
	store  *memory.Store
	deps   Deps
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		ledger: mocks.NewMockLedger(t),
		store:  memory.NewStore(),
	}
	e.deps = Deps{
		Records: NewRecords(e.store),
		Ledger:  e.ledger,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:     func() time.Time { return fixedNow },
	}
	return e
}

// seed stores snap directly, bypassing the use cases.
func (e *env) seed(t *testing.T, snap domain.Snapshot) {
	t.Helper()
	e.store = memory.NewStoreFrom(snap)
	e.deps.Records = NewRecords(e.store)
}

func approvedCampaign(id int64, title, currency string) domain.Campaign {
	return domain.Campaign{
		ID:               id,
		FarmerName:       "Ana",
		ProjectTitle:     title,
		FundingGoal:      5000,
		FarmerWalletSeed: "SFARMER",
		FarmerAddress:    "GFARMER",
		TokenCurrency:    &currency,
		Status:           domain.CampaignApproved,
		CreatedAt:        fixedNow,
	}
}
