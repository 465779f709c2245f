package db

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"agrofund/internal/core/port"
)

// Demo groups the use cases the demo seeder drives.
type Demo struct {
	Campaigns   port.CampaignUseCase
	Investments port.InvestmentUseCase
	Microloans  port.MicroloanUseCase
	Balances    port.BalanceUseCase
}

var demoProjects = []struct {
	farmer, title, description string
}{
	{"Ana Ruiz", "Cacao Farm", "Shade grown cacao on two hectares"},
	{"Kofi Mensah", "Shea Butter Co-op", "Cold pressed shea for the local market"},
	{"Lina Park", "Hydroponic Greens", "Year round lettuce for city restaurants"},
}

// Seed inserts demo records through the use cases, so every ledger side
// effect happens as in normal operation. It does nothing when campaigns
// already exist.
func Seed(ctx context.Context, demo Demo, logger *slog.Logger) error {
	existing, err := demo.Campaigns.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("demo seed skipped, records present", slog.Int("campaigns", len(existing)))
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	investor, err := demo.Balances.NewWallet(ctx)
	if err != nil {
		return fmt.Errorf("demo investor wallet: %w", err)
	}

	// create campaigns; all but the last get approved and funded
	var farmerAddress string
	for i, p := range demoProjects {
		c, err := demo.Campaigns.CreateCampaign(ctx, port.CreateCampaignReq{
			FarmerName:   p.farmer,
			ProjectTitle: p.title,
			Description:  p.description,
			FundingGoal:  int64(1000 + r.Intn(9)*500),
		})
		if err != nil {
			return fmt.Errorf("demo campaign %q: %w", p.title, err)
		}
		farmerAddress = c.FarmerAddress
		if i == len(demoProjects)-1 {
			break
		}
		if _, err = demo.Campaigns.ApproveCampaign(ctx, c.ID); err != nil {
			return fmt.Errorf("approve demo campaign %d: %w", c.ID, err)
		}
		amount := int64(10 + r.Intn(40))
		if _, err = demo.Investments.Invest(ctx, port.InvestReq{CampaignID: c.ID, InvestorSeed: investor.Seed, Amount: amount}); err != nil {
			return fmt.Errorf("demo investment in campaign %d: %w", c.ID, err)
		}
	}

	if _, err = demo.Microloans.CreateMicroloan(ctx, port.CreateMicroloanReq{
		FarmerAddress: farmerAddress,
		InvestorSeed:  investor.Seed,
		LoanAmount:    50,
		RepaymentDays: 30,
	}); err != nil {
		return fmt.Errorf("demo microloan: %w", err)
	}

	logger.Info("demo records seeded",
		slog.Int("campaigns", len(demoProjects)),
		slog.String("investor_address", investor.Address))
	return nil
}
