package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
	"agrofund/internal/metrics"
)

// CampaignUseCase implements port.CampaignUseCase.
type CampaignUseCase struct {
	base
}

// NewCampaignUseCase creates the campaign lifecycle manager.
func NewCampaignUseCase(d Deps) *CampaignUseCase {
	return &CampaignUseCase{base: newBase(d)}
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CreateCampaign allocates a farmer wallet and persists a pending campaign.
// The returned campaign carries the plain farmer seed so it can be shown to
// the farmer once.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (domain.Campaign, error) {
	req.FarmerName = strings.TrimSpace(req.FarmerName)
	req.ProjectTitle = strings.TrimSpace(req.ProjectTitle)
	if req.FarmerName == "" || req.ProjectTitle == "" || req.FundingGoal <= 0 {
		return domain.Campaign{}, fmt.Errorf("%w: farmer name, project title and a positive funding goal are required", domain.ErrInvalidInput)
	}

	wallet, err := u.ledger.CreateAccount(ctx)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: %w", domain.ErrWalletCreation, domain.NewGatewayError("create account", err))
	}
	sealed, err := u.sealSeed(wallet.Seed)
	if err != nil {
		return domain.Campaign{}, err
	}

	var created domain.Campaign
	_, err = u.records.Update(ctx, func(s *domain.Snapshot) error {
		created = s.AddCampaign(domain.Campaign{
			FarmerName:       req.FarmerName,
			ProjectTitle:     req.ProjectTitle,
			Description:      req.Description,
			FundingGoal:      req.FundingGoal,
			FarmerWalletSeed: sealed,
			FarmerAddress:    wallet.Address,
			Status:           domain.CampaignPending,
			CreatedAt:        u.now(),
		})
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}

	u.logger.Info("campaign created",
		slog.Int64("campaign_id", created.ID),
		slog.String("farmer_address", created.FarmerAddress))
	metrics.CampaignsCreated.Inc()
	u.publish(ctx, domain.EventCampaignCreated, strconv.FormatInt(created.ID, 10), domain.NewCampaignPayload(created))

	created.FarmerWalletSeed = wallet.Seed
	return created, nil
}

// ApproveCampaign configures the farmer wallet as issuer and then, in one
// save, flips the campaign to approved and assigns its token currency. A
// failed ledger call leaves the campaign pending and untouched.
func (u *CampaignUseCase) ApproveCampaign(ctx context.Context, id int64) (domain.Campaign, error) {
	unlock := u.records.Lock(campaignKey(id))
	defer unlock()

	snap, err := u.records.View(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, ok := snap.Campaign(id)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	if c.Status != domain.CampaignPending {
		return domain.Campaign{}, fmt.Errorf("campaign %d is %s: %w", id, c.Status, domain.ErrInvalidState)
	}

	currency := domain.DeriveTokenCurrency(c.ProjectTitle)
	seed, err := u.openSeed(c.FarmerWalletSeed)
	if err != nil {
		return domain.Campaign{}, err
	}
	if _, err = u.ledger.ConfigureIssuer(ctx, seed, true); err != nil {
		u.logger.Error("issuer setup failed", slog.Int64("campaign_id", id), slog.Any("error", err))
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w: %w", id, domain.ErrIssuerSetupFailed, domain.NewGatewayError("configure issuer", err))
	}

	var approved domain.Campaign
	_, err = u.records.Update(ctx, func(s *domain.Snapshot) error {
		c, ok := s.Campaign(id)
		if !ok {
			return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
		}
		if err := c.Approve(currency); err != nil {
			return fmt.Errorf("campaign %d: %w", id, err)
		}
		approved = *c
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}

	u.logger.Info("campaign approved", slog.Int64("campaign_id", id), slog.String("token_currency", currency))
	metrics.CampaignsApproved.Inc()
	u.publish(ctx, domain.EventCampaignApproved, strconv.FormatInt(id, 10), domain.NewCampaignPayload(approved))
	return approved, nil
}

// GetCampaign returns the stored campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (domain.Campaign, error) {
	snap, err := u.records.View(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, ok := snap.Campaign(id)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return *c, nil
}

// ListCampaigns returns every campaign, newest first.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	snap, err := u.records.View(ctx)
	if err != nil {
		return nil, err
	}
	return snap.CampaignsNewestFirst(), nil
}

// ResetRecords clears all collections in a single save.
func (u *CampaignUseCase) ResetRecords(ctx context.Context) error {
	var dropped domain.ResetPayload
	_, err := u.records.Update(ctx, func(s *domain.Snapshot) error {
		dropped = domain.ResetPayload{
			Campaigns:   len(s.Campaigns),
			Investments: len(s.Investments),
			Microloans:  len(s.Microloans),
		}
		s.Reset()
		return nil
	})
	if err != nil {
		return err
	}
	u.logger.Warn("records reset",
		slog.Int("campaigns", dropped.Campaigns),
		slog.Int("investments", dropped.Investments),
		slog.Int("microloans", dropped.Microloans))
	u.publish(ctx, domain.EventRecordsReset, "records", dropped)
	return nil
}
