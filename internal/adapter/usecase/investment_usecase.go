package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
	"agrofund/internal/metrics"
)

// InvestmentUseCase implements port.InvestmentUseCase.
type InvestmentUseCase struct {
	base
}

// NewInvestmentUseCase creates the investment pipeline.
func NewInvestmentUseCase(d Deps) *InvestmentUseCase {
	return &InvestmentUseCase{base: newBase(d)}
}

var _ port.InvestmentUseCase = (*InvestmentUseCase)(nil)

// Invest runs the pipeline against an approved campaign:
//
//  1. value transfer investor -> farmer (failure aborts, nothing recorded)
//  2. investor trust line for the campaign token
//  3. token transfer farmer -> investor
//  4. investment record
//
// Steps 2 and 3 never abort: the value has already moved and cannot be taken
// back from here. Their failures are returned on the receipt and reflected in
// the record's flags.
func (u *InvestmentUseCase) Invest(ctx context.Context, req port.InvestReq) (*port.InvestmentReceipt, error) {
	if req.Amount <= 0 || strings.TrimSpace(req.InvestorSeed) == "" {
		return nil, fmt.Errorf("%w: investor seed and a positive amount are required", domain.ErrInvalidInput)
	}
	if err := domain.CheckUnits(req.Amount); err != nil {
		return nil, err
	}

	snap, err := u.records.View(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := snap.Campaign(req.CampaignID)
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", req.CampaignID, domain.ErrNotFound)
	}
	if !c.IsApproved() {
		return nil, fmt.Errorf("campaign %d: %w", req.CampaignID, domain.ErrCampaignNotApproved)
	}
	campaign := *c
	currency := campaign.Currency()

	investor, err := u.ledger.LoadAccount(ctx, req.InvestorSeed)
	if err != nil {
		return nil, fmt.Errorf("investor wallet: %w", domain.NewGatewayError("load account", err))
	}
	farmerSeed, err := u.openSeed(campaign.FarmerWalletSeed)
	if err != nil {
		return nil, err
	}

	ref := uuid.NewString()
	logger := u.logger.With(
		slog.String("reference", ref),
		slog.Int64("campaign_id", campaign.ID),
		slog.String("investor_address", investor.Address))

	transfer, err := u.ledger.TransferValue(ctx, req.InvestorSeed, req.Amount, campaign.FarmerAddress)
	if err != nil {
		logger.Error("value transfer failed", slog.String("step", "transfer_value"), slog.Any("error", err))
		return nil, fmt.Errorf("campaign %d: %w: %w", campaign.ID, domain.ErrTransferFailed, domain.NewGatewayError("transfer value", err))
	}

	receipt := &port.InvestmentReceipt{TokenCurrency: currency}

	limit := req.Amount * domain.TrustLineHeadroom
	if _, err = u.ledger.EstablishTrustLine(ctx, req.InvestorSeed, campaign.FarmerAddress, currency, limit); err != nil {
		receipt.TrustLineErr = domain.NewGatewayError("establish trust line", err)
		logger.Warn("trust line setup failed, continuing", slog.String("step", "trust_line"), slog.Any("error", err))
	}

	tokens := req.Amount * domain.TokensPerBaseUnit
	if _, err = u.ledger.TransferToken(ctx, farmerSeed, investor.Address, currency, tokens); err != nil {
		receipt.TokenTransferErr = domain.NewGatewayError("transfer token", err)
		logger.Warn("token transfer failed, continuing", slog.String("step", "transfer_token"), slog.Any("error", err))
	}

	_, err = u.records.Update(ctx, func(s *domain.Snapshot) error {
		receipt.Investment = s.AddInvestment(domain.Investment{
			CampaignID:           campaign.ID,
			InvestorAddress:      investor.Address,
			Amount:               req.Amount,
			CreatedAt:            u.now(),
			Reference:            ref,
			TransferTxHash:       transfer.Hash,
			TrustLineEstablished: receipt.TrustLineErr == nil,
			TokensDelivered:      receipt.TokenTransferErr == nil,
		})
		return nil
	})
	if err != nil {
		logger.Error("investment not recorded after value transfer",
			slog.String("transfer_tx", transfer.Hash), slog.Any("error", err))
		return nil, fmt.Errorf("record investment for transfer %s: %w", transfer.Hash, err)
	}

	inv := receipt.Investment
	logger.Info("investment recorded",
		slog.Int64("investment_id", inv.ID),
		slog.Int64("amount", inv.Amount),
		slog.Bool("degraded", inv.Degraded()))
	metrics.InvestmentsRecorded.WithLabelValues(strconv.FormatBool(inv.Degraded())).Inc()
	u.publish(ctx, domain.EventInvestmentRecorded, strconv.FormatInt(campaign.ID, 10), inv)
	return receipt, nil
}

// ListInvestments returns investments of one campaign, or all when
// campaignID is 0.
func (u *InvestmentUseCase) ListInvestments(ctx context.Context, campaignID int64) ([]domain.Investment, error) {
	snap, err := u.records.View(ctx)
	if err != nil {
		return nil, err
	}
	return snap.InvestmentsFor(campaignID), nil
}
