package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
	"agrofund/internal/metrics"
)

// MicroloanUseCase implements port.MicroloanUseCase.
type MicroloanUseCase struct {
	base
}

// NewMicroloanUseCase creates the microloan escrow lifecycle manager.
func NewMicroloanUseCase(d Deps) *MicroloanUseCase {
	return &MicroloanUseCase{base: newBase(d)}
}

var _ port.MicroloanUseCase = (*MicroloanUseCase)(nil)

// CreateMicroloan locks the loan amount in an escrow that the farmer may
// finish after the repayment period and the investor may cancel once the
// grace period has also passed. Nothing is stored if escrow creation fails.
func (u *MicroloanUseCase) CreateMicroloan(ctx context.Context, req port.CreateMicroloanReq) (*port.MicroloanReceipt, error) {
	req.FarmerAddress = strings.TrimSpace(req.FarmerAddress)
	if req.FarmerAddress == "" || strings.TrimSpace(req.InvestorSeed) == "" || req.LoanAmount <= 0 || req.RepaymentDays <= 0 {
		return nil, fmt.Errorf("%w: farmer address, investor seed, positive amount and repayment days are required", domain.ErrInvalidInput)
	}
	if err := domain.CheckUnits(req.LoanAmount); err != nil {
		return nil, err
	}
	if err := domain.CheckRepaymentDays(req.RepaymentDays); err != nil {
		return nil, err
	}

	investor, err := u.ledger.LoadAccount(ctx, req.InvestorSeed)
	if err != nil {
		return nil, fmt.Errorf("investor wallet: %w", domain.NewGatewayError("load account", err))
	}

	window := domain.NewEscrowWindow(req.RepaymentDays)
	var cond domain.EscrowCondition
	if req.Conditional {
		if cond, err = domain.NewEscrowCondition(); err != nil {
			return nil, err
		}
	}

	created, err := u.ledger.CreateEscrow(ctx, port.EscrowRequest{
		SenderSeed:  req.InvestorSeed,
		Subunits:    domain.ToSubunits(req.LoanAmount),
		Destination: req.FarmerAddress,
		FinishAfter: window.FinishAfter,
		CancelAfter: window.CancelAfter,
		Condition:   cond.Condition,
	})
	if err != nil {
		u.logger.Error("escrow creation failed",
			slog.String("investor_address", investor.Address),
			slog.String("farmer_address", req.FarmerAddress),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", domain.ErrEscrowCreationFailed, domain.NewGatewayError("create escrow", err))
	}

	receipt := &port.MicroloanReceipt{Window: window, Fulfillment: cond.Fulfillment}
	_, err = u.records.Update(ctx, func(s *domain.Snapshot) error {
		receipt.Microloan = s.AddMicroloan(domain.Microloan{
			FarmerAddress:   req.FarmerAddress,
			InvestorAddress: investor.Address,
			LoanAmount:      req.LoanAmount,
			RepaymentDays:   req.RepaymentDays,
			EscrowSequence:  created.Sequence,
			Condition:       cond.Condition,
			Status:          domain.MicroloanActive,
			CreatedAt:       u.now(),
		})
		return nil
	})
	if err != nil {
		u.logger.Error("microloan not recorded after escrow creation",
			slog.String("escrow_sequence", created.Sequence), slog.Any("error", err))
		return nil, fmt.Errorf("record microloan for escrow %s: %w", created.Sequence, err)
	}

	loan := receipt.Microloan
	u.logger.Info("microloan created",
		slog.Int64("microloan_id", loan.ID),
		slog.String("escrow_sequence", loan.EscrowSequence),
		slog.Int64("loan_amount", loan.LoanAmount),
		slog.Int("repayment_days", loan.RepaymentDays))
	metrics.MicroloanTransitions.WithLabelValues(string(domain.MicroloanActive)).Inc()
	u.publish(ctx, domain.EventMicroloanCreated, strconv.FormatInt(loan.ID, 10), loan)
	return receipt, nil
}

// FinishMicroloan releases the escrow to the farmer and completes the loan.
func (u *MicroloanUseCase) FinishMicroloan(ctx context.Context, req port.FinishMicroloanReq) (domain.Microloan, error) {
	if strings.TrimSpace(req.FarmerSeed) == "" {
		return domain.Microloan{}, fmt.Errorf("%w: farmer seed is required", domain.ErrInvalidInput)
	}
	unlock := u.records.Lock(microloanKey(req.MicroloanID))
	defer unlock()

	loan, err := u.activeMicroloan(ctx, req.MicroloanID)
	if err != nil {
		return domain.Microloan{}, err
	}
	fulfillment := ""
	if loan.IsConditional() {
		if !domain.VerifyFulfillment(loan.Condition, req.Fulfillment) {
			return domain.Microloan{}, fmt.Errorf("microloan %d: %w: fulfillment does not match condition", loan.ID, domain.ErrInvalidInput)
		}
		fulfillment = req.Fulfillment
	}

	if _, err = u.ledger.FinishEscrow(ctx, req.FarmerSeed, loan.InvestorAddress, loan.EscrowSequence, fulfillment); err != nil {
		u.logger.Error("escrow finish failed", slog.Int64("microloan_id", loan.ID), slog.Any("error", err))
		return domain.Microloan{}, fmt.Errorf("microloan %d: %w: %w", loan.ID, domain.ErrEscrowFinishFailed, domain.NewGatewayError("finish escrow", err))
	}

	done, err := u.transition(ctx, loan.ID, (*domain.Microloan).Complete)
	if err != nil {
		return domain.Microloan{}, err
	}
	u.logger.Info("microloan completed", slog.Int64("microloan_id", done.ID), slog.Int64("loan_amount", done.LoanAmount))
	metrics.MicroloanTransitions.WithLabelValues(string(domain.MicroloanCompleted)).Inc()
	u.publish(ctx, domain.EventMicroloanCompleted, strconv.FormatInt(done.ID, 10), done)
	return done, nil
}

// CancelMicroloan returns the escrow to the investor and cancels the loan.
func (u *MicroloanUseCase) CancelMicroloan(ctx context.Context, req port.CancelMicroloanReq) (domain.Microloan, error) {
	if strings.TrimSpace(req.InvestorSeed) == "" {
		return domain.Microloan{}, fmt.Errorf("%w: investor seed is required", domain.ErrInvalidInput)
	}
	unlock := u.records.Lock(microloanKey(req.MicroloanID))
	defer unlock()

	loan, err := u.activeMicroloan(ctx, req.MicroloanID)
	if err != nil {
		return domain.Microloan{}, err
	}

	if _, err = u.ledger.CancelEscrow(ctx, req.InvestorSeed, loan.InvestorAddress, loan.EscrowSequence); err != nil {
		u.logger.Error("escrow cancel failed", slog.Int64("microloan_id", loan.ID), slog.Any("error", err))
		return domain.Microloan{}, fmt.Errorf("microloan %d: %w: %w", loan.ID, domain.ErrEscrowCancelFailed, domain.NewGatewayError("cancel escrow", err))
	}

	done, err := u.transition(ctx, loan.ID, (*domain.Microloan).Cancel)
	if err != nil {
		return domain.Microloan{}, err
	}
	u.logger.Info("microloan cancelled", slog.Int64("microloan_id", done.ID), slog.Int64("loan_amount", done.LoanAmount))
	metrics.MicroloanTransitions.WithLabelValues(string(domain.MicroloanCancelled)).Inc()
	u.publish(ctx, domain.EventMicroloanCancelled, strconv.FormatInt(done.ID, 10), done)
	return done, nil
}

// ListMicroloans returns every microloan, newest first.
func (u *MicroloanUseCase) ListMicroloans(ctx context.Context) ([]domain.Microloan, error) {
	snap, err := u.records.View(ctx)
	if err != nil {
		return nil, err
	}
	return snap.MicroloansNewestFirst(), nil
}

// LedgerEscrows asks the ledger for the escrows of address.
func (u *MicroloanUseCase) LedgerEscrows(ctx context.Context, address string) ([]port.EscrowObject, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidInput)
	}
	escrows, err := u.ledger.ListEscrows(ctx, address)
	if err != nil {
		return nil, domain.NewGatewayError("list escrows", err)
	}
	return escrows, nil
}

func (u *MicroloanUseCase) activeMicroloan(ctx context.Context, id int64) (domain.Microloan, error) {
	snap, err := u.records.View(ctx)
	if err != nil {
		return domain.Microloan{}, err
	}
	m, ok := snap.Microloan(id)
	if !ok {
		return domain.Microloan{}, fmt.Errorf("microloan %d: %w", id, domain.ErrNotFound)
	}
	if !m.IsActive() {
		return domain.Microloan{}, fmt.Errorf("microloan %d is %s: %w", id, m.Status, domain.ErrMicroloanTerminal)
	}
	return *m, nil
}

// transition persists a terminal state after the ledger confirmed it.
func (u *MicroloanUseCase) transition(ctx context.Context, id int64, apply func(*domain.Microloan, time.Time) error) (domain.Microloan, error) {
	var out domain.Microloan
	_, err := u.records.Update(ctx, func(s *domain.Snapshot) error {
		m, ok := s.Microloan(id)
		if !ok {
			return fmt.Errorf("microloan %d: %w", id, domain.ErrNotFound)
		}
		if err := apply(m, u.now()); err != nil {
			return fmt.Errorf("microloan %d: %w", id, err)
		}
		out = *m
		return nil
	})
	if err != nil {
		u.logger.Error("ledger escrow settled but microloan not updated",
			slog.Int64("microloan_id", id), slog.Any("error", err))
		return domain.Microloan{}, err
	}
	return out, nil
}
