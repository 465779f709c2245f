// Package stellar implements the ledger gateway on the Stellar network.
//
// Payments, trust lines and issuer flags map one to one onto Stellar
// operations. Escrows are claimable balances with two claimants: the
// destination may claim between the finish and the cancel time, the owner
// may claim back after the cancel time. The escrow sequence is the claimable
// balance id.
package stellar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stellar/go/amount"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"

	"agrofund/internal/config/configs"
	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

// BaseCurrency names the native asset in balance reports.
const BaseCurrency = "XLM"

// stroopsPerSubunit converts the platform's 6 decimal subunits into Stellar's
// 7 decimal stroops.
const stroopsPerSubunit = domain.LedgerAmountScale

var (
	ErrConditionUnsupported = errors.New("crypto-condition escrows are not supported on stellar")
	ErrFundingDisabled      = errors.New("new account funding is disabled")
)

// Ledger implements port.Ledger against a Horizon server.
type Ledger struct {
	client     horizonclient.ClientInterface
	passphrase string
	baseFee    int64
	timeout    time.Duration
	fund       bool
	funder     *keypair.Full
	startUnits int64
	logger     *slog.Logger
}

// New builds a gateway for the Horizon server named in cfg.
func New(cfg configs.Ledger, logger *slog.Logger) (*Ledger, error) {
	client := &horizonclient.Client{
		HorizonURL: cfg.HorizonURL,
		HTTP:       &http.Client{Timeout: cfg.Timeout},
	}
	return NewWithClient(client, cfg, logger)
}

// NewWithClient builds a gateway on an existing Horizon client.
func NewWithClient(client horizonclient.ClientInterface, cfg configs.Ledger, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{
		client:     client,
		passphrase: cfg.NetworkPassphrase,
		baseFee:    max(cfg.BaseFee, txnbuild.MinBaseFee),
		timeout:    cfg.Timeout,
		fund:       cfg.FundNewAccounts,
		startUnits: cfg.StartingBalance,
		logger:     logger.With(slog.String("component", "stellar_ledger")),
	}
	if cfg.FunderSeed != "" {
		kp, err := keypair.ParseFull(cfg.FunderSeed)
		if err != nil {
			return nil, fmt.Errorf("parse funder seed: %w", err)
		}
		l.funder = kp
	}
	if l.timeout <= 0 {
		l.timeout = 30 * time.Second
	}
	return l, nil
}

var _ port.Ledger = (*Ledger)(nil)

// CreateAccount generates a keypair and funds it, either from the configured
// funder account or through friendbot.
func (l *Ledger) CreateAccount(ctx context.Context) (port.Wallet, error) {
	kp, err := keypair.Random()
	if err != nil {
		return port.Wallet{}, fmt.Errorf("generate keypair: %w", err)
	}
	w := port.Wallet{Address: kp.Address(), Seed: kp.Seed()}

	switch {
	case l.funder != nil:
		_, err = l.submit(ctx, "create_account", l.funder, &txnbuild.CreateAccount{
			Destination: w.Address,
			Amount:      unitsToAmount(l.startUnits),
		})
	case l.fund:
		_, err = l.client.Fund(w.Address)
		err = wrapHorizon("fund", err)
	default:
		err = ErrFundingDisabled
	}
	if err != nil {
		return port.Wallet{}, err
	}
	return w, nil
}

// LoadAccount derives the address of seed and checks that the account
// exists on the network.
func (l *Ledger) LoadAccount(_ context.Context, seed string) (port.Wallet, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return port.Wallet{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	if _, err = l.client.AccountDetail(horizonclient.AccountRequest{AccountID: kp.Address()}); err != nil {
		return port.Wallet{}, wrapHorizon("account_detail", err)
	}
	return port.Wallet{Address: kp.Address(), Seed: seed}, nil
}

func (l *Ledger) GetBalance(_ context.Context, address string) (port.Balance, error) {
	acc, err := l.client.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return port.Balance{}, wrapHorizon("account_detail", err)
	}
	native, err := acc.GetNativeBalance()
	if err != nil {
		return port.Balance{}, err
	}
	return port.Balance{Currency: BaseCurrency, Amount: native}, nil
}

func (l *Ledger) TransferValue(ctx context.Context, seed string, units int64, destination string) (port.Receipt, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	return l.submit(ctx, "payment", kp, &txnbuild.Payment{
		Destination: destination,
		Amount:      unitsToAmount(units),
		Asset:       txnbuild.NativeAsset{},
	})
}

// ConfigureIssuer clears the authorization flags so any account holding a
// trust line can receive the issuer's tokens; disabling sets AUTH_REQUIRED.
func (l *Ledger) ConfigureIssuer(ctx context.Context, seed string, enable bool) (port.Receipt, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	op := &txnbuild.SetOptions{}
	if enable {
		op.ClearFlags = []txnbuild.AccountFlag{txnbuild.AuthRequired, txnbuild.AuthRevocable}
	} else {
		op.SetFlags = []txnbuild.AccountFlag{txnbuild.AuthRequired}
	}
	return l.submit(ctx, "set_options", kp, op)
}

func (l *Ledger) EstablishTrustLine(ctx context.Context, holderSeed, issuer, currency string, limit int64) (port.Receipt, error) {
	kp, err := keypair.ParseFull(holderSeed)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	line, err := txnbuild.CreditAsset{Code: currency, Issuer: issuer}.ToChangeTrustAsset()
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return l.submit(ctx, "change_trust", kp, &txnbuild.ChangeTrust{
		Line:  line,
		Limit: unitsToAmount(limit),
	})
}

func (l *Ledger) TransferToken(ctx context.Context, issuerSeed, destination, currency string, units int64) (port.Receipt, error) {
	kp, err := keypair.ParseFull(issuerSeed)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	return l.submit(ctx, "token_payment", kp, &txnbuild.Payment{
		Destination: destination,
		Amount:      unitsToAmount(units),
		Asset:       txnbuild.CreditAsset{Code: currency, Issuer: kp.Address()},
	})
}

// CreateEscrow creates a claimable balance. The destination can claim it
// once FinishAfter has elapsed and until CancelAfter; from CancelAfter on
// only the owner can.
func (l *Ledger) CreateEscrow(ctx context.Context, req port.EscrowRequest) (port.Receipt, error) {
	if req.Condition != "" {
		return port.Receipt{}, ErrConditionUnsupported
	}
	kp, err := keypair.ParseFull(req.SenderSeed)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	finish := int64(req.FinishAfter / time.Second)
	cancel := int64(req.CancelAfter / time.Second)

	destination := txnbuild.AndPredicate(
		txnbuild.NotPredicate(txnbuild.BeforeRelativeTimePredicate(finish)),
		txnbuild.BeforeRelativeTimePredicate(cancel),
	)
	owner := txnbuild.NotPredicate(txnbuild.BeforeRelativeTimePredicate(cancel))

	tx, err := l.build(ctx, kp, &txnbuild.CreateClaimableBalance{
		Amount: amount.StringFromInt64(req.Subunits * stroopsPerSubunit),
		Asset:  txnbuild.NativeAsset{},
		Destinations: []txnbuild.Claimant{
			txnbuild.NewClaimant(req.Destination, &destination),
			txnbuild.NewClaimant(kp.Address(), &owner),
		},
	})
	if err != nil {
		return port.Receipt{}, err
	}
	balanceID, err := tx.ClaimableBalanceID(0)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("claimable balance id: %w", err)
	}
	rcpt, err := l.send("create_claimable_balance", tx)
	if err != nil {
		return port.Receipt{}, err
	}
	rcpt.Sequence = balanceID
	return rcpt, nil
}

// FinishEscrow claims the balance as its destination.
func (l *Ledger) FinishEscrow(ctx context.Context, finisherSeed, _, sequence, fulfillment string) (port.Receipt, error) {
	if fulfillment != "" {
		return port.Receipt{}, ErrConditionUnsupported
	}
	return l.claim(ctx, "finish_escrow", finisherSeed, sequence)
}

// CancelEscrow claims the balance back as its owner.
func (l *Ledger) CancelEscrow(ctx context.Context, cancellerSeed, _, sequence string) (port.Receipt, error) {
	return l.claim(ctx, "cancel_escrow", cancellerSeed, sequence)
}

func (l *Ledger) claim(ctx context.Context, op, seed, balanceID string) (port.Receipt, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return port.Receipt{}, fmt.Errorf("%w: invalid seed", domain.ErrInvalidInput)
	}
	return l.submit(ctx, op, kp, &txnbuild.ClaimClaimableBalance{BalanceID: balanceID})
}

// ListEscrows returns the claimable balances address can claim.
func (l *Ledger) ListEscrows(_ context.Context, address string) ([]port.EscrowObject, error) {
	page, err := l.client.ClaimableBalances(horizonclient.ClaimableBalanceRequest{Claimant: address})
	if err != nil {
		return nil, wrapHorizon("claimable_balances", err)
	}
	out := make([]port.EscrowObject, 0, len(page.Embedded.Records))
	for _, cb := range page.Embedded.Records {
		if cb.Asset != "native" {
			continue
		}
		out = append(out, escrowFromBalance(cb))
	}
	return out, nil
}

func (l *Ledger) TokenBalances(_ context.Context, address string) ([]port.Balance, error) {
	acc, err := l.client.AccountDetail(horizonclient.AccountRequest{AccountID: address})
	if err != nil {
		return nil, wrapHorizon("account_detail", err)
	}
	out := make([]port.Balance, 0, len(acc.Balances))
	for _, b := range acc.Balances {
		if b.Type == "native" || b.Code == "" {
			continue
		}
		out = append(out, port.Balance{Currency: b.Code, Issuer: b.Issuer, Amount: b.Balance, Limit: b.Limit})
	}
	return out, nil
}

func (l *Ledger) GetTransaction(_ context.Context, hash string) (port.Transaction, error) {
	tx, err := l.client.TransactionDetail(strings.ToLower(hash))
	if err != nil {
		if herr := horizonclient.GetError(err); herr != nil && herr.Problem.Status == 404 {
			return port.Transaction{}, fmt.Errorf("transaction %s: %w", hash, domain.ErrNotFound)
		}
		return port.Transaction{}, wrapHorizon("transaction_detail", err)
	}
	return port.Transaction{
		Hash:       tx.Hash,
		Ledger:     int64(tx.Ledger),
		Account:    tx.Account,
		Successful: tx.Successful,
		Fee:        tx.FeeCharged,
		Operations: int(tx.OperationCount),
		ClosedAt:   tx.LedgerCloseTime,
	}, nil
}

// submit builds, signs and submits a single operation transaction.
func (l *Ledger) submit(ctx context.Context, op string, kp *keypair.Full, operation txnbuild.Operation) (port.Receipt, error) {
	tx, err := l.build(ctx, kp, operation)
	if err != nil {
		return port.Receipt{}, err
	}
	return l.send(op, tx)
}

func (l *Ledger) build(ctx context.Context, kp *keypair.Full, operation txnbuild.Operation) (*txnbuild.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source, err := l.client.AccountDetail(horizonclient.AccountRequest{AccountID: kp.Address()})
	if err != nil {
		return nil, wrapHorizon("account_detail", err)
	}
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &source,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{operation},
		BaseFee:              l.baseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(int64(l.timeout / time.Second))},
	})
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}
	if tx, err = tx.Sign(l.passphrase, kp); err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return tx, nil
}

func (l *Ledger) send(op string, tx *txnbuild.Transaction) (port.Receipt, error) {
	resp, err := l.client.SubmitTransaction(tx)
	if err != nil {
		err = wrapHorizon(op, err)
		l.logger.Warn("transaction rejected", slog.String("op", op), slog.Any("error", err))
		return port.Receipt{}, err
	}
	return port.Receipt{Hash: resp.Hash, Ledger: int64(resp.Ledger)}, nil
}

func escrowFromBalance(cb hProtocol.ClaimableBalance) port.EscrowObject {
	esc := port.EscrowObject{Sequence: cb.BalanceID, Owner: cb.Sponsor}
	if stroops, err := amount.ParseInt64(cb.Amount); err == nil {
		esc.Subunits = stroops / stroopsPerSubunit
	}
	for _, c := range cb.Claimants {
		if c.Destination == cb.Sponsor {
			continue
		}
		esc.Destination = c.Destination
		esc.FinishAfter, esc.CancelAfter = claimWindow(c.Predicate)
	}
	return esc
}

// unitsToAmount renders whole units as a Stellar decimal amount.
func unitsToAmount(units int64) string {
	return amount.StringFromInt64(domain.ToSubunits(units) * stroopsPerSubunit)
}
