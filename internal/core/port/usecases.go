package port

import (
	"context"

	"agrofund/internal/core/domain"
)

// CampaignUseCase owns the campaign state machine. This interface is a
// primary port into the application domain.
type CampaignUseCase interface {
	// CreateCampaign allocates a farmer wallet and stores a pending
	// campaign. Nothing is stored when the wallet cannot be created.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (domain.Campaign, error)

	// ApproveCampaign sets up the farmer wallet as token issuer and moves
	// the campaign to approved together with its derived token currency.
	ApproveCampaign(ctx context.Context, id int64) (domain.Campaign, error)

	// GetCampaign returns one campaign.
	GetCampaign(ctx context.Context, id int64) (domain.Campaign, error)

	// ListCampaigns returns all campaigns, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// ResetRecords drops every campaign, investment and microloan. Id
	// counters are kept.
	ResetRecords(ctx context.Context) error
}

// InvestmentUseCase owns the multi-step investment pipeline.
type InvestmentUseCase interface {
	// Invest transfers value to the farmer, sets up the investor trust line
	// and delivers project tokens. Only a failed value transfer aborts; the
	// later steps report their failures on the receipt.
	Invest(ctx context.Context, req InvestReq) (*InvestmentReceipt, error)

	// ListInvestments returns the investments of a campaign, or all
	// investments when campaignID is 0.
	ListInvestments(ctx context.Context, campaignID int64) ([]domain.Investment, error)
}

// MicroloanUseCase owns the escrow-backed microloan state machine.
type MicroloanUseCase interface {
	CreateMicroloan(ctx context.Context, req CreateMicroloanReq) (*MicroloanReceipt, error)
	FinishMicroloan(ctx context.Context, req FinishMicroloanReq) (domain.Microloan, error)
	CancelMicroloan(ctx context.Context, req CancelMicroloanReq) (domain.Microloan, error)
	ListMicroloans(ctx context.Context) ([]domain.Microloan, error)
	// LedgerEscrows lists the escrows the ledger reports for address.
	LedgerEscrows(ctx context.Context, address string) ([]EscrowObject, error)
}

// BalanceUseCase provides read-only wallet views.
type BalanceUseCase interface {
	NewWallet(ctx context.Context) (Wallet, error)
	CheckBalances(ctx context.Context, seed string) (*WalletBalances, error)
	ReconcileInvestor(ctx context.Context, campaignID int64, investorAddress string) (*Reconciliation, error)
	LookupTransaction(ctx context.Context, hash string) (Transaction, error)
}

type CreateCampaignReq struct {
	FarmerName   string `json:"farmer_name"`
	ProjectTitle string `json:"project_title"`
	Description  string `json:"description"`
	FundingGoal  int64  `json:"funding_goal"`
}

type InvestReq struct {
	CampaignID   int64  `json:"campaign_id"`
	InvestorSeed string `json:"investor_seed"`
	Amount       int64  `json:"amount"`
}

// InvestmentReceipt is the outcome of a pipeline run that got past the value
// transfer. TrustLineErr and TokenTransferErr hold the failures of the
// non-aborting steps.
type InvestmentReceipt struct {
	Investment       domain.Investment
	TokenCurrency    string
	TrustLineErr     error
	TokenTransferErr error
}

// Degraded reports whether tokens may not have reached the investor.
func (r *InvestmentReceipt) Degraded() bool {
	return r.TrustLineErr != nil || r.TokenTransferErr != nil
}

type CreateMicroloanReq struct {
	FarmerAddress string `json:"farmer_address"`
	InvestorSeed  string `json:"investor_seed"`
	LoanAmount    int64  `json:"loan_amount"`
	RepaymentDays int    `json:"repayment_days"`
	Conditional   bool   `json:"conditional"`
}

// MicroloanReceipt returns the stored loan, the escrow window that was
// requested and, for conditional loans, the fulfillment. The fulfillment is
// not persisted anywhere.
type MicroloanReceipt struct {
	Microloan   domain.Microloan
	Window      domain.EscrowWindow
	Fulfillment string
}

type FinishMicroloanReq struct {
	MicroloanID int64  `json:"microloan_id"`
	FarmerSeed  string `json:"farmer_seed"`
	Fulfillment string `json:"fulfillment,omitempty"`
}

type CancelMicroloanReq struct {
	MicroloanID  int64  `json:"microloan_id"`
	InvestorSeed string `json:"investor_seed"`
}

// WalletBalances aggregates base currency and token positions of a wallet.
type WalletBalances struct {
	Address string    `json:"address"`
	Base    Balance   `json:"base"`
	Tokens  []Balance `json:"tokens"`
}

// Reconciliation compares the tokens owed to an investor by recorded
// investments with what the ledger reports the investor holds.
type Reconciliation struct {
	CampaignID      int64  `json:"campaign_id"`
	InvestorAddress string `json:"investor_address"`
	Currency        string `json:"currency"`
	Recorded        int64  `json:"recorded"`
	Held            int64  `json:"held"`
	Shortfall       int64  `json:"shortfall"`
	Degraded        int    `json:"degraded_records"`
}
