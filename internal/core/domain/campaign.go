package domain

import "time"

// CampaignStatus is the lifecycle state of a Campaign.
type CampaignStatus string

const (
	CampaignPending  CampaignStatus = "pending"
	CampaignApproved CampaignStatus = "approved"
)

// Campaign represents a farmer's crowdfunding project.
// FundingGoal is stored in whole base-currency units.
type Campaign struct {
	ID               int64          `json:"id"`
	FarmerName       string         `json:"farmer_name"`
	ProjectTitle     string         `json:"project_title"`
	Description      string         `json:"description"`
	FundingGoal      int64          `json:"funding_goal"`
	FarmerWalletSeed string         `json:"farmer_wallet_seed"` // sealed by the seed vault when a key is configured
	FarmerAddress    string         `json:"farmer_address"`
	TokenCurrency    *string        `json:"token_currency"` // nil until approved
	Status           CampaignStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}

// IsApproved reports whether the campaign has been approved and its token
// currency assigned.
func (c Campaign) IsApproved() bool {
	return c.Status == CampaignApproved && c.TokenCurrency != nil
}

// Currency returns the campaign token currency or an empty string while the
// campaign is pending.
func (c Campaign) Currency() string {
	if c.TokenCurrency == nil {
		return ""
	}
	return *c.TokenCurrency
}

// Approve moves a pending campaign to approved and assigns its token
// currency. Status and currency always change together.
func (c *Campaign) Approve(currency string) error {
	if c.Status != CampaignPending {
		return ErrInvalidState
	}
	if currency == "" {
		return ErrInvalidInput
	}
	c.Status = CampaignApproved
	c.TokenCurrency = &currency
	return nil
}
