package domain

import "time"

// Event types emitted after a state change has been persisted.
const (
	EventCampaignCreated    = "campaign.created"
	EventCampaignApproved   = "campaign.approved"
	EventInvestmentRecorded = "investment.recorded"
	EventMicroloanCreated   = "microloan.created"
	EventMicroloanCompleted = "microloan.completed"
	EventMicroloanCancelled = "microloan.cancelled"
	EventRecordsReset       = "records.reset"
)

// Event describes a persisted state change. AggregateID is used as the
// partition key by publishers that support one.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload"`
}

// CampaignPayload is the event view of a campaign. It never carries the
// farmer seed.
type CampaignPayload struct {
	CampaignID    int64          `json:"campaign_id"`
	FarmerName    string         `json:"farmer_name"`
	ProjectTitle  string         `json:"project_title"`
	FarmerAddress string         `json:"farmer_address"`
	FundingGoal   int64          `json:"funding_goal"`
	TokenCurrency string         `json:"token_currency,omitempty"`
	Status        CampaignStatus `json:"status"`
}

// NewCampaignPayload builds the event view of c.
func NewCampaignPayload(c Campaign) CampaignPayload {
	return CampaignPayload{
		CampaignID:    c.ID,
		FarmerName:    c.FarmerName,
		ProjectTitle:  c.ProjectTitle,
		FarmerAddress: c.FarmerAddress,
		FundingGoal:   c.FundingGoal,
		TokenCurrency: c.Currency(),
		Status:        c.Status,
	}
}

// ResetPayload reports how many records a reset dropped.
type ResetPayload struct {
	Campaigns   int `json:"campaigns"`
	Investments int `json:"investments"`
	Microloans  int `json:"microloans"`
}
