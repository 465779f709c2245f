package domain

import "time"

// Investment records a value transfer from an investor into an approved
// campaign. Investments are append-only.
type Investment struct {
	ID              int64     `json:"id"`
	CampaignID      int64     `json:"campaign_id"`
	InvestorAddress string    `json:"investor_address"`
	Amount          int64     `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`

	// Reference correlates the record with the log lines and events of the
	// pipeline run that produced it.
	Reference            string `json:"reference"`
	TransferTxHash       string `json:"transfer_tx_hash,omitempty"`
	TrustLineEstablished bool   `json:"trust_line_established"`
	TokensDelivered      bool   `json:"tokens_delivered"`
}

// Degraded reports a paid-but-not-fully-tokenized investment: the value
// transfer happened but trust line setup or token delivery did not.
func (i Investment) Degraded() bool {
	return !i.TrustLineEstablished || !i.TokensDelivered
}

// TokenAmount is the number of project tokens owed for the investment.
func (i Investment) TokenAmount() int64 {
	return i.Amount * TokensPerBaseUnit
}
