package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

type campaignResponse struct {
	ID            int64                 `json:"id"`
	FarmerName    string                `json:"farmer_name"`
	ProjectTitle  string                `json:"project_title"`
	Description   string                `json:"description"`
	FundingGoal   int64                 `json:"funding_goal"`
	FarmerAddress string                `json:"farmer_address"`
	TokenCurrency *string               `json:"token_currency"`
	Status        domain.CampaignStatus `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
}

// createdCampaignResponse is the only view that carries the farmer seed.
type createdCampaignResponse struct {
	campaignResponse
	FarmerWalletSeed string `json:"farmer_wallet_seed"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		FarmerName:    c.FarmerName,
		ProjectTitle:  c.ProjectTitle,
		Description:   c.Description,
		FundingGoal:   c.FundingGoal,
		FarmerAddress: c.FarmerAddress,
		TokenCurrency: c.TokenCurrency,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
}

type investRequest struct {
	InvestorSeed string `json:"investor_seed"`
	Amount       int64  `json:"amount"`
}

type investResponse struct {
	Investment         domain.Investment `json:"investment"`
	TokenCurrency      string            `json:"token_currency"`
	Degraded           bool              `json:"degraded"`
	TrustLineError     string            `json:"trust_line_error,omitempty"`
	TokenTransferError string            `json:"token_transfer_error,omitempty"`
}

// handleCreateCampaign registers a campaign and returns it together with the
// farmer wallet seed, which is shown only here.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, createdCampaignResponse{
		campaignResponse: newCampaignResponse(c),
		FarmerWalletSeed: c.FarmerWalletSeed,
	}, h.logger)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	out := make([]campaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, newCampaignResponse(c))
	}
	writeJSON(w, http.StatusOK, out, h.logger)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(c), h.logger)
}

func (h *Handler) handleApproveCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaigns.ApproveCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "approve campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(c), h.logger)
}

// handleInvest runs the investment pipeline. A recorded investment answers
// 201 even when tokenization was incomplete; the degraded flag and the step
// errors tell the caller what to reconcile.
func (h *Handler) handleInvest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req investRequest
	if !h.decode(w, r, &req) {
		return
	}
	receipt, err := h.svc.Investments.Invest(r.Context(), port.InvestReq{
		CampaignID:   id,
		InvestorSeed: req.InvestorSeed,
		Amount:       req.Amount,
	})
	if err != nil {
		h.writeError(w, r, "invest", err)
		return
	}
	resp := investResponse{
		Investment:    receipt.Investment,
		TokenCurrency: receipt.TokenCurrency,
		Degraded:      receipt.Degraded(),
	}
	if receipt.TrustLineErr != nil {
		resp.TrustLineError = receipt.TrustLineErr.Error()
	}
	if receipt.TokenTransferErr != nil {
		resp.TokenTransferError = receipt.TokenTransferErr.Error()
	}
	writeJSON(w, http.StatusCreated, resp, h.logger)
}

// handleListInvestments serves both the per-campaign and the global list.
func (h *Handler) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	var campaignID int64
	if chi.URLParam(r, "id") != "" {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		campaignID = id
	} else if raw := r.URL.Query().Get("campaign_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid campaign_id"}, h.logger)
			return
		}
		campaignID = id
	}
	list, err := h.svc.Investments.ListInvestments(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, r, "list investments", err)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.Balances.ReconcileInvestor(r.Context(), id, r.URL.Query().Get("investor"))
	if err != nil {
		h.writeError(w, r, "reconcile", err)
		return
	}
	writeJSON(w, http.StatusOK, rec, h.logger)
}

func (h *Handler) handleResetRecords(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Campaigns.ResetRecords(r.Context()); err != nil {
		h.writeError(w, r, "reset records", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
