package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"agrofund/internal/core/domain"
	"agrofund/internal/core/port"
)

type microloanResponse struct {
	ID                   int64                  `json:"id"`
	FarmerAddress        string                 `json:"farmer_address"`
	FarmerAddressShort   string                 `json:"farmer_address_short"`
	InvestorAddress      string                 `json:"investor_address"`
	InvestorAddressShort string                 `json:"investor_address_short"`
	LoanAmount           int64                  `json:"loan_amount"`
	RepaymentDays        int                    `json:"repayment_days"`
	EscrowSequence       string                 `json:"escrow_sequence"`
	Conditional          bool                   `json:"conditional"`
	Status               domain.MicroloanStatus `json:"status"`
	CreatedAt            time.Time              `json:"created_at"`
	CompletedAt          *time.Time             `json:"completed_at,omitempty"`
	CancelledAt          *time.Time             `json:"cancelled_at,omitempty"`
}

func newMicroloanResponse(m domain.Microloan) microloanResponse {
	return microloanResponse{
		ID:                   m.ID,
		FarmerAddress:        m.FarmerAddress,
		FarmerAddressShort:   domain.AbbreviateAddress(m.FarmerAddress),
		InvestorAddress:      m.InvestorAddress,
		InvestorAddressShort: domain.AbbreviateAddress(m.InvestorAddress),
		LoanAmount:           m.LoanAmount,
		RepaymentDays:        m.RepaymentDays,
		EscrowSequence:       m.EscrowSequence,
		Conditional:          m.IsConditional(),
		Status:               m.Status,
		CreatedAt:            m.CreatedAt,
		CompletedAt:          m.CompletedAt,
		CancelledAt:          m.CancelledAt,
	}
}

// createdMicroloanResponse reports the escrow window as seconds from
// submission. Fulfillment is set for conditional loans and never shown again.
type createdMicroloanResponse struct {
	microloanResponse
	FinishAfterSeconds int64  `json:"finish_after_seconds"`
	CancelAfterSeconds int64  `json:"cancel_after_seconds"`
	Fulfillment        string `json:"fulfillment,omitempty"`
}

type finishRequest struct {
	FarmerSeed  string `json:"farmer_seed"`
	Fulfillment string `json:"fulfillment,omitempty"`
}

type cancelRequest struct {
	InvestorSeed string `json:"investor_seed"`
}

func (h *Handler) handleCreateMicroloan(w http.ResponseWriter, r *http.Request) {
	var req port.CreateMicroloanReq
	if !h.decode(w, r, &req) {
		return
	}
	receipt, err := h.svc.Microloans.CreateMicroloan(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create microloan", err)
		return
	}
	writeJSON(w, http.StatusCreated, createdMicroloanResponse{
		microloanResponse:  newMicroloanResponse(receipt.Microloan),
		FinishAfterSeconds: int64(receipt.Window.FinishAfter / time.Second),
		CancelAfterSeconds: int64(receipt.Window.CancelAfter / time.Second),
		Fulfillment:        receipt.Fulfillment,
	}, h.logger)
}

func (h *Handler) handleListMicroloans(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Microloans.ListMicroloans(r.Context())
	if err != nil {
		h.writeError(w, r, "list microloans", err)
		return
	}
	out := make([]microloanResponse, 0, len(list))
	for _, m := range list {
		out = append(out, newMicroloanResponse(m))
	}
	writeJSON(w, http.StatusOK, out, h.logger)
}

func (h *Handler) handleFinishMicroloan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req finishRequest
	if !h.decode(w, r, &req) {
		return
	}
	m, err := h.svc.Microloans.FinishMicroloan(r.Context(), port.FinishMicroloanReq{
		MicroloanID: id,
		FarmerSeed:  req.FarmerSeed,
		Fulfillment: req.Fulfillment,
	})
	if err != nil {
		h.writeError(w, r, "finish microloan", err)
		return
	}
	writeJSON(w, http.StatusOK, newMicroloanResponse(m), h.logger)
}

func (h *Handler) handleCancelMicroloan(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req cancelRequest
	if !h.decode(w, r, &req) {
		return
	}
	m, err := h.svc.Microloans.CancelMicroloan(r.Context(), port.CancelMicroloanReq{
		MicroloanID:  id,
		InvestorSeed: req.InvestorSeed,
	})
	if err != nil {
		h.writeError(w, r, "cancel microloan", err)
		return
	}
	writeJSON(w, http.StatusOK, newMicroloanResponse(m), h.logger)
}

func (h *Handler) handleLedgerEscrows(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Microloans.LedgerEscrows(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, r, "ledger escrows", err)
		return
	}
	writeJSON(w, http.StatusOK, list, h.logger)
}
