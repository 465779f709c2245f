package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type walletResponse struct {
	Address string `json:"address"`
	Seed    string `json:"seed"`
}

type balancesRequest struct {
	Seed string `json:"seed"`
}

// handleNewWallet creates a funded investor wallet. The seed is returned once.
func (h *Handler) handleNewWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.svc.Balances.NewWallet(r.Context())
	if err != nil {
		h.writeError(w, r, "new wallet", err)
		return
	}
	writeJSON(w, http.StatusCreated, walletResponse{Address: wallet.Address, Seed: wallet.Seed}, h.logger)
}

// handleCheckBalances takes the seed in the body so it never lands in access
// logs.
func (h *Handler) handleCheckBalances(w http.ResponseWriter, r *http.Request) {
	var req balancesRequest
	if !h.decode(w, r, &req) {
		return
	}
	balances, err := h.svc.Balances.CheckBalances(r.Context(), req.Seed)
	if err != nil {
		h.writeError(w, r, "check balances", err)
		return
	}
	writeJSON(w, http.StatusOK, balances, h.logger)
}

func (h *Handler) handleLookupTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Balances.LookupTransaction(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		h.writeError(w, r, "lookup transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, tx, h.logger)
}
