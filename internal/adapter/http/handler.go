package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agrofund/internal/core/port"
)

// Services groups the use cases the HTTP adapter drives.
type Services struct {
	Campaigns   port.CampaignUseCase
	Investments port.InvestmentUseCase
	Microloans  port.MicroloanUseCase
	Balances    port.BalanceUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases to execute business logic, the admin guard and a
// logger for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    Services
	auth   *AdminAuth
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Approval and the
// records reset are admin routes guarded by auth.
func NewHandler(svc Services, auth *AdminAuth, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.With(auth.RequireAdmin).Post("/approve", h.handleApproveCampaign)
				r.Post("/investments", h.handleInvest)
				r.Get("/investments", h.handleListInvestments)
				r.Get("/reconcile", h.handleReconcile)
			})
		})
		r.Get("/investments", h.handleListInvestments)

		r.Route("/microloans", func(r chi.Router) {
			r.Post("/", h.handleCreateMicroloan)
			r.Get("/", h.handleListMicroloans)
			r.Post("/{id}/finish", h.handleFinishMicroloan)
			r.Post("/{id}/cancel", h.handleCancelMicroloan)
		})
		r.Get("/escrows/{address}", h.handleLedgerEscrows)

		r.Post("/wallets", h.handleNewWallet)
		r.Post("/balances", h.handleCheckBalances)
		r.Get("/transactions/{hash}", h.handleLookupTransaction)

		r.With(auth.RequireAdmin).Post("/admin/reset", h.handleResetRecords)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
