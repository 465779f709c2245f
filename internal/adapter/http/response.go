package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"agrofund/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// statusFor maps the error taxonomy onto HTTP status codes. Order matters:
// a gateway error may wrap a not found or invalid input cause.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStaleSnapshot), errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrWalletCreation), errors.Is(err, domain.ErrGatewayFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it with the mapped status. Internal errors
// are not echoed to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", requestID(r)))
		msg = "internal error"
	} else {
		h.logger.Warn(op+" rejected", slog.Any("error", err), slog.Int("status", status), slog.String("request_id", requestID(r)))
	}
	writeJSON(w, status, errorResponse{Error: msg}, h.logger)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"}, h.logger)
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"}, h.logger)
		return 0, false
	}
	return id, true
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
