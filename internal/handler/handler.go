package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/auth"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/observability"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	service "github.com/honeynil/DepositWithdrawService/internal/services"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

type TokenIssuer interface {
	Issue(email string, role models.Role) (string, error)
}

type FeedLister interface {
	ListAll(ctx context.Context) ([]models.TransactionRequest, error)
}

type CookieConfig struct {
	// Secure marks the cookie Secure and SameSite=None for cross-site production use.
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	transactions service.TransactionService
	feed         FeedLister
	users        service.UserService
	channels     service.ChannelService
	tokens       TokenIssuer
	cookie       CookieConfig
}

func NewHandler(
	transactions service.TransactionService,
	feed FeedLister,
	users service.UserService,
	channels service.ChannelService,
	tokens TokenIssuer,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		transactions: transactions,
		feed:         feed,
		users:        users,
		channels:     channels,
		tokens:       tokens,
		cookie:       cookie,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// fail maps an error category to its status code. Internal failures are
// logged and answered with a generic message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		observability.WithContext(r.Context(), "method", r.Method, "path", r.URL.Path).Error("request failed", "error", err)
		h.writeError(w, status, errors.New("internal server error"))
		return
	}
	h.writeError(w, status, err)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, pkgerrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, pkgerrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, pkgerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, pkgerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pkgerrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, pkgerrors.ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, pkgerrors.ErrInvalidInput)
		return false
	}
	return true
}

func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, pkgerrors.ErrUnauthenticated)
	}
	return id, ok
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, pkgerrors.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
