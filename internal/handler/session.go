package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/auth"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

// IssueToken sets the session cookie for the asserted email.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		h.writeError(w, http.StatusBadRequest, pkgerrors.ErrInvalidInput)
		return
	}

	role, err := h.users.Role(r.Context(), email)
	if err != nil && !errors.Is(err, pkgerrors.ErrNotFound) {
		h.fail(w, r, err)
		return
	}

	token, err := h.tokens.Issue(email, role)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.cookie.TTL.Seconds())))
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if h.cookie.Secure {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
