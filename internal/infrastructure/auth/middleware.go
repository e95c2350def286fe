package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

const CookieName = "token"

// RoleLookup reads the current role of an identity from storage.
type RoleLookup interface {
	Role(ctx context.Context, email string) (models.Role, error)
}

func RequireAuthenticated(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, pkgerrors.ErrUnauthenticated)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				slog.Warn("invalid session token", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusUnauthorized, pkgerrors.ErrUnauthenticated)
				return
			}

			ctx := WithIdentity(r.Context(), models.Identity{Email: models.NormalizeEmail(claims.Email), IssuedRole: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must run after RequireAuthenticated. The role is read on every call.
func RequireAdmin(roles RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, pkgerrors.ErrUnauthenticated)
				return
			}

			role, err := roles.Role(r.Context(), id.Email)
			switch {
			case errors.Is(err, pkgerrors.ErrNotFound):
				slog.Warn("admin check for unknown identity", "email", id.Email)
				writeError(w, http.StatusForbidden, pkgerrors.ErrAdminOnly)
				return
			case err != nil:
				slog.Error("failed to read role", "email", id.Email, "error", err)
				writeError(w, http.StatusInternalServerError, err)
				return
			case role != models.RoleAdmin:
				slog.Warn("admin access denied", "email", id.Email, "role", role, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, pkgerrors.ErrAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf refuses requests whose path variable param differs from the caller's email.
func RequireSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, pkgerrors.ErrUnauthenticated)
				return
			}
			if models.NormalizeEmail(mux.Vars(r)[param]) != models.NormalizeEmail(id.Email) {
				slog.Warn("scope mismatch", "email", id.Email, "requested", mux.Vars(r)[param])
				writeError(w, http.StatusForbidden, pkgerrors.ErrScopeMismatch)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
