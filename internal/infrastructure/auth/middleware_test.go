package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleTable map[string]models.Role

func (r roleTable) Role(_ context.Context, email string) (models.Role, error) {
	role, ok := r[email]
	if !ok {
		return "", pkgerrors.ErrUserNotFound
	}
	return role, nil
}

type failingRoles struct{}

func (failingRoles) Role(context.Context, string) (models.Role, error) {
	return "", errors.New("db down")
}

func echoIdentity(w http.ResponseWriter, r *http.Request) {
	id, _ := IdentityFromContext(r.Context())
	w.Write([]byte(id.Email))
}

func withIdentity(r *http.Request, email string) *http.Request {
	return r.WithContext(WithIdentity(r.Context(), models.Identity{Email: email}))
}

func TestRequireAuthenticated(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Issue("rahim@x.com", models.RoleCustomer)
	require.NoError(t, err)
	h := RequireAuthenticated(m)(http.HandlerFunc(echoIdentity))

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "rahim@x.com", rec.Body.String())
	})

	t.Run("Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"unauthorized access"}`, rec.Body.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "junk"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	roles := roleTable{"admin@x.com": models.RoleAdmin, "rahim@x.com": models.RoleCustomer}
	h := RequireAdmin(roles)(http.HandlerFunc(echoIdentity))

	serve := func(email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
		if email != "" {
			req = withIdentity(req, email)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, serve("admin@x.com").Code)
	assert.Equal(t, http.StatusForbidden, serve("rahim@x.com").Code)
	assert.Equal(t, http.StatusForbidden, serve("ghost@x.com").Code)
	assert.Equal(t, http.StatusUnauthorized, serve("").Code)

	// The role is re-read per request, so a promotion applies without a new token.
	roles["rahim@x.com"] = models.RoleAdmin
	assert.Equal(t, http.StatusOK, serve("rahim@x.com").Code)

	t.Run("LookupFailure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(failingRoles{})(http.HandlerFunc(echoIdentity)).
			ServeHTTP(rec, withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), "admin@x.com"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireSelf(t *testing.T) {
	h := RequireSelf("email")(http.HandlerFunc(echoIdentity))

	serve := func(caller, param string) int {
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/deposits/"+param, nil), caller)
		req = mux.SetURLVars(req, map[string]string{"email": param})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve("rahim@x.com", "Rahim@x.com"))
	assert.Equal(t, http.StatusOK, serve("Rahim@X.com", "rahim@x.com"))
	assert.Equal(t, http.StatusForbidden, serve("rahim@x.com", "karim@x.com"))
}
