package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

// TokenVerifier turns a raw session token into verified claims.
type TokenVerifier interface {
	Verify(token string) (*models.SessionClaims, error)
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs an HS256 session token for email with a fixed expiry.
func (m *TokenManager) Issue(email string, role models.Role) (string, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return "", fmt.Errorf("%w: email is required", pkgerrors.ErrValidation)
	}
	if len(m.secret) == 0 {
		return "", fmt.Errorf("%w: signing secret not set", pkgerrors.ErrUnauthenticated)
	}

	now := m.now()
	claims := models.SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		slog.Error("failed to sign token", "email", email, "error", err)
		return "", fmt.Errorf("%w: failed to sign token", pkgerrors.ErrUnauthenticated)
	}
	return signed, nil
}

func (m *TokenManager) Verify(token string) (*models.SessionClaims, error) {
	if token == "" {
		return nil, pkgerrors.ErrUnauthenticated
	}

	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		slog.Debug("token rejected", "error", err)
		return nil, pkgerrors.ErrUnauthenticated
	}
	claims.Email = models.NormalizeEmail(claims.Email)
	if claims.Email == "" {
		return nil, pkgerrors.ErrUnauthenticated
	}
	return claims, nil
}
