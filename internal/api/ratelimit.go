package api

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/auth"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/redis"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

const submitKeyPrefix = "ratelimit:submit:"

// SubmitRateLimit caps submissions per identity in a fixed window. It must run
// after RequireAuthenticated. Redis failures let the request through.
func SubmitRateLimit(client redis.RedisClient, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil || limit <= 0 || window <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			count, ttl, err := client.IncrWithExpiry(r.Context(), submitKeyPrefix+id.Email, window)
			if err != nil {
				slog.Warn("rate limiter unavailable, allowing request", "email", id.Email, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count > int64(limit) {
				retry := int(math.Ceil(ttl.Seconds()))
				if retry < 1 {
					retry = 1
				}
				slog.Warn("submission rate limited", "email", id.Email, "count", count, "limit", limit)
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": pkgerrors.ErrRateLimited.Error()})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
