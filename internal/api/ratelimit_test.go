package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/auth"
	redismocks "github.com/honeynil/DepositWithdrawService/internal/infrastructure/redis/mocks"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/stretchr/testify/assert"
)

func limitedRequest(email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/deposits", nil)
	if email == "" {
		return req
	}
	return req.WithContext(auth.WithIdentity(req.Context(), models.Identity{Email: email}))
}

func TestSubmitRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })

	t.Run("UnderLimit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := redismocks.NewMockRedisClient(ctrl)
		client.EXPECT().IncrWithExpiry(gomock.Any(), "ratelimit:submit:a@x.com", time.Minute).Return(int64(2), time.Minute, nil)

		rec := httptest.NewRecorder()
		SubmitRateLimit(client, 2, time.Minute)(ok).ServeHTTP(rec, limitedRequest("a@x.com"))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("OverLimit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := redismocks.NewMockRedisClient(ctrl)
		client.EXPECT().IncrWithExpiry(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), 0*time.Second, nil)

		rec := httptest.NewRecorder()
		SubmitRateLimit(client, 2, time.Minute)(ok).ServeHTTP(rec, limitedRequest("a@x.com"))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
	})

	t.Run("RedisDownFailsOpen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := redismocks.NewMockRedisClient(ctrl)
		client.EXPECT().IncrWithExpiry(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), time.Duration(0), errors.New("dial tcp: refused"))

		rec := httptest.NewRecorder()
		SubmitRateLimit(client, 2, time.Minute)(ok).ServeHTTP(rec, limitedRequest("a@x.com"))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SubmitRateLimit(nil, 2, time.Minute)(ok).ServeHTTP(rec, limitedRequest("a@x.com"))
		assert.Equal(t, http.StatusCreated, rec.Code)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec = httptest.NewRecorder()
		SubmitRateLimit(redismocks.NewMockRedisClient(ctrl), 0, time.Minute)(ok).ServeHTTP(rec, limitedRequest("a@x.com"))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("NoIdentityPassesThrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := httptest.NewRecorder()
		SubmitRateLimit(redismocks.NewMockRedisClient(ctrl), 2, time.Minute)(ok).ServeHTTP(rec, limitedRequest(""))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
