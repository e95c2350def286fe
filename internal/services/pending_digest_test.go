package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type digestCall struct {
	admin string
	ids   []uuid.UUID
}

type stubDigestSender struct {
	calls []digestCall
	fail  map[string]error
}

func (s *stubDigestSender) SendDigest(_ context.Context, admin string, reqs []models.TransactionRequest) error {
	call := digestCall{admin: admin}
	for _, r := range reqs {
		call.ids = append(call.ids, r.ID)
	}
	s.calls = append(s.calls, call)
	return s.fail[admin]
}

func TestPendingDigest_Run(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := newMemoryTransactionRepository()
	add := func(kind models.Kind, admin string, status models.StatusType, age time.Duration) uuid.UUID {
		tx := &models.TransactionRequest{
			ID:        uuid.New(),
			Kind:      kind,
			Admin:     admin,
			Amount:    decimal.NewFromInt(1),
			Status:    status,
			CreatedAt: now.Add(-age),
		}
		require.NoError(t, repo.Create(ctx, tx))
		return tx.ID
	}

	oldest := add(models.KindDeposit, "a@x.com", models.StatusPending, 5*time.Hour)
	older := add(models.KindDeposit, "a@x.com", models.StatusPending, 3*time.Hour)
	add(models.KindDeposit, "a@x.com", models.StatusPending, 30*time.Minute)
	add(models.KindDeposit, "a@x.com", models.StatusConfirm, 5*time.Hour)
	withdraw := add(models.KindWithdraw, "b@x.com", models.StatusPending, 4*time.Hour)

	t.Run("GroupsByAdmin", func(t *testing.T) {
		sender := &stubDigestSender{}
		job := NewPendingDigest(repo, sender, 2*time.Hour)
		job.now = func() time.Time { return now }

		require.NoError(t, job.Run(ctx))
		assert.Equal(t, []digestCall{
			{admin: "a@x.com", ids: []uuid.UUID{oldest, older}},
			{admin: "b@x.com", ids: []uuid.UUID{withdraw}},
		}, sender.calls)
	})

	t.Run("OneFailureDoesNotStopOthers", func(t *testing.T) {
		sendErr := errors.New("smtp down")
		sender := &stubDigestSender{fail: map[string]error{"a@x.com": sendErr}}
		job := NewPendingDigest(repo, sender, 2*time.Hour)
		job.now = func() time.Time { return now }

		err := job.Run(ctx)
		assert.ErrorIs(t, err, sendErr)
		assert.Len(t, sender.calls, 2)
	})

	t.Run("NothingStale", func(t *testing.T) {
		sender := &stubDigestSender{}
		job := NewPendingDigest(repo, sender, 24*time.Hour)
		job.now = func() time.Time { return now }

		require.NoError(t, job.Run(ctx))
		assert.Empty(t, sender.calls)
	})
}
