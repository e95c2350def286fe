package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	repositorymocks "github.com/honeynil/DepositWithdrawService/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_ListAll(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	at := func(kind models.Kind, offset time.Duration) models.TransactionRequest {
		return models.TransactionRequest{ID: uuid.New(), Kind: kind, CreatedAt: base.Add(offset)}
	}

	t.Run("NewestFirstAcrossKinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repositorymocks.NewMockTransactionRepository(ctrl)

		deposits := []models.TransactionRequest{at(models.KindDeposit, 3*time.Hour), at(models.KindDeposit, time.Hour)}
		withdraws := []models.TransactionRequest{at(models.KindWithdraw, 2*time.Hour), at(models.KindWithdraw, 0)}
		repo.EXPECT().ListAll(gomock.Any(), models.KindDeposit).Return(deposits, nil)
		repo.EXPECT().ListAll(gomock.Any(), models.KindWithdraw).Return(withdraws, nil)

		feed, err := NewAggregator(repo, dhaka).ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, feed, 4)

		for i := 1; i < len(feed); i++ {
			assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt), "feed not newest first at %d", i)
		}
		assert.Equal(t, deposits[0].ID, feed[0].ID)
		assert.Equal(t, withdraws[1].ID, feed[3].ID)
		assert.Equal(t, "June 1, 2024 at 9:00:00 PM", feed[0].FormattedTime)
	})

	t.Run("TiesKeepDepositsFirst", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repositorymocks.NewMockTransactionRepository(ctrl)

		d := at(models.KindDeposit, 0)
		w := at(models.KindWithdraw, 0)
		repo.EXPECT().ListAll(gomock.Any(), models.KindDeposit).Return([]models.TransactionRequest{d}, nil)
		repo.EXPECT().ListAll(gomock.Any(), models.KindWithdraw).Return([]models.TransactionRequest{w}, nil)

		feed, err := NewAggregator(repo, dhaka).ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{d.ID, w.ID}, []uuid.UUID{feed[0].ID, feed[1].ID})
	})

	t.Run("EmptyIsNotNil", func(t *testing.T) {
		feed, err := NewAggregator(newMemoryTransactionRepository(), dhaka).ListAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, feed)
		assert.Empty(t, feed)
	})

	t.Run("ReadFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repositorymocks.NewMockTransactionRepository(ctrl)
		dbErr := errors.New("boom")
		repo.EXPECT().ListAll(gomock.Any(), models.KindDeposit).Return(nil, dbErr)

		_, err := NewAggregator(repo, dhaka).ListAll(ctx)
		assert.ErrorIs(t, err, dbErr)
	})
}
