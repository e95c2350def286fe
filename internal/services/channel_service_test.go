package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	repositorymocks "github.com/honeynil/DepositWithdrawService/internal/repository/mocks"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelService(t *testing.T) {
	ctx := context.Background()
	admin := models.Identity{Email: "admin@x.com"}

	t.Run("CreateOwnedByCaller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repositorymocks.NewMockChannelRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		ch, err := NewChannelService(repo).Create(ctx, models.KindDeposit, ChannelInput{Name: "bKash", Number: "0170", AdminName: "Boss"}, admin)
		require.NoError(t, err)
		assert.Equal(t, "admin@x.com", ch.Admin.Email)
		assert.Equal(t, models.KindDeposit, ch.Kind)
	})

	t.Run("CreateValidation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewChannelService(repositorymocks.NewMockChannelRepository(ctrl))

		_, err := svc.Create(ctx, models.KindWithdraw, ChannelInput{Name: "Nagad"}, admin)
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)

		_, err = svc.Create(ctx, models.Kind("card"), ChannelInput{Name: "x", Number: "1"}, admin)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidKind)
	})

	t.Run("UpdateEmptyPatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewChannelService(repositorymocks.NewMockChannelRepository(ctrl))

		err := svc.Update(ctx, models.KindDeposit, uuid.New(), models.ChannelPatch{})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repositorymocks.NewMockChannelRepository(ctrl)
		id := uuid.New()
		name := "Rocket"
		repo.EXPECT().Update(gomock.Any(), models.KindDeposit, id, models.ChannelPatch{Name: &name}).Return(int64(0), nil)

		err := NewChannelService(repo).Update(ctx, models.KindDeposit, id, models.ChannelPatch{Name: &name})
		assert.ErrorIs(t, err, pkgerrors.ErrChannelNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repositorymocks.NewMockChannelRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Delete(gomock.Any(), models.KindWithdraw, id).Return(int64(1), nil)
		repo.EXPECT().Delete(gomock.Any(), models.KindWithdraw, id).Return(int64(0), nil)

		svc := NewChannelService(repo)
		assert.NoError(t, svc.Delete(ctx, models.KindWithdraw, id))
		assert.ErrorIs(t, svc.Delete(ctx, models.KindWithdraw, id), pkgerrors.ErrChannelNotFound)
	})
}
