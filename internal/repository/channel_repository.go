package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
)

type ChannelRepository interface {
	Create(ctx context.Context, ch *models.Channel) error
	GetByID(ctx context.Context, kind models.Kind, id uuid.UUID) (*models.Channel, error)
	List(ctx context.Context, kind models.Kind) ([]models.Channel, error)
	ListByAdmin(ctx context.Context, kind models.Kind, email string) ([]models.Channel, error)
	Update(ctx context.Context, kind models.Kind, id uuid.UUID, patch models.ChannelPatch) (int64, error)
	Delete(ctx context.Context, kind models.Kind, id uuid.UUID) (int64, error)
}
