package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
)

type UserRepository interface {
	// Upsert inserts the user unless the email exists; the stored record is returned either way.
	Upsert(ctx context.Context, user *models.User) (stored *models.User, created bool, err error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListByRoleExcept(ctx context.Context, role models.Role) ([]models.User, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
