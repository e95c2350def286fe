package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
)

// TransactionRepository persists deposit and withdraw requests, one table per kind.
// It does not check that the caller owns the records it lists.
type TransactionRepository interface {
	Create(ctx context.Context, req *models.TransactionRequest) error
	GetByID(ctx context.Context, kind models.Kind, id uuid.UUID) (*models.TransactionRequest, error)
	ListByCustomer(ctx context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error)
	ListByAdmin(ctx context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error)
	ListAll(ctx context.Context, kind models.Kind) ([]models.TransactionRequest, error)
	ListByStatus(ctx context.Context, kind models.Kind, status models.StatusType, createdBefore time.Time) ([]models.TransactionRequest, error)
	// UpdateStatus sets status to `to` only while it still equals `from` and returns the rows changed.
	UpdateStatus(ctx context.Context, kind models.Kind, id uuid.UUID, from, to models.StatusType) (int64, error)
	// Delete removes the record unless its status equals protected and returns the rows removed.
	Delete(ctx context.Context, kind models.Kind, id uuid.UUID, protected models.StatusType) (int64, error)
}
