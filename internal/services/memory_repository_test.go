package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

// memoryTransactionRepository mirrors the conditional statement semantics of
// the Postgres repository so workflow races can be exercised in process.
type memoryTransactionRepository struct {
	mu   sync.Mutex
	rows map[models.Kind]map[uuid.UUID]models.TransactionRequest
}

func newMemoryTransactionRepository() *memoryTransactionRepository {
	return &memoryTransactionRepository{rows: map[models.Kind]map[uuid.UUID]models.TransactionRequest{
		models.KindDeposit:  {},
		models.KindWithdraw: {},
	}}
}

func (r *memoryTransactionRepository) Create(_ context.Context, req *models.TransactionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[req.Kind][req.ID]; ok {
		return pkgerrors.ErrConflict
	}
	r.rows[req.Kind][req.ID] = *req
	return nil
}

func (r *memoryTransactionRepository) GetByID(_ context.Context, kind models.Kind, id uuid.UUID) (*models.TransactionRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.rows[kind][id]
	if !ok {
		return nil, pkgerrors.ErrTransactionNotFound
	}
	return &tx, nil
}

func (r *memoryTransactionRepository) filter(kind models.Kind, keep func(models.TransactionRequest) bool) []models.TransactionRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.TransactionRequest, 0)
	for _, tx := range r.rows[kind] {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	slices.SortFunc(out, func(a, b models.TransactionRequest) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func (r *memoryTransactionRepository) ListByCustomer(_ context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error) {
	return r.filter(kind, func(tx models.TransactionRequest) bool { return tx.Customer.Email == email }), nil
}

func (r *memoryTransactionRepository) ListByAdmin(_ context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error) {
	return r.filter(kind, func(tx models.TransactionRequest) bool { return tx.Admin == email }), nil
}

func (r *memoryTransactionRepository) ListAll(_ context.Context, kind models.Kind) ([]models.TransactionRequest, error) {
	return r.filter(kind, func(models.TransactionRequest) bool { return true }), nil
}

func (r *memoryTransactionRepository) ListByStatus(_ context.Context, kind models.Kind, status models.StatusType, before time.Time) ([]models.TransactionRequest, error) {
	out := r.filter(kind, func(tx models.TransactionRequest) bool {
		return tx.Status == status && tx.CreatedAt.Before(before)
	})
	slices.Reverse(out)
	return out, nil
}

func (r *memoryTransactionRepository) UpdateStatus(_ context.Context, kind models.Kind, id uuid.UUID, from, to models.StatusType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.rows[kind][id]
	if !ok || tx.Status != from {
		return 0, nil
	}
	tx.Status = to
	r.rows[kind][id] = tx
	return 1, nil
}

func (r *memoryTransactionRepository) Delete(_ context.Context, kind models.Kind, id uuid.UUID, protected models.StatusType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.rows[kind][id]
	if !ok || tx.Status == protected {
		return 0, nil
	}
	delete(r.rows[kind], id)
	return 1, nil
}
