package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const transactionTracer = "transaction-repository"

const transactionColumns = `id, customer_name, customer_email, admin_email, amount, external_ref, channel_name, wallet_number, status, created_at, formatted_time`

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, req *models.TransactionRequest) (err error) {
	if req == nil {
		slog.Error("failed to create transaction", "method", "Create", "error", pkgerrors.ErrNilTransaction)
		return pkgerrors.ErrNilTransaction
	}

	ctx, done := observe(ctx, transactionTracer, "CreateTransaction",
		attribute.String("kind", string(req.Kind)),
		attribute.String("transaction_id", req.ID.String()),
	)
	defer done(&err)

	table, err := tableFor(req.Kind)
	if err != nil {
		slog.Error("invalid transaction kind", "method", "Create", "kind", req.Kind, "error", err)
		return err
	}
	if !req.Status.Valid() {
		err = pkgerrors.ErrInvalidStatus
		slog.Error("invalid transaction status", "method", "Create", "status", req.Status, "error", err)
		return err
	}
	if !models.ValidAmount(req.Amount) {
		err = pkgerrors.ErrInvalidAmount
		slog.Error("amount out of range", "method", "Create", "amount", req.Amount.String(), "error", err)
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, table, transactionColumns)
	_, err = r.db.ExecContext(ctx, query,
		req.ID, req.Customer.Name, req.Customer.Email, req.Admin, req.Amount,
		req.ExternalRef, req.ChannelName, req.WalletNumber, req.Status, req.CreatedAt, req.FormattedTime,
	)
	if err != nil {
		slog.Error("failed to create transaction", "method", "Create", "kind", req.Kind, "customer_email", req.Customer.Email, "error", err)
		return persistenceErr("create transaction", err)
	}

	slog.Info("transaction created", "method", "Create", "kind", req.Kind, "id", req.ID, "customer_email", req.Customer.Email, "admin", req.Admin, "status", req.Status)
	return nil
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, kind models.Kind, id uuid.UUID) (tx *models.TransactionRequest, err error) {
	ctx, done := observe(ctx, transactionTracer, "GetTransactionByID",
		attribute.String("kind", string(kind)),
		attribute.String("transaction_id", id.String()),
	)
	defer done(&err)

	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, transactionColumns, table)
	tx, err = scanTransaction(r.db.QueryRowContext(ctx, query, id), kind)
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("transaction not found", "method", "GetByID", "kind", kind, "transaction_id", id)
		return nil, pkgerrors.ErrTransactionNotFound
	}
	if err != nil {
		slog.Error("failed to get transaction by id", "method", "GetByID", "kind", kind, "transaction_id", id, "error", err)
		return nil, persistenceErr("get transaction by id", err)
	}

	return tx, nil
}

func (r *PostgresTransactionRepository) ListByCustomer(ctx context.Context, kind models.Kind, email string) (txs []models.TransactionRequest, err error) {
	ctx, done := observe(ctx, transactionTracer, "ListTransactionsByCustomer", attribute.String("kind", string(kind)))
	defer done(&err)

	return r.list(ctx, kind, "ListByCustomer", `WHERE customer_email = $1 ORDER BY created_at DESC`, email)
}

func (r *PostgresTransactionRepository) ListByAdmin(ctx context.Context, kind models.Kind, email string) (txs []models.TransactionRequest, err error) {
	ctx, done := observe(ctx, transactionTracer, "ListTransactionsByAdmin", attribute.String("kind", string(kind)))
	defer done(&err)

	return r.list(ctx, kind, "ListByAdmin", `WHERE admin_email = $1 ORDER BY created_at DESC`, email)
}

func (r *PostgresTransactionRepository) ListAll(ctx context.Context, kind models.Kind) (txs []models.TransactionRequest, err error) {
	ctx, done := observe(ctx, transactionTracer, "ListAllTransactions", attribute.String("kind", string(kind)))
	defer done(&err)

	return r.list(ctx, kind, "ListAll", `ORDER BY created_at DESC`)
}

func (r *PostgresTransactionRepository) ListByStatus(ctx context.Context, kind models.Kind, status models.StatusType, createdBefore time.Time) (txs []models.TransactionRequest, err error) {
	ctx, done := observe(ctx, transactionTracer, "ListTransactionsByStatus",
		attribute.String("kind", string(kind)),
		attribute.String("status", string(status)),
	)
	defer done(&err)

	return r.list(ctx, kind, "ListByStatus", `WHERE status = $1 AND created_at < $2 ORDER BY created_at ASC`, status, createdBefore)
}

func (r *PostgresTransactionRepository) UpdateStatus(ctx context.Context, kind models.Kind, id uuid.UUID, from, to models.StatusType) (affected int64, err error) {
	ctx, done := observe(ctx, transactionTracer, "UpdateTransactionStatus",
		attribute.String("kind", string(kind)),
		attribute.String("transaction_id", id.String()),
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
	)
	defer done(&err)

	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2 AND status = $3`, table)
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		slog.Error("failed to update transaction status", "method", "UpdateStatus", "kind", kind, "transaction_id", id, "error", err)
		return 0, persistenceErr("update transaction status", err)
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return 0, persistenceErr("read affected rows", err)
	}

	slog.Info("transaction status update applied", "method", "UpdateStatus", "kind", kind, "transaction_id", id, "from", from, "to", to, "affected", affected)
	return affected, nil
}

func (r *PostgresTransactionRepository) Delete(ctx context.Context, kind models.Kind, id uuid.UUID, protected models.StatusType) (affected int64, err error) {
	ctx, done := observe(ctx, transactionTracer, "DeleteTransaction",
		attribute.String("kind", string(kind)),
		attribute.String("transaction_id", id.String()),
	)
	defer done(&err)

	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND status <> $2`, table)
	res, err := r.db.ExecContext(ctx, query, id, protected)
	if err != nil {
		slog.Error("failed to delete transaction", "method", "Delete", "kind", kind, "transaction_id", id, "error", err)
		return 0, persistenceErr("delete transaction", err)
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return 0, persistenceErr("read affected rows", err)
	}

	slog.Info("transaction delete applied", "method", "Delete", "kind", kind, "transaction_id", id, "affected", affected)
	return affected, nil
}

func (r *PostgresTransactionRepository) list(ctx context.Context, kind models.Kind, method, clause string, args ...any) ([]models.TransactionRequest, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s`, transactionColumns, table, clause)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Error("failed to list transactions", "method", method, "kind", kind, "error", err)
		return nil, persistenceErr("list transactions", err)
	}
	defer rows.Close()

	txs := make([]models.TransactionRequest, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows, kind)
		if err != nil {
			slog.Error("failed to scan transaction", "method", method, "kind", kind, "error", err)
			return nil, persistenceErr("scan transaction", err)
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("iterate transactions", err)
	}

	slog.Info("transactions listed", "method", method, "kind", kind, "count", len(txs))
	return txs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner, kind models.Kind) (*models.TransactionRequest, error) {
	tx := models.TransactionRequest{Kind: kind}
	err := row.Scan(
		&tx.ID,
		&tx.Customer.Name,
		&tx.Customer.Email,
		&tx.Admin,
		&tx.Amount,
		&tx.ExternalRef,
		&tx.ChannelName,
		&tx.WalletNumber,
		&tx.Status,
		&tx.CreatedAt,
		&tx.FormattedTime,
	)
	if err != nil {
		return nil, err
	}
	tx.CreatedAt = tx.CreatedAt.UTC()
	return &tx, nil
}
