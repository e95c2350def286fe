package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const channelTracer = "channel-repository"

type PostgresChannelRepository struct {
	db *sql.DB
}

func NewPostgresChannelRepository(db *sql.DB) *PostgresChannelRepository {
	return &PostgresChannelRepository{db: db}
}

func (r *PostgresChannelRepository) Create(ctx context.Context, ch *models.Channel) (err error) {
	if ch == nil {
		return pkgerrors.ErrNilChannel
	}
	if !ch.Kind.Valid() {
		return pkgerrors.ErrInvalidKind
	}

	ctx, done := observe(ctx, channelTracer, "CreateChannel", attribute.String("kind", string(ch.Kind)))
	defer done(&err)

	query := `
	INSERT INTO channels (id, kind, name, number, admin_name, admin_email, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.ExecContext(ctx, query, ch.ID, ch.Kind, ch.Name, ch.Number, ch.Admin.Name, ch.Admin.Email, ch.CreatedAt)
	if err != nil {
		slog.Error("failed to create channel", "method", "Create", "kind", ch.Kind, "error", err)
		return persistenceErr("create channel", err)
	}

	slog.Info("channel created", "method", "Create", "kind", ch.Kind, "id", ch.ID, "admin_email", ch.Admin.Email)
	return nil
}

func (r *PostgresChannelRepository) GetByID(ctx context.Context, kind models.Kind, id uuid.UUID) (ch *models.Channel, err error) {
	ctx, done := observe(ctx, channelTracer, "GetChannelByID", attribute.String("channel_id", id.String()))
	defer done(&err)

	query := `SELECT id, kind, name, number, admin_name, admin_email, created_at FROM channels WHERE id = $1 AND kind = $2`
	var c models.Channel
	err = r.db.QueryRowContext(ctx, query, id, kind).Scan(&c.ID, &c.Kind, &c.Name, &c.Number, &c.Admin.Name, &c.Admin.Email, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrChannelNotFound
	}
	if err != nil {
		slog.Error("failed to get channel", "method", "GetByID", "channel_id", id, "error", err)
		return nil, persistenceErr("get channel", err)
	}
	return &c, nil
}

func (r *PostgresChannelRepository) List(ctx context.Context, kind models.Kind) (chs []models.Channel, err error) {
	ctx, done := observe(ctx, channelTracer, "ListChannels", attribute.String("kind", string(kind)))
	defer done(&err)

	query := `SELECT id, kind, name, number, admin_name, admin_email, created_at FROM channels WHERE kind = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, kind)
}

func (r *PostgresChannelRepository) ListByAdmin(ctx context.Context, kind models.Kind, email string) (chs []models.Channel, err error) {
	ctx, done := observe(ctx, channelTracer, "ListChannelsByAdmin", attribute.String("kind", string(kind)))
	defer done(&err)

	query := `SELECT id, kind, name, number, admin_name, admin_email, created_at FROM channels WHERE kind = $1 AND admin_email = $2 ORDER BY created_at DESC`
	return r.list(ctx, query, kind, email)
}

func (r *PostgresChannelRepository) Update(ctx context.Context, kind models.Kind, id uuid.UUID, patch models.ChannelPatch) (affected int64, err error) {
	ctx, done := observe(ctx, channelTracer, "UpdateChannel", attribute.String("channel_id", id.String()))
	defer done(&err)

	query := `UPDATE channels SET name = COALESCE($1, name), number = COALESCE($2, number) WHERE id = $3 AND kind = $4`
	res, err := r.db.ExecContext(ctx, query, patch.Name, patch.Number, id, kind)
	if err != nil {
		slog.Error("failed to update channel", "method", "Update", "channel_id", id, "error", err)
		return 0, persistenceErr("update channel", err)
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return 0, persistenceErr("read affected rows", err)
	}
	return affected, nil
}

func (r *PostgresChannelRepository) Delete(ctx context.Context, kind models.Kind, id uuid.UUID) (affected int64, err error) {
	ctx, done := observe(ctx, channelTracer, "DeleteChannel", attribute.String("channel_id", id.String()))
	defer done(&err)

	res, err := r.db.ExecContext(ctx, `DELETE FROM channels WHERE id = $1 AND kind = $2`, id, kind)
	if err != nil {
		slog.Error("failed to delete channel", "method", "Delete", "channel_id", id, "error", err)
		return 0, persistenceErr("delete channel", err)
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return 0, persistenceErr("read affected rows", err)
	}
	slog.Info("channel deleted", "method", "Delete", "channel_id", id, "affected", affected)
	return affected, nil
}

func (r *PostgresChannelRepository) list(ctx context.Context, query string, args ...any) ([]models.Channel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Error("failed to list channels", "error", err)
		return nil, persistenceErr("list channels", err)
	}
	defer rows.Close()

	chs := make([]models.Channel, 0)
	for rows.Next() {
		var c models.Channel
		if err := rows.Scan(&c.ID, &c.Kind, &c.Name, &c.Number, &c.Admin.Name, &c.Admin.Email, &c.CreatedAt); err != nil {
			return nil, persistenceErr("scan channel", err)
		}
		chs = append(chs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, persistenceErr("iterate channels", err)
	}
	return chs, nil
}
