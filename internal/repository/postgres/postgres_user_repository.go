package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const userTracer = "user-repository"

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Upsert(ctx context.Context, user *models.User) (stored *models.User, created bool, err error) {
	if user == nil {
		return nil, false, pkgerrors.ErrNilUser
	}
	if strings.TrimSpace(user.Email) == "" {
		return nil, false, pkgerrors.ErrInvalidInput
	}

	ctx, done := observe(ctx, userTracer, "UpsertUser")
	defer done(&err)

	query := `
	INSERT INTO users (id, email, name, photo_url, role, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (email) DO NOTHING
	RETURNING id, email, name, photo_url, role, created_at
	`
	var u models.User
	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, user.PhotoURL, user.Role, user.CreatedAt,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Email already registered; the stored record wins.
		existing, getErr := r.GetByEmail(ctx, user.Email)
		if getErr != nil {
			err = getErr
			return nil, false, err
		}
		err = nil
		slog.Info("user already exists", "method", "Upsert", "email", user.Email, "user_id", existing.ID)
		return existing, false, nil
	case err != nil:
		slog.Error("failed to upsert user", "method", "Upsert", "email", user.Email, "error", err)
		return nil, false, persistenceErr("upsert user", err)
	}

	slog.Info("user created", "method", "Upsert", "email", u.Email, "user_id", u.ID, "role", u.Role)
	return &u, true, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user *models.User, err error) {
	if email == "" {
		return nil, pkgerrors.ErrUserNotFound
	}

	ctx, done := observe(ctx, userTracer, "GetUserByEmail")
	defer done(&err)

	query := `SELECT id, email, name, photo_url, role, created_at FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user *models.User, err error) {
	ctx, done := observe(ctx, userTracer, "GetUserByID", attribute.String("user_id", id.String()))
	defer done(&err)

	query := `SELECT id, email, name, photo_url, role, created_at FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresUserRepository) ListByRoleExcept(ctx context.Context, role models.Role) (users []models.User, err error) {
	ctx, done := observe(ctx, userTracer, "ListUsersByRoleExcept", attribute.String("role", string(role)))
	defer done(&err)

	query := `SELECT id, email, name, photo_url, role, created_at FROM users WHERE role <> $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		slog.Error("failed to list users", "method", "ListByRoleExcept", "error", err)
		return nil, persistenceErr("list users", err)
	}
	defer rows.Close()

	users = make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt); err != nil {
			return nil, persistenceErr("scan user", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, persistenceErr("iterate users", err)
	}
	return users, nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) (affected int64, err error) {
	ctx, done := observe(ctx, userTracer, "DeleteUser", attribute.String("user_id", id.String()))
	defer done(&err)

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete user", "method", "Delete", "user_id", id, "error", err)
		return 0, persistenceErr("delete user", err)
	}
	affected, err = res.RowsAffected()
	if err != nil {
		return 0, persistenceErr("read affected rows", err)
	}
	slog.Info("user deleted", "method", "Delete", "user_id", id, "affected", affected)
	return affected, nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.Role, &u.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, pkgerrors.ErrUserNotFound
	case err != nil:
		slog.Error("failed to get user", "error", err)
		return nil, persistenceErr("get user", err)
	}
	return &u, nil
}
