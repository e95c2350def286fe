package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	repository "github.com/honeynil/DepositWithdrawService/internal/repository/postgres"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var userColumns = []string{"id", "email", "name", "photo_url", "role", "created_at"}

func TestPostgresUserRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("NilUser", func(t *testing.T) {
		_, _, err := repo.Upsert(ctx, nil)
		assert.ErrorIs(t, err, pkgerrors.ErrNilUser)
	})

	t.Run("Created", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), Email: "new@example.com", Name: "New", Role: models.RoleCustomer, CreatedAt: createdAt}
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs(user.ID, user.Email, user.Name, user.PhotoURL, user.Role, user.CreatedAt).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(user.ID.String(), user.Email, user.Name, "", "customer", createdAt))

		stored, created, err := repo.Upsert(ctx, user)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, user.ID, stored.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExistingKeepsRole", func(t *testing.T) {
		existingID := uuid.New()
		user := &models.User{ID: uuid.New(), Email: "boss@example.com", Role: models.RoleCustomer, CreatedAt: createdAt}
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs(user.Email).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(existingID.String(), user.Email, "Boss", "", "admin", createdAt))

		stored, created, err := repo.Upsert(ctx, user)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existingID, stored.ID)
		assert.Equal(t, models.RoleAdmin, stored.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), Email: "x@example.com", Role: models.RoleCustomer}
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(fmt.Errorf("db down"))

		_, _, err := repo.Upsert(ctx, user)
		assert.ErrorIs(t, err, pkgerrors.ErrPersistence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserRepository_Reads(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	ctx := context.Background()

	t.Run("GetByEmailNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByID", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "a@example.com", "A", "", "customer", time.Now()))

		user, err := repo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "a@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListByRoleExcept", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE role <> $1 ORDER BY created_at DESC`)).
			WithArgs(models.RoleAdmin).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(uuid.NewString(), "b@example.com", "B", "", "customer", time.Now()).
				AddRow(uuid.NewString(), "a@example.com", "A", "", "customer", time.Now().Add(-time.Hour)))

		users, err := repo.ListByRoleExcept(ctx, models.RoleAdmin)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "b@example.com", users[0].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
