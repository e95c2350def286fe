package repository_test

import (
	"context"
	"database/sql"
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

var channelColumns = []string{"id", "kind", "name", "number", "admin_name", "admin_email", "created_at"}

func TestPostgresChannelRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresChannelRepository(db)
	ctx := context.Background()

	t.Run("NilChannel", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, nil), pkgerrors.ErrNilChannel)
	})

	t.Run("Create", func(t *testing.T) {
		ch := &models.Channel{
			ID:        uuid.New(),
			Kind:      models.KindDeposit,
			Name:      "bKash",
			Number:    "01711111111",
			Admin:     models.Contact{Name: "Admin", Email: "admin@example.com"},
			CreatedAt: time.Now().UTC(),
		}
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO channels`)).
			WithArgs(ch.ID, ch.Kind, ch.Name, ch.Number, ch.Admin.Name, ch.Admin.Email, ch.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, ch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM channels WHERE id = $1 AND kind = $2`)).
			WithArgs(id, models.KindWithdraw).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, models.KindWithdraw, id)
		assert.ErrorIs(t, err, pkgerrors.ErrChannelNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListByAdmin", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM channels WHERE kind = $1 AND admin_email = $2`)).
			WithArgs(models.KindDeposit, "admin@example.com").
			WillReturnRows(sqlmock.NewRows(channelColumns).
				AddRow(uuid.NewString(), "deposit", "Nagad", "0181", "Admin", "admin@example.com", time.Now()))

		chs, err := repo.ListByAdmin(ctx, models.KindDeposit, "admin@example.com")
		assert.NoError(t, err)
		assert.Len(t, chs, 1)
		assert.Equal(t, "admin@example.com", chs[0].Admin.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		id := uuid.New()
		name := "Rocket"
		patch := models.ChannelPatch{Name: &name}
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE channels SET name = COALESCE($1, name), number = COALESCE($2, number) WHERE id = $3 AND kind = $4`)).
			WithArgs("Rocket", nil, id, models.KindDeposit).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Update(ctx, models.KindDeposit, id, patch)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM channels WHERE id = $1 AND kind = $2`)).
			WithArgs(id, models.KindWithdraw).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Delete(ctx, models.KindWithdraw, id)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
