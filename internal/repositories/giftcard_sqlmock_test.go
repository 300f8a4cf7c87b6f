package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestApplyRedemption_RowCountContract(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGiftCardWriteRepository(db)
	ctx := context.Background()

	id := uuid.New()

	t.Run("one row updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE gift_cards").
			WithArgs(id, decimal.NewFromInt(50), decimal.NewFromInt(20), models.GiftCardStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyRedemption(ctx, id, decimal.NewFromInt(50), decimal.NewFromInt(20), models.GiftCardStatusActive)
		assert.NoError(t, err)
	})

	t.Run("zero rows maps to sql.ErrNoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE gift_cards").
			WithArgs(id, decimal.NewFromInt(50), decimal.NewFromInt(20), models.GiftCardStatusActive).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ApplyRedemption(ctx, id, decimal.NewFromInt(50), decimal.NewFromInt(20), models.GiftCardStatusActive)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("driver error passes through", func(t *testing.T) {
		mock.ExpectExec("UPDATE gift_cards").
			WithArgs(id, decimal.NewFromInt(50), decimal.NewFromInt(20), models.GiftCardStatusActive).
			WillReturnError(sql.ErrConnDone)

		err := repo.ApplyRedemption(ctx, id, decimal.NewFromInt(50), decimal.NewFromInt(20), models.GiftCardStatusActive)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
