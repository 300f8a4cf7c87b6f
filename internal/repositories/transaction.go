package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

// GiftCardTransactionWriteRepository appends redemption records to the
// audit log. The table is append-only: there is no update or delete path.
type GiftCardTransactionWriteRepository struct {
	db *sqlx.DB
}

func NewGiftCardTransactionWriteRepository(db *sqlx.DB) *GiftCardTransactionWriteRepository {
	return &GiftCardTransactionWriteRepository{db: db}
}

// Save inserts one redemption record.
func (r *GiftCardTransactionWriteRepository) Save(ctx context.Context, txn *models.GiftCardTransactionDB) error {
	query := `
		INSERT INTO gift_card_transactions (
			transaction_id, gift_card_id, order_id, stripe_order_id,
			amount_used, balance_before, balance_after, transaction_type, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{
		txn.TransactionID, txn.GiftCardID, txn.OrderID, txn.StripeOrderID,
		txn.AmountUsed, txn.BalanceBefore, txn.BalanceAfter, txn.TransactionType,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("gift card transaction insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GiftCardTransactionReadRepository serves the admin audit history.
type GiftCardTransactionReadRepository struct {
	db *sqlx.DB
}

func NewGiftCardTransactionReadRepository(db *sqlx.DB) *GiftCardTransactionReadRepository {
	return &GiftCardTransactionReadRepository{db: db}
}

// ListByGiftCardID returns all transactions for one card, newest first.
func (r *GiftCardTransactionReadRepository) ListByGiftCardID(ctx context.Context, giftCardID uuid.UUID) ([]models.GiftCardTransactionDB, error) {
	const query = `
		SELECT transaction_id, gift_card_id, order_id, stripe_order_id,
		       amount_used, balance_before, balance_after, transaction_type, created_at
		FROM gift_card_transactions
		WHERE gift_card_id = $1
		ORDER BY created_at DESC
	`

	var txns []models.GiftCardTransactionDB
	err := r.db.SelectContext(ctx, &txns, query, giftCardID)

	logger.Log.Infow("gift card transaction list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{giftCardID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
