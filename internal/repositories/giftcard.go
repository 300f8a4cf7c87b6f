package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-gift-cards/internal/codes"
	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

const giftCardColumns = `
	id, code, currency, initial_amount, current_balance, status,
	purchaser_email, recipient_email, recipient_name, personal_message,
	expires_at, purchased_at, last_used_at, created_at, updated_at
`

// GiftCardReadRepository resolves gift card codes to rows.
type GiftCardReadRepository struct {
	db *sqlx.DB
}

func NewGiftCardReadRepository(db *sqlx.DB) *GiftCardReadRepository {
	return &GiftCardReadRepository{db: db}
}

// GetByCode resolves a normalized code to at most one gift card.
// It tries an exact match first; new cards are stored normalized so this
// covers them. Legacy rows were persisted with separators baked into the
// code column, so on a miss the stored codes are compared after applying
// the same normalization. The first structural match in fetch order wins.
// Returns (nil, nil) when no card matches.
func (r *GiftCardReadRepository) GetByCode(ctx context.Context, normalizedCode string, activeOnly bool) (*models.GiftCardDB, error) {
	query := `SELECT ` + giftCardColumns + ` FROM gift_cards WHERE code = $1`
	if activeOnly {
		query += ` AND status = 'active'`
	}

	var card models.GiftCardDB
	err := r.db.GetContext(ctx, &card, query, normalizedCode)

	logger.Log.Infow("gift card lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{normalizedCode},
		"error", err,
	)

	if err == nil {
		return &card, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	candidates, err := r.list(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if codes.Normalize(candidates[i].Code) == normalizedCode {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// List returns all gift cards, newest first.
func (r *GiftCardReadRepository) List(ctx context.Context) ([]models.GiftCardDB, error) {
	return r.list(ctx, false)
}

func (r *GiftCardReadRepository) list(ctx context.Context, activeOnly bool) ([]models.GiftCardDB, error) {
	query := `SELECT ` + giftCardColumns + ` FROM gift_cards`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY created_at DESC`

	var cards []models.GiftCardDB
	err := r.db.SelectContext(ctx, &cards, query)

	logger.Log.Infow("gift card list",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(cards),
		"error", err,
	)

	return cards, err
}

// GiftCardWriteRepository mutates gift card rows.
type GiftCardWriteRepository struct {
	db *sqlx.DB
}

func NewGiftCardWriteRepository(db *sqlx.DB) *GiftCardWriteRepository {
	return &GiftCardWriteRepository{db: db}
}

// ApplyRedemption applies a balance decrement conditioned on the balance
// being unchanged since it was read. The WHERE clause on current_balance is
// the optimistic concurrency check: when a concurrent redemption got there
// first, zero rows are affected and sql.ErrNoRows is returned. The caller
// decides whether to retry; this method never retries.
func (r *GiftCardWriteRepository) ApplyRedemption(ctx context.Context, id uuid.UUID, oldBalance, newBalance decimal.Decimal, status string) error {
	query := `
		UPDATE gift_cards
		SET current_balance = $3,
		    status = $4,
		    last_used_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1 AND current_balance = $2
	`
	args := []any{id, oldBalance, newBalance, status}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("gift card redemption update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Save inserts a newly issued gift card.
func (r *GiftCardWriteRepository) Save(ctx context.Context, card *models.GiftCardDB) error {
	query := `
		INSERT INTO gift_cards (
			id, code, currency, initial_amount, current_balance, status,
			purchaser_email, recipient_email, recipient_name, personal_message,
			expires_at, purchased_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW(), NOW())
	`
	args := []any{
		card.ID, card.Code, card.Currency, card.InitialAmount, card.CurrentBalance,
		card.Status, card.PurchaserEmail, card.RecipientEmail, card.RecipientName,
		card.PersonalMessage, card.ExpiresAt,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("gift card insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{card.ID, card.Code, card.Currency, card.InitialAmount},
		"error", err,
	)

	return err
}
