package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionTypeRedemption is the only transaction type written today.
// refund/issuance types exist in principle but are not produced.
const TransactionTypeRedemption = "redemption"

// GiftCardTransactionDB represents one redemption event. Rows are
// append-only: never updated, never deleted.
type GiftCardTransactionDB struct {
	TransactionID   uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	GiftCardID      uuid.UUID       `json:"gift_card_id" db:"gift_card_id"`
	OrderID         *string         `json:"order_id" db:"order_id"`
	StripeOrderID   *string         `json:"stripe_order_id" db:"stripe_order_id"`
	AmountUsed      decimal.Decimal `json:"amount_used" db:"amount_used"`
	BalanceBefore   decimal.Decimal `json:"balance_before" db:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after" db:"balance_after"`
	TransactionType string          `json:"transaction_type" db:"transaction_type"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// RedemptionEvent is the message published to Kafka after a redemption
// commits. Publishing is best-effort: losing an event never rolls back
// the balance update.
type RedemptionEvent struct {
	EventID       string  `json:"event_id"`
	Timestamp     int64   `json:"timestamp"`
	GiftCardID    string  `json:"gift_card_id"`
	Code          string  `json:"code"`
	AmountUsed    string  `json:"amount_used"`
	BalanceBefore string  `json:"balance_before"`
	BalanceAfter  string  `json:"balance_after"`
	OrderID       *string `json:"order_id,omitempty"`
	StripeOrderID *string `json:"stripe_order_id,omitempty"`
}
