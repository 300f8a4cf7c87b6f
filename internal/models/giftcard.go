package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gift card statuses. Expiry is enforced at read time; no background job
// flips active cards to expired.
const (
	GiftCardStatusActive   = "active"
	GiftCardStatusRedeemed = "redeemed"
	GiftCardStatusExpired  = "expired"
	GiftCardStatusInactive = "inactive"
)

// GiftCardDB represents a gift card row in the database.
// current_balance is mutated only by the redemption path and always
// satisfies 0 <= current_balance <= initial_amount.
type GiftCardDB struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Code            string          `json:"code" db:"code"` // stored normalized for new cards; legacy rows may contain separators
	Currency        string          `json:"currency" db:"currency"`
	InitialAmount   decimal.Decimal `json:"initial_amount" db:"initial_amount"`
	CurrentBalance  decimal.Decimal `json:"current_balance" db:"current_balance"`
	Status          string          `json:"status" db:"status"`
	PurchaserEmail  *string         `json:"purchaser_email" db:"purchaser_email"`
	RecipientEmail  *string         `json:"recipient_email" db:"recipient_email"`
	RecipientName   *string         `json:"recipient_name" db:"recipient_name"`
	PersonalMessage *string         `json:"personal_message" db:"personal_message"`
	ExpiresAt       *time.Time      `json:"expires_at" db:"expires_at"` // nil means the card never expires
	PurchasedAt     time.Time       `json:"purchased_at" db:"purchased_at"`
	LastUsedAt      *time.Time      `json:"last_used_at" db:"last_used_at"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
