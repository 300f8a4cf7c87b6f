package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-gift-cards/internal/codes"
	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

// Error variables
var (
	ErrCodeRequired       = errors.New("gift card code is required")
	ErrOrderTotalRequired = errors.New("order total is required")
	ErrGiftCardNotFound   = errors.New("gift card not found")
	ErrNoBalance          = errors.New("gift card has no remaining balance")
	ErrGiftCardExpired    = errors.New("gift card has expired")
	ErrBalanceConflict    = errors.New("gift card balance was changed")
)

// GiftCardInactiveError reports a card that exists but is not active.
// The actual status is carried so callers can surface it.
type GiftCardInactiveError struct {
	Status string
}

func (e *GiftCardInactiveError) Error() string {
	return fmt.Sprintf("gift card is %s", e.Status)
}

// GiftCardReader resolves normalized codes to gift card rows.
type GiftCardReader interface {
	GetByCode(ctx context.Context, normalizedCode string, activeOnly bool) (*models.GiftCardDB, error)
}

// GiftCardRedeemWriter applies the conditional balance decrement.
// Implementations return sql.ErrNoRows when the optimistic check fails.
type GiftCardRedeemWriter interface {
	ApplyRedemption(ctx context.Context, id uuid.UUID, oldBalance, newBalance decimal.Decimal, status string) error
}

// TransactionWriter appends redemption records to the audit log.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.GiftCardTransactionDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ValidationResult is the read-only usability check result.
type ValidationResult struct {
	Code           string
	CurrentBalance decimal.Decimal
	InitialAmount  decimal.Decimal
	Currency       string
}

// RedemptionResult describes a committed redemption. OrderTotalDue is the
// portion of the order the card did not cover.
type RedemptionResult struct {
	AmountApplied    decimal.Decimal
	RemainingBalance decimal.Decimal
	OrderTotalDue    decimal.Decimal
	GiftCardCode     string
}

// GiftCardService implements the gift card ledger: validation, redemption
// and balance reads over the gift_cards table.
type GiftCardService struct {
	reader      GiftCardReader
	writer      GiftCardRedeemWriter
	txnWriter   TransactionWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewGiftCardService creates a new GiftCardService.
func NewGiftCardService(
	reader GiftCardReader,
	writer GiftCardRedeemWriter,
	txnWriter TransactionWriter,
	kafkaWriter KafkaWriter,
) *GiftCardService {
	return &GiftCardService{
		reader:      reader,
		writer:      writer,
		txnWriter:   txnWriter,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Validate performs the read-only usability check used at checkout before
// committing to a card. It never mutates balance, status or last_used_at.
func (s *GiftCardService) Validate(ctx context.Context, code string) (*ValidationResult, error) {
	normalized := codes.Normalize(code)
	if normalized == "" {
		return nil, ErrCodeRequired
	}

	card, err := s.reader.GetByCode(ctx, normalized, false)
	if err != nil {
		logger.Log.Errorw("failed to look up gift card", "code", normalized, "error", err)
		return nil, err
	}
	if card == nil {
		return nil, ErrGiftCardNotFound
	}

	if card.Status != models.GiftCardStatusActive {
		return nil, &GiftCardInactiveError{Status: card.Status}
	}
	if card.CurrentBalance.Sign() <= 0 {
		return nil, ErrNoBalance
	}
	if card.ExpiresAt != nil && card.ExpiresAt.Before(s.now()) {
		return nil, ErrGiftCardExpired
	}

	return &ValidationResult{
		Code:           card.Code,
		CurrentBalance: card.CurrentBalance,
		InitialAmount:  card.InitialAmount,
		Currency:       card.Currency,
	}, nil
}

// Redeem consumes up to min(balance, orderTotal) from the card, then
// records the transaction and publishes a redemption event.
//
// The balance update is conditioned on the balance read in this call; a
// concurrent redemption makes the update affect zero rows and the call
// fails with ErrBalanceConflict. The conflict is surfaced instead of being
// retried here because a silent retry could apply a stale order total.
//
// The audit insert and the event publish run after the balance commit and
// are best-effort: their failure is logged, not surfaced, because the
// balance column is the source of truth and must not be rolled back over
// an audit-trail failure.
//
// Redeem is not idempotent. Calling it twice with the same arguments
// consumes the card twice; callers own at-most-once semantics per order.
func (s *GiftCardService) Redeem(ctx context.Context, code string, orderTotal decimal.Decimal, orderID, stripeOrderID *string) (*RedemptionResult, error) {
	normalized := codes.Normalize(code)
	if normalized == "" {
		return nil, ErrCodeRequired
	}
	if !orderTotal.IsPositive() {
		return nil, ErrOrderTotalRequired
	}

	// Cards in any status other than active are invisible here: a
	// redeemed, expired or inactive card cannot be redeemed against.
	card, err := s.reader.GetByCode(ctx, normalized, true)
	if err != nil {
		logger.Log.Errorw("failed to look up gift card", "code", normalized, "error", err)
		return nil, err
	}
	if card == nil {
		return nil, ErrGiftCardNotFound
	}

	// Unreachable given the active-only lookup, checked anyway.
	if card.CurrentBalance.Sign() <= 0 {
		return nil, ErrNoBalance
	}
	if card.ExpiresAt != nil && card.ExpiresAt.Before(s.now()) {
		return nil, ErrGiftCardExpired
	}

	// Central business rule: never overdraw the card, never apply more
	// than the order still owes.
	amountToUse := decimal.Min(card.CurrentBalance, orderTotal)
	newBalance := card.CurrentBalance.Sub(amountToUse)

	status := models.GiftCardStatusActive
	if newBalance.IsZero() {
		status = models.GiftCardStatusRedeemed
	}

	if err := s.writer.ApplyRedemption(ctx, card.ID, card.CurrentBalance, newBalance, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("gift card balance changed concurrently",
				"gift_card_id", card.ID, "balance_read", card.CurrentBalance)
			return nil, ErrBalanceConflict
		}
		logger.Log.Errorw("failed to apply redemption", "gift_card_id", card.ID, "error", err)
		return nil, err
	}

	txn := &models.GiftCardTransactionDB{
		TransactionID:   uuid.New(),
		GiftCardID:      card.ID,
		OrderID:         orderID,
		StripeOrderID:   stripeOrderID,
		AmountUsed:      amountToUse,
		BalanceBefore:   card.CurrentBalance,
		BalanceAfter:    newBalance,
		TransactionType: models.TransactionTypeRedemption,
	}
	if err := s.txnWriter.Save(ctx, txn); err != nil {
		// Balance already committed; losing an audit record is preferable
		// to double-charging.
		logger.Log.Errorw("failed to record gift card transaction",
			"transaction_id", txn.TransactionID, "gift_card_id", card.ID, "error", err)
	}

	s.publishRedemption(ctx, txn, normalized)

	return &RedemptionResult{
		AmountApplied:    amountToUse,
		RemainingBalance: newBalance,
		OrderTotalDue:    orderTotal.Sub(amountToUse),
		GiftCardCode:     normalized,
	}, nil
}

// Balance returns the full card detail for the balance-check page.
func (s *GiftCardService) Balance(ctx context.Context, code string) (*models.GiftCardDB, error) {
	normalized := codes.Normalize(code)
	if normalized == "" {
		return nil, ErrCodeRequired
	}

	card, err := s.reader.GetByCode(ctx, normalized, false)
	if err != nil {
		logger.Log.Errorw("failed to look up gift card", "code", normalized, "error", err)
		return nil, err
	}
	if card == nil {
		return nil, ErrGiftCardNotFound
	}
	return card, nil
}

// publishRedemption publishes a redemption event to Kafka.
func (s *GiftCardService) publishRedemption(ctx context.Context, txn *models.GiftCardTransactionDB, code string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.RedemptionEvent{
		EventID:       txn.TransactionID.String(),
		Timestamp:     s.now().Unix(),
		GiftCardID:    txn.GiftCardID.String(),
		Code:          code,
		AmountUsed:    txn.AmountUsed.String(),
		BalanceBefore: txn.BalanceBefore.String(),
		BalanceAfter:  txn.BalanceAfter.String(),
		OrderID:       txn.OrderID,
		StripeOrderID: txn.StripeOrderID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal redemption event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish redemption event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("redemption event published", "transaction_id", txn.TransactionID, "amount_used", event.AmountUsed)
	}
}
