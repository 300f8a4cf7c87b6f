package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-gift-cards/internal/codes"
	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

// Error variables
var (
	ErrInitialAmountRequired = errors.New("initial amount must be positive")
	ErrCodeGenerationFailed  = errors.New("failed to generate a unique gift card code")
)

// maxCodeAttempts bounds the generate-and-check loop during issuance.
const maxCodeAttempts = 10

// GiftCardSaver inserts newly issued gift cards.
type GiftCardSaver interface {
	Save(ctx context.Context, card *models.GiftCardDB) error
}

// IssueParams describes a gift card to issue.
type IssueParams struct {
	InitialAmount   decimal.Decimal
	Currency        string
	PurchaserEmail  *string
	RecipientEmail  *string
	RecipientName   *string
	PersonalMessage *string
	ExpiresAt       *time.Time
}

// IssuedGiftCard is the issuance result. DisplayCode carries the dashed
// XXXX-XXXX-XXXX-XXXX form shown to customers; the card row stores the
// normalized code, which enforces uniqueness on the canonical form.
type IssuedGiftCard struct {
	Card        *models.GiftCardDB
	DisplayCode string
}

// GiftCardIssueService creates gift cards with fresh unique codes.
type GiftCardIssueService struct {
	reader GiftCardReader
	writer GiftCardSaver
	now    func() time.Time
}

// NewGiftCardIssueService creates a new GiftCardIssueService.
func NewGiftCardIssueService(reader GiftCardReader, writer GiftCardSaver) *GiftCardIssueService {
	return &GiftCardIssueService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
}

// Issue generates a unique code and inserts an active card with
// current_balance equal to initial_amount.
func (s *GiftCardIssueService) Issue(ctx context.Context, p IssueParams) (*IssuedGiftCard, error) {
	if !p.InitialAmount.IsPositive() {
		return nil, ErrInitialAmountRequired
	}

	currency := p.Currency
	if currency == "" {
		currency = "EUR"
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		displayCode, err := codes.Generate()
		if err != nil {
			logger.Log.Errorw("failed to generate gift card code", "error", err)
			return nil, err
		}
		normalized := codes.Normalize(displayCode)

		existing, err := s.reader.GetByCode(ctx, normalized, false)
		if err != nil {
			logger.Log.Errorw("failed to check gift card code uniqueness", "error", err)
			return nil, err
		}
		if existing != nil {
			continue
		}

		now := s.now()
		card := &models.GiftCardDB{
			ID:              uuid.New(),
			Code:            normalized,
			Currency:        currency,
			InitialAmount:   p.InitialAmount,
			CurrentBalance:  p.InitialAmount,
			Status:          models.GiftCardStatusActive,
			PurchaserEmail:  p.PurchaserEmail,
			RecipientEmail:  p.RecipientEmail,
			RecipientName:   p.RecipientName,
			PersonalMessage: p.PersonalMessage,
			ExpiresAt:       p.ExpiresAt,
			PurchasedAt:     now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := s.writer.Save(ctx, card); err != nil {
			logger.Log.Errorw("failed to save gift card", "gift_card_id", card.ID, "error", err)
			return nil, err
		}

		logger.Log.Infow("gift card issued",
			"gift_card_id", card.ID, "currency", currency, "initial_amount", p.InitialAmount)

		return &IssuedGiftCard{Card: card, DisplayCode: displayCode}, nil
	}

	logger.Log.Errorw("exhausted gift card code generation attempts", "attempts", maxCodeAttempts)
	return nil, ErrCodeGenerationFailed
}
