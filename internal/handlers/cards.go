package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

// GiftCardLister defines the interface that the read repository must implement.
type GiftCardLister interface {
	List(ctx context.Context) ([]models.GiftCardDB, error)
}

// TransactionLister defines the interface that the read repository must implement.
type TransactionLister interface {
	ListByGiftCardID(ctx context.Context, giftCardID uuid.UUID) ([]models.GiftCardTransactionDB, error)
}

// AdminGiftCard represents one card row in the admin listing
// swagger:model AdminGiftCard
type AdminGiftCard struct {
	ID              string     `json:"id"`
	Code            string     `json:"code"`
	Currency        string     `json:"currency"`
	InitialAmount   float64    `json:"initialAmount"`
	CurrentBalance  float64    `json:"currentBalance"`
	Status          string     `json:"status"`
	PurchaserEmail  *string    `json:"purchaserEmail,omitempty"`
	RecipientEmail  *string    `json:"recipientEmail,omitempty"`
	RecipientName   *string    `json:"recipientName,omitempty"`
	PersonalMessage *string    `json:"personalMessage,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	LastUsed        *time.Time `json:"lastUsed,omitempty"`
	PurchasedAt     time.Time  `json:"purchasedAt"`
}

// ListGiftCardsResponse represents the admin card listing
// swagger:model ListGiftCardsResponse
type ListGiftCardsResponse struct {
	GiftCards []AdminGiftCard `json:"giftCards"`
}

// AdminTransaction represents one audit row for a card
// swagger:model AdminTransaction
type AdminTransaction struct {
	TransactionID   string    `json:"transactionId"`
	GiftCardID      string    `json:"giftCardId"`
	OrderID         *string   `json:"orderId,omitempty"`
	StripeOrderID   *string   `json:"stripeOrderId,omitempty"`
	AmountUsed      float64   `json:"amountUsed"`
	BalanceBefore   float64   `json:"balanceBefore"`
	BalanceAfter    float64   `json:"balanceAfter"`
	TransactionType string    `json:"transactionType"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListTransactionsResponse represents a card's audit history
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	Transactions []AdminTransaction `json:"transactions"`
}

// CardsErrorResponse represents an error response for the admin listings
// swagger:model CardsErrorResponse
type CardsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListGiftCardsHandler returns an HTTP handler listing all gift cards.
// @Summary List gift cards
// @Description List every issued gift card, newest first.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ListGiftCardsResponse "Gift cards"
// @Failure 401 {object} handlers.CardsErrorResponse "Unauthorized"
// @Router /admin/gift-cards [get]
// @Security BearerAuth
func NewListGiftCardsHandler(lister GiftCardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := lister.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list gift cards", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CardsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ListGiftCardsResponse{GiftCards: make([]AdminGiftCard, 0, len(cards))}
		for _, card := range cards {
			resp.GiftCards = append(resp.GiftCards, AdminGiftCard{
				ID:              card.ID.String(),
				Code:            card.Code,
				Currency:        card.Currency,
				InitialAmount:   card.InitialAmount.InexactFloat64(),
				CurrentBalance:  card.CurrentBalance.InexactFloat64(),
				Status:          card.Status,
				PurchaserEmail:  card.PurchaserEmail,
				RecipientEmail:  card.RecipientEmail,
				RecipientName:   card.RecipientName,
				PersonalMessage: card.PersonalMessage,
				ExpiresAt:       card.ExpiresAt,
				LastUsed:        card.LastUsedAt,
				PurchasedAt:     card.PurchasedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewListTransactionsHandler returns an HTTP handler listing the audit
// history of one gift card.
// @Summary List gift card transactions
// @Description List the redemption history of a gift card, newest first.
// @Tags admin
// @Produce json
// @Param id path string true "Gift card ID"
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions"
// @Failure 400 {object} handlers.CardsErrorResponse "Invalid gift card ID"
// @Failure 401 {object} handlers.CardsErrorResponse "Unauthorized"
// @Router /admin/gift-cards/{id}/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(lister TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			logger.Log.Warnw("invalid gift card id", "id", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CardsErrorResponse{Error: "Invalid gift card ID"})
			return
		}

		txns, err := lister.ListByGiftCardID(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to list gift card transactions", "gift_card_id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CardsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ListTransactionsResponse{Transactions: make([]AdminTransaction, 0, len(txns))}
		for _, txn := range txns {
			resp.Transactions = append(resp.Transactions, AdminTransaction{
				TransactionID:   txn.TransactionID.String(),
				GiftCardID:      txn.GiftCardID.String(),
				OrderID:         txn.OrderID,
				StripeOrderID:   txn.StripeOrderID,
				AmountUsed:      txn.AmountUsed.InexactFloat64(),
				BalanceBefore:   txn.BalanceBefore.InexactFloat64(),
				BalanceAfter:    txn.BalanceAfter.InexactFloat64(),
				TransactionType: txn.TransactionType,
				CreatedAt:       txn.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
