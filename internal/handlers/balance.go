package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/models"
)

// GiftCardBalanceReader defines the interface that the service must implement.
type GiftCardBalanceReader interface {
	Balance(ctx context.Context, code string) (*models.GiftCardDB, error)
}

// BalanceRequest represents the JSON body for a balance check
// swagger:model BalanceRequest
type BalanceRequest struct {
	// Gift card code, separators and case are ignored
	// required: true
	// default: AB12-CD34-EF56-GH78
	Code string `json:"code"`
}

// BalanceGiftCard represents the full card detail on the balance page
// swagger:model BalanceGiftCard
type BalanceGiftCard struct {
	// Normalized gift card code
	Code string `json:"code"`

	// Remaining balance
	// default: 20.0
	CurrentBalance float64 `json:"currentBalance"`

	// Original amount
	// default: 50.0
	InitialAmount float64 `json:"initialAmount"`

	// Currency code
	// default: EUR
	Currency string `json:"currency"`

	// Card status
	// default: active
	Status string `json:"status"`

	// Expiry timestamp, absent when the card never expires
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// Last redemption timestamp
	LastUsed *time.Time `json:"lastUsed,omitempty"`

	// Purchase timestamp
	PurchasedAt time.Time `json:"purchasedAt"`
}

// BalanceResponse represents a balance check response
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Always true when the card was found
	// default: true
	Success bool `json:"success"`

	// The card detail
	GiftCard BalanceGiftCard `json:"giftCard"`
}

// BalanceErrorResponse represents an error response for a balance check
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Gift card not found
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler for the balance-check page.
// Unlike validation it reports cards in any status, so customers can see
// the state of a redeemed or expired card.
// @Summary Check a gift card balance
// @Description Return the full card detail for any known gift card, regardless of status.
// @Tags gift-cards
// @Accept json
// @Produce json
// @Param request body handlers.BalanceRequest true "Balance Request"
// @Success 200 {object} handlers.BalanceResponse "Card detail"
// @Failure 404 {object} handlers.BalanceErrorResponse "Gift card not found"
// @Router /gift-cards/balance [post]
func NewBalanceHandler(svc GiftCardBalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req BalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode balance request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Invalid request body"})
			return
		}

		card, err := svc.Balance(ctx, req.Code)
		if err != nil {
			writeGiftCardError(w, err)
			return
		}

		resp := BalanceResponse{
			Success: true,
			GiftCard: BalanceGiftCard{
				Code:           card.Code,
				CurrentBalance: card.CurrentBalance.InexactFloat64(),
				InitialAmount:  card.InitialAmount.InexactFloat64(),
				Currency:       card.Currency,
				Status:         card.Status,
				ExpiresAt:      card.ExpiresAt,
				LastUsed:       card.LastUsedAt,
				PurchasedAt:    card.PurchasedAt,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
