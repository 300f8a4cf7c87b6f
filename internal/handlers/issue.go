package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/services"
)

// GiftCardIssuer defines the interface that the service must implement.
type GiftCardIssuer interface {
	Issue(ctx context.Context, p services.IssueParams) (*services.IssuedGiftCard, error)
}

// IssueRequest represents the JSON body for issuing a gift card
// swagger:model IssueRequest
type IssueRequest struct {
	// Amount loaded onto the card
	// required: true
	// default: 50.0
	InitialAmount float64 `json:"initialAmount"`

	// Currency code
	// default: EUR
	Currency string `json:"currency,omitempty"`

	// Purchaser email
	PurchaserEmail *string `json:"purchaserEmail,omitempty"`

	// Recipient email
	RecipientEmail *string `json:"recipientEmail,omitempty"`

	// Recipient display name
	RecipientName *string `json:"recipientName,omitempty"`

	// Personal message printed on the card
	PersonalMessage *string `json:"personalMessage,omitempty"`

	// Expiry timestamp, RFC 3339; omit for a card that never expires
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// IssueResponse represents a successful issuance response
// swagger:model IssueResponse
type IssueResponse struct {
	// Always true on success
	// default: true
	Success bool `json:"success"`

	// Dashed code to hand to the customer
	// default: AB12-CD34-EF56-GH78
	Code string `json:"code"`

	// Amount loaded onto the card
	// default: 50.0
	InitialAmount float64 `json:"initialAmount"`

	// Currency code
	// default: EUR
	Currency string `json:"currency"`

	// Expiry timestamp, absent when the card never expires
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// IssueErrorResponse represents an error response for issuance
// swagger:model IssueErrorResponse
type IssueErrorResponse struct {
	// Error message
	// default: Initial amount must be positive
	Error string `json:"error"`
}

// NewIssueHandler returns an HTTP handler for issuing new gift cards.
// @Summary Issue a gift card
// @Description Generate a fresh unique code and create an active card with current balance equal to the initial amount.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.IssueRequest true "Issue Request"
// @Success 201 {object} handlers.IssueResponse "Gift card issued"
// @Failure 400 {object} handlers.IssueErrorResponse "Invalid initial amount"
// @Failure 401 {object} handlers.IssueErrorResponse "Unauthorized"
// @Router /admin/gift-cards [post]
// @Security BearerAuth
func NewIssueHandler(svc GiftCardIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req IssueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode issue request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(IssueErrorResponse{Error: "Invalid request body"})
			return
		}

		issued, err := svc.Issue(ctx, services.IssueParams{
			InitialAmount:   decimal.NewFromFloat(req.InitialAmount),
			Currency:        req.Currency,
			PurchaserEmail:  req.PurchaserEmail,
			RecipientEmail:  req.RecipientEmail,
			RecipientName:   req.RecipientName,
			PersonalMessage: req.PersonalMessage,
			ExpiresAt:       req.ExpiresAt,
		})
		if err != nil {
			if errors.Is(err, services.ErrInitialAmountRequired) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(IssueErrorResponse{Error: "Initial amount must be positive"})
				return
			}
			logger.Log.Errorw("failed to issue gift card", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(IssueErrorResponse{Error: "Internal server error"})
			return
		}

		resp := IssueResponse{
			Success:       true,
			Code:          issued.DisplayCode,
			InitialAmount: issued.Card.InitialAmount.InexactFloat64(),
			Currency:      issued.Card.Currency,
			ExpiresAt:     issued.Card.ExpiresAt,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
