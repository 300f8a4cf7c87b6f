package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/services"
)

// GiftCardValidator defines the interface that the service must implement.
type GiftCardValidator interface {
	Validate(ctx context.Context, code string) (*services.ValidationResult, error)
}

// ValidateRequest represents the JSON body for validating a gift card
// swagger:model ValidateRequest
type ValidateRequest struct {
	// Gift card code, separators and case are ignored
	// required: true
	// default: AB12-CD34-EF56-GH78
	Code string `json:"code"`
}

// ValidatedGiftCard represents the usable card returned by validation
// swagger:model ValidatedGiftCard
type ValidatedGiftCard struct {
	// Normalized gift card code
	Code string `json:"code"`

	// Remaining balance
	// default: 50.0
	CurrentBalance float64 `json:"currentBalance"`

	// Original amount
	// default: 50.0
	InitialAmount float64 `json:"initialAmount"`

	// Currency code
	// default: EUR
	Currency string `json:"currency"`
}

// ValidateResponse represents a successful validation response
// swagger:model ValidateResponse
type ValidateResponse struct {
	// Whether the card can be used
	// default: true
	Success bool `json:"success"`

	// The validated card
	GiftCard ValidatedGiftCard `json:"giftCard"`
}

// ValidateErrorResponse represents an error response for validation
// swagger:model ValidateErrorResponse
type ValidateErrorResponse struct {
	// Error message
	// default: Gift card not found
	Error string `json:"error"`
}

// NewValidateHandler returns an HTTP handler that checks whether a gift card
// is usable at checkout. The check is read-only.
// @Summary Validate a gift card
// @Description Check that a gift card exists, is active, has balance and is not expired. Never mutates the card.
// @Tags gift-cards
// @Accept json
// @Produce json
// @Param request body handlers.ValidateRequest true "Validate Request"
// @Success 200 {object} handlers.ValidateResponse "Gift card is usable"
// @Failure 400 {object} handlers.ValidateErrorResponse "Missing code or card not usable"
// @Failure 404 {object} handlers.ValidateErrorResponse "Gift card not found"
// @Router /gift-cards/validate [post]
func NewValidateHandler(svc GiftCardValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ValidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode validate request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Validate(ctx, req.Code)
		if err != nil {
			writeGiftCardError(w, err)
			return
		}

		resp := ValidateResponse{
			Success: true,
			GiftCard: ValidatedGiftCard{
				Code:           result.Code,
				CurrentBalance: result.CurrentBalance.InexactFloat64(),
				InitialAmount:  result.InitialAmount.InexactFloat64(),
				Currency:       result.Currency,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// writeGiftCardError maps service errors to HTTP responses shared by the
// gift card handlers.
func writeGiftCardError(w http.ResponseWriter, err error) {
	var inactive *services.GiftCardInactiveError

	switch {
	case errors.Is(err, services.ErrCodeRequired):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Gift card code is required"})
	case errors.Is(err, services.ErrOrderTotalRequired):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Order total is required"})
	case errors.Is(err, services.ErrGiftCardNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Gift card not found"})
	case errors.As(err, &inactive):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Gift card is " + inactive.Status})
	case errors.Is(err, services.ErrNoBalance):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Gift card has no remaining balance"})
	case errors.Is(err, services.ErrGiftCardExpired):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Gift card has expired"})
	case errors.Is(err, services.ErrBalanceConflict):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Gift card balance was changed. Please try again."})
	default:
		logger.Log.Errorw("gift card operation failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ValidateErrorResponse{Error: "Internal server error"})
	}
}
