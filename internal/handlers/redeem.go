package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-gift-cards/internal/logger"
	"github.com/sbilibin2017/gw-gift-cards/internal/services"
)

// GiftCardRedeemer defines the interface that the service must implement.
type GiftCardRedeemer interface {
	Redeem(ctx context.Context, code string, orderTotal decimal.Decimal, orderID, stripeOrderID *string) (*services.RedemptionResult, error)
}

// RedeemRequest represents the JSON body for redeeming a gift card
// swagger:model RedeemRequest
type RedeemRequest struct {
	// Gift card code, separators and case are ignored
	// required: true
	// default: AB12-CD34-EF56-GH78
	Code string `json:"code"`

	// Amount the order still owes
	// required: true
	// default: 30.0
	OrderTotal float64 `json:"orderTotal"`

	// Order correlation ID
	OrderID *string `json:"orderId,omitempty"`

	// Stripe order correlation ID
	StripeOrderID *string `json:"stripeOrderId,omitempty"`
}

// RedeemResponse represents a successful redemption response
// swagger:model RedeemResponse
type RedeemResponse struct {
	// Whether the redemption committed
	// default: true
	Success bool `json:"success"`

	// Amount deducted from the card
	// default: 30.0
	AmountApplied float64 `json:"amountApplied"`

	// Balance left on the card
	// default: 20.0
	RemainingBalance float64 `json:"remainingBalance"`

	// Portion of the order the card did not cover
	// default: 0.0
	OrderTotal float64 `json:"orderTotal"`

	// Normalized gift card code
	GiftCardCode string `json:"giftCardCode"`
}

// RedeemErrorResponse represents an error response for redemption
// swagger:model RedeemErrorResponse
type RedeemErrorResponse struct {
	// Error message
	// default: Gift card balance was changed. Please try again.
	Error string `json:"error"`
}

// NewRedeemHandler returns an HTTP handler that applies a gift card to an
// order total. A concurrent redemption of the same card yields 409 and the
// caller decides whether to retry with fresh data.
// @Summary Redeem a gift card
// @Description Deduct min(balance, orderTotal) from an active gift card and record the transaction.
// @Tags gift-cards
// @Accept json
// @Produce json
// @Param request body handlers.RedeemRequest true "Redeem Request"
// @Success 200 {object} handlers.RedeemResponse "Redemption committed"
// @Failure 400 {object} handlers.RedeemErrorResponse "Missing code or order total, or card not usable"
// @Failure 404 {object} handlers.RedeemErrorResponse "Gift card not found"
// @Failure 409 {object} handlers.RedeemErrorResponse "Balance changed concurrently"
// @Router /gift-cards/redeem [post]
func NewRedeemHandler(svc GiftCardRedeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RedeemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode redeem request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RedeemErrorResponse{Error: "Invalid request body"})
			return
		}

		result, err := svc.Redeem(ctx, req.Code, decimal.NewFromFloat(req.OrderTotal), req.OrderID, req.StripeOrderID)
		if err != nil {
			writeGiftCardError(w, err)
			return
		}

		resp := RedeemResponse{
			Success:          true,
			AmountApplied:    result.AmountApplied.InexactFloat64(),
			RemainingBalance: result.RemainingBalance.InexactFloat64(),
			OrderTotal:       result.OrderTotalDue.InexactFloat64(),
			GiftCardCode:     result.GiftCardCode,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
