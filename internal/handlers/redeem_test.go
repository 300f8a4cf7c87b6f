package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-gift-cards/internal/services"
)

func TestRedeemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGiftCardRedeemer(ctrl)

	orderID := "order-42"

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success partial coverage",
			inputBody: RedeemRequest{
				Code:       "AB12CD34EF56GH78",
				OrderTotal: 30,
				OrderID:    &orderID,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Redeem(gomock.Any(), "AB12CD34EF56GH78", gomock.Any(), &orderID, gomock.Nil()).
					Do(func(_ interface{}, _ string, orderTotal decimal.Decimal, _, _ *string) {
						assert.True(t, orderTotal.Equal(decimal.NewFromInt(30)))
					}).
					Return(&services.RedemptionResult{
						AmountApplied:    decimal.NewFromInt(30),
						RemainingBalance: decimal.NewFromInt(20),
						OrderTotalDue:    decimal.Zero,
						GiftCardCode:     "AB12CD34EF56GH78",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &RedeemResponse{
				Success:          true,
				AmountApplied:    30,
				RemainingBalance: 20,
				OrderTotal:       0,
				GiftCardCode:     "AB12CD34EF56GH78",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RedeemErrorResponse{Error: "Invalid request body"},
		},
		{
			name:      "missing order total",
			inputBody: RedeemRequest{Code: "AB12CD34EF56GH78"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Redeem(gomock.Any(), "AB12CD34EF56GH78", gomock.Any(), gomock.Nil(), gomock.Nil()).
					Return(nil, services.ErrOrderTotalRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &RedeemErrorResponse{Error: "Order total is required"},
		},
		{
			name:      "not found",
			inputBody: RedeemRequest{Code: "XXXX", OrderTotal: 10},
			mockSetup: func() {
				mockSvc.EXPECT().
					Redeem(gomock.Any(), "XXXX", gomock.Any(), gomock.Nil(), gomock.Nil()).
					Return(nil, services.ErrGiftCardNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &RedeemErrorResponse{Error: "Gift card not found"},
		},
		{
			name:      "balance conflict",
			inputBody: RedeemRequest{Code: "AB12CD34EF56GH78", OrderTotal: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Redeem(gomock.Any(), "AB12CD34EF56GH78", gomock.Any(), gomock.Nil(), gomock.Nil()).
					Return(nil, services.ErrBalanceConflict)
			},
			expectedCode: http.StatusConflict,
			expectedBody: &RedeemErrorResponse{Error: "Gift card balance was changed. Please try again."},
		},
		{
			name:      "internal error",
			inputBody: RedeemRequest{Code: "AB12CD34EF56GH78", OrderTotal: 20},
			mockSetup: func() {
				mockSvc.EXPECT().
					Redeem(gomock.Any(), "AB12CD34EF56GH78", gomock.Any(), gomock.Nil(), gomock.Nil()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &RedeemErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/gift-cards/redeem", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewRedeemHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			switch expected := tt.expectedBody.(type) {
			case *RedeemResponse:
				var got RedeemResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *expected, got)
			case *RedeemErrorResponse:
				var got RedeemErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *expected, got)
			}
		})
	}
}
