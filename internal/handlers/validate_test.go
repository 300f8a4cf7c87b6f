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

func TestValidateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGiftCardValidator(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: ValidateRequest{Code: "ab12-cd34-ef56-gh78"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "ab12-cd34-ef56-gh78").
					Return(&services.ValidationResult{
						Code:           "AB12CD34EF56GH78",
						CurrentBalance: decimal.NewFromInt(30),
						InitialAmount:  decimal.NewFromInt(50),
						Currency:       "EUR",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ValidateResponse{
				Success: true,
				GiftCard: ValidatedGiftCard{
					Code:           "AB12CD34EF56GH78",
					CurrentBalance: 30,
					InitialAmount:  50,
					Currency:       "EUR",
				},
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ValidateErrorResponse{Error: "Invalid request body"},
		},
		{
			name:      "missing code",
			inputBody: ValidateRequest{Code: ""},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "").
					Return(nil, services.ErrCodeRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ValidateErrorResponse{Error: "Gift card code is required"},
		},
		{
			name:      "not found",
			inputBody: ValidateRequest{Code: "XXXX"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "XXXX").
					Return(nil, services.ErrGiftCardNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ValidateErrorResponse{Error: "Gift card not found"},
		},
		{
			name:      "redeemed card",
			inputBody: ValidateRequest{Code: "AB12CD34EF56GH78"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "AB12CD34EF56GH78").
					Return(nil, &services.GiftCardInactiveError{Status: "redeemed"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ValidateErrorResponse{Error: "Gift card is redeemed"},
		},
		{
			name:      "no balance",
			inputBody: ValidateRequest{Code: "AB12CD34EF56GH78"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "AB12CD34EF56GH78").
					Return(nil, services.ErrNoBalance)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ValidateErrorResponse{Error: "Gift card has no remaining balance"},
		},
		{
			name:      "expired",
			inputBody: ValidateRequest{Code: "AB12CD34EF56GH78"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "AB12CD34EF56GH78").
					Return(nil, services.ErrGiftCardExpired)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ValidateErrorResponse{Error: "Gift card has expired"},
		},
		{
			name:      "internal error",
			inputBody: ValidateRequest{Code: "AB12CD34EF56GH78"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Validate(gomock.Any(), "AB12CD34EF56GH78").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ValidateErrorResponse{Error: "Internal server error"},
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

			req := httptest.NewRequest(http.MethodPost, "/gift-cards/validate", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewValidateHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			switch expected := tt.expectedBody.(type) {
			case *ValidateResponse:
				var got ValidateResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *expected, got)
			case *ValidateErrorResponse:
				var got ValidateErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *expected, got)
			}
		})
	}
}
