package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pajorstaer/rankshop/internal/dto"
	balanceservice "github.com/pajorstaer/rankshop/internal/service/balanceservice"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withUserID(r *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", userID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetBalance("1001").Return(150)

	r := withUserID(httptest.NewRequest(http.MethodGet, "/users/1001/balance", nil), "1001")
	w := httptest.NewRecorder()
	handler.GetBalance(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.BalanceResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, dto.BalanceResponseDTO{UserID: "1001", Balance: 150}, body)
}

func TestCreditHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful credit",
			body: `{"amount":50}`,
			prepareMock: func() {
				service.EXPECT().Credit(gomock.Any(), "1001", 50).Return(nil)
				service.EXPECT().GetBalance("1001").Return(50)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().Credit(gomock.Any(), "1001", 0).Return(balanceservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUserID(httptest.NewRequest(http.MethodPost, "/users/1001/balance/credit", bytes.NewBufferString(tt.body)), "1001")
			w := httptest.NewRecorder()
			handler.Credit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDebitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Strict debit",
			body: `{"amount":30}`,
			prepareMock: func() {
				service.EXPECT().DebitStrict(gomock.Any(), "1001", 30).Return(nil)
				service.EXPECT().GetBalance("1001").Return(70)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Clamped debit",
			body: `{"amount":500,"clamped":true}`,
			prepareMock: func() {
				service.EXPECT().DebitClamped(gomock.Any(), "1001", 500).Return(nil)
				service.EXPECT().GetBalance("1001").Return(0)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().DebitStrict(gomock.Any(), "1001", 500).Return(balanceservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUserID(httptest.NewRequest(http.MethodPost, "/users/1001/balance/debit", bytes.NewBufferString(tt.body)), "1001")
			w := httptest.NewRecorder()
			handler.Debit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
