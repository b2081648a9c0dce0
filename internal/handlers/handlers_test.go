package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/pajorstaer/rankshop/internal/config"
	"github.com/pajorstaer/rankshop/internal/service"
	"github.com/pajorstaer/rankshop/internal/store"
)

func TestNew(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret"}
	h := New(cfg, service.New(st, 50, nil))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockTopupHandler := NewMockTopupHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().ListProducts(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().AddProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().RemoveProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Credit(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Debit(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().ApproveOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().DenyOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockTopupHandler.EXPECT().ProcessTopup(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		CatalogHandler: mockCatalogHandler,
		BalanceHandler: mockBalanceHandler,
		OrderHandler:   mockOrderHandler,
		TopupHandler:   mockTopupHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/admin/login", http.StatusOK},
		{"GET", "/api/admin/products", http.StatusUnauthorized},
		{"POST", "/api/admin/products", http.StatusUnauthorized},
		{"DELETE", "/api/admin/products/VIP", http.StatusUnauthorized},
		{"GET", "/api/admin/users/1001/balance", http.StatusUnauthorized},
		{"POST", "/api/admin/users/1001/balance/credit", http.StatusUnauthorized},
		{"POST", "/api/admin/users/1001/balance/debit", http.StatusUnauthorized},
		{"GET", "/api/admin/orders", http.StatusUnauthorized},
		{"POST", "/api/admin/orders", http.StatusUnauthorized},
		{"GET", "/api/admin/orders/1", http.StatusUnauthorized},
		{"POST", "/api/admin/orders/1/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/orders/1/deny", http.StatusUnauthorized},
		{"POST", "/api/admin/topups", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
