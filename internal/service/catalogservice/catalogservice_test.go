package catalogservice

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/store"
)

func newService(t *testing.T) *Service {
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return New(st)
}

func TestAddProduct(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name          string
		emoji         string
		productName   string
		rank          string
		price         int
		expectedError error
	}{
		{name: "Successful creation", emoji: "💎", productName: "VIP", rank: "VIP-Role", price: 100, expectedError: nil},
		{name: "Free product allowed", emoji: "🎁", productName: "Starter", rank: "Starter-Role", price: 0, expectedError: nil},
		{name: "Duplicate name", emoji: "💎", productName: "VIP", rank: "Other-Role", price: 200, expectedError: ErrProductExists},
		{name: "Negative price", emoji: "💎", productName: "Broken", rank: "Broken-Role", price: -1, expectedError: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.AddProduct(context.Background(), tt.emoji, tt.productName, tt.rank, tt.price)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, product)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &domain.Product{
					Emoji: tt.emoji,
					Name:  tt.productName,
					Rank:  tt.rank,
					Price: tt.price,
				}, product)
			}
		})
	}

	assert.Len(t, service.ListProducts(), 2)
}

func TestRemoveProduct(t *testing.T) {
	service := newService(t)
	_, err := service.AddProduct(context.Background(), "💎", "VIP", "VIP-Role", 100)
	require.NoError(t, err)

	err = service.RemoveProduct(context.Background(), "VIP")
	assert.NoError(t, err)
	assert.Empty(t, service.ListProducts())

	err = service.RemoveProduct(context.Background(), "VIP")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProduct(t *testing.T) {
	service := newService(t)
	_, err := service.AddProduct(context.Background(), "💎", "VIP", "VIP-Role", 100)
	require.NoError(t, err)

	product, err := service.GetProduct("VIP")
	assert.NoError(t, err)
	assert.Equal(t, "VIP-Role", product.Rank)

	_, err = service.GetProduct("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProductsReturnsCopies(t *testing.T) {
	service := newService(t)
	_, err := service.AddProduct(context.Background(), "💎", "VIP", "VIP-Role", 100)
	require.NoError(t, err)

	products := service.ListProducts()
	products[0].Price = 999

	reread, err := service.GetProduct("VIP")
	require.NoError(t, err)
	assert.Equal(t, 100, reread.Price)
}
