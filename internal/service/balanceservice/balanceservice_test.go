package balanceservice

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pajorstaer/rankshop/internal/store"
)

func newService(t *testing.T) *Service {
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return New(st)
}

func TestGetBalance(t *testing.T) {
	service := newService(t)

	assert.Equal(t, 0, service.GetBalance("unknown"))

	err := service.Credit(context.Background(), "1001", 150)
	require.NoError(t, err)
	assert.Equal(t, 150, service.GetBalance("1001"))
}

func TestCredit(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name          string
		amount        int
		expectedError error
	}{
		{name: "Positive amount", amount: 100, expectedError: nil},
		{name: "Zero amount", amount: 0, expectedError: ErrInvalidAmount},
		{name: "Negative amount", amount: -10, expectedError: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Credit(context.Background(), "1001", tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.Equal(t, 100, service.GetBalance("1001"))
}

func TestDebitStrict(t *testing.T) {
	service := newService(t)
	require.NoError(t, service.Credit(context.Background(), "1001", 150))

	tests := []struct {
		name            string
		userID          string
		amount          int
		expectedError   error
		expectedBalance int
	}{
		{name: "Successful debit", userID: "1001", amount: 100, expectedError: nil, expectedBalance: 50},
		{name: "Insufficient balance", userID: "1001", amount: 100, expectedError: ErrInsufficientBalance, expectedBalance: 50},
		{name: "Unknown user", userID: "2002", amount: 10, expectedError: ErrInsufficientBalance, expectedBalance: 0},
		{name: "Non-positive amount", userID: "1001", amount: 0, expectedError: ErrInvalidAmount, expectedBalance: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.DebitStrict(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedBalance, service.GetBalance(tt.userID))
		})
	}
}

func TestDebitStrictDoesNotCreateAccount(t *testing.T) {
	service := newService(t)

	err := service.DebitStrict(context.Background(), "ghost", 10)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// A failed debit must not materialize the account either.
	err = service.Credit(context.Background(), "ghost", 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, service.GetBalance("ghost"))
}

func TestDebitClamped(t *testing.T) {
	service := newService(t)
	require.NoError(t, service.Credit(context.Background(), "1001", 30))

	tests := []struct {
		name            string
		amount          int
		expectedError   error
		expectedBalance int
	}{
		{name: "Debit within balance", amount: 10, expectedError: nil, expectedBalance: 20},
		{name: "Overdraft floors at zero", amount: 100, expectedError: nil, expectedBalance: 0},
		{name: "Non-positive amount", amount: -1, expectedError: ErrInvalidAmount, expectedBalance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.DebitClamped(context.Background(), "1001", tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedBalance, service.GetBalance("1001"))
		})
	}
}
