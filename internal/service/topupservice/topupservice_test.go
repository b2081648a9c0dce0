package topupservice

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/store"
)

func NewMock(t *testing.T) (*Service, *MockVerifier, *store.Store) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	verifier := NewMockVerifier(ctrl)
	service := New(st, verifier)
	return service, verifier, st
}

func TestProcessTopup(t *testing.T) {
	service, verifier, st := NewMock(t)

	tests := []struct {
		name           string
		link           string
		prepareMock    func()
		expectedAmount int
		expectedError  error
	}{
		{
			name: "Successful topup",
			link: "https://gift.truemoney.com/campaign/?v=abc123",
			prepareMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), "https://gift.truemoney.com/campaign/?v=abc123").Return(100, nil)
			},
			expectedAmount: 100,
		},
		{
			name: "Verification error",
			link: "https://gift.truemoney.com/campaign/?v=bad",
			prepareMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(0, errors.New("verification failed"))
			},
			expectedError: ErrTopupRejected,
		},
		{
			name: "Non-positive amount",
			link: "https://gift.truemoney.com/campaign/?v=zero",
			prepareMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(0, nil)
			},
			expectedError: ErrTopupRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			amount, err := service.ProcessTopup(context.Background(), "1001", tt.link)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAmount, amount)
			}
		})
	}

	// Only the successful verification credits and logs.
	st.View(func(l *domain.Ledger) {
		assert.Equal(t, 100, l.Users["1001"].Balance)
		require.Len(t, l.TopupLogs, 1)
		assert.Equal(t, domain.TopupRecord{
			UserID: "1001",
			Amount: 100,
			Link:   "https://gift.truemoney.com/campaign/?v=abc123",
		}, l.TopupLogs[0])
	})
}

func TestProcessTopupUnavailable(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	service := New(st, nil)
	_, err = service.ProcessTopup(context.Background(), "1001", "https://gift.truemoney.com/campaign/?v=abc123")
	assert.ErrorIs(t, err, ErrTopupUnavailable)
}
