package topupservice

import (
	"context"
	"errors"

	"github.com/pajorstaer/rankshop/internal/domain"
	"go.uber.org/zap"
)

type Store interface {
	View(fn func(l *domain.Ledger))
	Update(ctx context.Context, fn func(l *domain.Ledger) error) error
}

// Verifier checks a payment proof with the external payment provider and
// returns the verified amount.
type Verifier interface {
	Verify(ctx context.Context, slipURL string) (int, error)
}

// Service credits balances from externally verified topups. A nil verifier
// disables the feature entirely.
type Service struct {
	store    Store
	verifier Verifier
}

func New(store Store, verifier Verifier) *Service {
	return &Service{
		store:    store,
		verifier: verifier,
	}
}

var (
	ErrTopupUnavailable = errors.New("topup verification is not configured")
	ErrTopupRejected    = errors.New("topup verification rejected")
)

// ProcessTopup verifies slipURL and, on success, credits the verified amount
// and appends an audit record in one critical section. Any verification
// failure, including transport errors and timeouts, rejects the topup with no
// state change and no retry.
func (s *Service) ProcessTopup(ctx context.Context, userID, slipURL string) (int, error) {
	if s.verifier == nil {
		return 0, ErrTopupUnavailable
	}

	amount, err := s.verifier.Verify(ctx, slipURL)
	if err != nil {
		zap.L().Info("topup rejected", zap.String("userID", userID), zap.Error(err))
		return 0, ErrTopupRejected
	}
	if amount <= 0 {
		zap.L().Info("topup rejected: non-positive amount", zap.String("userID", userID), zap.Int("amount", amount))
		return 0, ErrTopupRejected
	}

	err = s.store.Update(ctx, func(l *domain.Ledger) error {
		l.Account(userID).Balance += amount
		l.TopupLogs = append(l.TopupLogs, domain.TopupRecord{
			UserID: userID,
			Amount: amount,
			Link:   slipURL,
		})
		return nil
	})
	if err != nil {
		zap.L().Error("can't record topup", zap.String("userID", userID), zap.Error(err))
		return 0, err
	}

	zap.L().Info("topup credited", zap.String("userID", userID), zap.Int("amount", amount))
	return amount, nil
}
