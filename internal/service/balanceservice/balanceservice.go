package balanceservice

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

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// GetBalance returns the balance for userID. Unknown users read as zero and
// no account record is created.
func (s *Service) GetBalance(userID string) int {
	var balance int
	s.store.View(func(l *domain.Ledger) {
		if acc, ok := l.Users[userID]; ok {
			balance = acc.Balance
		}
	})
	return balance
}

func (s *Service) Credit(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	err := s.store.Update(ctx, func(l *domain.Ledger) error {
		l.Account(userID).Balance += amount
		return nil
	})
	if err != nil {
		zap.L().Error("can't credit balance", zap.String("userID", userID), zap.Error(err))
		return err
	}

	zap.L().Info("balance credited", zap.String("userID", userID), zap.Int("amount", amount))
	return nil
}

// DebitStrict subtracts amount and fails with ErrInsufficientBalance when the
// current balance does not cover it, leaving the ledger untouched.
func (s *Service) DebitStrict(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	err := s.store.Update(ctx, func(l *domain.Ledger) error {
		acc, ok := l.Users[userID]
		if !ok || acc.Balance < amount {
			return ErrInsufficientBalance
		}
		acc.Balance -= amount
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't debit balance", zap.String("userID", userID), zap.Error(err))
		}
		return err
	}
	return nil
}

// DebitClamped subtracts amount and floors the result at zero. This is the
// administrative deduction path; purchases use DebitStrict.
func (s *Service) DebitClamped(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	err := s.store.Update(ctx, func(l *domain.Ledger) error {
		acc := l.Account(userID)
		acc.Balance -= amount
		if acc.Balance < 0 {
			acc.Balance = 0
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't debit balance", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
