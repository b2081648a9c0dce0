package catalogservice

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
	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

func (s *Service) AddProduct(ctx context.Context, emoji, name, rank string, price int) (*domain.Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	product := domain.Product{
		Emoji: emoji,
		Name:  name,
		Rank:  rank,
		Price: price,
	}

	err := s.store.Update(ctx, func(l *domain.Ledger) error {
		if l.FindProduct(name) != nil {
			return ErrProductExists
		}
		l.Products = append(l.Products, product)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProductExists) {
			zap.L().Error("can't add product", zap.String("name", name), zap.Error(err))
		}
		return nil, err
	}

	return &product, nil
}

func (s *Service) RemoveProduct(ctx context.Context, name string) error {
	err := s.store.Update(ctx, func(l *domain.Ledger) error {
		for i := range l.Products {
			if l.Products[i].Name == name {
				l.Products = append(l.Products[:i], l.Products[i+1:]...)
				return nil
			}
		}
		return ErrProductNotFound
	})
	if err != nil && !errors.Is(err, ErrProductNotFound) {
		zap.L().Error("can't remove product", zap.String("name", name), zap.Error(err))
	}
	return err
}

func (s *Service) GetProduct(name string) (*domain.Product, error) {
	var product *domain.Product
	s.store.View(func(l *domain.Ledger) {
		if p := l.FindProduct(name); p != nil {
			copied := *p
			product = &copied
		}
	})
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) ListProducts() []domain.Product {
	var products []domain.Product
	s.store.View(func(l *domain.Ledger) {
		products = make([]domain.Product, len(l.Products))
		copy(products, l.Products)
	})
	return products
}
