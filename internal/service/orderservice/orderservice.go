package orderservice

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/pajorstaer/rankshop/internal/domain"
	"go.uber.org/zap"
)

type Store interface {
	View(fn func(l *domain.Ledger))
	Update(ctx context.Context, fn func(l *domain.Ledger) error) error
}

// Service drives the custom rank order lifecycle: a flat fee is charged when
// an order is placed and the order then moves from PENDING to exactly one of
// APPROVED or DENIED. Denial refunds the fee.
type Service struct {
	store   Store
	flatFee int
}

func New(store Store, flatFee int) *Service {
	return &Service{
		store:   store,
		flatFee: flatFee,
	}
}

var (
	ErrInvalidColor          = errors.New("invalid hex color")
	ErrInsufficientFunds     = errors.New("insufficient funds for order fee")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyFinalized = errors.New("order already finalized")
)

var hexColorRe = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// NormalizeColor validates colorHex against the 6-digit hex pattern and
// returns the canonical leading-# form.
func NormalizeColor(colorHex string) (string, error) {
	if !hexColorRe.MatchString(colorHex) {
		return "", ErrInvalidColor
	}
	if !strings.HasPrefix(colorHex, "#") {
		colorHex = "#" + colorHex
	}
	return colorHex, nil
}

// PlaceOrder charges the flat fee and appends a pending order. Fee deduction,
// order creation and flush run as one critical section, so a crash or a
// concurrent mutation can never separate the fee from the order.
func (s *Service) PlaceOrder(ctx context.Context, userID, rankName, colorHex string) (*domain.Order, error) {
	color, err := NormalizeColor(colorHex)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:   userID,
		RankName: rankName,
		Color:    color,
		Price:    s.flatFee,
		Status:   domain.PendingOrderStatus,
	}

	err = s.store.Update(ctx, func(l *domain.Ledger) error {
		acc, ok := l.Users[userID]
		if !ok || acc.Balance < s.flatFee {
			return ErrInsufficientFunds
		}
		acc.Balance -= s.flatFee
		order.OrderID = len(l.Orders) + 1
		l.Orders = append(l.Orders, order)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("can't place order", zap.String("userID", userID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("order placed",
		zap.Int("orderID", order.OrderID),
		zap.String("userID", userID),
		zap.String("rankName", rankName),
	)
	return order, nil
}

// ApproveOrder moves a pending order to APPROVED and returns it. Creating and
// assigning the rank role is the caller's side effect; this only authorizes it.
func (s *Service) ApproveOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.finalize(ctx, orderID, domain.ApprovedOrderStatus)
}

// DenyOrder moves a pending order to DENIED and refunds its price to the
// ordering user in the same critical section.
func (s *Service) DenyOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.finalize(ctx, orderID, domain.DeniedOrderStatus)
}

func (s *Service) finalize(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	var result domain.Order

	err := s.store.Update(ctx, func(l *domain.Ledger) error {
		order := l.FindOrder(orderID)
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Finalized() {
			return ErrOrderAlreadyFinalized
		}
		order.Status = status
		if status == domain.DeniedOrderStatus {
			l.Account(order.UserID).Balance += order.Price
		}
		result = *order
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) && !errors.Is(err, ErrOrderAlreadyFinalized) {
			zap.L().Error("can't finalize order", zap.Int("orderID", orderID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("order finalized", zap.Int("orderID", orderID), zap.String("status", status))
	return &result, nil
}

// GetOrder returns a copy of the order with the given id.
func (s *Service) GetOrder(orderID int) (*domain.Order, error) {
	var result *domain.Order
	s.store.View(func(l *domain.Ledger) {
		if order := l.FindOrder(orderID); order != nil {
			copied := *order
			result = &copied
		}
	})
	if result == nil {
		return nil, ErrOrderNotFound
	}
	return result, nil
}

// GetOrders returns copies of all orders in placement order.
func (s *Service) GetOrders() []domain.Order {
	var orders []domain.Order
	s.store.View(func(l *domain.Ledger) {
		orders = make([]domain.Order, 0, len(l.Orders))
		for _, o := range l.Orders {
			orders = append(orders, *o)
		}
	})
	return orders
}
