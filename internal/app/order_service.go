package app

import (
	"context"
	"time"

	"github.com/Magupe09/auth-prueba/internal/clock"
	"github.com/Magupe09/auth-prueba/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateOrder(ctx context.Context, userID int64, createdAt time.Time) (int64, error)
	LookupPrice(ctx context.Context, productID int64, variant string) (decimal.Decimal, error)
	CreateOrderLine(ctx context.Context, orderID int64, line domain.OrderLine) error
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
}

type OrderService struct {
	repo  OrderRepository
	clock clock.Clock
}

func NewOrderService(repo OrderRepository, clk clock.Clock) *OrderService {
	return &OrderService{
		repo:  repo,
		clock: clk,
	}
}

type PlaceOrderInput struct {
	// UserID comes from the verified caller identity, never from the
	// request body.
	UserID int64
	Lines  []domain.OrderLineRequest
}

// PlaceOrder validates the proposed order, then inserts the header and
// all lines in one transaction. Each line's price is resolved inside
// that transaction and recorded as price_at_purchase; a failed lookup
// aborts the whole placement, so partial orders are never visible.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (int64, error) {
	if err := validateLines(in.Lines); err != nil {
		return 0, err
	}

	now := s.clock.Now()
	var orderID int64

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		id, err := s.repo.CreateOrder(txCtx, in.UserID, now)
		if err != nil {
			return err
		}

		for i, line := range in.Lines {
			price, err := s.repo.LookupPrice(txCtx, line.ProductID, line.Variant)
			if err != nil {
				if err == domain.ErrProductVariantNotFound {
					return &domain.LineError{Index: i, Line: line, Err: err}
				}
				return err
			}
			if err := s.repo.CreateOrderLine(txCtx, id, domain.OrderLine{
				ProductID:       line.ProductID,
				Variant:         line.Variant,
				Quantity:        line.Quantity,
				PriceAtPurchase: price,
			}); err != nil {
				return err
			}
		}

		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// validateLines is pure and fails fast: the first bad line is reported
// with its content and nothing else is checked.
func validateLines(lines []domain.OrderLineRequest) error {
	if len(lines) == 0 {
		return domain.ErrEmptyOrder
	}
	for i, line := range lines {
		switch {
		case line.ProductID <= 0:
			return &domain.LineError{Index: i, Line: line, Err: domain.ErrInvalidProduct}
		case line.Quantity <= 0:
			return &domain.LineError{Index: i, Line: line, Err: domain.ErrInvalidQuantity}
		case line.Variant == "":
			return &domain.LineError{Index: i, Line: line, Err: domain.ErrInvalidVariant}
		}
	}
	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	if orderID <= 0 {
		return domain.Order{}, domain.ErrInvalidID
	}
	return s.repo.GetOrder(ctx, orderID)
}

// ListUserOrders returns the user's order history newest first. A user
// with no orders gets an empty slice; an unknown user gets
// ErrUserNotFound. Existence is checked only when the order query comes
// back empty.
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidID
	}

	orders, err := s.repo.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return orders, nil
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return []domain.Order{}, nil
}
