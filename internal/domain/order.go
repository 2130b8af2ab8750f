package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest is one proposed line of an order before validation.
type OrderLineRequest struct {
	ProductID int64
	Quantity  int
	Variant   string
}

// Order is a placed order header with its recorded lines.
type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Lines     []OrderLine
}

// OrderLine is one product-quantity-price entry belonging to an order.
// PriceAtPurchase is frozen at write time and never re-derived.
type OrderLine struct {
	ProductID       int64
	ProductName     string
	Variant         string
	Quantity        int
	PriceAtPurchase decimal.Decimal
}
