package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder             = errors.New("order must contain at least one item")
	ErrInvalidProduct         = errors.New("product id must be a positive integer")
	ErrInvalidQuantity        = errors.New("quantity must be a positive integer")
	ErrInvalidVariant         = errors.New("variant is required")
	ErrProductVariantNotFound = errors.New("product variant not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrNameRequired           = errors.New("name is required")
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrInvalidID              = errors.New("invalid id")
)

// LineError marks the first request line to fail validation or pricing,
// keeping the line itself so callers can echo it back.
type LineError struct {
	Index int
	Line  OrderLineRequest
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("item %d {product_id:%d quantity:%d variant:%q}: %v",
		e.Index, e.Line.ProductID, e.Line.Quantity, e.Line.Variant, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
