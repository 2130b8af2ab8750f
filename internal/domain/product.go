package domain

import "github.com/shopspring/decimal"

// Product is a catalog item offered in one or more priced variants.
type Product struct {
	ID          int64
	Name        string
	Image       string
	Ingredients []string
	Prices      []PriceOption
}

// PriceOption is the current catalog price for one variant of a product.
type PriceOption struct {
	Variant   string
	UnitPrice decimal.Decimal
}
