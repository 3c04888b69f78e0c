package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the core aggregate for the catalog bounded context.
// Immutable after creation except through the update timestamp.
type Product struct {
	ID          uuid.UUID
	Name        ProductName
	Price       decimal.Decimal // non-negative, two fraction digits
	Category    string
	Subcategory string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct constructs a valid Product aggregate with generated ID and
// current timestamps. The price is normalized to two fraction digits.
func NewProduct(name ProductName, price decimal.Decimal, category, subcategory string) (*Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative, got %s", price)
	}
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price.Round(2),
		Category:    category,
		Subcategory: subcategory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
