package models

import "fmt"

// ProductName is a value object representing a valid product name.
// Encapsulates validation rules: 3 <= len(name) <= 255.
type ProductName string

const (
	minProductNameLength = 3
	maxProductNameLength = 255
)

// NewProductName constructs a valid ProductName or returns an error if constraints are violated.
func NewProductName(s string) (ProductName, error) {
	if len(s) < minProductNameLength {
		return "", fmt.Errorf("product name must be at least %d characters", minProductNameLength)
	}
	if len(s) > maxProductNameLength {
		return "", fmt.Errorf("product name must not exceed %d characters", maxProductNameLength)
	}
	return ProductName(s), nil
}

// String returns the underlying string value.
func (n ProductName) String() string {
	return string(n)
}
