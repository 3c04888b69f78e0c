package models

import (
	"time"

	"github.com/google/uuid"
)

// Like records that a viewer likes a product. At most one Like exists per
// (viewer, product) pair; the store enforces this with a unique constraint,
// which is the correctness backstop for concurrent toggles. Deleting a Like
// removes the fact entirely.
type Like struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}

// NewLike constructs a Like for the given viewer and product.
func NewLike(userID, productID uuid.UUID) *Like {
	return &Like{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
}
