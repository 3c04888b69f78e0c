package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shoply/services/catalog/domain/models"
)

// LikeRepository is the persistence interface for the Like relation.
//
// The store enforces at most one Like per (user, product) pair; Create
// surfaces domain.ErrAlreadyLiked when the constraint trips. That constraint,
// not in-process locking, is the correctness backstop for concurrent toggles.
type LikeRepository interface {
	// Create persists a new Like. Returns domain.ErrAlreadyLiked if one
	// already exists for the pair.
	Create(ctx context.Context, like *models.Like) error

	// Delete removes the Like for the pair. Reports whether a row was
	// actually removed (false when a concurrent toggle got there first).
	Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// Exists reports whether a Like exists for the pair.
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// CountByProduct returns the number of Likes on one product.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int, error)

	// CountByProducts returns like counts for each given product in one
	// query. Products with no likes are absent from the result map.
	CountByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error)

	// LikedSet returns the subset of productIDs the given user has liked,
	// in one query. Products not liked are absent from the result map.
	LikedSet(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}
