package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shoply/services/catalog/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// All read methods return products ordered by creation time descending with
// ties broken by id ascending, so pagination windows are stable.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// FindPage retrieves one ordered window of products.
	FindPage(ctx context.Context, opts QueryOpts) ([]*models.Product, error)

	// CountAll returns the total number of products.
	CountAll(ctx context.Context) (int, error)

	// FindByNameSubstring retrieves all products whose name contains query
	// (unranked substring match).
	FindByNameSubstring(ctx context.Context, query string) ([]*models.Product, error)

	// Exists reports whether a product with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
