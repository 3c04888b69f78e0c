package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct indicates product fields violate domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidPagination indicates page or page-size inputs outside their bounds.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrViewerRequired indicates an operation that needs an authenticated
	// viewer was invoked anonymously.
	ErrViewerRequired = errors.New("viewer required")

	// ErrAlreadyLiked indicates a like already exists for the (viewer, product)
	// pair. Raised by the store's uniqueness constraint when concurrent toggles
	// race; the toggle operation reconciles it instead of surfacing it.
	ErrAlreadyLiked = errors.New("product already liked")

	// ErrLikeNotFound indicates no like exists for the (viewer, product) pair.
	ErrLikeNotFound = errors.New("like not found")
)
