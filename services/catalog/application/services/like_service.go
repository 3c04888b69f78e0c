package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shoply/pkg/logger"
	catalogdomain "github.com/ghuser/shoply/services/catalog/domain"
	"github.com/ghuser/shoply/services/catalog/domain/models"
	"github.com/ghuser/shoply/services/catalog/domain/repositories"
)

// ToggleResult is the outcome of a like toggle: the viewer's resulting liked
// state and the product's aggregate like count re-derived from the store.
type ToggleResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// LikeService flips a viewer's like on one product.
//
// The check-then-act sequence (exists? → create/delete) is not atomic against
// a concurrent toggle by the same viewer; the store's unique (user, product)
// constraint is the correctness backstop. A create that loses the race gets
// ErrAlreadyLiked from the repository and is reconciled as liked=true; a
// delete that finds no row reconciles as liked=false. Neither race surfaces
// to the caller.
type LikeService struct {
	products repositories.ProductRepository
	likes    repositories.LikeRepository
	cache    ListingCache
	log      logger.Logger
}

// NewLikeService returns a LikeService wired with the given repositories and
// cache. cache may be nil (no invalidation to perform).
func NewLikeService(
	products repositories.ProductRepository,
	likes repositories.LikeRepository,
	cache ListingCache,
	log logger.Logger,
) *LikeService {
	return &LikeService{products: products, likes: likes, cache: cache, log: log}
}

// Toggle flips the viewer's like on the product, re-derives the aggregate
// count, and invalidates every cached listing and search entry — any cached
// page may embed the now-stale count or liked flag, across many viewers'
// entries, so invalidation is whole-namespace rather than surgical.
func (s *LikeService) Toggle(ctx context.Context, productID uuid.UUID, viewer *models.Viewer) (ToggleResult, error) {
	if viewer == nil {
		return ToggleResult{}, catalogdomain.ErrViewerRequired
	}

	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return ToggleResult{}, catalogdomain.ErrProductNotFound
	}

	liked, err := s.likes.Exists(ctx, viewer.ID, productID)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("check like: %w", err)
	}

	var likedNow bool
	if liked {
		// A concurrent toggle may have removed the row already; either way
		// the pair ends up unliked, so the removed flag is informational.
		if _, err := s.likes.Delete(ctx, viewer.ID, productID); err != nil {
			return ToggleResult{}, fmt.Errorf("remove like: %w", err)
		}
		likedNow = false
	} else {
		err := s.likes.Create(ctx, models.NewLike(viewer.ID, productID))
		switch {
		case errors.Is(err, catalogdomain.ErrAlreadyLiked):
			// Lost the race against a concurrent toggle that set liked=true.
			// The store state is what the caller asked for; report it.
			s.log.InfoContext(ctx, "like create conflict reconciled",
				"user_id", viewer.ID, "product_id", productID)
		case err != nil:
			return ToggleResult{}, fmt.Errorf("create like: %w", err)
		}
		likedNow = true
	}

	// Always re-derive the count from the store; incrementing a cached
	// counter would drift under concurrent toggles.
	count, err := s.likes.CountByProduct(ctx, productID)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("count likes: %w", err)
	}

	s.invalidateListings(ctx)

	return ToggleResult{Liked: likedNow, LikesCount: count}, nil
}

func (s *LikeService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateListings(ctx); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed, stale entries expire by TTL", "error", err)
	}
}
