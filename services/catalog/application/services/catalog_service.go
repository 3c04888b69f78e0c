package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgcache "github.com/ghuser/shoply/pkg/cache"
	"github.com/ghuser/shoply/pkg/logger"
	catalogdomain "github.com/ghuser/shoply/services/catalog/domain"
	"github.com/ghuser/shoply/services/catalog/domain/models"
	"github.com/ghuser/shoply/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/shoply/services/catalog/domain/services"
)

// Page size bounds for ListPage.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// CatalogService serves paginated listings and substring search, annotated
// per viewer with liked state and likes counts, through a read-through Redis
// cache. Cache keys always encode the viewer identity so one viewer's liked
// flags can never surface in another viewer's cached results.
type CatalogService struct {
	products repositories.ProductRepository
	likes    repositories.LikeRepository
	cache    ListingCache
	log      logger.Logger
}

// NewCatalogService returns a CatalogService wired with the given
// repositories and cache. cache may be nil (reads go straight to the stores).
func NewCatalogService(
	products repositories.ProductRepository,
	likes repositories.LikeRepository,
	cache ListingCache,
	log logger.Logger,
) *CatalogService {
	return &CatalogService{products: products, likes: likes, cache: cache, log: log}
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Subcategory string
}

// ListPage returns one page of products ordered by creation time descending
// (ties by id ascending), annotated for the given viewer. viewer may be nil
// for anonymous access; the liked flag is then absent from every item.
//
// Pages are cached for pkgcache.ListingTTL. A cache hit is returned verbatim,
// including its embedded liked flags — they are only valid for the exact
// viewer in the key, which is why the viewer identity is always part of it.
func (s *CatalogService) ListPage(ctx context.Context, page, pageSize int, viewer *models.Viewer) (*models.ProductPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", catalogdomain.ErrInvalidPagination, page)
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: page size must be in [%d,%d], got %d",
			catalogdomain.ErrInvalidPagination, MinPageSize, MaxPageSize, pageSize)
	}

	key := pkgcache.ListKey(page, pageSize, viewerCacheKey(viewer))
	var cached models.ProductPage
	if s.cacheRead(ctx, key, &cached) {
		return &cached, nil
	}

	total, err := s.products.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	products, err := s.products.FindPage(ctx, repositories.QueryOpts{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	items, err := s.annotate(ctx, products, viewer)
	if err != nil {
		return nil, err
	}

	result := &models.ProductPage{
		Items: items,
		Meta:  models.NewPageMeta(total, len(items), page, pageSize),
		Links: models.NewPageLinks(page, pageSize, total),
	}

	s.cacheWrite(ctx, key, result)
	return result, nil
}

// Search returns every product whose name contains query, ordered by creation
// time descending, annotated for the given viewer. Matching is unranked and
// case-insensitive. Results are cached under the same discipline as ListPage.
// Empty queries are the caller's responsibility to redirect to ListPage.
func (s *CatalogService) Search(ctx context.Context, query string, viewer *models.Viewer) ([]models.AnnotatedProduct, error) {
	key := pkgcache.SearchKey(query, viewerCacheKey(viewer))
	var cached []models.AnnotatedProduct
	if s.cacheRead(ctx, key, &cached) {
		return cached, nil
	}

	products, err := s.products.FindByNameSubstring(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	items, err := s.annotate(ctx, products, viewer)
	if err != nil {
		return nil, err
	}

	s.cacheWrite(ctx, key, items)
	return items, nil
}

// Create validates and persists a Product, then invalidates the listing and
// search cache namespaces so the new product becomes visible on the next
// uncached read. The repository publishes ProductCreatedEvent in-tx.
func (s *CatalogService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	name, err := models.NewProductName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	product, err := models.NewProduct(name, input.Price, input.Category, input.Subcategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := domainsvcs.ValidateProductForCreation(product); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.invalidateListings(ctx)
	return product, nil
}

// annotate builds the per-viewer projection for a window of products. The
// per-item engagement lookups run as two batched queries (counts, liked set)
// rather than one round trip per item.
func (s *CatalogService) annotate(ctx context.Context, products []*models.Product, viewer *models.Viewer) ([]models.AnnotatedProduct, error) {
	items := make([]models.AnnotatedProduct, 0, len(products))
	if len(products) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	counts, err := s.likes.CountByProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	var likedSet map[uuid.UUID]bool
	if viewer != nil {
		likedSet, err = s.likes.LikedSet(ctx, viewer.ID, ids)
		if err != nil {
			return nil, fmt.Errorf("query liked set: %w", err)
		}
	}

	for _, p := range products {
		var liked *bool
		if viewer != nil {
			v := likedSet[p.ID]
			liked = &v
		}
		items = append(items, models.Annotate(p, counts[p.ID], liked))
	}
	return items, nil
}

// cacheRead loads and decodes the entry at key into dest. Any cache failure
// degrades to a miss: the read falls through to the authoritative stores and
// the request never fails on account of the cache.
func (s *CatalogService) cacheRead(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "cache read failed, treating as miss", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, dest); err != nil {
		s.log.WarnContext(ctx, "cache entry undecodable, treating as miss", "key", key, "error", err)
		return false
	}
	return true
}

// cacheWrite stores val at key best-effort. A failure costs only the caching
// benefit; the response already in hand is correct, so the error is logged
// and dropped.
func (s *CatalogService) cacheWrite(ctx context.Context, key string, val any) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(val)
	if err != nil {
		s.log.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, b); err != nil {
		s.log.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

func (s *CatalogService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateListings(ctx); err != nil {
		s.log.WarnContext(ctx, "cache invalidation failed, stale entries expire by TTL", "error", err)
	}
}

// viewerCacheKey returns the viewer segment for cache keys: the viewer id, or
// the anonymous marker when no viewer is present.
func viewerCacheKey(viewer *models.Viewer) string {
	if viewer == nil {
		return pkgcache.AnonViewer
	}
	return viewer.ID.String()
}
