package services

import (
	"context"

	"github.com/ghuser/shoply/pkg/app"
	pkgcache "github.com/ghuser/shoply/pkg/cache"
	"github.com/ghuser/shoply/services/catalog/infrastructure/persistence/postgres"
)

// ListingCache is the cache contract the catalog services consume: plain
// byte values under namespaced keys plus whole-namespace invalidation.
// pkg/cache.CatalogCache is the Redis implementation. A failing cache must
// never fail a request: reads degrade to a miss and writes are best-effort.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	InvalidateListings(ctx context.Context) error
}

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog *CatalogService
	Like    *LikeService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	products := postgres.NewProductRepository(a.Db, a.EventBus)
	likes := postgres.NewLikeRepository(a.Db, a.EventBus)
	listingCache := pkgcache.NewCatalogCache(a.Redis)
	return &Services{
		Catalog: NewCatalogService(products, likes, listingCache, a.Logger),
		Like:    NewLikeService(products, likes, listingCache, a.Logger),
	}
}
