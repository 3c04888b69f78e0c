package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/shoply/pkg/config"
	"github.com/ghuser/shoply/pkg/logger"
	catalogdomain "github.com/ghuser/shoply/services/catalog/domain"
	"github.com/ghuser/shoply/services/catalog/domain/models"
	"github.com/ghuser/shoply/services/catalog/domain/repositories"
)

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

// fakeProductRepo is an in-memory ProductRepository ordered like the real one:
// created_at descending, ties broken by id ascending.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []*models.Product
}

func (f *fakeProductRepo) Save(ctx context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, catalogdomain.ErrProductNotFound
}

func (f *fakeProductRepo) FindPage(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ordered := f.ordered()
	if opts.Offset >= len(ordered) {
		return nil, nil
	}
	end := opts.Offset + opts.Limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[opts.Offset:end], nil
}

func (f *fakeProductRepo) CountAll(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.products), nil
}

func (f *fakeProductRepo) FindByNameSubstring(ctx context.Context, query string) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Product
	for _, p := range f.ordered() {
		if strings.Contains(strings.ToLower(p.Name.String()), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) ordered() []*models.Product {
	ordered := make([]*models.Product, len(f.products))
	copy(ordered, f.products)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})
	return ordered
}

type likePair struct {
	user    uuid.UUID
	product uuid.UUID
}

// fakeLikeRepo is an in-memory LikeRepository enforcing the at-most-one-per-
// pair invariant the way the database unique constraint does. createConflict
// simulates losing the check-then-act race: the next Create fails with
// ErrAlreadyLiked as if a concurrent toggle inserted the row first.
type fakeLikeRepo struct {
	mu             sync.Mutex
	likes          map[likePair]bool
	createConflict bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[likePair]bool)}
}

func (f *fakeLikeRepo) Create(ctx context.Context, like *models.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pair := likePair{like.UserID, like.ProductID}
	if f.createConflict {
		f.createConflict = false
		f.likes[pair] = true // the concurrent winner's row
		return catalogdomain.ErrAlreadyLiked
	}
	if f.likes[pair] {
		return catalogdomain.ErrAlreadyLiked
	}
	f.likes[pair] = true
	return nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pair := likePair{userID, productID}
	if !f.likes[pair] {
		return false, nil
	}
	delete(f.likes, pair)
	return true, nil
}

func (f *fakeLikeRepo) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[likePair{userID, productID}], nil
}

func (f *fakeLikeRepo) CountByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for pair := range f.likes {
		if pair.product == productID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) CountByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(productIDs))
	for _, id := range productIDs {
		n, _ := f.CountByProduct(ctx, id)
		if n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func (f *fakeLikeRepo) LikedSet(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	liked := make(map[uuid.UUID]bool, len(productIDs))
	for _, id := range productIDs {
		if f.likes[likePair{userID, id}] {
			liked[id] = true
		}
	}
	return liked, nil
}

// fakeCache is an in-memory ListingCache with switchable failure modes.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	b, ok := f.entries[key]
	if ok {
		f.hits++
	}
	return b, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, val []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = val
	f.sets++
	return nil
}

func (f *fakeCache) InvalidateListings(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = make(map[string][]byte)
	return nil
}

func (f *fakeCache) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

var errCacheDown = errors.New("redis unreachable")

// seedProducts inserts n products with strictly decreasing creation times so
// the newest product is "product-0".
func seedProducts(repo *fakeProductRepo, n int) []*models.Product {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*models.Product, 0, n)
	for i := 0; i < n; i++ {
		name, _ := models.NewProductName(productName(i))
		p, _ := models.NewProduct(name, decimal.NewFromFloat(9.99), "kitchen", "mugs")
		p.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		p.UpdatedAt = p.CreatedAt
		repo.products = append(repo.products, p)
		out = append(out, p)
	}
	return out
}

func productName(i int) string {
	return fmt.Sprintf("product-%02d", i)
}
