package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ListingTTL is the time-to-live for cached listing and search entries.
	// It is a safety net for missed invalidations, not a substitute for the
	// explicit invalidation done on write paths.
	ListingTTL = 5 * time.Minute

	listKeyPrefix   = "catalog:list:"
	searchKeyPrefix = "catalog:search:"

	// AnonViewer is the viewer segment used in cache keys for anonymous
	// requests. A key must encode the viewer identity (or its absence):
	// cached entries embed per-viewer liked flags, so sharing a key across
	// viewers would leak one viewer's state into another's results.
	AnonViewer = "anon"

	scanBatch = 200
)

// ListKey builds the cache key for a product listing page.
func ListKey(page, pageSize int, viewer string) string {
	return fmt.Sprintf("%s%d:%d:%s", listKeyPrefix, page, pageSize, viewer)
}

// SearchKey builds the cache key for a search result set.
func SearchKey(query, viewer string) string {
	return fmt.Sprintf("%s%s:%s", searchKeyPrefix, query, viewer)
}

// CatalogCache stores serialized listing pages and search results in Redis.
// Values are opaque bytes; callers own the encoding. All entries share
// ListingTTL and live under the "catalog:list:" and "catalog:search:"
// namespaces so write paths can invalidate them in bulk.
type CatalogCache struct {
	client *RedisClient
}

// NewCatalogCache creates a CatalogCache backed by the given RedisClient.
func NewCatalogCache(r *RedisClient) *CatalogCache {
	return &CatalogCache{client: r}
}

// Get retrieves the cached value for key. The second return is false when
// the key does not exist or has expired.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", key, err)
	}
	return val, true, nil
}

// Set stores val under key with ListingTTL.
func (c *CatalogCache) Set(ctx context.Context, key string, val []byte) error {
	if err := c.client.Client().Set(ctx, key, val, ListingTTL).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// DeleteMatching removes every key matching the given glob pattern.
// Uses SCAN rather than KEYS so large keyspaces are never blocked.
func (c *CatalogCache) DeleteMatching(ctx context.Context, pattern string) error {
	rdb := c.client.Client()
	iter := rdb.Scan(ctx, 0, pattern, scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete matching %q: %w", pattern, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %q: %w", pattern, err)
	}
	if len(keys) > 0 {
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("cache delete matching %q: %w", pattern, err)
		}
	}
	return nil
}

// InvalidateListings drops the whole listing and search namespaces.
// Write paths call this unconditionally: any cached page or search result
// may embed a now-stale likes count or liked flag, across many viewers'
// entries, so invalidation is deliberately coarse.
func (c *CatalogCache) InvalidateListings(ctx context.Context) error {
	if err := c.DeleteMatching(ctx, listKeyPrefix+"*"); err != nil {
		return err
	}
	return c.DeleteMatching(ctx, searchKeyPrefix+"*")
}
