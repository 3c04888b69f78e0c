package cache

import (
	"context"
	"os"
	"testing"
)

func TestListKey(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		viewer   string
		want     string
	}{
		{"anonymous", 1, 10, AnonViewer, "catalog:list:1:10:anon"},
		{"identified", 2, 8, "7f9c24e5-2b31-4f0a-9c1a-000000000001", "catalog:list:2:8:7f9c24e5-2b31-4f0a-9c1a-000000000001"},
		{"large page", 120, 100, AnonViewer, "catalog:list:120:100:anon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListKey(tt.page, tt.pageSize, tt.viewer); got != tt.want {
				t.Fatalf("ListKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchKey(t *testing.T) {
	if got := SearchKey("mug", AnonViewer); got != "catalog:search:mug:anon" {
		t.Fatalf("SearchKey() = %q", got)
	}
	if got := SearchKey("coffee mug", "u1"); got != "catalog:search:coffee mug:u1" {
		t.Fatalf("SearchKey() = %q", got)
	}
}

func TestKeys_DifferPerViewer(t *testing.T) {
	// The viewer segment is what prevents cross-viewer leakage of liked flags.
	if ListKey(1, 10, "viewer-a") == ListKey(1, 10, "viewer-b") {
		t.Fatal("list keys for different viewers must differ")
	}
	if SearchKey("q", "viewer-a") == SearchKey("q", AnonViewer) {
		t.Fatal("search keys for identified and anonymous viewers must differ")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestCatalogCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	c := NewCatalogCache(rc)
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		key := ListKey(1, 10, AnonViewer)
		if err := c.Set(ctx, key, []byte(`{"items":[]}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		val, ok, err := c.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("expected hit")
		}
		if string(val) != `{"items":[]}` {
			t.Fatalf("unexpected value: %s", val)
		}
	})

	t.Run("get missing key", func(t *testing.T) {
		_, ok, err := c.Get(ctx, ListKey(999, 10, AnonViewer))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Fatal("expected miss")
		}
	})

	t.Run("invalidate listings drops both namespaces", func(t *testing.T) {
		listKey := ListKey(3, 10, "viewer-x")
		searchKey := SearchKey("lamp", "viewer-x")
		if err := c.Set(ctx, listKey, []byte("a")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := c.Set(ctx, searchKey, []byte("b")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		if err := c.InvalidateListings(ctx); err != nil {
			t.Fatalf("InvalidateListings failed: %v", err)
		}

		if _, ok, _ := c.Get(ctx, listKey); ok {
			t.Fatal("list entry survived invalidation")
		}
		if _, ok, _ := c.Get(ctx, searchKey); ok {
			t.Fatal("search entry survived invalidation")
		}
	})
}
