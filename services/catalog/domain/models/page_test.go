package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		itemCount  int
		page       int
		pageSize   int
		wantPages  int
	}{
		{"exact multiple", 20, 10, 1, 10, 2},
		{"partial last page", 10, 2, 2, 8, 2},
		{"single page", 3, 3, 1, 10, 1},
		{"empty catalog", 0, 0, 1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPageMeta(tt.totalItems, tt.itemCount, tt.page, tt.pageSize)
			if m.TotalPages != tt.wantPages {
				t.Fatalf("expected %d total pages, got %d", tt.wantPages, m.TotalPages)
			}
			if m.TotalItems != tt.totalItems || m.ItemCount != tt.itemCount {
				t.Fatalf("unexpected meta: %+v", m)
			}
			if m.CurrentPage != tt.page || m.ItemsPerPage != tt.pageSize {
				t.Fatalf("unexpected window in meta: %+v", m)
			}
		})
	}
}

func TestNewPageLinks(t *testing.T) {
	t.Run("first of two pages", func(t *testing.T) {
		links := NewPageLinks(1, 8, 10)
		if links.First != "products?page=1&limit=8" {
			t.Fatalf("unexpected first link: %q", links.First)
		}
		if links.Previous != "" {
			t.Fatalf("expected no previous link on page 1, got %q", links.Previous)
		}
		if links.Next != "products?page=2&limit=8" {
			t.Fatalf("unexpected next link: %q", links.Next)
		}
		if links.Last != "products?page=2&limit=8" {
			t.Fatalf("unexpected last link: %q", links.Last)
		}
	})

	t.Run("last of two pages", func(t *testing.T) {
		links := NewPageLinks(2, 8, 10)
		if links.Previous != "products?page=1&limit=8" {
			t.Fatalf("unexpected previous link: %q", links.Previous)
		}
		if links.Next != "" {
			t.Fatalf("expected no next link on the last page, got %q", links.Next)
		}
	})

	t.Run("middle page has both", func(t *testing.T) {
		links := NewPageLinks(2, 5, 15)
		if links.Previous == "" || links.Next == "" {
			t.Fatalf("expected both previous and next, got %+v", links)
		}
	})
}

func TestAnnotate(t *testing.T) {
	name, _ := NewProductName("Stoneware Mug")
	p, err := NewProduct(name, decimal.NewFromFloat(12.50), "kitchen", "mugs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("anonymous omits liked from JSON", func(t *testing.T) {
		a := Annotate(p, 3, nil)
		if a.LikesCount != 3 {
			t.Fatalf("expected likes count 3, got %d", a.LikesCount)
		}
		raw, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, present := fields["liked"]; present {
			t.Fatal("liked must be omitted for anonymous viewers")
		}
	})

	t.Run("identified viewer carries liked", func(t *testing.T) {
		liked := true
		a := Annotate(p, 1, &liked)
		if a.Liked == nil || !*a.Liked {
			t.Fatal("expected liked=true")
		}
	})
}
