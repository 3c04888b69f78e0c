package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnnotatedProduct is a transient, per-viewer projection of a Product plus
// engagement data: the aggregate likes count and, for identified viewers,
// whether this viewer has liked the product. It is never persisted; it is
// constructed on read and cached keyed by query shape and viewer identity.
type AnnotatedProduct struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	LikesCount  int             `json:"likes_count"`
	// Liked is nil for anonymous viewers: the field is only meaningful when a
	// viewer identity was supplied, and is omitted from JSON otherwise.
	Liked *bool `json:"liked,omitempty"`
}

// PageMeta describes the pagination window of a ProductPage.
type PageMeta struct {
	TotalItems   int `json:"total_items"`
	ItemCount    int `json:"item_count"`
	ItemsPerPage int `json:"items_per_page"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
}

// PageLinks holds opaque navigation locators. Previous and Next are empty
// strings when the corresponding page does not exist.
type PageLinks struct {
	First    string `json:"first"`
	Previous string `json:"previous"`
	Next     string `json:"next"`
	Last     string `json:"last"`
}

// ProductPage is a bounded, ordered window of annotated products plus
// pagination metadata and navigation links. Ordering is by creation time
// descending, ties broken by id ascending, so pagination is deterministic.
type ProductPage struct {
	Items []AnnotatedProduct `json:"items"`
	Meta  PageMeta           `json:"meta"`
	Links PageLinks          `json:"links"`
}

// NewPageMeta computes pagination metadata for the given window.
func NewPageMeta(totalItems, itemCount, page, pageSize int) PageMeta {
	return PageMeta{
		TotalItems:   totalItems,
		ItemCount:    itemCount,
		ItemsPerPage: pageSize,
		TotalPages:   totalPages(totalItems, pageSize),
		CurrentPage:  page,
	}
}

// NewPageLinks assembles navigation locators for the given window.
// Previous is present iff page > 1; Next is present iff page < totalPages.
func NewPageLinks(page, pageSize, totalItems int) PageLinks {
	last := totalPages(totalItems, pageSize)
	links := PageLinks{
		First: pageLocator(1, pageSize),
		Last:  pageLocator(last, pageSize),
	}
	if page > 1 {
		links.Previous = pageLocator(page-1, pageSize)
	}
	if page < last {
		links.Next = pageLocator(page+1, pageSize)
	}
	return links
}

func totalPages(totalItems, pageSize int) int {
	if totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

func pageLocator(page, pageSize int) string {
	return fmt.Sprintf("products?page=%d&limit=%d", page, pageSize)
}

// Annotate builds the per-viewer projection of a product. liked must be nil
// for anonymous viewers.
func Annotate(p *Product, likesCount int, liked *bool) AnnotatedProduct {
	return AnnotatedProduct{
		ID:          p.ID,
		Name:        p.Name.String(),
		Price:       p.Price,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		LikesCount:  likesCount,
		Liked:       liked,
	}
}
