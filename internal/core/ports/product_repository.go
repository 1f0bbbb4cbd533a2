package ports

import (
	"context"

	"github.com/storekit/storefront-api/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
// Sort/Dir/Page/Limit are sanitised by the query layer, not here: an unknown
// sort column falls back to the default and limits are clamped, so callers
// can pass user input through untouched.
type ListProductsFilter struct {
	Search   string // optional: substring match on title or description
	Category string // optional: exact category filter
	Sort     string // requested sort column, validated against an allow-list
	Dir      string // "asc" or anything else (= desc)
	Page     int    // 1-based
	Limit    int    // rows per page, clamped to [1,100]
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ListProductsFilter) ([]domain.Product, int64, error)
	Find(ctx context.Context, id int64) (*domain.Product, error)
	// Create inserts p and returns the store-assigned id.
	Create(ctx context.Context, p *domain.Product) (int64, error)
	// Update replaces the mutable columns of the row with id p.ID.
	// It reports false when the store affected no rows.
	Update(ctx context.Context, p *domain.Product) (bool, error)
	// Delete reports false when no row with the given id existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
