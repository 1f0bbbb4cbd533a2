package ports

import (
	"context"

	"github.com/storekit/storefront-api/internal/core/domain"
)

// CreateProductInput is the caller-supplied portion of a new product.
type CreateProductInput struct {
	Title       string
	Description *string
	Price       float64
	Category    *string
}

// UpdateProductInput holds the fields of a product update. Nil fields keep
// the current value, mirroring the partial-update contract of the API.
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
}

// ProductService implements product use cases on top of ProductRepository.
type ProductService interface {
	List(ctx context.Context, filter ListProductsFilter) ([]domain.Product, int64, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (int64, error)
	// Update reports false when the row exists but no column value changed.
	Update(ctx context.Context, id int64, input UpdateProductInput) (bool, error)
	Delete(ctx context.Context, id int64) error
}
