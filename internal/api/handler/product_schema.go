package handler

import "github.com/storekit/storefront-api/internal/core/domain"

type createProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
}

// updateProductRequest allows partial updates: absent fields keep their
// current values.
type updateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
}

type productListMeta struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int64 `json:"last_page"`
}

type productListResponse struct {
	Data []domain.Product `json:"data"`
	Meta productListMeta  `json:"meta"`
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
