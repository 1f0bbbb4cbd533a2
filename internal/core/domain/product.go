package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrTitleRequired = errors.New("title is required")
var ErrNegativePrice = errors.New("price must not be negative")

// Product is a catalog entry exposed through the token-authenticated API.
// Description and Category are optional and render as JSON null when unset.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
