package ports

import (
	"context"

	"github.com/storekit/storefront-api/internal/core/domain"
)

// ListUsersFilter carries all query parameters for listing users.
type ListUsersFilter struct {
	Search string // optional: substring match on name or email
	Sort   string
	Dir    string
	Page   int
	Limit  int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, int64, error)
	Find(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts u and returns the store-assigned id. A duplicate email
	// surfaces as domain.ErrEmailTaken, never as a generic store error.
	Create(ctx context.Context, u *domain.User) (int64, error)
	Update(ctx context.Context, u *domain.User) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
