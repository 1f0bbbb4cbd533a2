package ports

import (
	"context"

	"github.com/storekit/storefront-api/internal/core/domain"
)

// CreateUserInput is the caller-supplied portion of a new user.
type CreateUserInput struct {
	Name  string
	Email string
	Phone *string
	City  *string
}

// UpdateUserInput holds the fields of a user update; nil keeps the current value.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Phone *string
	City  *string
}

// UserService implements user management use cases for the admin panel.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, int64, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (int64, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
