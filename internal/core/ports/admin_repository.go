package ports

import (
	"context"

	"github.com/storekit/storefront-api/internal/core/domain"
)

// AdminRepository looks up operator accounts for authentication.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
