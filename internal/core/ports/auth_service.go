package ports

import (
	"context"

	"github.com/storekit/storefront-api/internal/core/domain"
)

// AuthService checks operator credentials and issues API tokens. Both auth
// schemes (bearer token and admin session) share the same credential check.
type AuthService interface {
	// Authenticate verifies email+password against the admins table.
	// Unknown email and wrong password both return domain.ErrInvalidCredentials
	// so responses never reveal which field was wrong.
	Authenticate(ctx context.Context, email, password string) (*domain.Admin, error)
	// IssueToken signs a bearer token for admin and returns it together with
	// its lifetime in seconds.
	IssueToken(admin *domain.Admin) (token string, expiresIn int64, err error)
}
