package ports

import "context"

// SessionStore keeps server-side admin sessions keyed by an opaque id that
// travels in a cookie. Expiry is owned by the store, not by this interface.
type SessionStore interface {
	// Create opens a session for adminID and returns its opaque id.
	Create(ctx context.Context, adminID int64) (string, error)
	// Get resolves a session id to the admin id it carries.
	// Unknown or expired ids return domain.ErrInvalidSession.
	Get(ctx context.Context, id string) (int64, error)
	// Destroy removes the session unconditionally; destroying a session that
	// no longer exists is not an error.
	Destroy(ctx context.Context, id string) error
}
