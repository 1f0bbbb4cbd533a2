package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storekit/storefront-api/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps admin-panel sessions in Redis.
// Key format: session:<opaque id> → admin id, expiring after ttl.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create opens a session for adminID and returns its opaque id. The id is
// 32 random bytes, so it carries no information about the admin.
func (s *SessionStore) Create(ctx context.Context, adminID int64) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	id := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, sessionKeyPrefix+id, adminID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return id, nil
}

// Get resolves a session id to the admin id it holds. Unknown and expired
// sessions are indistinguishable: both return domain.ErrInvalidSession.
func (s *SessionStore) Get(ctx context.Context, id string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrInvalidSession
		}
		return 0, fmt.Errorf("session lookup: %w", err)
	}

	adminID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidSession
	}
	return adminID, nil
}

// Destroy removes the session. Destroying an absent session is a no-op.
func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
