// Package session keeps login sessions in redis, keyed by opaque
// tokens. Expiry is enforced by per-key TTLs.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

// Commands is the slice of the redis API the store uses. Satisfied by
// *redis.Client.
type Commands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Session is an issued login session.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// Store issues and resolves session tokens.
type Store struct {
	rdb    Commands
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates a session store with the given lease period.
func NewStore(rdb Commands, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{rdb: rdb, ttl: ttl, logger: logger}
}

// Create issues a fresh token for the user.
func (s *Store) Create(ctx context.Context, userID int64) (Session, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, key(token), userID, s.ttl).Err(); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	s.logger.Debug("session created", zap.Int64("user_id", userID))
	return Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

// Resolve returns the user the token belongs to.
func (s *Store) Resolve(ctx context.Context, token string) (int64, error) {
	userID, err := s.rdb.Get(ctx, key(token)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// Revoke deletes the session. Revoking an unknown token is not an
// error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func key(token string) string {
	return "session:" + token
}
