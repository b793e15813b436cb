package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRedis is an in-memory stand-in for the session keyspace. TTLs
// are recorded but not enforced.
type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = fmt.Sprint(value)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if val, ok := f.values[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			delete(f.ttls, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestSessionRoundTrip(t *testing.T) {
	rdb := newFakeRedis()
	store := NewStore(rdb, time.Hour, zap.NewNop())
	ctx := context.Background()

	sess, err := store.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, time.Hour, rdb.ttls[key(sess.Token)])

	userID, err := store.Resolve(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestResolveUnknownToken(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour, zap.NewNop())

	_, err := store.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevoke(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour, zap.NewNop())
	ctx := context.Background()

	sess, err := store.Create(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, sess.Token))

	_, err = store.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Revoking again is harmless.
	assert.NoError(t, store.Revoke(ctx, sess.Token))
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(newFakeRedis(), time.Hour, zap.NewNop())
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}
