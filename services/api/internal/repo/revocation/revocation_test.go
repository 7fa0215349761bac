package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestStore_WithoutRedis(t *testing.T) {
	store := NewStore(nil)

	assert.False(t, store.Enabled())
	assert.NoError(t, store.Revoke(context.Background(), "jti", time.Now().Add(time.Hour)))

	revoked, err := store.IsRevoked(context.Background(), "jti")
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestStore_ExpiredTokenIsNotStored(t *testing.T) {
	// Unreachable address: any call that reaches Redis would fail.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()
	store := NewStore(client)

	assert.NoError(t, store.Revoke(context.Background(), "jti", time.Now().Add(-time.Minute)))

	_, err := store.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}
