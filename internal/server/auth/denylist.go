package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "denylist:"

// Denylist records revoked token IDs until their natural expiry, so a
// logged-out token cannot be replayed even though its signature still
// verifies.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisDenylist stores revoked token IDs as keys with a TTL equal to the
// token's remaining life, so entries clean themselves up.
type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// already past expiry, nothing to record
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+tokenID, 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NoopDenylist disables revocation: logout only clears the cookie and a
// replayed token stays valid until its natural expiry.
type NoopDenylist struct{}

func (NoopDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (NoopDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}
