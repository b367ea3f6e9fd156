package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// claimMarker is stored under the lock key while a request is in flight.
const claimMarker = "1"

// IdempotencyCache implements ports.IdempotencyCache using Redis. Responses
// and in-flight claims live under separate key prefixes so a claim never
// shadows a cached response.
type IdempotencyCache struct {
	client      *goredis.Client
	prefix      string
	claimPrefix string
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client:      client,
		prefix:      "idempotency:",
		claimPrefix: "idempotency-lock:",
	}
}

// Get retrieves a cached response by idempotency key.
// Returns nil, nil if the key does not exist.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	return val, nil
}

// Set stores a response and drops the in-flight claim for key.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, c.prefix+key, value, ttl)
		pipe.Del(ctx, c.claimPrefix+key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis idempotency set: %w", err)
	}
	return nil
}

// Claim marks key as in flight with SET NX. It returns false when another
// request already holds the claim.
func (c *IdempotencyCache) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.claimPrefix+key, claimMarker, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis idempotency claim: %w", err)
	}
	return ok, nil
}

// Unclaim releases the in-flight claim without caching a response, so the
// client may retry with the same key.
func (c *IdempotencyCache) Unclaim(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.claimPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis idempotency unclaim: %w", err)
	}
	return nil
}
