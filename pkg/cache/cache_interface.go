package cache

import (
	"context"
	"time"
)

// Cache is the contract the lookup repositories depend on. Implementations may
// be backed by Redis or anything else that can hold marshalled JSON values.
type Cache interface {
	// Get unmarshals the cached value for key into dest.
	// found == false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
